package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequests.WithLabelValues("GET", "/test", "200"))
	RecordHTTPRequest("GET", "/test", 200, 15*time.Millisecond)
	after := testutil.ToFloat64(HTTPRequests.WithLabelValues("GET", "/test", "200"))
	if after != before+1 {
		t.Fatalf("expected counter to grow by 1, got %v -> %v", before, after)
	}
}

func TestRecordUpstreamRejectedSkipsLatency(t *testing.T) {
	RecordUpstream("test_rejected", "rejected", time.Second)
	if got := testutil.ToFloat64(UpstreamRequests.WithLabelValues("test_rejected", "rejected")); got != 1 {
		t.Fatalf("expected 1 rejected request, got %v", got)
	}
	if n := testutil.CollectAndCount(UpstreamDuration, "frontend_upstream_request_duration_seconds"); n != 0 {
		t.Fatalf("expected no latency series, got %d", n)
	}
}
