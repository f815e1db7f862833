package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"frontend/internal/domain"

	json "github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
)

// Error is a non-2xx answer from the tickets API.
type Error struct {
	Status int
	Detail string
	Path   string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api %s: status %d: %s", e.Path, e.Status, e.Detail)
	}
	return fmt.Sprintf("api %s: status %d", e.Path, e.Status)
}

// APIDetail exposes the backend detail to domain.Detail.
func (e *Error) APIDetail() string { return e.Detail }

// parseDetail reads FastAPI's {"detail": "..."} body. Validation errors carry a
// list instead of a string and yield "".
func parseDetail(body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(payload.Detail, &s); err != nil {
		return ""
	}
	return s
}

// translate maps transport and API failures onto domain errors. The original
// error stays reachable through errors.As.
func translate(resource string, err error) error {
	if err == nil {
		return nil
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Status == http.StatusNotFound:
			return domain.NotFoundError{Resource: resource, Err: err}
		case apiErr.Status == http.StatusConflict:
			return domain.ConflictError{Resource: resource, Msg: apiErr.Detail, Err: err}
		case apiErr.Status == http.StatusBadRequest || apiErr.Status == http.StatusUnprocessableEntity:
			return domain.ValidationError{Field: resource, Msg: apiErr.Detail, Err: err}
		case apiErr.Status >= 500:
			return domain.UnavailableError{Service: "tickets api", Err: err}
		default:
			return domain.InternalError{Msg: "unexpected api response", Err: err}
		}
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return domain.UnavailableError{Service: "tickets api", Err: err}
	}
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return domain.InternalError{Msg: "malformed api response", Err: err}
	}
	return domain.UnavailableError{Service: "tickets api", Err: err}
}

// DecodeError wraps a 2xx body that did not match the expected shape.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("api %s: decode: %v", e.Path, e.Err) }

func (e *DecodeError) Unwrap() error { return e.Err }

// StatusOf returns the HTTP status behind err, or 0 when err did not come from
// an API response.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
