package handlers

import (
	"strings"

	"frontend/internal/domain"
	"frontend/internal/services"
	"frontend/internal/utils"
)

// searchQuery reads the search page state. Malformed ids are dropped so the
// page falls back to the previous step instead of failing.
func searchQuery(requestID string, get func(string) string) services.SearchQuery {
	q := services.SearchQuery{
		From:   lenientID(requestID, "from", get("from")),
		To:     lenientID(requestID, "to", get("to")),
		Date:   utils.TrimOrEmpty(get("date")),
		Month:  utils.TrimOrEmpty(get("month")),
		TripID: lenientID(requestID, "trip", get("trip")),
	}
	if q.Date != "" && !utils.IsDate(q.Date) {
		utils.LogEvent(requestID, "search", "parse_query", "ignoring malformed date")
		q.Date = ""
	}
	return q
}

func lenientID(requestID, field, raw string) domain.ID {
	id, err := domain.ParseID(raw)
	if err != nil {
		utils.LogEvent(requestID, "search", "parse_query", "ignoring malformed "+field)
		return 0
	}
	return id
}

func isAPIPath(path string) bool {
	return path == "/api" || strings.HasPrefix(path, "/api/")
}

// safeRedirect keeps redirects on this site.
func safeRedirect(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}
