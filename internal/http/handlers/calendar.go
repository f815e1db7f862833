package handlers

import (
	"net/http"

	"frontend/internal/calendar"
	"frontend/internal/http/middleware"
	"frontend/internal/services"
	"frontend/internal/view"

	"github.com/gin-gonic/gin"
)

type calendarResponse struct {
	Dates    []string       `json:"dates"`
	Selected string         `json:"selected,omitempty"`
	Label    string         `json:"label,omitempty"`
	Weekdays [7]string      `json:"weekdays"`
	Grid     *calendar.Grid `json:"grid"`
	Prev     string         `json:"prev_month,omitempty"`
	Next     string         `json:"next_month,omitempty"`
	Message  string         `json:"message,omitempty"`
}

// GetCalendar returns the date picker grid of a route as JSON.
func (h *Handler) GetCalendar(c *gin.Context) {
	rid := middleware.GetRequestID(c)
	lang := middleware.GetLanguage(c)
	q := searchQuery(rid, c.Query)

	svc := services.CalendarService{API: h.API, RequestID: rid}
	v, err := svc.Load(c.Request.Context(), services.CalendarQuery{
		From:  q.From,
		To:    q.To,
		Date:  q.Date,
		Month: q.Month,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	resp := calendarResponse{
		Dates:    v.Dates,
		Selected: v.Selected,
		Weekdays: calendar.WeekdayLabels(lang),
		Grid:     v.Grid,
		Prev:     v.Prev,
		Next:     v.Next,
	}
	if v.Grid != nil {
		resp.Label = calendar.MonthLabel(lang, v.Grid.Year, v.Grid.Month)
	}
	if v.Error != services.MsgNone {
		resp.Message = view.Text(lang, string(v.Error))
	}
	c.JSON(http.StatusOK, resp)
}
