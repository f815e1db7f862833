package services

import (
	"context"
	"slices"

	"frontend/internal/calendar"
	"frontend/internal/domain"
	"frontend/internal/utils"
)

type CalendarQuery struct {
	From  domain.ID
	To    domain.ID
	Date  string
	Month string
}

// CalendarView is the date picker of one route. Grid is nil when the route
// has no trips at all.
type CalendarView struct {
	Dates    []string
	Selected string
	Grid     *calendar.Grid
	Prev     string
	Next     string
	Error    Message
}

type CalendarService struct {
	API       TicketsAPI
	RequestID string
}

func (s CalendarService) Load(ctx context.Context, q CalendarQuery) (CalendarView, error) {
	if q.From <= 0 || q.To <= 0 {
		return CalendarView{}, domain.ValidationError{Field: "route", Msg: "start and end station are required"}
	}
	dates, err := s.API.AvailableDates(ctx, q.From, q.To)
	if err != nil {
		utils.LogError(s.RequestID, "calendar", "available_dates", err)
		return CalendarView{}, err
	}
	v := CalendarView{Dates: dates}
	if len(dates) == 0 {
		v.Error = MsgNoTripsForRoute
		return v, nil
	}
	if slices.Contains(dates, q.Date) {
		v.Selected = q.Date
	}
	v.Grid, v.Prev, v.Next = monthView(s.RequestID, q.Month, dates, v.Selected)
	return v, nil
}

// monthView builds the grid for month (YYYY-MM) or, when month is empty or
// malformed, for the month of the selection or the first available date.
func monthView(requestID, month string, dates []string, selected string) (*calendar.Grid, string, string) {
	var grid *calendar.Grid
	if month != "" {
		if ym, err := calendar.ParseYearMonth(month); err == nil {
			grid = calendar.BuildMonth(ym.Year, ym.Month, dates, selected)
		}
	}
	if grid == nil {
		g, err := calendar.Build(dates, selected)
		if err != nil {
			utils.LogError(requestID, "calendar", "build", err)
			return nil, "", ""
		}
		grid = g
	}

	var prev, next string
	if ym, ok := grid.Prev(dates); ok {
		prev = ym.String()
	}
	if ym, ok := grid.Next(dates); ok {
		next = ym.String()
	}
	return grid, prev, next
}
