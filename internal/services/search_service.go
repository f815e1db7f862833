package services

import (
	"context"
	"fmt"
	"slices"

	"frontend/internal/calendar"
	"frontend/internal/domain"
	"frontend/internal/domain/models"
	"frontend/internal/utils"
)

// SearchQuery is the state of the search page as carried in its URL.
type SearchQuery struct {
	From   domain.ID
	To     domain.ID
	Date   string
	Month  string
	TripID domain.ID
}

func (q SearchQuery) RouteChosen() bool { return q.From > 0 && q.To > 0 }

// SearchPage is everything the search template renders.
type SearchPage struct {
	Query          SearchQuery
	Stations       []models.Station
	AvailableDates []string
	Calendar       *calendar.Grid
	PrevMonth      string
	NextMonth      string
	Date           string
	Trips          []models.Trip
	Trip           *models.Trip
	PurchaseToken  string
	Error          Message
}

func (p SearchPage) RouteChosen() bool { return p.Query.RouteChosen() }

// DateChosen reports whether an available date is selected.
func (p SearchPage) DateChosen() bool { return p.Date != "" }

type SearchService struct {
	API       TicketsAPI
	Tokens    TokenIssuer
	RequestID string
}

// Load walks the page steps in order: stations, available dates for the
// route, trips for the date, then the chosen trip. A failed step leaves its
// message on the page and skips the steps that depend on it.
func (s SearchService) Load(ctx context.Context, q SearchQuery) SearchPage {
	page := SearchPage{Query: q}

	stations, err := s.API.ListStations(ctx)
	if err != nil {
		utils.LogError(s.RequestID, "search", "list_stations", err)
		page.Error = MsgStationsFailed
	} else {
		page.Stations = stations
	}

	if !q.RouteChosen() {
		return page
	}

	dates, err := s.API.AvailableDates(ctx, q.From, q.To)
	if err != nil {
		utils.LogError(s.RequestID, "search", "available_dates", err)
		page.Error = MsgDatesFailed
		return page
	}
	page.AvailableDates = dates
	if len(dates) == 0 {
		page.Error = MsgNoTripsForRoute
		return page
	}

	// Only available days are selectable; anything else is ignored.
	if q.Date != "" {
		if slices.Contains(dates, q.Date) {
			page.Date = q.Date
		} else {
			utils.LogEvent(s.RequestID, "search", "ignore_date", fmt.Sprintf("date=%s not available", q.Date))
		}
	}

	page.Calendar, page.PrevMonth, page.NextMonth = monthView(s.RequestID, q.Month, dates, page.Date)

	if page.Date == "" {
		return page
	}

	trips, err := s.API.ListTrips(ctx, models.TripQuery{
		StartStationID: q.From,
		EndStationID:   q.To,
		TravelDate:     page.Date,
	})
	if err != nil {
		utils.LogError(s.RequestID, "search", "list_trips", err)
		page.Error = MsgTripsFailed
		return page
	}
	page.Trips = trips
	if len(trips) == 0 {
		page.Error = MsgNoTripsForDate
		return page
	}

	if q.TripID > 0 {
		trip, ok := models.FindTrip(trips, q.TripID)
		if !ok {
			return page
		}
		token, err := s.Tokens.Issue(trip.ID, trip.BasePrice)
		if err != nil {
			utils.LogError(s.RequestID, "search", "issue_token", err)
			page.Error = MsgPurchaseFailed
			return page
		}
		page.Trip = &trip
		page.PurchaseToken = token
	}
	return page
}
