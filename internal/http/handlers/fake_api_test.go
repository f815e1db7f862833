package handlers

import (
	"context"
	"sync"

	"frontend/internal/domain"
	"frontend/internal/domain/models"
)

type fakeAPI struct {
	mu    sync.Mutex
	calls []string

	stations    []models.Station
	stationsErr error
	dates       []string
	datesErr    error
	trips       []models.Trip
	created     models.Ticket
	createErr   error
	createdWith *models.TicketCreate
	ticket      models.Ticket
	ticketErr   error

	summary      models.Summary
	byDay        []models.DaySales
	tickets      []models.TicketRow
	analyticsErr error
}

func (f *fakeAPI) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeAPI) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeAPI) called(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c == name {
			return true
		}
	}
	return false
}

func (f *fakeAPI) ListStations(context.Context) ([]models.Station, error) {
	f.record("stations")
	return f.stations, f.stationsErr
}

func (f *fakeAPI) AvailableDates(context.Context, domain.ID, domain.ID) ([]string, error) {
	f.record("dates")
	return f.dates, f.datesErr
}

func (f *fakeAPI) ListTrips(context.Context, models.TripQuery) ([]models.Trip, error) {
	f.record("trips")
	return f.trips, nil
}

func (f *fakeAPI) CreateTicket(_ context.Context, in models.TicketCreate) (models.Ticket, error) {
	f.record("create")
	f.mu.Lock()
	f.createdWith = &in
	f.mu.Unlock()
	return f.created, f.createErr
}

func (f *fakeAPI) GetTicket(context.Context, domain.ID) (models.Ticket, error) {
	f.record("ticket")
	return f.ticket, f.ticketErr
}

func (f *fakeAPI) AnalyticsSummary(context.Context, models.AnalyticsFilter) (models.Summary, error) {
	f.record("summary")
	return f.summary, f.analyticsErr
}

func (f *fakeAPI) AnalyticsByDay(context.Context, models.AnalyticsFilter) ([]models.DaySales, error) {
	f.record("by-day")
	return f.byDay, f.analyticsErr
}

func (f *fakeAPI) AnalyticsByRoute(context.Context, models.AnalyticsFilter) ([]models.RouteSales, error) {
	f.record("by-route")
	return nil, f.analyticsErr
}

func (f *fakeAPI) AnalyticsByDirection(context.Context, models.AnalyticsFilter) ([]models.DirectionSales, error) {
	f.record("by-direction")
	return nil, f.analyticsErr
}

func (f *fakeAPI) AnalyticsTickets(context.Context, models.AnalyticsFilter) ([]models.TicketRow, error) {
	f.record("tickets")
	return f.tickets, f.analyticsErr
}

func (f *fakeAPI) AnalyticsTopRoutes(context.Context, models.AnalyticsFilter) ([]models.RouteSales, error) {
	f.record("top-routes")
	return nil, nil
}
