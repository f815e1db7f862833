package services

import (
	"context"
	"errors"
	"sync"

	"frontend/internal/auth"
	"frontend/internal/domain"
	"frontend/internal/domain/models"
)

var errBackendDown = domain.UnavailableError{Service: "tickets api", Err: errors.New("connection refused")}

// fakeAPI returns canned data; a non-nil *Err field fails that call.
type fakeAPI struct {
	mu    sync.Mutex
	calls []string

	stations    []models.Station
	stationsErr error
	dates       []string
	datesErr    error
	trips       []models.Trip
	tripsErr    error
	created     models.Ticket
	createErr   error
	createdWith *models.TicketCreate
	ticket      models.Ticket
	ticketErr   error

	summary      models.Summary
	byDay        []models.DaySales
	byRoute      []models.RouteSales
	byDirection  []models.DirectionSales
	tickets      []models.TicketRow
	topRoutes    []models.RouteSales
	analyticsErr map[string]error
}

func (f *fakeAPI) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
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

func (f *fakeAPI) ListStations(ctx context.Context) ([]models.Station, error) {
	f.record("stations")
	return f.stations, f.stationsErr
}

func (f *fakeAPI) AvailableDates(ctx context.Context, from, to domain.ID) ([]string, error) {
	f.record("dates")
	return f.dates, f.datesErr
}

func (f *fakeAPI) ListTrips(ctx context.Context, q models.TripQuery) ([]models.Trip, error) {
	f.record("trips")
	return f.trips, f.tripsErr
}

func (f *fakeAPI) CreateTicket(ctx context.Context, in models.TicketCreate) (models.Ticket, error) {
	f.record("create")
	f.createdWith = &in
	return f.created, f.createErr
}

func (f *fakeAPI) GetTicket(ctx context.Context, id domain.ID) (models.Ticket, error) {
	f.record("ticket")
	return f.ticket, f.ticketErr
}

func (f *fakeAPI) analytics(name string) error {
	f.record(name)
	return f.analyticsErr[name]
}

func (f *fakeAPI) AnalyticsSummary(ctx context.Context, _ models.AnalyticsFilter) (models.Summary, error) {
	return f.summary, f.analytics("summary")
}

func (f *fakeAPI) AnalyticsByDay(ctx context.Context, _ models.AnalyticsFilter) ([]models.DaySales, error) {
	return f.byDay, f.analytics("by-day")
}

func (f *fakeAPI) AnalyticsByRoute(ctx context.Context, _ models.AnalyticsFilter) ([]models.RouteSales, error) {
	return f.byRoute, f.analytics("by-route")
}

func (f *fakeAPI) AnalyticsByDirection(ctx context.Context, _ models.AnalyticsFilter) ([]models.DirectionSales, error) {
	return f.byDirection, f.analytics("by-direction")
}

func (f *fakeAPI) AnalyticsTickets(ctx context.Context, _ models.AnalyticsFilter) ([]models.TicketRow, error) {
	return f.tickets, f.analytics("tickets")
}

func (f *fakeAPI) AnalyticsTopRoutes(ctx context.Context, _ models.AnalyticsFilter) ([]models.RouteSales, error) {
	return f.topRoutes, f.analytics("top-routes")
}

func newTokens() *auth.PurchaseTokens {
	t, err := auth.NewPurchaseTokens("test-secret", 0)
	if err != nil {
		panic(err)
	}
	return t
}

var testStations = []models.Station{
	{ID: 1, Name: "Київ", Code: "KYIV"},
	{ID: 2, Name: "Львів", Code: "LVIV"},
}
