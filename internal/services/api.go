package services

import (
	"context"

	"frontend/internal/auth"
	"frontend/internal/domain"
	"frontend/internal/domain/models"
)

// TicketsAPI is what the services need from the backend. *apiclient.Client
// satisfies it.
type TicketsAPI interface {
	ListStations(ctx context.Context) ([]models.Station, error)
	AvailableDates(ctx context.Context, from, to domain.ID) ([]string, error)
	ListTrips(ctx context.Context, q models.TripQuery) ([]models.Trip, error)
	CreateTicket(ctx context.Context, in models.TicketCreate) (models.Ticket, error)
	GetTicket(ctx context.Context, id domain.ID) (models.Ticket, error)

	AnalyticsSummary(ctx context.Context, f models.AnalyticsFilter) (models.Summary, error)
	AnalyticsByDay(ctx context.Context, f models.AnalyticsFilter) ([]models.DaySales, error)
	AnalyticsByRoute(ctx context.Context, f models.AnalyticsFilter) ([]models.RouteSales, error)
	AnalyticsByDirection(ctx context.Context, f models.AnalyticsFilter) ([]models.DirectionSales, error)
	AnalyticsTickets(ctx context.Context, f models.AnalyticsFilter) ([]models.TicketRow, error)
	AnalyticsTopRoutes(ctx context.Context, f models.AnalyticsFilter) ([]models.RouteSales, error)
}

// TokenIssuer signs and checks purchase tokens. *auth.PurchaseTokens
// satisfies it.
type TokenIssuer interface {
	Issue(tripID domain.ID, price float64) (string, error)
	Verify(token string) (auth.PurchaseClaims, error)
}
