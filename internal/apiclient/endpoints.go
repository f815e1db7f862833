package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"frontend/internal/domain"
	"frontend/internal/domain/models"
)

func (c *Client) ListStations(ctx context.Context) ([]models.Station, error) {
	var out []models.Station
	err := c.call(ctx, request{
		endpoint: "stations", resource: "stations",
		method: http.MethodGet, path: "/stations/",
	}, &out)
	return out, err
}

// AvailableDates lists the ISO dates with at least one trip between two stations.
func (c *Client) AvailableDates(ctx context.Context, from, to domain.ID) ([]string, error) {
	q := url.Values{}
	q.Set("start_station_id", from.String())
	q.Set("end_station_id", to.String())

	var out struct {
		Dates []string `json:"dates"`
	}
	err := c.call(ctx, request{
		endpoint: "available_dates", resource: "available dates",
		method: http.MethodGet, path: "/trips/available-dates", query: q,
	}, &out)
	if err != nil {
		return nil, err
	}
	if out.Dates == nil {
		out.Dates = []string{}
	}
	return out.Dates, nil
}

func (c *Client) ListTrips(ctx context.Context, tq models.TripQuery) ([]models.Trip, error) {
	q := url.Values{}
	if tq.StartStationID > 0 {
		q.Set("start_station_id", tq.StartStationID.String())
	}
	if tq.EndStationID > 0 {
		q.Set("end_station_id", tq.EndStationID.String())
	}
	if tq.TravelDate != "" {
		q.Set("travel_date", tq.TravelDate)
	}

	var out []models.Trip
	err := c.call(ctx, request{
		endpoint: "trips", resource: "trips",
		method: http.MethodGet, path: "/trips/", query: q,
	}, &out)
	return out, err
}

func (c *Client) CreateTicket(ctx context.Context, in models.TicketCreate) (models.Ticket, error) {
	var out models.Ticket
	err := c.call(ctx, request{
		endpoint: "create_ticket", resource: "ticket",
		method: http.MethodPost, path: "/tickets/", body: in,
	}, &out)
	return out, err
}

func (c *Client) GetTicket(ctx context.Context, id domain.ID) (models.Ticket, error) {
	var out models.Ticket
	err := c.call(ctx, request{
		endpoint: "get_ticket", resource: "ticket",
		method: http.MethodGet, path: "/tickets/" + id.String(),
	}, &out)
	return out, err
}

func (c *Client) analytics(ctx context.Context, name string, f models.AnalyticsFilter, out any) error {
	return c.call(ctx, request{
		endpoint: "analytics_" + name, resource: "analytics",
		method: http.MethodGet, path: "/analytics/" + name, query: f.Values(),
	}, out)
}

func (c *Client) AnalyticsSummary(ctx context.Context, f models.AnalyticsFilter) (models.Summary, error) {
	var out models.Summary
	err := c.analytics(ctx, "summary", f, &out)
	return out, err
}

func (c *Client) AnalyticsByDay(ctx context.Context, f models.AnalyticsFilter) ([]models.DaySales, error) {
	var out []models.DaySales
	err := c.analytics(ctx, "by-day", f, &out)
	return out, err
}

func (c *Client) AnalyticsByRoute(ctx context.Context, f models.AnalyticsFilter) ([]models.RouteSales, error) {
	var out []models.RouteSales
	err := c.analytics(ctx, "by-route", f, &out)
	return out, err
}

func (c *Client) AnalyticsByDirection(ctx context.Context, f models.AnalyticsFilter) ([]models.DirectionSales, error) {
	var out []models.DirectionSales
	err := c.analytics(ctx, "by-direction", f, &out)
	return out, err
}

func (c *Client) AnalyticsTickets(ctx context.Context, f models.AnalyticsFilter) ([]models.TicketRow, error) {
	var out []models.TicketRow
	err := c.analytics(ctx, "tickets", f, &out)
	return out, err
}

// AnalyticsTopRoutes returns at most five routes by tickets sold.
func (c *Client) AnalyticsTopRoutes(ctx context.Context, f models.AnalyticsFilter) ([]models.RouteSales, error) {
	var out []models.RouteSales
	err := c.analytics(ctx, "top-routes", f, &out)
	return out, err
}
