package services

import (
	"context"
	"fmt"
	"math"

	"frontend/internal/domain"
	"frontend/internal/domain/models"
	"frontend/internal/utils"

	"golang.org/x/sync/errgroup"
)

// AnalyticsForm is the raw filter query of the analytics page.
type AnalyticsForm struct {
	DateFrom       string `form:"date_from"`
	DateTo         string `form:"date_to"`
	StartStationID string `form:"start_station_id"`
	EndStationID   string `form:"end_station_id"`
}

// ParseFilter validates the form before any backend call is made.
func ParseFilter(form AnalyticsForm) (models.AnalyticsFilter, error) {
	var f models.AnalyticsFilter
	f.DateFrom = utils.TrimOrEmpty(form.DateFrom)
	f.DateTo = utils.TrimOrEmpty(form.DateTo)
	if f.DateFrom != "" && !utils.IsDate(f.DateFrom) {
		return f, domain.ValidationError{Field: "date_from", Msg: "expected YYYY-MM-DD"}
	}
	if f.DateTo != "" && !utils.IsDate(f.DateTo) {
		return f, domain.ValidationError{Field: "date_to", Msg: "expected YYYY-MM-DD"}
	}
	if f.DateFrom != "" && f.DateTo != "" && f.DateFrom > f.DateTo {
		return f, domain.ValidationError{Field: "date_to", Msg: "must not be before date_from"}
	}

	var err error
	if f.StartStationID, err = domain.ParseID(form.StartStationID); err != nil {
		return f, domain.ValidationError{Field: "start_station_id", Msg: "must be a positive integer", Err: err}
	}
	if f.EndStationID, err = domain.ParseID(form.EndStationID); err != nil {
		return f, domain.ValidationError{Field: "end_station_id", Msg: "must be a positive integer", Err: err}
	}
	return f, nil
}

// Bar is a value scaled against the largest value of its series.
type Bar struct {
	TicketsPct float64
	RevenuePct float64
}

type DayRow struct {
	models.DaySales
	Bar
}

type RouteRow struct {
	models.RouteSales
	Bar
}

// DirectionRow carries whole-percent shares, rounded like chart labels.
type DirectionRow struct {
	models.DirectionSales
	Label        string
	TicketShare  int
	RevenueShare int
}

type Dashboard struct {
	Filter     models.AnalyticsFilter
	Stations   []models.Station
	Summary    models.Summary
	ByDay      []DayRow
	ByRoute    []RouteRow
	Directions []DirectionRow
	TopRoutes  []models.RouteSales
	Tickets    []models.TicketRow
	names      models.StationIndex
}

func (d *Dashboard) StationName(id domain.ID) string { return d.names.Name(id) }

type AnalyticsService struct {
	API       TicketsAPI
	RequestID string
}

// Load fetches all aggregates concurrently. Any aggregate failure fails the
// whole dashboard; stations and top routes are optional and only logged.
func (s AnalyticsService) Load(ctx context.Context, f models.AnalyticsFilter) (*Dashboard, error) {
	var (
		summary    models.Summary
		byDay      []models.DaySales
		byRoute    []models.RouteSales
		directions []models.DirectionSales
		tickets    []models.TicketRow
		stations   []models.Station
		topRoutes  []models.RouteSales
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		summary, err = s.API.AnalyticsSummary(gctx, f)
		return err
	})
	g.Go(func() (err error) {
		byDay, err = s.API.AnalyticsByDay(gctx, f)
		return err
	})
	g.Go(func() (err error) {
		byRoute, err = s.API.AnalyticsByRoute(gctx, f)
		return err
	})
	g.Go(func() (err error) {
		directions, err = s.API.AnalyticsByDirection(gctx, f)
		return err
	})
	g.Go(func() (err error) {
		tickets, err = s.API.AnalyticsTickets(gctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		if stations, err = s.API.ListStations(gctx); err != nil {
			utils.LogError(s.RequestID, "analytics", "list_stations", err)
			stations = nil
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if topRoutes, err = s.API.AnalyticsTopRoutes(gctx, f); err != nil {
			utils.LogError(s.RequestID, "analytics", "top_routes", err)
			topRoutes = nil
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		utils.LogError(s.RequestID, "analytics", "load", err)
		return nil, err
	}

	d := &Dashboard{
		Filter:    f,
		Stations:  stations,
		Summary:   summary,
		TopRoutes: topRoutes,
		Tickets:   tickets,
		names:     models.IndexStations(stations),
	}
	d.ByDay = dayRows(byDay)
	d.ByRoute = routeRows(byRoute)
	d.Directions = directionRows(directions, d.names)

	utils.LogEvent(s.RequestID, "analytics", "load",
		fmt.Sprintf("tickets=%d days=%d routes=%d directions=%d", len(tickets), len(byDay), len(byRoute), len(directions)))
	return d, nil
}

func dayRows(in []models.DaySales) []DayRow {
	var maxTickets, maxRevenue float64
	for _, d := range in {
		maxTickets = math.Max(maxTickets, float64(d.Tickets))
		maxRevenue = math.Max(maxRevenue, d.Revenue)
	}
	out := make([]DayRow, 0, len(in))
	for _, d := range in {
		out = append(out, DayRow{DaySales: d, Bar: Bar{
			TicketsPct: pct(float64(d.Tickets), maxTickets),
			RevenuePct: pct(d.Revenue, maxRevenue),
		}})
	}
	return out
}

func routeRows(in []models.RouteSales) []RouteRow {
	var maxTickets, maxRevenue float64
	for _, r := range in {
		maxTickets = math.Max(maxTickets, float64(r.Tickets))
		maxRevenue = math.Max(maxRevenue, r.Revenue)
	}
	out := make([]RouteRow, 0, len(in))
	for _, r := range in {
		out = append(out, RouteRow{RouteSales: r, Bar: Bar{
			TicketsPct: pct(float64(r.Tickets), maxTickets),
			RevenuePct: pct(r.Revenue, maxRevenue),
		}})
	}
	return out
}

func directionRows(in []models.DirectionSales, names models.StationIndex) []DirectionRow {
	var totalTickets, totalRevenue float64
	for _, d := range in {
		totalTickets += float64(d.Tickets)
		totalRevenue += d.Revenue
	}
	out := make([]DirectionRow, 0, len(in))
	for _, d := range in {
		out = append(out, DirectionRow{
			DirectionSales: d,
			Label:          names.Name(d.StartStationID) + " → " + names.Name(d.EndStationID),
			TicketShare:    int(math.Round(pct(float64(d.Tickets), totalTickets))),
			RevenueShare:   int(math.Round(pct(d.Revenue, totalRevenue))),
		})
	}
	return out
}

func pct(v, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return v / total * 100
}
