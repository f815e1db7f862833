package models

import (
	"net/url"

	"frontend/internal/domain"
)

// AnalyticsFilter holds the optional filters shared by every /analytics endpoint.
// Dates filter by ticket purchase time, inclusive on both ends.
type AnalyticsFilter struct {
	DateFrom       string
	DateTo         string
	StartStationID domain.ID
	EndStationID   domain.ID
}

// Values encodes only the filters that are set.
func (f AnalyticsFilter) Values() url.Values {
	v := url.Values{}
	if f.DateFrom != "" {
		v.Set("date_from", f.DateFrom)
	}
	if f.DateTo != "" {
		v.Set("date_to", f.DateTo)
	}
	if f.StartStationID > 0 {
		v.Set("start_station_id", f.StartStationID.String())
	}
	if f.EndStationID > 0 {
		v.Set("end_station_id", f.EndStationID.String())
	}
	return v
}

func (f AnalyticsFilter) IsZero() bool { return f == AnalyticsFilter{} }

type Summary struct {
	TotalTickets int     `json:"total_tickets"`
	TotalRevenue float64 `json:"total_revenue"`
	AvgPrice     float64 `json:"avg_price"`
	RoutesSold   int     `json:"routes_sold"`
}

type DaySales struct {
	Date    string  `json:"date"`
	Tickets int     `json:"tickets"`
	Revenue float64 `json:"revenue"`
}

type RouteSales struct {
	RouteID domain.ID `json:"route_id"`
	Tickets int       `json:"tickets"`
	Revenue float64   `json:"revenue"`
}

type DirectionSales struct {
	StartStationID domain.ID `json:"start_station_id"`
	EndStationID   domain.ID `json:"end_station_id"`
	Tickets        int       `json:"tickets"`
	Revenue        float64   `json:"revenue"`
}

// TicketRow is one line of GET /analytics/tickets.
type TicketRow struct {
	TicketID       domain.ID       `json:"ticket_id" csv:"ticket_id"`
	CreatedAt      domain.DateTime `json:"created_at" csv:"created_at"`
	Price          float64         `json:"price" csv:"price"`
	Status         domain.Status   `json:"status" csv:"status"`
	PassengerName  string          `json:"passenger_name" csv:"passenger_name"`
	TripID         domain.ID       `json:"trip_id" csv:"trip_id"`
	RouteID        domain.ID       `json:"route_id" csv:"route_id"`
	StartStationID domain.ID       `json:"start_station_id" csv:"start_station_id"`
	EndStationID   domain.ID       `json:"end_station_id" csv:"end_station_id"`
}
