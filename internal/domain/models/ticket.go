package models

import "frontend/internal/domain"

// Ticket is a purchased seat reservation on a trip.
// Station ids are only populated by endpoints that join the route.
type Ticket struct {
	ID             domain.ID       `json:"id"`
	TripID         domain.ID       `json:"trip_id"`
	PassengerName  string          `json:"passenger_name"`
	SeatNumber     string          `json:"seat_number"`
	Price          float64         `json:"price"`
	Status         domain.Status   `json:"status"`
	CreatedAt      domain.DateTime `json:"created_at"`
	StartStationID domain.ID       `json:"start_station_id,omitempty"`
	EndStationID   domain.ID       `json:"end_station_id,omitempty"`
}

func (t Ticket) IsPaid() bool { return t.Status == domain.StatusPaid }

// TicketCreate is the POST /tickets/ body.
type TicketCreate struct {
	TripID        domain.ID `json:"trip_id" validate:"required,gt=0"`
	PassengerName string    `json:"passenger_name" validate:"required"`
	SeatNumber    string    `json:"seat_number" validate:"required"`
	Price         float64   `json:"price" validate:"gte=0"`
}
