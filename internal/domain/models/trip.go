package models

import "frontend/internal/domain"

// Trip is one scheduled run of a route.
type Trip struct {
	ID            domain.ID       `json:"id"`
	RouteID       domain.ID       `json:"route_id"`
	TrainID       domain.ID       `json:"train_id,omitempty"`
	DepartureTime domain.DateTime `json:"departure_time"`
	ArrivalTime   domain.DateTime `json:"arrival_time"`
	BasePrice     float64         `json:"base_price"`
}

// TripQuery filters GET /trips/. Zero values are omitted from the query.
type TripQuery struct {
	StartStationID domain.ID
	EndStationID   domain.ID
	TravelDate     string
}

// FindTrip returns the trip with the given id from a loaded list.
func FindTrip(trips []Trip, id domain.ID) (Trip, bool) {
	for _, t := range trips {
		if t.ID == id {
			return t, true
		}
	}
	return Trip{}, false
}
