package services

// Message is a key into the UI text catalog. Pages show at most one.
type Message string

const (
	MsgNone               Message = ""
	MsgStationsFailed     Message = "stations_failed"
	MsgDatesFailed        Message = "dates_failed"
	MsgNoTripsForRoute    Message = "no_trips_for_route"
	MsgTripsFailed        Message = "trips_failed"
	MsgNoTripsForDate     Message = "no_trips_for_date"
	MsgPurchaseIncomplete Message = "purchase_incomplete"
	MsgPurchaseInvalid    Message = "purchase_invalid"
	MsgPurchaseFailed     Message = "purchase_failed"
	MsgTicketFailed       Message = "ticket_failed"
	MsgTicketNotFound     Message = "ticket_not_found"
	MsgAnalyticsFailed    Message = "analytics_failed"
	MsgInvalidFilter      Message = "invalid_filter"
)
