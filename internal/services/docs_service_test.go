package services

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"frontend/internal/domain"
	"frontend/internal/domain/models"
)

func TestDocsServiceGenerate(t *testing.T) {
	loader := func(_ context.Context, id domain.ID) (ticketDocData, error) {
		return ticketDocData{
			Ticket: models.Ticket{
				ID:            id,
				TripID:        7,
				PassengerName: "Іван Петренко",
				SeatNumber:    "12A",
				Price:         450,
				Status:        domain.StatusPaid,
				CreatedAt:     domain.DateTime{Time: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)},
			},
			RouteFrom: "Київ (KYIV)",
			RouteTo:   "Львів (LVIV)",
		}, nil
	}

	svc := DocsService{Loader: loader}

	pdf, filename, err := svc.GenerateETicket(context.Background(), 42)
	if err != nil {
		t.Fatalf("GenerateETicket returned error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("GenerateETicket did not return a PDF")
	}
	if filename != "ETICKET_42_Ivan_Petrenko_12A.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestDocsServiceLoadsStationsForRoute(t *testing.T) {
	api := &fakeAPI{
		stations: testStations,
		ticket:   models.Ticket{ID: 5, TripID: 7, StartStationID: 1, EndStationID: 3, SeatNumber: "1"},
	}
	data, err := DocsService{API: api}.loadTicketDocData(context.Background(), 5)
	if err != nil {
		t.Fatalf("loadTicketDocData: %v", err)
	}
	if data.RouteFrom != "Київ (KYIV)" || data.RouteTo != "ID 3" {
		t.Fatalf("unexpected route %q -> %q", data.RouteFrom, data.RouteTo)
	}
}

func TestDocsServiceTicketMissing(t *testing.T) {
	api := &fakeAPI{ticketErr: domain.NotFoundError{Resource: "ticket"}}
	_, _, err := DocsService{API: api}.GenerateETicket(context.Background(), 5)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if api.called("stations") {
		t.Fatalf("stations must not be loaded for a missing ticket")
	}
}

func TestExportTicketsCSV(t *testing.T) {
	api := &fakeAPI{tickets: []models.TicketRow{{
		TicketID:       42,
		CreatedAt:      domain.DateTime{Time: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)},
		Price:          450,
		Status:         domain.StatusPaid,
		PassengerName:  "Іван",
		TripID:         7,
		RouteID:        3,
		StartStationID: 1,
		EndStationID:   2,
	}}}

	data, name, err := ExportService{API: api}.TicketsCSV(context.Background(), models.AnalyticsFilter{DateFrom: "2024-03-01", EndStationID: 2})
	if err != nil {
		t.Fatalf("TicketsCSV: %v", err)
	}
	if name != "tickets_from_2024-03-01_en_2.csv" {
		t.Fatalf("unexpected filename %q", name)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %d lines", len(lines))
	}
	if lines[0] != "ticket_id,created_at,price,status,passenger_name,trip_id,route_id,start_station_id,end_station_id" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if lines[1] != "42,2024-03-10T12:00:00,450,paid,Іван,7,3,1,2" {
		t.Fatalf("unexpected row %q", lines[1])
	}
}

func TestTicketServiceRejectsBadID(t *testing.T) {
	api := &fakeAPI{}
	_, err := TicketService{API: api}.Get(context.Background(), 0)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if api.called("ticket") {
		t.Fatalf("no backend call expected")
	}
	if TicketMessage(err) != MsgTicketNotFound {
		t.Fatalf("bad id should read as not found")
	}
	if TicketMessage(errBackendDown) != MsgTicketFailed {
		t.Fatalf("backend failure should read as load failure")
	}
}
