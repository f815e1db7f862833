package services

import (
	"bytes"
	"context"
	"fmt"

	"frontend/internal/domain"
	"frontend/internal/domain/models"
	"frontend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the e-ticket PDF for a purchased ticket.
type DocsService struct {
	API       TicketsAPI
	RequestID string
	// Loader replaces the backend lookup in tests.
	Loader func(context.Context, domain.ID) (ticketDocData, error)
}

type ticketDocData struct {
	Ticket    models.Ticket
	RouteFrom string
	RouteTo   string
}

func (s DocsService) GenerateETicket(ctx context.Context, id domain.ID) ([]byte, string, error) {
	data, err := s.loadTicketDocData(ctx, id)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_eticket", fmt.Sprintf("ticket_id=%d", id))
	return buildETicketPDF(data)
}

func (s DocsService) loadTicketDocData(ctx context.Context, id domain.ID) (ticketDocData, error) {
	if s.Loader != nil {
		return s.Loader(ctx, id)
	}
	var out ticketDocData
	ticket, err := TicketService{API: s.API, RequestID: s.RequestID}.Get(ctx, id)
	if err != nil {
		return out, err
	}
	out.Ticket = ticket

	// Station names are cosmetic; the ticket prints without them.
	if ticket.StartStationID > 0 || ticket.EndStationID > 0 {
		if stations, err := s.API.ListStations(ctx); err == nil {
			names := models.IndexStations(stations)
			out.RouteFrom = names.Name(ticket.StartStationID)
			out.RouteTo = names.Name(ticket.EndStationID)
		} else {
			utils.LogError(s.RequestID, "docs", "list_stations", err)
		}
	}
	return out, nil
}

func buildETicketPDF(d ticketDocData) ([]byte, string, error) {
	t := d.Ticket
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("E-ticket #%d", t.ID), false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Ticket         : #%d", t.ID),
		fmt.Sprintf("Status         : %s", safe(string(t.Status), "-")),
		fmt.Sprintf("Passenger      : %s", safe(utils.Transliterate(t.PassengerName), "-")),
		fmt.Sprintf("Seat           : %s", safe(t.SeatNumber, "-")),
		fmt.Sprintf("Price          : %s UAH", utils.FormatMoney(t.Price)),
		fmt.Sprintf("Trip           : #%d", t.TripID),
	}
	if d.RouteFrom != "" || d.RouteTo != "" {
		lines = append(lines, fmt.Sprintf("Route          : %s -> %s",
			safe(utils.Transliterate(d.RouteFrom), "-"), safe(utils.Transliterate(d.RouteTo), "-")))
	}
	lines = append(lines,
		fmt.Sprintf("Purchased      : %s", utils.FormatDateTime(t.CreatedAt.Time)),
		fmt.Sprintf("Ticket code    : TCK-%d-%s", t.ID, utils.SafeFilenamePart(t.SeatNumber)),
	)
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This e-ticket is valid for one passenger and one seat. Please present it when boarding.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "failed to render e-ticket", Err: err}
	}

	filename := fmt.Sprintf("ETICKET_%d_%s.pdf", t.ID, utils.SafeFilenamePart(utils.Transliterate(t.PassengerName)+"_"+t.SeatNumber))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = utils.TrimOrEmpty(v)
	if v == "" {
		return fallback
	}
	return v
}
