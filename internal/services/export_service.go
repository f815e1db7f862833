package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"frontend/internal/domain"
	"frontend/internal/domain/models"
	"frontend/internal/utils"

	"github.com/gocarina/gocsv"
)

type ExportService struct {
	API       TicketsAPI
	RequestID string
}

// TicketsCSV exports the analytics ticket list for the same filters as the page.
func (s ExportService) TicketsCSV(ctx context.Context, f models.AnalyticsFilter) ([]byte, string, error) {
	rows, err := s.API.AnalyticsTickets(ctx, f)
	if err != nil {
		utils.LogError(s.RequestID, "export", "analytics_tickets", err)
		return nil, "", err
	}
	if rows == nil {
		rows = []models.TicketRow{}
	}

	var buf bytes.Buffer
	if err := gocsv.Marshal(&rows, &buf); err != nil {
		return nil, "", domain.InternalError{Msg: "failed to encode csv", Err: err}
	}
	utils.LogEvent(s.RequestID, "export", "tickets_csv", fmt.Sprintf("rows=%d", len(rows)))
	return buf.Bytes(), exportFilename(f), nil
}

func exportFilename(f models.AnalyticsFilter) string {
	parts := []string{"tickets"}
	if f.DateFrom != "" {
		parts = append(parts, "from_"+f.DateFrom)
	}
	if f.DateTo != "" {
		parts = append(parts, "to_"+f.DateTo)
	}
	if f.StartStationID > 0 {
		parts = append(parts, "st_"+f.StartStationID.String())
	}
	if f.EndStationID > 0 {
		parts = append(parts, "en_"+f.EndStationID.String())
	}
	return strings.Join(parts, "_") + ".csv"
}
