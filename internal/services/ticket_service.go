package services

import (
	"context"

	"frontend/internal/domain"
	"frontend/internal/domain/models"
	"frontend/internal/utils"
)

type TicketService struct {
	API       TicketsAPI
	RequestID string
}

func (s TicketService) Get(ctx context.Context, id domain.ID) (models.Ticket, error) {
	if id <= 0 {
		return models.Ticket{}, domain.ValidationError{Field: "ticket_id", Msg: "must be a positive integer"}
	}
	ticket, err := s.API.GetTicket(ctx, id)
	if err != nil {
		utils.LogError(s.RequestID, "ticket", "get_ticket", err)
		return models.Ticket{}, err
	}
	return ticket, nil
}

// TicketMessage maps a lookup failure to the confirmation page message.
func TicketMessage(err error) Message {
	if domain.IsNotFound(err) || domain.IsValidation(err) {
		return MsgTicketNotFound
	}
	return MsgTicketFailed
}
