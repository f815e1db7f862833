package services

import (
	"context"
	"errors"
	"fmt"

	"frontend/internal/domain"
	"frontend/internal/domain/models"
	"frontend/internal/metrics"
	"frontend/internal/utils"

	"github.com/go-playground/validator/v10"
)

var (
	ErrPurchaseIncomplete = errors.New("purchase form incomplete")
	ErrPurchaseToken      = errors.New("purchase token rejected")
	ErrPurchaseInvalid    = errors.New("purchase form invalid")
)

var validate = validator.New()

// PurchaseForm is the POST /tickets body. Token carries trip id and price.
type PurchaseForm struct {
	Token         string `form:"token"`
	PassengerName string `form:"passenger_name"`
	SeatNumber    string `form:"seat_number"`
}

type PurchaseService struct {
	API       TicketsAPI
	Tokens    TokenIssuer
	RequestID string
}

// Purchase creates a ticket for the trip and price bound in the form token.
// Missing fields fail before any backend call. Name and seat are sent as typed,
// only trimmed.
func (s PurchaseService) Purchase(ctx context.Context, form PurchaseForm) (models.Ticket, error) {
	name := utils.TrimOrEmpty(form.PassengerName)
	seat := utils.TrimOrEmpty(form.SeatNumber)
	token := utils.TrimOrEmpty(form.Token)
	if token == "" || name == "" || seat == "" {
		return models.Ticket{}, ErrPurchaseIncomplete
	}

	claims, err := s.Tokens.Verify(token)
	if err != nil {
		utils.LogError(s.RequestID, "purchase", "verify_token", err)
		return models.Ticket{}, fmt.Errorf("%w: %v", ErrPurchaseToken, err)
	}

	in := models.TicketCreate{
		TripID:        claims.TripID,
		PassengerName: name,
		SeatNumber:    seat,
		Price:         claims.Price,
	}
	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		field := "ticket"
		if errors.As(err, &verrs) && len(verrs) > 0 {
			field = verrs[0].Field()
		}
		return models.Ticket{}, fmt.Errorf("%w: %s", ErrPurchaseInvalid, field)
	}

	ticket, err := s.API.CreateTicket(ctx, in)
	if err != nil {
		utils.LogError(s.RequestID, "purchase", "create_ticket", err)
		return models.Ticket{}, err
	}

	metrics.TicketsPurchased.Inc()
	utils.LogEvent(s.RequestID, "purchase", "create_ticket",
		fmt.Sprintf("ticket_id=%d trip_id=%d seat=%s", ticket.ID, ticket.TripID, ticket.SeatNumber))
	return ticket, nil
}

// PurchaseMessage picks what the form shows after a failed purchase: the
// backend detail when it sent one, otherwise a static message.
func PurchaseMessage(err error) (Message, string) {
	if errors.Is(err, ErrPurchaseIncomplete) {
		return MsgPurchaseIncomplete, ""
	}
	if errors.Is(err, ErrPurchaseToken) {
		return MsgPurchaseFailed, ""
	}
	if errors.Is(err, ErrPurchaseInvalid) {
		return MsgPurchaseInvalid, ""
	}
	if detail := domain.Detail(err); detail != "" {
		return MsgPurchaseFailed, detail
	}
	return MsgPurchaseFailed, ""
}
