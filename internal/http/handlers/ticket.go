package handlers

import (
	"net/http"

	"frontend/internal/domain"
	"frontend/internal/http/middleware"
	"frontend/internal/services"
	"frontend/internal/view"

	"github.com/gin-gonic/gin"
)

// Ticket renders the confirmation page of a purchased ticket.
func (h *Handler) Ticket(c *gin.Context) {
	data := view.TicketData{Base: h.base(c, "ticket_title", navSales)}

	id, err := domain.ParseID(c.Param("id"))
	if err != nil || id == 0 {
		data.SetMessage(services.MsgTicketNotFound)
		h.render(c, http.StatusNotFound, view.PageTicket, data)
		return
	}

	svc := services.TicketService{API: h.API, RequestID: middleware.GetRequestID(c)}
	ticket, err := svc.Get(c.Request.Context(), id)
	if err != nil {
		data.SetMessage(services.TicketMessage(err))
		h.render(c, statusFor(err), view.PageTicket, data)
		return
	}
	data.Ticket = &ticket
	h.render(c, http.StatusOK, view.PageTicket, data)
}
