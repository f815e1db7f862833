package handlers

import (
	"net/http"

	"frontend/internal/domain"
	"frontend/internal/http/middleware"
	"frontend/internal/services"

	"github.com/gin-gonic/gin"
)

// GetTicketPDF returns the e-ticket of a purchased ticket (inline).
func (h *Handler) GetTicketPDF(c *gin.Context) {
	id, err := domain.ParseID(c.Param("id"))
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "invalid_ticket_id", "invalid ticket id", nil)
		return
	}

	svc := services.DocsService{
		API:       h.API,
		RequestID: middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.GenerateETicket(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// GetTicketsCSV exports the analytics ticket list for the page filters.
func (h *Handler) GetTicketsCSV(c *gin.Context) {
	var form services.AnalyticsForm
	_ = c.ShouldBindQuery(&form)
	f, err := services.ParseFilter(form)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	svc := services.ExportService{
		API:       h.API,
		RequestID: middleware.GetRequestID(c),
	}
	body, filename, err := svc.TicketsCSV(c.Request.Context(), f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", body)
}
