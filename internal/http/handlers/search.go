package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"frontend/internal/http/middleware"
	"frontend/internal/services"
	"frontend/internal/view"

	"github.com/gin-gonic/gin"
)

// Search renders the route, calendar, trips and purchase page.
func (h *Handler) Search(c *gin.Context) {
	q := searchQuery(middleware.GetRequestID(c), c.Query)
	h.renderSearch(c, http.StatusOK, q, purchaseState{})
}

type purchaseState struct {
	passengerName string
	seatNumber    string
	err           string
}

func (h *Handler) renderSearch(c *gin.Context, status int, q services.SearchQuery, ps purchaseState) {
	svc := services.SearchService{
		API:       h.API,
		Tokens:    h.Tokens,
		RequestID: middleware.GetRequestID(c),
	}
	page := svc.Load(c.Request.Context(), q)

	data := view.SearchData{
		Base:          h.base(c, "search_title", navSales),
		Page:          page,
		PassengerName: ps.passengerName,
		SeatNumber:    ps.seatNumber,
		PurchaseError: ps.err,
	}
	data.SetMessage(page.Error)
	h.render(c, status, view.PageSearch, data)
}

// Purchase buys a ticket for the trip bound in the form token and redirects
// to the confirmation page. Failures re-render the search page with the
// entered values kept.
func (h *Handler) Purchase(c *gin.Context) {
	rid := middleware.GetRequestID(c)
	var form services.PurchaseForm
	if err := c.ShouldBind(&form); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_form", "invalid form", nil)
		return
	}

	svc := services.PurchaseService{
		API:       h.API,
		Tokens:    h.Tokens,
		RequestID: rid,
	}
	ticket, err := svc.Purchase(c.Request.Context(), form)
	if err == nil {
		c.Redirect(http.StatusSeeOther, "/ticket/"+url.PathEscape(ticket.ID.String()))
		return
	}

	msg, detail := services.PurchaseMessage(err)
	lang := middleware.GetLanguage(c)
	ps := purchaseState{
		passengerName: form.PassengerName,
		seatNumber:    form.SeatNumber,
		err:           view.Text(lang, string(msg)),
	}
	if detail != "" {
		ps.err = detail
	}
	h.renderSearch(c, purchaseStatus(err), searchQuery(rid, c.PostForm), ps)
}

func purchaseStatus(err error) int {
	if errors.Is(err, services.ErrPurchaseIncomplete) ||
		errors.Is(err, services.ErrPurchaseToken) ||
		errors.Is(err, services.ErrPurchaseInvalid) {
		return http.StatusUnprocessableEntity
	}
	return statusFor(err)
}
