package handlers

import (
	"net/http"

	"frontend/internal/http/middleware"
	"frontend/internal/services"
	"frontend/internal/utils"
	"frontend/internal/view"

	"github.com/gin-gonic/gin"
)

const (
	navSales     = "sales"
	navAnalytics = "analytics"
)

// Handler serves the pages. It holds no per-request state.
type Handler struct {
	API    services.TicketsAPI
	Tokens services.TokenIssuer
	Views  *view.Renderer
}

func New(api services.TicketsAPI, tokens services.TokenIssuer, views *view.Renderer) *Handler {
	return &Handler{API: api, Tokens: tokens, Views: views}
}

func (h *Handler) base(c *gin.Context, titleKey, nav string) view.Base {
	b := view.NewBase(middleware.GetLanguage(c), titleKey, nav)
	b.Path = c.Request.URL.RequestURI()
	b.RequestID = middleware.GetRequestID(c)
	return b
}

// render writes page as HTML. A template failure falls back to a bare 500.
func (h *Handler) render(c *gin.Context, status int, page string, data any) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := h.Views.Render(c.Writer, page, data); err != nil {
		utils.LogError(middleware.GetRequestID(c), "view", "render_"+page, err)
		if !c.Writer.Written() {
			c.String(http.StatusInternalServerError, view.Text(middleware.GetLanguage(c), "internal"))
		}
	}
}

// renderError shows the generic error page with a catalog message.
func (h *Handler) renderError(c *gin.Context, status int, titleKey, msgKey string) {
	b := h.base(c, titleKey, "")
	b.Error = view.Text(b.Lang, msgKey)
	h.render(c, status, view.PageError, view.ErrorData{Base: b, Status: status})
}

// NotFound renders the 404 page, or the JSON error for /api paths.
func (h *Handler) NotFound(c *gin.Context) {
	if isAPIPath(c.Request.URL.Path) {
		respondError(c, http.StatusNotFound, "route_not_found", "route not found", gin.H{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
		return
	}
	h.renderError(c, http.StatusNotFound, "not_found_title", "page_not_found")
}
