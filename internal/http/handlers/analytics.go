package handlers

import (
	"net/http"

	"frontend/internal/http/middleware"
	"frontend/internal/services"
	"frontend/internal/utils"
	"frontend/internal/view"

	"github.com/gin-gonic/gin"
)

// Analytics renders the sales dashboard. An invalid filter is rejected
// before anything is fetched; a failed aggregate shows no partial data.
func (h *Handler) Analytics(c *gin.Context) {
	rid := middleware.GetRequestID(c)
	var form services.AnalyticsForm
	_ = c.ShouldBindQuery(&form)

	data := view.AnalyticsData{
		Base: h.base(c, "analytics_title", navAnalytics),
		Form: form,
	}

	f, err := services.ParseFilter(form)
	if err != nil {
		utils.LogEvent(rid, "analytics", "parse_filter", err.Error())
		data.SetMessage(services.MsgInvalidFilter)
		data.Detail = err.Error()
		h.render(c, http.StatusBadRequest, view.PageAnalytics, data)
		return
	}

	svc := services.AnalyticsService{API: h.API, RequestID: rid}
	dash, err := svc.Load(c.Request.Context(), f)
	if err != nil {
		data.SetMessage(services.MsgAnalyticsFailed)
		h.render(c, statusFor(err), view.PageAnalytics, data)
		return
	}
	data.Dashboard = dash
	data.Stations = dash.Stations
	h.render(c, http.StatusOK, view.PageAnalytics, data)
}
