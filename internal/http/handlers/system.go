package handlers

import (
	"net/http"
	"sync"
	"time"

	"frontend/internal/http/middleware"
	"frontend/internal/view"

	"github.com/gin-gonic/gin"
)

var (
	routerMu sync.RWMutex
	router   *gin.Engine
)

// SetRouter stores the active gin engine for later inspection (e.g., /api/routes).
func SetRouter(r *gin.Engine) {
	routerMu.Lock()
	defer routerMu.Unlock()
	router = r
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().UTC().Format(time.RFC3339)})
}

// BackendCheck reports whether the tickets API answers the station list.
func (h *Handler) BackendCheck(c *gin.Context) {
	start := time.Now()
	stations, err := h.API.ListStations(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    "backend OK",
		"stations":   len(stations),
		"latency_ms": time.Since(start).Milliseconds(),
	})
}

func Routes(c *gin.Context) {
	routerMu.RLock()
	r := router
	routerMu.RUnlock()
	if r == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "router is not ready"})
		return
	}

	routes := r.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method":  rt.Method,
			"path":    rt.Path,
			"handler": rt.Handler,
		})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}

// SetLanguage stores the UI language in a cookie and goes back to next.
func SetLanguage(c *gin.Context) {
	lang := view.NormalizeLanguage(c.Param("code"), middleware.GetLanguage(c))
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.LangCookie, lang, int((365 * 24 * time.Hour).Seconds()), "/", "", false, true)
	c.Redirect(http.StatusSeeOther, safeRedirect(c.Query("next")))
}
