package middleware

import (
	"net/http"

	"frontend/internal/auth"
	"frontend/internal/utils"

	"github.com/gin-gonic/gin"
)

// BasicAuth guards a route group with the analytics credentials. A nil
// credential set leaves the group open.
func BasicAuth(creds *auth.Credentials, realm string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if creds == nil {
			c.Next()
			return
		}
		user, pass, ok := c.Request.BasicAuth()
		if ok && creds.Verify(user, pass) {
			c.Set(gin.AuthUserKey, user)
			c.Next()
			return
		}
		utils.Logger().Warn().
			Str("module", "AUTH").
			Str("request_id", GetRequestID(c)).
			Str("path", c.Request.URL.Path).
			Bool("credentials_sent", ok).
			Msg("basic auth rejected")
		c.Header("WWW-Authenticate", `Basic realm="`+realm+`", charset="UTF-8"`)
		c.AbortWithStatus(http.StatusUnauthorized)
	}
}
