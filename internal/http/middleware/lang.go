package middleware

import (
	"frontend/internal/view"

	"github.com/gin-gonic/gin"
)

const (
	langKey    = "lang"
	LangCookie = "lang"
)

// Language picks the UI language: ?lang= first, then the cookie, then the
// configured default.
func Language(fallback string) gin.HandlerFunc {
	fallback = view.NormalizeLanguage(fallback, view.LangUK)
	return func(c *gin.Context) {
		lang := c.Query("lang")
		if lang == "" {
			lang, _ = c.Cookie(LangCookie)
		}
		c.Set(langKey, view.NormalizeLanguage(lang, fallback))
		c.Next()
	}
}

func GetLanguage(c *gin.Context) string {
	if v, ok := c.Get(langKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return view.LangUK
}
