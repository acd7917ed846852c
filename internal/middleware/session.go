// internal/middleware/session.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/isa-atelier/storefront/internal/config"
	"github.com/isa-atelier/storefront/internal/utils"
)

// ShopperSession attaches an anonymous session id to every request. An
// incoming valid token (cookie or bearer) keeps its session; anything else
// gets a fresh id and a signed cookie. There is no login; the session only
// keys the in-memory cart and browse state, which is why an invalid token
// silently becomes a new session instead of a 401.
func ShopperSession(cfg config.SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		if cookie, err := c.Cookie(cfg.CookieName); err == nil {
			token = cookie
		}
		if token == "" {
			if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token != "" {
			if claims, err := utils.ValidateSessionToken(token); err == nil {
				c.Set("session_id", claims.SessionID)
				c.Next()
				return
			}
		}

		sessionID := uuid.NewString()
		signed, err := utils.GenerateSessionToken(sessionID, cfg.TokenTTL)
		if err != nil {
			utils.InternalErrorResponse(c, "Failed to establish session")
			c.Abort()
			return
		}

		c.SetCookie(cfg.CookieName, signed, cfg.TokenTTL*3600, "/", "", false, true)
		c.Header("X-Session-Token", signed)
		c.Set("session_id", sessionID)
		c.Next()
	}
}
