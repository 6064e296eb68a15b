package session

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mark1william11/FlavorFind/internal/api"
	"github.com/Mark1william11/FlavorFind/internal/feature/auth/usecase"
)

// Context keys set by AuthRequired for downstream handlers.
const (
	ContextUserID   = "userID"
	ContextUsername = "username"
)

// AuthRequired returns a Gin middleware that gates routes reading or
// mutating personal data. A request without a valid, unexpired session is
// rejected before any handler runs and no data access is attempted.
func AuthRequired(sessions usecase.SessionRepository, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := TokenFromCookie(c, secret)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
			return
		}

		session, err := sessions.FindByID(c.Request.Context(), token)
		if err != nil {
			if err != usecase.ErrSessionNotFound {
				slog.Error("session lookup failed", "error", err, "remote_addr", c.ClientIP())
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
			return
		}
		if session.IsExpired() {
			// The database fallback store keeps rows past their TTL.
			if err := sessions.Delete(c.Request.Context(), token); err != nil {
				slog.Warn("failed to delete expired session", "error", err)
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
			return
		}

		c.Set(ContextUserID, session.UserID)
		c.Set(ContextUsername, session.Username)
		c.Next()
	}
}
