package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"clinic-server/internal/config"
	"clinic-server/internal/models"
	"clinic-server/internal/utils"
)

// SessionCookieName is the cookie carrying the signed session id.
const SessionCookieName = "clinic_session"

const ctxAdminIDKey = "adminID"

// RequireAuth gates protected routes behind a valid admin session.
// The cookie signature is checked first, then the session row itself:
// a row deleted on logout or past its absolute expiry means 401 even if
// the cookie would still verify.
func RequireAuth(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(SessionCookieName)
		if err != nil || cookie == "" {
			utils.Unauthorized(c, "Unauthorized")
			c.Abort()
			return
		}

		sessionID, err := utils.ParseSessionToken(cookie, cfg.SessionSecret)
		if err != nil {
			utils.Unauthorized(c, "Unauthorized")
			c.Abort()
			return
		}

		var session models.Session
		if err := db.First(&session, "id = ?", sessionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.Unauthorized(c, "Unauthorized")
			} else {
				utils.InternalServerError(c, err)
			}
			c.Abort()
			return
		}

		if session.Expired() {
			db.Delete(&session)
			utils.Unauthorized(c, "Unauthorized")
			c.Abort()
			return
		}

		c.Set(ctxAdminIDKey, session.AdminUserID)
		c.Next()
	}
}

// GetAdminIDFromContext returns the authenticated admin's id.
func GetAdminIDFromContext(c *gin.Context) (string, bool) {
	adminID, exists := c.Get(ctxAdminIDKey)
	if !exists {
		return "", false
	}
	idStr, ok := adminID.(string)
	return idStr, ok
}
