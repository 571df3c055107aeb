package models

import (
	"time"
)

// SessionLifetime is the absolute validity of an admin session, counted
// from issuance. Sessions are not renewed on activity.
const SessionLifetime = 7 * 24 * time.Hour

// Session is a server-side admin session. The browser only holds a
// signed cookie carrying the session id; revoking the row on logout
// invalidates the cookie immediately.
type Session struct {
	BaseModel
	AdminUserID string    `gorm:"size:36;index;not null" json:"adminUserId"`
	ExpiresAt   time.Time `gorm:"not null" json:"expiresAt"`

	AdminUser AdminUser `gorm:"foreignKey:AdminUserID" json:"-"`
}

// Expired reports whether the session is past its absolute expiry.
func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}
