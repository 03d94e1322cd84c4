package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is a bearer token issued by the identity service.
type Session struct {
	BaseSimple
	UserID    uuid.UUID  `db:"user_id"`
	Token     uuid.UUID  `db:"token"`
	ExpiresAt time.Time  `db:"expires_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}
