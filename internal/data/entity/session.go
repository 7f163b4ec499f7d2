package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is the identity collaborator's token record. The booking core only
// ever sees the resolved user ID, never the token.
type Session struct {
	BaseSimple
	UserID    uuid.UUID  `db:"user_id"`
	Token     uuid.UUID  `db:"token"`
	ExpiresAt time.Time  `db:"expires_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}
