package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Session is the server-side record behind the session cookie. The client
// only ever holds the signed session ID; flash queues and arbitrary values
// live in the Data blob.
type Session struct {
	ID            uuid.UUID      `json:"id" gorm:"type:uuid;primary_key"`
	UserID        *uuid.UUID     `json:"userId" gorm:"type:uuid"`
	Data          datatypes.JSON `json:"data"`
	LastTouchedAt time.Time      `json:"lastTouchedAt" gorm:"not null"`
	ExpiresAt     time.Time      `json:"expiresAt" gorm:"not null;index"`
	CreatedAt     time.Time      `json:"createdAt"`
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
