package domain

import (
	"time"

	"github.com/google/uuid"
)

// Review is a comment left on a listing. Rating is optional; when present it
// must be between 1 and 5, which the validation layer enforces before a
// review ever reaches the repository.
type Review struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Comment   string    `json:"comment" gorm:"not null"`
	Rating    *int      `json:"rating,omitempty"`
	ListingID uuid.UUID `json:"listingId" gorm:"type:uuid;not null"`
	AuthorID  uuid.UUID `json:"authorId" gorm:"type:uuid;not null"`
	Author    *User     `json:"author,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"createdAt"`
}
