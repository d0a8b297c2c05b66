package domain

import (
	"time"

	"github.com/google/uuid"
)

type Listing struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title         string    `json:"title" gorm:"not null"`
	Description   string    `json:"description"`
	Location      string    `json:"location"`
	Country       string    `json:"country"`
	Price         int64     `json:"price" gorm:"not null;default:0"`
	ImagePath     string    `json:"imagePath"`
	ThumbnailPath string    `json:"thumbnailPath"`
	OwnerID       uuid.UUID `json:"ownerId" gorm:"type:uuid;not null"`
	Owner         *User     `json:"owner,omitempty" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Reviews       []Review  `json:"reviews,omitempty" gorm:"foreignKey:ListingID"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
