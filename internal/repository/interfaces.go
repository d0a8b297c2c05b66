package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mkamath/wanderstay/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ListingRepository interface {
	Create(ctx context.Context, listing *domain.Listing) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Listing, error)
	Update(ctx context.Context, listing *domain.Listing) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	GetByListingID(ctx context.Context, listingID uuid.UUID) ([]*domain.Review, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	Update(ctx context.Context, session *domain.Session) error
	// Touch persists only the renewal bookkeeping, leaving Data alone.
	Touch(ctx context.Context, id uuid.UUID, lastTouched, expiresAt time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type Repositories struct {
	User    UserRepository
	Listing ListingRepository
	Review  ReviewRepository
	Session SessionRepository
}
