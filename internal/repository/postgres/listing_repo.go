package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/mkamath/wanderstay/internal/domain"
	"gorm.io/gorm"
)

type listingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) *listingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) Create(ctx context.Context, listing *domain.Listing) error {
	return r.db.WithContext(ctx).Create(listing).Error
}

func (r *listingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	var listing domain.Listing
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("reviews.created_at DESC")
		}).
		Preload("Reviews.Author").
		First(&listing, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *listingRepository) List(ctx context.Context, limit, offset int) ([]*domain.Listing, error) {
	var listings []*domain.Listing
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *listingRepository) Update(ctx context.Context, listing *domain.Listing) error {
	return r.db.WithContext(ctx).Save(listing).Error
}

func (r *listingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&domain.Review{}, "listing_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Listing{}, "id = ?", id).Error
	})
}
