package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mkamath/wanderstay/internal/domain"
	"github.com/mkamath/wanderstay/internal/repository"
	"github.com/mkamath/wanderstay/internal/validation"
	"gorm.io/gorm"
)

type ListingService struct {
	listingRepo repository.ListingRepository
}

func NewListingService(listingRepo repository.ListingRepository) *ListingService {
	return &ListingService{listingRepo: listingRepo}
}

type CreateListingInput struct {
	Title       string
	Description string
	Location    string
	Country     string
	Price       int64
	OwnerID     uuid.UUID
}

func (s *ListingService) Create(ctx context.Context, input CreateListingInput) (*domain.Listing, error) {
	if violations := validation.ValidateListing(validation.ListingInput{
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		Country:     input.Country,
		Price:       input.Price,
	}); !violations.OK() {
		return nil, domain.ValidationError(violations.Message())
	}

	listing := &domain.Listing{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		Country:     input.Country,
		Price:       input.Price,
		OwnerID:     input.OwnerID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

func (s *ListingService) Get(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	listing, err := s.listingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("Listing not found")
		}
		return nil, err
	}
	return listing, nil
}

func (s *ListingService) List(ctx context.Context, limit, offset int) ([]*domain.Listing, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.listingRepo.List(ctx, limit, offset)
}

type UpdateListingInput struct {
	Title       string
	Description string
	Location    string
	Country     string
	Price       int64
}

func (s *ListingService) Update(ctx context.Context, id, userID uuid.UUID, input UpdateListingInput) (*domain.Listing, error) {
	listing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing.OwnerID != userID {
		return nil, domain.ErrNotOwner
	}

	if violations := validation.ValidateListing(validation.ListingInput{
		Title: input.Title,
		Price: input.Price,
	}); !violations.OK() {
		return nil, domain.ValidationError(violations.Message())
	}

	listing.Title = input.Title
	listing.Description = input.Description
	listing.Location = input.Location
	listing.Country = input.Country
	listing.Price = input.Price
	listing.UpdatedAt = time.Now()

	if err := s.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

func (s *ListingService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	listing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if listing.OwnerID != userID {
		return domain.ErrNotOwner
	}
	return s.listingRepo.Delete(ctx, id)
}

// SetPhoto records the stored photo paths on a listing. Only the owner may
// change the photo.
func (s *ListingService) SetPhoto(ctx context.Context, id, userID uuid.UUID, imagePath, thumbnailPath string) (*domain.Listing, error) {
	listing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing.OwnerID != userID {
		return nil, domain.ErrNotOwner
	}

	listing.ImagePath = imagePath
	listing.ThumbnailPath = thumbnailPath
	listing.UpdatedAt = time.Now()

	if err := s.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}
