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

type ReviewService struct {
	reviewRepo  repository.ReviewRepository
	listingRepo repository.ListingRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, listingRepo repository.ListingRepository) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo, listingRepo: listingRepo}
}

type CreateReviewInput struct {
	Comment   string
	Rating    *int
	ListingID uuid.UUID
	AuthorID  uuid.UUID
}

// Create is the validation gate for reviews: every violated constraint is
// collected and the whole payload is rejected with one 400 before anything
// reaches the store.
func (s *ReviewService) Create(ctx context.Context, input CreateReviewInput) (*domain.Review, error) {
	if violations := validation.ValidateReview(validation.ReviewInput{
		Comment: input.Comment,
		Rating:  input.Rating,
	}); !violations.OK() {
		return nil, domain.ValidationError(violations.Message())
	}

	if _, err := s.listingRepo.GetByID(ctx, input.ListingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("Listing not found")
		}
		return nil, err
	}

	review := &domain.Review{
		ID:        uuid.New(),
		Comment:   input.Comment,
		Rating:    input.Rating,
		ListingID: input.ListingID,
		AuthorID:  input.AuthorID,
		CreatedAt: time.Now(),
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

func (s *ReviewService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFound("Review not found")
		}
		return err
	}
	if review.AuthorID != userID {
		return domain.ErrNotOwner
	}
	return s.reviewRepo.Delete(ctx, id)
}
