package service

import (
	"github.com/mkamath/wanderstay/internal/config"
	"github.com/mkamath/wanderstay/internal/repository"
)

type Services struct {
	Auth    *AuthService
	Listing *ListingService
	Review  *ReviewService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:    NewAuthService(repos.User),
		Listing: NewListingService(repos.Listing),
		Review:  NewReviewService(repos.Review, repos.Listing),
	}
}
