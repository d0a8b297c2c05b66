package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mkamath/wanderstay/internal/domain"
	"github.com/mkamath/wanderstay/internal/repository/postgres"
	"github.com/mkamath/wanderstay/internal/service"
	"github.com/mkamath/wanderstay/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestReviewService_Create(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	reviewService := service.NewReviewService(repos.Review, repos.Listing)
	ctx := context.Background()

	author, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	listing := testutil.NewListingBuilder(author.ID).Build(t, testDB.DB)

	tests := []struct {
		name        string
		input       service.CreateReviewInput
		wantStatus  int
		wantMessage string
	}{
		{
			name: "valid review with rating",
			input: service.CreateReviewInput{
				Comment:   "Wonderful stay",
				Rating:    intPtr(5),
				ListingID: listing.ID,
				AuthorID:  author.ID,
			},
		},
		{
			name: "valid review without rating",
			input: service.CreateReviewInput{
				Comment:   "No complaints",
				ListingID: listing.ID,
				AuthorID:  author.ID,
			},
		},
		{
			name: "rating out of range",
			input: service.CreateReviewInput{
				Comment:   "Too enthusiastic",
				Rating:    intPtr(6),
				ListingID: listing.ID,
				AuthorID:  author.ID,
			},
			wantStatus:  400,
			wantMessage: "rating must be between 1 and 5",
		},
		{
			name: "missing comment and bad rating",
			input: service.CreateReviewInput{
				Rating:    intPtr(0),
				ListingID: listing.ID,
				AuthorID:  author.ID,
			},
			wantStatus:  400,
			wantMessage: "comment is required, rating must be between 1 and 5",
		},
		{
			name: "unknown listing",
			input: service.CreateReviewInput{
				Comment:   "Ghost listing",
				ListingID: uuid.New(),
				AuthorID:  author.ID,
			},
			wantStatus:  404,
			wantMessage: "Listing not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			review, err := reviewService.Create(ctx, tt.input)

			if tt.wantStatus != 0 {
				var appErr *domain.Error
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantStatus, appErr.Status)
				assert.Equal(t, tt.wantMessage, appErr.Message)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.input.Comment, review.Comment)
			assert.False(t, review.CreatedAt.IsZero())
		})
	}
}

func TestReviewService_Delete(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	reviewService := service.NewReviewService(repos.Review, repos.Listing)
	ctx := context.Background()

	author, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	other, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	listing := testutil.NewListingBuilder(author.ID).Build(t, testDB.DB)

	review, err := reviewService.Create(ctx, service.CreateReviewInput{
		Comment:   "To be deleted",
		ListingID: listing.ID,
		AuthorID:  author.ID,
	})
	require.NoError(t, err)

	t.Run("only the author may delete", func(t *testing.T) {
		err := reviewService.Delete(ctx, review.ID, other.ID)
		assert.ErrorIs(t, err, domain.ErrNotOwner)
	})

	t.Run("author deletes", func(t *testing.T) {
		require.NoError(t, reviewService.Delete(ctx, review.ID, author.ID))

		err := reviewService.Delete(ctx, review.ID, author.ID)
		var appErr *domain.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Status)
	})
}
