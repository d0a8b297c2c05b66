package service_test

import (
	"context"
	"testing"

	"github.com/mkamath/wanderstay/internal/domain"
	"github.com/mkamath/wanderstay/internal/repository/postgres"
	"github.com/mkamath/wanderstay/internal/service"
	"github.com/mkamath/wanderstay/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingService_CreateAndGet(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	listingService := service.NewListingService(repos.Listing)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	t.Run("valid listing", func(t *testing.T) {
		listing, err := listingService.Create(ctx, service.CreateListingInput{
			Title:    "Harbour flat",
			Location: "Bergen",
			Country:  "Norway",
			Price:    95,
			OwnerID:  owner.ID,
		})
		require.NoError(t, err)

		got, err := listingService.Get(ctx, listing.ID)
		require.NoError(t, err)
		assert.Equal(t, "Harbour flat", got.Title)
		require.NotNil(t, got.Owner)
		assert.Equal(t, owner.ID, got.Owner.ID)
	})

	t.Run("missing title rejected", func(t *testing.T) {
		_, err := listingService.Create(ctx, service.CreateListingInput{
			Price:   10,
			OwnerID: owner.ID,
		})
		var appErr *domain.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Status)
		assert.Contains(t, appErr.Message, "title")
	})
}

func TestListingService_OwnerChecks(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	listingService := service.NewListingService(repos.Listing)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	stranger, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	listing := testutil.NewListingBuilder(owner.ID).Build(t, testDB.DB)

	t.Run("stranger cannot update", func(t *testing.T) {
		_, err := listingService.Update(ctx, listing.ID, stranger.ID, service.UpdateListingInput{
			Title: "Hijacked",
			Price: 1,
		})
		assert.ErrorIs(t, err, domain.ErrNotOwner)
	})

	t.Run("stranger cannot delete", func(t *testing.T) {
		err := listingService.Delete(ctx, listing.ID, stranger.ID)
		assert.ErrorIs(t, err, domain.ErrNotOwner)
	})

	t.Run("owner updates", func(t *testing.T) {
		updated, err := listingService.Update(ctx, listing.ID, owner.ID, service.UpdateListingInput{
			Title: "Renamed",
			Price: 130,
		})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Title)
		assert.Equal(t, int64(130), updated.Price)
	})

	t.Run("owner deletes", func(t *testing.T) {
		require.NoError(t, listingService.Delete(ctx, listing.ID, owner.ID))

		_, err := listingService.Get(ctx, listing.ID)
		var appErr *domain.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Status)
	})
}
