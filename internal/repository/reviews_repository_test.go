package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-service/internal/models"
)

func TestReviewsListByProduct_SortKeys(t *testing.T) {
	repo := NewReviewsRepository()

	newest, total := repo.ListByProduct("p-001", ReviewSortNewest, 1, 10)
	require.Equal(t, 4, total)
	assert.Equal(t, "review-1", newest[0].ID)
	assert.Equal(t, "review-4", newest[3].ID)

	helpful, _ := repo.ListByProduct("p-001", ReviewSortHelpful, 1, 10)
	assert.Equal(t, "review-3", helpful[0].ID)

	highest, _ := repo.ListByProduct("p-001", ReviewSortHighest, 1, 10)
	assert.Equal(t, 5, highest[0].Rating)

	lowest, _ := repo.ListByProduct("p-001", ReviewSortLowest, 1, 10)
	assert.Equal(t, 3, lowest[0].Rating)
}

func TestReviewsListByProduct_Pagination(t *testing.T) {
	repo := NewReviewsRepository()

	page1, total := repo.ListByProduct("p-001", ReviewSortNewest, 1, 3)
	assert.Equal(t, 4, total)
	assert.Len(t, page1, 3)

	page2, _ := repo.ListByProduct("p-001", ReviewSortNewest, 2, 3)
	assert.Len(t, page2, 1)

	beyond, total := repo.ListByProduct("p-001", ReviewSortNewest, 5, 3)
	assert.Equal(t, 4, total)
	assert.Empty(t, beyond)
}

func TestReviewsCreate_StartsUnapproved(t *testing.T) {
	repo := NewReviewsRepository()

	review := repo.Create("p-002", "user-9", "Test User", models.CreateReviewRequest{
		Rating: 5, Title: "Great", Body: "Really good.",
	})

	assert.False(t, review.IsApproved)
	assert.NotEmpty(t, review.ID)
	assert.NotNil(t, review.Images)

	_, total := repo.ListByProduct("p-002", ReviewSortNewest, 1, 10)
	assert.Zero(t, total)
}

func TestReviewsUpvote(t *testing.T) {
	repo := NewReviewsRepository()

	review, err := repo.Upvote("review-2")
	require.NoError(t, err)
	assert.Equal(t, 19, review.Helpful)

	_, err = repo.Upvote("review-999")
	assert.ErrorIs(t, err, ErrReviewNotFound)
}

func TestReviewsDelete_AuthorOnly(t *testing.T) {
	repo := NewReviewsRepository()

	assert.ErrorIs(t, repo.Delete("review-1", "someone-else"), ErrNotReviewAuthor)
	assert.NoError(t, repo.Delete("review-1", "user-1"))
	assert.ErrorIs(t, repo.Delete("review-1", "user-1"), ErrReviewNotFound)
}

func TestReviewsStats(t *testing.T) {
	repo := NewReviewsRepository()

	stats := repo.Stats("p-001")
	assert.Equal(t, 4, stats.ReviewCount)
	assert.InDelta(t, 4.25, stats.AvgRating, 0.001)
	assert.Equal(t, 2, stats.RatingDistribution[5])
	assert.Equal(t, 1, stats.RatingDistribution[4])
	assert.Equal(t, 1, stats.RatingDistribution[3])
	assert.Equal(t, 0, stats.RatingDistribution[2])
}

func TestReviewsStats_Empty(t *testing.T) {
	repo := NewReviewsRepository()

	stats := repo.Stats("p-unknown")
	assert.Zero(t, stats.ReviewCount)
	assert.Zero(t, stats.AvgRating)
	assert.Equal(t, 0, stats.RatingDistribution[5])
}
