package repository

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"storefront-service/internal/models"
)

var (
	ErrReviewNotFound  = fmt.Errorf("review not found")
	ErrNotReviewAuthor = fmt.Errorf("review belongs to another user")
)

// ReviewSort keys accepted by ListByProduct.
const (
	ReviewSortNewest  = "newest"
	ReviewSortHelpful = "helpful"
	ReviewSortHighest = "highest"
	ReviewSortLowest  = "lowest"
)

// ReviewsRepository is an in-memory review store. Reviews are mock data in
// this service; the remote backend owns the durable copy.
type ReviewsRepository struct {
	mu      sync.RWMutex
	reviews []models.Review
}

func NewReviewsRepository() *ReviewsRepository {
	return &ReviewsRepository{reviews: seedReviews()}
}

// ListByProduct returns approved reviews for a product, sorted and paged.
// Unknown sort keys fall back to newest-first.
func (r *ReviewsRepository) ListByProduct(productID, sortKey string, page, limit int) ([]models.Review, int) {
	r.mu.RLock()
	filtered := make([]models.Review, 0)
	for _, review := range r.reviews {
		if review.ProductID == productID && review.IsApproved {
			filtered = append(filtered, review)
		}
	}
	r.mu.RUnlock()

	switch sortKey {
	case ReviewSortHelpful:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Helpful > filtered[j].Helpful })
	case ReviewSortHighest:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Rating > filtered[j].Rating })
	case ReviewSortLowest:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Rating < filtered[j].Rating })
	default:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].CreatedAt.After(filtered[j].CreatedAt) })
	}

	total := len(filtered)
	start := (page - 1) * limit
	if start >= total {
		return []models.Review{}, total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return filtered[start:end], total
}

// Create stores a new review. Reviews await moderation, so IsApproved
// starts false and the review is invisible to listings.
func (r *ReviewsRepository) Create(productID, userID, userName string, req models.CreateReviewRequest) models.Review {
	now := time.Now().UTC()
	review := models.Review{
		ID:         uuid.New().String(),
		ProductID:  productID,
		UserID:     userID,
		UserName:   userName,
		Rating:     req.Rating,
		Title:      req.Title,
		Body:       req.Body,
		Images:     req.Images,
		Helpful:    0,
		IsApproved: false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if review.Images == nil {
		review.Images = []string{}
	}

	r.mu.Lock()
	r.reviews = append(r.reviews, review)
	r.mu.Unlock()
	return review
}

// Upvote increments a review's helpful count.
func (r *ReviewsRepository) Upvote(reviewID string) (models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.reviews {
		if r.reviews[i].ID == reviewID {
			r.reviews[i].Helpful++
			r.reviews[i].UpdatedAt = time.Now().UTC()
			return r.reviews[i], nil
		}
	}
	return models.Review{}, ErrReviewNotFound
}

// Delete removes a review; only its author may delete it.
func (r *ReviewsRepository) Delete(reviewID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.reviews {
		if r.reviews[i].ID != reviewID {
			continue
		}
		if r.reviews[i].UserID != userID {
			return ErrNotReviewAuthor
		}
		r.reviews = append(r.reviews[:i], r.reviews[i+1:]...)
		return nil
	}
	return ErrReviewNotFound
}

// Stats aggregates approved reviews for a product. An unreviewed product
// yields a zero average and an all-zero distribution.
func (r *ReviewsRepository) Stats(productID string) models.ReviewStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := models.ReviewStats{
		RatingDistribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}
	sum := 0
	for _, review := range r.reviews {
		if review.ProductID != productID || !review.IsApproved {
			continue
		}
		stats.ReviewCount++
		stats.RatingDistribution[review.Rating]++
		sum += review.Rating
	}
	if stats.ReviewCount > 0 {
		stats.AvgRating = float64(sum) / float64(stats.ReviewCount)
	}
	return stats
}

// seedReviews provides the mock review fixture the storefront ships with.
func seedReviews() []models.Review {
	day := 24 * time.Hour
	now := time.Now().UTC()
	return []models.Review{
		{
			ID: "review-1", ProductID: "p-001", UserID: "user-1", UserName: "John Doe",
			Rating: 5, Title: "Excellent running shoes!",
			Body:    "Incredibly comfortable with great support. The cushioning is perfect and they look amazing too.",
			Images:  []string{}, Helpful: 24, IsApproved: true,
			CreatedAt: now.Add(-5 * day), UpdatedAt: now.Add(-5 * day),
		},
		{
			ID: "review-2", ProductID: "p-001", UserID: "user-2", UserName: "Sarah Johnson",
			Rating: 4, Title: "Great quality, runs a bit small",
			Body:    "Love the design and quality. They run about half a size small, so size up.",
			Images:  []string{}, Helpful: 18, IsApproved: true,
			CreatedAt: now.Add(-10 * day), UpdatedAt: now.Add(-10 * day),
		},
		{
			ID: "review-3", ProductID: "p-001", UserID: "user-3", UserName: "Mike Chen",
			Rating: 5, Title: "Best purchase this year!",
			Body:    "Outstanding build quality, so comfortable I barely notice I'm wearing them.",
			Images:  []string{}, Helpful: 32, IsApproved: true,
			CreatedAt: now.Add(-15 * day), UpdatedAt: now.Add(-15 * day),
		},
		{
			ID: "review-4", ProductID: "p-001", UserID: "user-4", UserName: "Emily Rodriguez",
			Rating: 3, Title: "Good but not great",
			Body:    "Decent but I expected more for the price. Comfortable enough, design a bit plain.",
			Images:  []string{}, Helpful: 7, IsApproved: true,
			CreatedAt: now.Add(-20 * day), UpdatedAt: now.Add(-20 * day),
		},
	}
}
