package models

import "time"

// Review is a customer product review. New reviews start unapproved and are
// hidden from listings until moderation flips IsApproved.
type Review struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"productId"`
	UserID     string    `json:"userId"`
	UserName   string    `json:"userName"`
	Rating     int       `json:"rating"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	Images     []string  `json:"images"`
	Helpful    int       `json:"helpful"`
	IsApproved bool      `json:"isApproved"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type CreateReviewRequest struct {
	Rating int      `json:"rating" binding:"required,min=1,max=5"`
	Title  string   `json:"title" binding:"required"`
	Body   string   `json:"body" binding:"required"`
	Images []string `json:"images,omitempty"`
}

// ReviewStats aggregates ratings for a product's approved reviews.
type ReviewStats struct {
	AvgRating          float64     `json:"avgRating"`
	ReviewCount        int         `json:"reviewCount"`
	RatingDistribution map[int]int `json:"ratingDistribution"`
}

type ReviewListResponse struct {
	Success bool     `json:"success"`
	Reviews []Review `json:"reviews"`
	Total   int      `json:"total"`
	HasMore bool     `json:"hasMore"`
	Page    int      `json:"page"`
	Limit   int      `json:"limit"`
}

type ReviewResponse struct {
	Success bool    `json:"success"`
	Review  *Review `json:"review,omitempty"`
	Message *string `json:"message,omitempty"`
}

type ReviewStatsResponse struct {
	Success bool        `json:"success"`
	Data    ReviewStats `json:"data"`
}
