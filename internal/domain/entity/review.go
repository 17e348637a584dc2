package entity

import "time"

const (
	// MinRating is the lowest accepted review rating.
	MinRating = 1
	// MaxRating is the highest accepted review rating.
	MaxRating = 5
)

// Review is a customer's rating of a business. One per (business, reviewer) pair.
type Review struct {
	ID             uint
	BusinessUserID uint
	ReviewerID     uint
	Rating         int
	Description    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsValidRating reports whether rating lies within MinRating..MaxRating.
func IsValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}

// BaseInfo holds the platform-wide counters shown on the landing page.
type BaseInfo struct {
	ReviewCount          int64
	AverageRating        float64
	BusinessProfileCount int64
	OfferCount           int64
}
