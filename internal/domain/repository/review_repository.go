package repository

import (
	"context"
	"errors"

	"coderr/internal/domain/entity"
)

var (
	// ErrReviewNotFound is returned when a review does not exist.
	ErrReviewNotFound = errors.New("review not found")
	// ErrReviewExists is returned when the (business_user, reviewer) unique index rejects an insert.
	ErrReviewExists = errors.New("review already exists for this business and reviewer")
	// ErrReviewReference is returned when a review references a missing user.
	ErrReviewReference = errors.New("review references a missing user")
)

// ReviewOrdering is an accepted ordering key for review listings.
type ReviewOrdering string

const (
	ReviewOrderingDefault       ReviewOrdering = ""
	ReviewOrderingUpdatedAt     ReviewOrdering = "updated_at"
	ReviewOrderingUpdatedAtDesc ReviewOrdering = "-updated_at"
	ReviewOrderingRating        ReviewOrdering = "rating"
	ReviewOrderingRatingDesc    ReviewOrdering = "-rating"
)

// IsValid checks if the ReviewOrdering is a valid value.
func (o ReviewOrdering) IsValid() bool {
	switch o {
	case ReviewOrderingDefault, ReviewOrderingUpdatedAt, ReviewOrderingUpdatedAtDesc,
		ReviewOrderingRating, ReviewOrderingRatingDesc:
		return true
	default:
		return false
	}
}

// ReviewFilter narrows a review listing.
type ReviewFilter struct {
	BusinessUserID *uint
	ReviewerID     *uint
	Ordering       ReviewOrdering
}

// ReviewRepository persists reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id uint) (*entity.Review, error)

	// ExistsForPair reports whether reviewerID already reviewed businessUserID.
	ExistsForPair(ctx context.Context, businessUserID, reviewerID uint) (bool, error)

	List(ctx context.Context, filter ReviewFilter) ([]*entity.Review, error)

	// Update writes rating and description and refreshes UpdatedAt.
	Update(ctx context.Context, review *entity.Review) error

	Delete(ctx context.Context, id uint) error
}
