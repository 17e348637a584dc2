package usecase

import (
	"context"

	"coderr/internal/domain/entity"
	"coderr/internal/domain/repository"
)

// CreateReviewInput defines a new review. Nil fields were absent from the request.
type CreateReviewInput struct {
	BusinessUserID *uint
	Rating         *int
	Description    string
}

// UpdateReviewInput is a partial review update.
type UpdateReviewInput struct {
	Rating      *int
	Description *string
}

// ReviewUsecase defines the review lifecycle.
type ReviewUsecase interface {
	AuthorizeCreate(ctx context.Context, actorID uint) error
	AuthorizeUpdate(ctx context.Context, actorID, reviewID uint) error
	ListReviews(ctx context.Context, filter repository.ReviewFilter) ([]*entity.Review, error)
	CreateReview(ctx context.Context, actorID uint, input CreateReviewInput) (*entity.Review, error)
	GetReview(ctx context.Context, reviewID uint) (*entity.Review, error)
	UpdateReview(ctx context.Context, actorID, reviewID uint, input UpdateReviewInput) (*entity.Review, error)
	DeleteReview(ctx context.Context, actorID, reviewID uint) error
}
