package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "coderr/internal/delivery/context"
	"coderr/internal/domain/entity"
	domainerrors "coderr/internal/domain/errors"
	"coderr/internal/domain/policy"
	"coderr/internal/domain/repository"
	"coderr/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	msgFieldRequired = "This field is required."
	msgRatingRange   = "Rating must be between 1 and 5."
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

// ListReviews returns reviews matching the filter.
func (srv *reviewService) ListReviews(ctx context.Context, filter repository.ReviewFilter) ([]*entity.Review, error) {
	if !filter.Ordering.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrInvalidOrdering, "ordering %q", filter.Ordering)
	}

	var reviews []*entity.Review

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		found, err := repos.ReviewRepo().List(ctx, filter)
		if err != nil {
			return errors.Wrap(err, "failed to list reviews")
		}
		reviews = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

// CreateReview lets a customer review a business once.
func (srv *reviewService) CreateReview(ctx context.Context, actorID uint, input usecase.CreateReviewInput) (*entity.Review, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	var review *entity.Review

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := requireReviewer(ctx, repos, actorID); err != nil {
			return err
		}

		if err := validateNewReview(ctx, repos, input); err != nil {
			return err
		}

		reviewRepo := repos.ReviewRepo()
		exists, err := reviewRepo.ExistsForPair(ctx, *input.BusinessUserID, actorID)
		if err != nil {
			return errors.Wrap(err, "failed to check existing review")
		}
		if exists {
			return errors.Wrap(domainerrors.ErrDuplicateReview, "review already exists")
		}

		review = &entity.Review{
			BusinessUserID: *input.BusinessUserID,
			ReviewerID:     actorID,
			Rating:         *input.Rating,
			Description:    input.Description,
		}
		if err := reviewRepo.Create(ctx, review); err != nil {
			switch {
			case errors.Is(err, repository.ErrReviewExists):
				return errors.Wrap(domainerrors.ErrDuplicateReview, "review already exists")
			case errors.Is(err, repository.ErrReviewReference):
				return domainerrors.NewFieldError("business_user", invalidPKMessage(*input.BusinessUserID))
			}

			return errors.Wrap(err, "failed to create review")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create review")
	}

	logger.Info("Review created",
		slog.Uint64("review_id", uint64(review.ID)),
		slog.Uint64("business_user_id", uint64(review.BusinessUserID)),
	)

	return review, nil
}

// AuthorizeCreate fails unless the actor is a customer.
func (srv *reviewService) AuthorizeCreate(ctx context.Context, actorID uint) error {
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		return requireReviewer(ctx, repos, actorID)
	})
	if err != nil {
		return errors.Wrap(err, "failed to authorize review creation")
	}

	return nil
}

// AuthorizeUpdate fails unless the review exists and was written by the actor.
func (srv *reviewService) AuthorizeUpdate(ctx context.Context, actorID, reviewID uint) error {
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		_, err := findOwnedReview(ctx, repos, actorID, reviewID)

		return err
	})
	if err != nil {
		return errors.Wrap(err, "failed to authorize review update")
	}

	return nil
}

// GetReview returns a single review.
func (srv *reviewService) GetReview(ctx context.Context, reviewID uint) (*entity.Review, error) {
	var review *entity.Review

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		var err error
		review, err = findReview(ctx, repos, reviewID)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get review")
	}

	return review, nil
}

// UpdateReview lets the reviewer change rating or description.
func (srv *reviewService) UpdateReview(ctx context.Context, actorID, reviewID uint, input usecase.UpdateReviewInput) (*entity.Review, error) {
	var review *entity.Review

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		var err error
		review, err = findOwnedReview(ctx, repos, actorID, reviewID)
		if err != nil {
			return err
		}

		if input.Rating != nil && !entity.IsValidRating(*input.Rating) {
			return domainerrors.NewFieldError("rating", msgRatingRange)
		}

		setIfPresent(&review.Rating, input.Rating)
		setIfPresent(&review.Description, input.Description)

		if err := repos.ReviewRepo().Update(ctx, review); err != nil {
			return errors.Wrap(err, "failed to update review")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update review")
	}

	return review, nil
}

// DeleteReview removes a review written by the actor.
func (srv *reviewService) DeleteReview(ctx context.Context, actorID, reviewID uint) error {
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if _, err := findOwnedReview(ctx, repos, actorID, reviewID); err != nil {
			return err
		}

		if err := repos.ReviewRepo().Delete(ctx, reviewID); err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "review not found")
			}

			return errors.Wrap(err, "failed to delete review")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete review")
	}

	return nil
}

// requireReviewer rejects actors whose profile is not customer-typed.
func requireReviewer(ctx context.Context, repos repository.RepositoryFactory, actorID uint) error {
	actor, err := findActor(ctx, repos, actorID)
	if err != nil {
		return err
	}

	profile, err := resolveProfile(ctx, repos, actor, entity.ProfileTypeCustomer)
	if err != nil {
		return err
	}
	if !policy.IsCustomer(profile) {
		return errors.Wrap(domainerrors.ErrReviewerNotCustomer, "reviewer is not a customer")
	}

	return nil
}

func findOwnedReview(ctx context.Context, repos repository.RepositoryFactory, actorID, reviewID uint) (*entity.Review, error) {
	review, err := findReview(ctx, repos, reviewID)
	if err != nil {
		return nil, err
	}

	if !policy.IsOwner(actorID, review.ReviewerID) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "review belongs to another user")
	}

	return review, nil
}

// validateNewReview collects field errors for a review payload.
func validateNewReview(ctx context.Context, repos repository.RepositoryFactory, input usecase.CreateReviewInput) error {
	fields := domainerrors.FieldErrors{}

	if input.BusinessUserID == nil {
		fields.Add("business_user", msgFieldRequired)
	} else if _, err := repos.UserRepo().FindByID(ctx, *input.BusinessUserID); err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to find business user")
		}
		fields.Add("business_user", invalidPKMessage(*input.BusinessUserID))
	}

	switch {
	case input.Rating == nil:
		fields.Add("rating", msgFieldRequired)
	case !entity.IsValidRating(*input.Rating):
		fields.Add("rating", msgRatingRange)
	}

	if len(fields) > 0 {
		return domainerrors.NewValidationError(fields)
	}

	return nil
}

func invalidPKMessage(id uint) string {
	return fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", id)
}

func findReview(ctx context.Context, repos repository.RepositoryFactory, reviewID uint) (*entity.Review, error) {
	review, err := repos.ReviewRepo().FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "review not found")
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	return review, nil
}
