package postgres

import (
	"context"
	"time"

	"coderr/internal/domain/entity"
	domainerrors "coderr/internal/domain/errors"
	"coderr/internal/domain/repository"
	"coderr/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// Create inserts a review. The pair unique index maps to repository.ErrReviewExists.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Omit("BusinessUser", "Reviewer").Create(reviewM).Error; err != nil {
		switch {
		case isUniqueConstraintViolation(err):
			return repository.ErrReviewExists
		case isForeignKeyConstraintViolation(err):
			return repository.ErrReviewReference
		case isCheckConstraintViolation(err):
			return domainerrors.ErrValidationFailed.WrapMessage("review rating out of range")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// FindByID returns a single review.
func (repo *reviewRepository) FindByID(ctx context.Context, id uint) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by id")
	}

	return toReviewDomain(&reviewM), nil
}

// ExistsForPair reports whether the reviewer already reviewed the business.
func (repo *reviewRepository) ExistsForPair(ctx context.Context, businessUserID, reviewerID uint) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("business_user_id = ? AND reviewer_id = ?", businessUserID, reviewerID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check review pair")
	}

	return count > 0, nil
}

// List returns reviews matching the filter.
func (repo *reviewRepository) List(ctx context.Context, filter repository.ReviewFilter) ([]*entity.Review, error) {
	query := repo.db.WithContext(ctx).Model(&model.ReviewModel{})

	if filter.BusinessUserID != nil {
		query = query.Where("business_user_id = ?", *filter.BusinessUserID)
	}
	if filter.ReviewerID != nil {
		query = query.Where("reviewer_id = ?", *filter.ReviewerID)
	}

	var reviewModels []*model.ReviewModel
	if err := query.Order(reviewOrderBy(filter.Ordering)).Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// Update writes rating and description.
func (repo *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ?", review.ID).
		Updates(map[string]any{
			"rating":      review.Rating,
			"description": review.Description,
			"updated_at":  now,
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("review rating out of range")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	review.UpdatedAt = now

	return nil
}

// Delete removes a review.
func (repo *reviewRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.ReviewModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

func reviewOrderBy(ordering repository.ReviewOrdering) clause.OrderBy {
	byID := clause.OrderByColumn{Column: clause.Column{Name: "id"}}

	var primary *clause.OrderByColumn
	switch ordering {
	case repository.ReviewOrderingUpdatedAt:
		primary = &clause.OrderByColumn{Column: clause.Column{Name: "updated_at"}}
	case repository.ReviewOrderingUpdatedAtDesc:
		primary = &clause.OrderByColumn{Column: clause.Column{Name: "updated_at"}, Desc: true}
	case repository.ReviewOrderingRating:
		primary = &clause.OrderByColumn{Column: clause.Column{Name: "rating"}}
	case repository.ReviewOrderingRatingDesc:
		primary = &clause.OrderByColumn{Column: clause.Column{Name: "rating"}, Desc: true}
	}

	if primary == nil {
		return clause.OrderBy{Columns: []clause.OrderByColumn{byID}}
	}

	return clause.OrderBy{Columns: []clause.OrderByColumn{*primary, byID}}
}

// --- Mapper Functions ---

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:             data.ID,
		BusinessUserID: data.BusinessUserID,
		ReviewerID:     data.ReviewerID,
		Rating:         data.Rating,
		Description:    data.Description,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:             data.ID,
		BusinessUserID: data.BusinessUserID,
		ReviewerID:     data.ReviewerID,
		Rating:         data.Rating,
		Description:    data.Description,
	}
}
