package postgres

import (
	"context"
	"database/sql"
	"math"

	"coderr/internal/domain/entity"
	"coderr/internal/domain/repository"
	"coderr/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// statsRepository implements the repository.StatsRepository interface.
type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository is the constructor for statsRepository.
func NewStatsRepository(db *gorm.DB) repository.StatsRepository {
	return &statsRepository{
		db: db,
	}
}

// BaseInfo aggregates reviews, business profiles and offers. Reads go to a replica when one is configured.
func (repo *statsRepository) BaseInfo(ctx context.Context) (*entity.BaseInfo, error) {
	info := &entity.BaseInfo{}

	var reviewAgg struct {
		Count   int64
		Average sql.NullFloat64
	}
	if err := repo.read(ctx).
		Model(&model.ReviewModel{}).
		Select("COUNT(*) AS count, AVG(rating) AS average").
		Scan(&reviewAgg).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate reviews")
	}
	info.ReviewCount = reviewAgg.Count
	if reviewAgg.Average.Valid {
		info.AverageRating = math.Round(reviewAgg.Average.Float64*10) / 10
	}

	if err := repo.read(ctx).
		Model(&model.ProfileModel{}).
		Where("type = ?", entity.ProfileTypeBusiness.String()).
		Count(&info.BusinessProfileCount).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count business profiles")
	}

	if err := repo.read(ctx).
		Model(&model.OfferModel{}).
		Count(&info.OfferCount).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count offers")
	}

	return info, nil
}

// read returns a fresh statement routed to the read pool.
func (repo *statsRepository) read(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Clauses(dbresolver.Read)
}
