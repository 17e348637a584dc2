package impl

import (
	"context"

	"coderr/internal/domain/entity"
	"coderr/internal/domain/repository"
	"coderr/internal/usecase"

	"github.com/pkg/errors"
)

// baseInfoService implements the BaseInfoUsecase interface.
// It reads outside transactions so the stats repository can route to a replica.
type baseInfoService struct {
	stats repository.StatsRepository
}

// NewBaseInfoService is the constructor for baseInfoService.
func NewBaseInfoService(stats repository.StatsRepository) usecase.BaseInfoUsecase {
	return &baseInfoService{stats: stats}
}

// GetBaseInfo reads the landing page counters.
func (srv *baseInfoService) GetBaseInfo(ctx context.Context) (*entity.BaseInfo, error) {
	info, err := srv.stats.BaseInfo(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load base info")
	}

	return info, nil
}
