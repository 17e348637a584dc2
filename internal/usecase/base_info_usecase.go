package usecase

import (
	"context"

	"coderr/internal/domain/entity"
)

// BaseInfoUsecase reports the platform-wide counters.
type BaseInfoUsecase interface {
	GetBaseInfo(ctx context.Context) (*entity.BaseInfo, error)
}
