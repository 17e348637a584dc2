package repository

import (
	"context"

	"coderr/internal/domain/entity"
)

// StatsRepository reads platform-wide aggregates. It runs outside transactions
// so reads can be served by a replica.
type StatsRepository interface {
	BaseInfo(ctx context.Context) (*entity.BaseInfo, error)
}
