package impl

import (
	"context"
	"errors"
	"testing"

	"coderr/internal/domain/entity"
	mockRepo "coderr/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseInfoService_GetBaseInfo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		info    *entity.BaseInfo
		repoErr error
	}{
		{name: "empty platform", info: &entity.BaseInfo{}},
		{name: "populated", info: &entity.BaseInfo{ReviewCount: 4, AverageRating: 4.5, BusinessProfileCount: 2, OfferCount: 2}},
		{name: "database down", repoErr: errors.New("connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stats := mockRepo.NewMockStatsRepository(t)
			stats.EXPECT().BaseInfo(context.Background()).Return(tt.info, tt.repoErr)

			info, err := NewBaseInfoService(stats).GetBaseInfo(context.Background())

			if tt.repoErr != nil {
				require.ErrorIs(t, err, tt.repoErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.info, info)
		})
	}
}
