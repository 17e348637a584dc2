package impl

import (
	"context"
	"testing"

	"coderr/config"
	"coderr/internal/domain/entity"
	"coderr/internal/domain/repository"
	mockRepo "coderr/internal/mocks/repository"
	mockService "coderr/internal/mocks/service"
	"coderr/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type seedServiceFixtures struct {
	service   usecase.SeedUsecase
	txManager *mockRepo.MockTransactionManager
	hasher    *mockService.MockPasswordHasher
	repos     *repoMocks
}

func createTestSeedService(t *testing.T, cfg *config.Config) seedServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockService.NewMockPasswordHasher(t)
	service := NewSeedService(SeedServiceParams{
		TxManager: txManager,
		Hasher:    hasher,
		Config:    cfg,
		Logger:    newDiscardLogger(),
	})

	return seedServiceFixtures{service: service, txManager: txManager, hasher: hasher, repos: newRepoMocks(t)}
}

func TestSeedService_SeedDemo_EmptyDatabase(t *testing.T) {
	fx := createTestSeedService(t, &config.Config{Seed: config.SeedConfig{BusinessPassword: "biz-secret"}})
	ctx := context.Background()

	expectTx(fx.txManager, fx.repos)

	fx.hasher.EXPECT().Hash("asdasd").Return("customer-hash", nil).Times(2)
	fx.hasher.EXPECT().Hash("biz-secret").Return("business-hash", nil).Times(2)

	var nextUserID uint
	fx.repos.users.EXPECT().FindByUsername(ctx, mock.Anything).Return(nil, repository.ErrUserNotFound)
	fx.repos.users.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			nextUserID++
			user.ID = nextUserID
		}).
		Return(nil)

	var createdProfiles []*entity.Profile
	fx.repos.profiles.EXPECT().FindByUserID(ctx, mock.Anything).Return(nil, repository.ErrProfileNotFound)
	fx.repos.profiles.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(_ context.Context, profile *entity.Profile) { createdProfiles = append(createdProfiles, profile) }).
		Return(nil)

	var createdOffers []*entity.Offer
	fx.repos.offers.EXPECT().List(ctx, mock.AnythingOfType("repository.OfferFilter")).Return(nil, 0, nil)
	fx.repos.offers.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Offer")).
		Run(func(_ context.Context, offer *entity.Offer) { createdOffers = append(createdOffers, offer) }).
		Return(nil)

	fx.repos.reviews.EXPECT().ExistsForPair(ctx, mock.Anything, mock.Anything).Return(false, nil)
	fx.repos.reviews.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Review")).Return(nil)

	var createdOrders []*entity.Order
	fx.repos.orders.EXPECT().ListByParticipant(ctx, uint(1)).Return(nil, nil)
	fx.repos.orders.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) { createdOrders = append(createdOrders, order) }).
		Return(nil)

	report, err := fx.service.SeedDemo(ctx)

	require.NoError(t, err)
	assert.Equal(t, &usecase.SeedReport{Users: 4, Offers: 2, Reviews: 4, Orders: 2}, report)

	require.Len(t, createdProfiles, 4)
	assert.Equal(t, entity.ProfileTypeCustomer, createdProfiles[0].Type)
	assert.Equal(t, entity.ProfileTypeBusiness, createdProfiles[2].Type)
	assert.Equal(t, "Berlin", createdProfiles[2].Location)

	// Offers go round-robin to the two business accounts.
	require.Len(t, createdOffers, 2)
	assert.Equal(t, uint(3), createdOffers[0].UserID)
	assert.Equal(t, uint(4), createdOffers[1].UserID)
	assert.Len(t, createdOffers[0].Details, entity.RequiredOfferDetails)

	require.Len(t, createdOrders, 2)
	for _, order := range createdOrders {
		assert.Equal(t, uint(1), order.CustomerUserID)
		assert.Equal(t, entity.OfferTypeBasic, order.OfferType)
		assert.Equal(t, "Basic Design", order.Title)
	}
}

func TestSeedService_SeedDemo_AlreadySeeded(t *testing.T) {
	fx := createTestSeedService(t, nil)
	ctx := context.Background()

	expectTx(fx.txManager, fx.repos)

	for i, account := range demoAccounts {
		fx.repos.users.EXPECT().FindByUsername(ctx, account.username).
			Return(&entity.User{ID: uint(i + 1), Username: account.username}, nil)
	}
	fx.repos.profiles.EXPECT().FindByUserID(ctx, mock.Anything).
		Return(&entity.Profile{File: "uploads/avatar.png"}, nil)
	fx.repos.profiles.EXPECT().Update(ctx, mock.MatchedBy(func(p *entity.Profile) bool {
		return p.File == "uploads/avatar.png"
	})).Return(nil).Times(len(demoAccounts))

	basic := &entity.OfferDetail{ID: 1, OfferType: entity.OfferTypeBasic}
	fx.repos.offers.EXPECT().List(ctx, mock.AnythingOfType("repository.OfferFilter")).
		RunAndReturn(func(_ context.Context, filter repository.OfferFilter) ([]*entity.Offer, int64, error) {
			owner := *filter.CreatorID
			title := demoOffers[0].title
			if owner == 4 {
				title = demoOffers[1].title
			}

			return []*entity.Offer{{ID: owner, UserID: owner, Title: title, Details: []*entity.OfferDetail{basic}}}, 1, nil
		})

	fx.repos.reviews.EXPECT().ExistsForPair(ctx, mock.Anything, mock.Anything).Return(true, nil)
	fx.repos.orders.EXPECT().ListByParticipant(ctx, uint(1)).Return([]*entity.Order{
		{CustomerUserID: 1, BusinessUserID: 3},
		{CustomerUserID: 1, BusinessUserID: 4},
	}, nil)

	report, err := fx.service.SeedDemo(ctx)

	require.NoError(t, err)
	assert.Equal(t, &usecase.SeedReport{}, report)
}
