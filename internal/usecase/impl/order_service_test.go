package impl

import (
	"context"
	"testing"

	"coderr/internal/domain/entity"
	domainerrors "coderr/internal/domain/errors"
	"coderr/internal/domain/repository"
	mockRepo "coderr/internal/mocks/repository"
	"coderr/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	repos     *repoMocks
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewOrderService(OrderServiceParams{TxManager: txManager, Logger: newDiscardLogger()})

	return orderServiceFixtures{service: service, txManager: txManager, repos: newRepoMocks(t)}
}

func (fx orderServiceFixtures) expectActor(user *entity.User, profileType entity.ProfileType) {
	fx.repos.users.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)
	fx.repos.profiles.EXPECT().FindByUserID(mock.Anything, user.ID).
		Return(&entity.Profile{UserID: user.ID, Type: profileType}, nil)
}

func TestOrderService_CreateOrder_SnapshotsDetail(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	detail := &entity.OfferDetail{
		ID:                 31,
		OfferID:            9,
		Title:              "Logo Design",
		Revisions:          3,
		DeliveryTimeInDays: 5,
		Price:              decimal.RequireFromString("150.00"),
		Features:           []string{"Logo Design", "Visitenkarte"},
		OfferType:          entity.OfferTypeBasic,
	}

	expectTx(fx.txManager, fx.repos)
	fx.expectActor(&entity.User{ID: 4, Username: "andrey"}, entity.ProfileTypeCustomer)
	fx.repos.offers.EXPECT().FindDetailByID(ctx, uint(31)).Return(detail, nil)
	fx.repos.offers.EXPECT().FindByID(ctx, uint(9)).Return(&entity.Offer{ID: 9, UserID: 2}, nil)
	fx.repos.orders.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) { order.ID = 1 }).
		Return(nil)

	order, err := fx.service.CreateOrder(ctx, 4, usecase.CreateOrderInput{OfferDetailID: ptr(uint(31))})

	require.NoError(t, err)
	assert.Equal(t, uint(4), order.CustomerUserID)
	assert.Equal(t, uint(2), order.BusinessUserID)
	assert.Equal(t, "Logo Design", order.Title)
	assert.Equal(t, 3, order.Revisions)
	assert.True(t, order.Price.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, entity.OrderStatusInProgress, order.Status)

	// The order keeps its own copy of the feature list.
	detail.Features[0] = "changed"
	assert.Equal(t, "Logo Design", order.Features[0])
}

func TestOrderService_CreateOrder_Rejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		profileType entity.ProfileType
		detailID    *uint
		setup       func(fx orderServiceFixtures)
		wantErr     error
	}{
		{
			name:        "business user",
			profileType: entity.ProfileTypeBusiness,
			detailID:    ptr(uint(31)),
			wantErr:     domainerrors.ErrForbidden,
		},
		{
			name:        "business user with missing id",
			profileType: entity.ProfileTypeBusiness,
			wantErr:     domainerrors.ErrForbidden,
		},
		{
			name:        "missing detail id",
			profileType: entity.ProfileTypeCustomer,
			wantErr:     domainerrors.ErrValidationFailed,
		},
		{
			name:        "unknown detail",
			profileType: entity.ProfileTypeCustomer,
			detailID:    ptr(uint(99)),
			setup: func(fx orderServiceFixtures) {
				fx.repos.offers.EXPECT().FindDetailByID(mock.Anything, uint(99)).Return(nil, repository.ErrOfferDetailNotFound)
			},
			wantErr: domainerrors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fx := createTestOrderService(t)
			expectTx(fx.txManager, fx.repos)
			fx.expectActor(&entity.User{ID: 4, Username: "someone"}, tt.profileType)
			if tt.setup != nil {
				tt.setup(fx)
			}

			_, err := fx.service.CreateOrder(context.Background(), 4, usecase.CreateOrderInput{OfferDetailID: tt.detailID})

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOrderService_UpdateOrder(t *testing.T) {
	t.Parallel()

	newOrder := func() *entity.Order {
		return &entity.Order{ID: 1, CustomerUserID: 4, BusinessUserID: 2, Status: entity.OrderStatusInProgress}
	}

	t.Run("business owner completes", func(t *testing.T) {
		t.Parallel()

		fx := createTestOrderService(t)
		expectTx(fx.txManager, fx.repos)
		fx.repos.orders.EXPECT().FindByID(mock.Anything, uint(1)).Return(newOrder(), nil)
		fx.repos.orders.EXPECT().UpdateStatus(mock.Anything, mock.MatchedBy(func(o *entity.Order) bool {
			return o.Status == entity.OrderStatusCompleted
		})).Return(nil)

		order, err := fx.service.UpdateOrder(context.Background(), 2, 1, usecase.UpdateOrderInput{Status: ptr("completed")})

		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusCompleted, order.Status)
	})

	t.Run("customer is forbidden", func(t *testing.T) {
		t.Parallel()

		fx := createTestOrderService(t)
		expectTx(fx.txManager, fx.repos)
		fx.repos.orders.EXPECT().FindByID(mock.Anything, uint(1)).Return(newOrder(), nil)

		_, err := fx.service.UpdateOrder(context.Background(), 4, 1, usecase.UpdateOrderInput{Status: ptr("completed")})

		require.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("invalid status", func(t *testing.T) {
		t.Parallel()

		fx := createTestOrderService(t)
		expectTx(fx.txManager, fx.repos)
		fx.repos.orders.EXPECT().FindByID(mock.Anything, uint(1)).Return(newOrder(), nil)

		_, err := fx.service.UpdateOrder(context.Background(), 2, 1, usecase.UpdateOrderInput{Status: ptr("shipped")})

		var validationErr *domainerrors.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, []string{`"shipped" is not a valid choice.`}, validationErr.Fields()["status"])
	})

	t.Run("no status is a no-op", func(t *testing.T) {
		t.Parallel()

		fx := createTestOrderService(t)
		expectTx(fx.txManager, fx.repos)
		fx.repos.orders.EXPECT().FindByID(mock.Anything, uint(1)).Return(newOrder(), nil)

		order, err := fx.service.UpdateOrder(context.Background(), 2, 1, usecase.UpdateOrderInput{})

		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusInProgress, order.Status)
	})

	t.Run("missing order", func(t *testing.T) {
		t.Parallel()

		fx := createTestOrderService(t)
		expectTx(fx.txManager, fx.repos)
		fx.repos.orders.EXPECT().FindByID(mock.Anything, uint(1)).Return(nil, repository.ErrOrderNotFound)

		_, err := fx.service.UpdateOrder(context.Background(), 2, 1, usecase.UpdateOrderInput{Status: ptr("completed")})

		require.ErrorIs(t, err, domainerrors.ErrNotFound)
	})
}

func TestOrderService_DeleteOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		actor     *entity.User
		deleteErr error
		expectDel bool
		wantErr   error
	}{
		{name: "staff deletes", actor: &entity.User{ID: 1, IsStaff: true}, expectDel: true},
		{name: "staff on missing order", actor: &entity.User{ID: 1, IsStaff: true}, expectDel: true, deleteErr: repository.ErrOrderNotFound, wantErr: domainerrors.ErrNotFound},
		{name: "business owner is not staff", actor: &entity.User{ID: 2}, wantErr: domainerrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fx := createTestOrderService(t)
			expectTx(fx.txManager, fx.repos)
			fx.repos.users.EXPECT().FindByID(mock.Anything, tt.actor.ID).Return(tt.actor, nil)
			if tt.expectDel {
				fx.repos.orders.EXPECT().Delete(mock.Anything, uint(5)).Return(tt.deleteErr)
			}

			err := fx.service.DeleteOrder(context.Background(), tt.actor.ID, 5)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
		})
	}
}

func TestOrderService_CountOrders(t *testing.T) {
	t.Parallel()

	t.Run("business user", func(t *testing.T) {
		t.Parallel()

		fx := createTestOrderService(t)
		expectTx(fx.txManager, fx.repos)
		fx.expectActor(&entity.User{ID: 2, Username: "kevin"}, entity.ProfileTypeBusiness)
		fx.repos.orders.EXPECT().CountByBusinessAndStatus(mock.Anything, uint(2), entity.OrderStatusCompleted).Return(3, nil)

		count, err := fx.service.CountOrders(context.Background(), 2, entity.OrderStatusCompleted)

		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("customer user", func(t *testing.T) {
		t.Parallel()

		fx := createTestOrderService(t)
		expectTx(fx.txManager, fx.repos)
		fx.expectActor(&entity.User{ID: 4, Username: "andrey"}, entity.ProfileTypeCustomer)

		_, err := fx.service.CountOrders(context.Background(), 4, entity.OrderStatusInProgress)

		require.ErrorIs(t, err, domainerrors.ErrNotFound)
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()

		fx := createTestOrderService(t)
		expectTx(fx.txManager, fx.repos)
		fx.repos.users.EXPECT().FindByID(mock.Anything, uint(999)).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.CountOrders(context.Background(), 999, entity.OrderStatusInProgress)

		require.ErrorIs(t, err, domainerrors.ErrNotFound)
	})
}

func TestOrderService_ListOrders(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	orders := []*entity.Order{{ID: 1, CustomerUserID: 4}, {ID: 2, BusinessUserID: 4}}
	expectTx(fx.txManager, fx.repos)
	fx.repos.orders.EXPECT().ListByParticipant(ctx, uint(4)).Return(orders, nil)

	got, err := fx.service.ListOrders(ctx, 4)

	require.NoError(t, err)
	assert.Equal(t, orders, got)
}

func TestOrderService_AuthorizeCreate(t *testing.T) {
	t.Parallel()

	t.Run("customer", func(t *testing.T) {
		t.Parallel()

		fx := createTestOrderService(t)
		expectTx(fx.txManager, fx.repos)
		fx.expectActor(&entity.User{ID: 4, Username: "andrey"}, entity.ProfileTypeCustomer)

		require.NoError(t, fx.service.AuthorizeCreate(context.Background(), 4))
	})

	t.Run("business user is forbidden", func(t *testing.T) {
		t.Parallel()

		fx := createTestOrderService(t)
		expectTx(fx.txManager, fx.repos)
		fx.expectActor(&entity.User{ID: 2, Username: "kevin"}, entity.ProfileTypeBusiness)

		err := fx.service.AuthorizeCreate(context.Background(), 2)

		require.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestOrderService_AuthorizeUpdate(t *testing.T) {
	t.Parallel()

	order := &entity.Order{ID: 1, CustomerUserID: 4, BusinessUserID: 2, Status: entity.OrderStatusInProgress}

	tests := []struct {
		name    string
		actorID uint
		findErr error
		wantErr error
	}{
		{name: "business owner", actorID: 2},
		{name: "customer of the order", actorID: 4, wantErr: domainerrors.ErrForbidden},
		{name: "missing order", actorID: 2, findErr: repository.ErrOrderNotFound, wantErr: domainerrors.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fx := createTestOrderService(t)
			expectTx(fx.txManager, fx.repos)
			if tt.findErr != nil {
				fx.repos.orders.EXPECT().FindByID(mock.Anything, uint(1)).Return(nil, tt.findErr)
			} else {
				fx.repos.orders.EXPECT().FindByID(mock.Anything, uint(1)).Return(order, nil)
			}

			err := fx.service.AuthorizeUpdate(context.Background(), tt.actorID, 1)

			if tt.wantErr == nil {
				require.NoError(t, err)

				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
