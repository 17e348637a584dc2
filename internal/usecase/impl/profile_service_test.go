package impl

import (
	"context"
	"testing"

	"coderr/internal/domain/entity"
	domainerrors "coderr/internal/domain/errors"
	"coderr/internal/domain/repository"
	mockRepo "coderr/internal/mocks/repository"
	"coderr/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service   usecase.ProfileUsecase
	txManager *mockRepo.MockTransactionManager
	repos     *repoMocks
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewProfileService(txManager, newDiscardLogger())

	return profileServiceFixtures{
		service:   service,
		txManager: txManager,
		repos:     newRepoMocks(t),
	}
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	user := &entity.User{ID: 2, Username: "kevin"}
	expectTx(fx.txManager, fx.repos)
	fx.repos.users.EXPECT().FindByID(ctx, uint(2)).Return(user, nil)
	fx.repos.profiles.EXPECT().FindByUserID(ctx, uint(2)).
		Return(&entity.Profile{ID: 5, UserID: 2, Type: entity.ProfileTypeBusiness}, nil)

	profile, err := fx.service.GetProfile(ctx, 2)

	require.NoError(t, err)
	assert.Equal(t, entity.ProfileTypeBusiness, profile.Type)
	assert.Same(t, user, profile.User)
}

func TestProfileService_GetProfile_CreatesMissingProfile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		user     *entity.User
		wantType entity.ProfileType
	}{
		{name: "plain name", user: &entity.User{ID: 3, Username: "andrey"}, wantType: entity.ProfileTypeCustomer},
		{name: "business email", user: &entity.User{ID: 3, Username: "kevin", Email: "kevin@business.de"}, wantType: entity.ProfileTypeBusiness},
		{name: "biz username", user: &entity.User{ID: 3, Username: "biz_maria"}, wantType: entity.ProfileTypeBusiness},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fx := createTestProfileService(t)
			expectTx(fx.txManager, fx.repos)
			fx.repos.users.EXPECT().FindByID(mock.Anything, uint(3)).Return(tt.user, nil)
			fx.repos.profiles.EXPECT().FindByUserID(mock.Anything, uint(3)).Return(nil, repository.ErrProfileNotFound)
			fx.repos.profiles.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Profile")).Return(nil)

			profile, err := fx.service.GetProfile(context.Background(), 3)

			require.NoError(t, err)
			assert.Equal(t, tt.wantType, profile.Type)
			assert.Equal(t, uint(3), profile.UserID)
		})
	}
}

func TestProfileService_GetProfile_UnknownUser(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	expectTx(fx.txManager, fx.repos)
	fx.repos.users.EXPECT().FindByID(ctx, uint(404)).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetProfile(ctx, 404)

	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestProfileService_UpdateProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	user := &entity.User{ID: 2, Username: "kevin", FirstName: "Kevin", Email: "old@example.com"}
	profile := &entity.Profile{ID: 5, UserID: 2, Type: entity.ProfileTypeBusiness, Location: "Hamburg", Tel: "1"}

	expectTx(fx.txManager, fx.repos)
	fx.repos.users.EXPECT().FindByID(ctx, uint(2)).Return(user, nil)
	fx.repos.profiles.EXPECT().FindByUserID(ctx, uint(2)).Return(profile, nil)
	fx.repos.users.EXPECT().Update(ctx, user).Return(nil)
	fx.repos.profiles.EXPECT().Update(ctx, profile).Return(nil)

	updated, err := fx.service.UpdateProfile(ctx, 2, 2, usecase.UpdateProfileInput{
		LastName: ptr("Business"),
		Email:    ptr("new@business.de"),
		Location: ptr("Berlin"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Kevin", updated.User.FirstName)
	assert.Equal(t, "Business", updated.User.LastName)
	assert.Equal(t, "new@business.de", updated.User.Email)
	assert.Equal(t, "Berlin", updated.Location)
	assert.Equal(t, "1", updated.Tel)
}

func TestProfileService_UpdateProfile_ProfileFieldsOnly(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	user := &entity.User{ID: 2, Username: "kevin"}
	profile := &entity.Profile{ID: 5, UserID: 2, Type: entity.ProfileTypeBusiness}

	expectTx(fx.txManager, fx.repos)
	fx.repos.users.EXPECT().FindByID(ctx, uint(2)).Return(user, nil)
	fx.repos.profiles.EXPECT().FindByUserID(ctx, uint(2)).Return(profile, nil)
	fx.repos.profiles.EXPECT().Update(ctx, profile).Return(nil)

	updated, err := fx.service.UpdateProfile(ctx, 2, 2, usecase.UpdateProfileInput{WorkingHours: ptr("10-18")})

	require.NoError(t, err)
	assert.Equal(t, "10-18", updated.WorkingHours)
}

func TestProfileService_UpdateProfile_OtherUserForbidden(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	expectTx(fx.txManager, fx.repos)
	fx.repos.users.EXPECT().FindByID(ctx, uint(2)).Return(&entity.User{ID: 2}, nil)

	_, err := fx.service.UpdateProfile(ctx, 4, 2, usecase.UpdateProfileInput{Location: ptr("Berlin")})

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestProfileService_ListProfiles(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	profiles := []*entity.Profile{{ID: 1, Type: entity.ProfileTypeBusiness}}
	expectTx(fx.txManager, fx.repos)
	fx.repos.profiles.EXPECT().ListByType(ctx, entity.ProfileTypeBusiness).Return(profiles, nil)

	got, err := fx.service.ListProfiles(ctx, entity.ProfileTypeBusiness)

	require.NoError(t, err)
	assert.Equal(t, profiles, got)
}

func TestProfileService_AuthorizeUpdate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		actorID uint
		findErr error
		wantErr error
	}{
		{name: "own profile", actorID: 2},
		{name: "other user", actorID: 4, wantErr: domainerrors.ErrForbidden},
		{name: "unknown user", actorID: 2, findErr: repository.ErrUserNotFound, wantErr: domainerrors.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fx := createTestProfileService(t)
			expectTx(fx.txManager, fx.repos)
			if tt.findErr != nil {
				fx.repos.users.EXPECT().FindByID(mock.Anything, uint(2)).Return(nil, tt.findErr)
			} else {
				fx.repos.users.EXPECT().FindByID(mock.Anything, uint(2)).Return(&entity.User{ID: 2}, nil)
			}

			err := fx.service.AuthorizeUpdate(context.Background(), tt.actorID, 2)

			if tt.wantErr == nil {
				require.NoError(t, err)

				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
