package impl

import (
	"context"
	"testing"

	"coderr/internal/domain/entity"
	domainerrors "coderr/internal/domain/errors"
	"coderr/internal/domain/repository"
	mockRepo "coderr/internal/mocks/repository"
	mockService "coderr/internal/mocks/service"
	"coderr/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service   usecase.AuthUsecase
	txManager *mockRepo.MockTransactionManager
	hasher    *mockService.MockPasswordHasher
	tokens    *mockService.MockTokenService
	repos     *repoMocks
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokens := mockService.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		Hasher:       hasher,
		TokenService: tokens,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:   service,
		txManager: txManager,
		hasher:    hasher,
		tokens:    tokens,
		repos:     newRepoMocks(t),
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	expectTx(fx.txManager, fx.repos)
	fx.hasher.EXPECT().Hash("secret").Return("hashed", nil)
	fx.repos.users.EXPECT().FindByUsername(ctx, "kevin").Return(nil, repository.ErrUserNotFound)
	fx.repos.users.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) { user.ID = 7 }).
		Return(nil)
	fx.repos.profiles.EXPECT().Create(ctx, mock.MatchedBy(func(p *entity.Profile) bool {
		return p.UserID == 7 && p.Type == entity.ProfileTypeBusiness
	})).Return(nil)
	fx.tokens.EXPECT().GenerateToken(uint(7)).Return("token-7", nil)

	out, err := fx.service.Register(ctx, usecase.RegisterInput{
		Username:         " kevin ",
		Email:            "kevin@example.com",
		Password:         "secret",
		RepeatedPassword: "secret",
		Type:             entity.ProfileTypeBusiness,
	})

	require.NoError(t, err)
	assert.Equal(t, "token-7", out.Token)
	assert.Equal(t, "kevin", out.User.Username)
	assert.Equal(t, "hashed", out.User.PasswordHash)
}

func TestAuthService_Register_Rejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input usecase.RegisterInput
		field string
	}{
		{
			name:  "passwords differ",
			input: usecase.RegisterInput{Username: "a", Password: "x", RepeatedPassword: "y", Type: entity.ProfileTypeCustomer},
			field: "repeated_password",
		},
		{
			name:  "unknown type",
			input: usecase.RegisterInput{Username: "a", Password: "x", RepeatedPassword: "x", Type: "admin"},
			field: "type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fx := createTestAuthService(t)

			_, err := fx.service.Register(context.Background(), tt.input)

			var validationErr *domainerrors.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Contains(t, validationErr.Fields(), tt.field)
		})
	}
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	expectTx(fx.txManager, fx.repos)
	fx.hasher.EXPECT().Hash("secret").Return("hashed", nil)
	fx.repos.users.EXPECT().FindByUsername(ctx, "kevin").Return(&entity.User{ID: 1, Username: "kevin"}, nil)

	_, err := fx.service.Register(ctx, usecase.RegisterInput{
		Username:         "kevin",
		Password:         "secret",
		RepeatedPassword: "secret",
		Type:             entity.ProfileTypeCustomer,
	})

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, []string{usernameTakenMessage}, validationErr.Fields()["username"])
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	user := &entity.User{ID: 3, Username: "andrey", PasswordHash: "hashed"}

	tests := []struct {
		name    string
		setup   func(fx authServiceFixtures)
		wantErr error
	}{
		{
			name: "valid credentials",
			setup: func(fx authServiceFixtures) {
				fx.repos.users.EXPECT().FindByUsername(mock.Anything, "andrey").Return(user, nil)
				fx.hasher.EXPECT().Check("pw", "hashed").Return(true)
				fx.tokens.EXPECT().GenerateToken(uint(3)).Return("token-3", nil)
			},
		},
		{
			name: "unknown username",
			setup: func(fx authServiceFixtures) {
				fx.repos.users.EXPECT().FindByUsername(mock.Anything, "andrey").Return(nil, repository.ErrUserNotFound)
			},
			wantErr: domainerrors.ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			setup: func(fx authServiceFixtures) {
				fx.repos.users.EXPECT().FindByUsername(mock.Anything, "andrey").Return(user, nil)
				fx.hasher.EXPECT().Check("pw", "hashed").Return(false)
			},
			wantErr: domainerrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fx := createTestAuthService(t)
			expectTx(fx.txManager, fx.repos)
			tt.setup(fx)

			out, err := fx.service.Login(context.Background(), usecase.LoginInput{Username: "andrey", Password: "pw"})

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, "token-3", out.Token)
			assert.Equal(t, uint(3), out.User.ID)
		})
	}
}
