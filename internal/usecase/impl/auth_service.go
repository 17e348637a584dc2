package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "coderr/internal/delivery/context"
	"coderr/internal/domain/entity"
	domainerrors "coderr/internal/domain/errors"
	"coderr/internal/domain/repository"
	"coderr/internal/domain/service"
	"coderr/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const usernameTakenMessage = "A user with that username already exists."

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// Register creates the account and its profile in one transaction and issues a token.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if input.Password != input.RepeatedPassword {
		return nil, domainerrors.NewFieldError("repeated_password", "Passwords do not match.")
	}
	if !input.Type.IsValid() {
		return nil, domainerrors.NewFieldError("type", fmt.Sprintf("%q is not a valid choice.", input.Type))
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Username:     strings.TrimSpace(input.Username),
		Email:        strings.TrimSpace(input.Email),
		PasswordHash: hash,
	}

	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		userRepo := repos.UserRepo()

		_, err := userRepo.FindByUsername(ctx, user.Username)
		switch {
		case err == nil:
			return domainerrors.NewFieldError("username", usernameTakenMessage)
		case !errors.Is(err, repository.ErrUserNotFound):
			return errors.Wrap(err, "failed to check username")
		}

		if err := userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrUsernameTaken) {
				return domainerrors.NewFieldError("username", usernameTakenMessage)
			}

			return errors.Wrap(err, "failed to create user")
		}

		profile := &entity.Profile{UserID: user.ID, Type: input.Type}
		if err := repos.ProfileRepo().Create(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to create profile")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register user")
	}

	token, err := srv.issueToken(user)
	if err != nil {
		return nil, err
	}

	logger.Info("User registered",
		slog.Uint64("user_id", uint64(user.ID)),
		slog.String("type", input.Type.String()),
	)

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

// Login checks the credentials and issues a token.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		found, err := repos.UserRepo().FindByUsername(ctx, input.Username)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown username")
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		logger.Debug("Password mismatch", slog.Uint64("user_id", uint64(user.ID)))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	token, err := srv.issueToken(user)
	if err != nil {
		return nil, err
	}

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

func (srv *authService) issueToken(user *entity.User) (string, error) {
	token, err := srv.tokenService.GenerateToken(user.ID)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	return token, nil
}
