package impl

import (
	"context"
	"log/slog"

	deliverycontext "coderr/internal/delivery/context"
	"coderr/internal/domain/entity"
	domainerrors "coderr/internal/domain/errors"
	"coderr/internal/domain/policy"
	"coderr/internal/domain/repository"
	"coderr/internal/usecase"

	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager: txManager,
		logger:    logger,
	}
}

// GetProfile retrieves the profile of a user, creating it when missing.
func (srv *profileService) GetProfile(ctx context.Context, userID uint) (*entity.Profile, error) {
	var profile *entity.Profile

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		user, err := findUser(ctx, repos, userID, domainerrors.ErrNotFound)
		if err != nil {
			return err
		}

		profile, err = resolveProfile(ctx, repos, user, entity.ProfileTypeCustomer)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	return profile, nil
}

// AuthorizeUpdate fails unless the profile's user exists and is the actor.
func (srv *profileService) AuthorizeUpdate(ctx context.Context, actorID, userID uint) error {
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		_, err := findOwnUser(ctx, repos, actorID, userID)

		return err
	})
	if err != nil {
		return errors.Wrap(err, "failed to authorize profile update")
	}

	return nil
}

// UpdateProfile merges the given fields into the user and profile rows.
func (srv *profileService) UpdateProfile(ctx context.Context, actorID, userID uint, input usecase.UpdateProfileInput) (*entity.Profile, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	var profile *entity.Profile

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		user, err := findOwnUser(ctx, repos, actorID, userID)
		if err != nil {
			return err
		}

		profile, err = resolveProfile(ctx, repos, user, entity.ProfileTypeCustomer)
		if err != nil {
			return err
		}

		if applyUserPatch(user, input) {
			if err := repos.UserRepo().Update(ctx, user); err != nil {
				return errors.Wrap(err, "failed to update user")
			}
		}

		applyProfilePatch(profile, input)
		if err := repos.ProfileRepo().Update(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to update profile")
		}
		profile.User = user

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	logger.Info("Profile updated", slog.Uint64("user_id", uint64(userID)))

	return profile, nil
}

// ListProfiles returns every profile of the given type.
func (srv *profileService) ListProfiles(ctx context.Context, profileType entity.ProfileType) ([]*entity.Profile, error) {
	var profiles []*entity.Profile

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		found, err := repos.ProfileRepo().ListByType(ctx, profileType)
		if err != nil {
			return errors.Wrap(err, "failed to list profiles")
		}
		profiles = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	return profiles, nil
}

func findOwnUser(ctx context.Context, repos repository.RepositoryFactory, actorID, userID uint) (*entity.User, error) {
	user, err := findUser(ctx, repos, userID, domainerrors.ErrNotFound)
	if err != nil {
		return nil, err
	}

	if !policy.IsOwner(actorID, user.ID) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "profile belongs to another user")
	}

	return user, nil
}

// applyUserPatch reports whether any user column was given.
func applyUserPatch(user *entity.User, input usecase.UpdateProfileInput) bool {
	setIfPresent(&user.FirstName, input.FirstName)
	setIfPresent(&user.LastName, input.LastName)
	setIfPresent(&user.Email, input.Email)

	return input.FirstName != nil || input.LastName != nil || input.Email != nil
}

func applyProfilePatch(profile *entity.Profile, input usecase.UpdateProfileInput) {
	setIfPresent(&profile.File, input.File)
	setIfPresent(&profile.Location, input.Location)
	setIfPresent(&profile.Tel, input.Tel)
	setIfPresent(&profile.Description, input.Description)
	setIfPresent(&profile.WorkingHours, input.WorkingHours)
}

func setIfPresent[T any](target *T, value *T) {
	if value != nil {
		*target = *value
	}
}
