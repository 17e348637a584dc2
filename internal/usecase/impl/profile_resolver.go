// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"

	"coderr/internal/domain/entity"
	domainerrors "coderr/internal/domain/errors"
	"coderr/internal/domain/repository"

	"github.com/pkg/errors"
)

// findUser loads a user and maps a missing row to notFound.
func findUser(ctx context.Context, repos repository.RepositoryFactory, userID uint, notFound error) (*entity.User, error) {
	user, err := repos.UserRepo().FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(notFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// findActor loads the authenticated user. A token for a deleted account is treated as invalid.
func findActor(ctx context.Context, repos repository.RepositoryFactory, actorID uint) (*entity.User, error) {
	return findUser(ctx, repos, actorID, domainerrors.ErrInvalidToken)
}

// resolveProfile returns the profile of user, creating it on first access.
// The type of a new profile is inferred from the account names, then fallback.
func resolveProfile(ctx context.Context, repos repository.RepositoryFactory, user *entity.User, fallback entity.ProfileType) (*entity.Profile, error) {
	profileRepo := repos.ProfileRepo()

	profile, err := profileRepo.FindByUserID(ctx, user.ID)
	if err == nil {
		if profile.User == nil {
			profile.User = user
		}

		return profile, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to find profile")
	}

	profile = &entity.Profile{
		UserID: user.ID,
		Type:   entity.ResolveProfileType(user.Username, user.Email, fallback),
	}
	if err := profileRepo.Create(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to create profile")
	}
	profile.User = user

	return profile, nil
}
