package repository

import (
	"context"
	"errors"

	"coderr/internal/domain/entity"
)

// ErrProfileNotFound is returned when a user has no profile row yet.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository persists user profiles.
type ProfileRepository interface {
	// FindByUserID returns the profile of a user, with the user loaded.
	FindByUserID(ctx context.Context, userID uint) (*entity.Profile, error)

	// Create inserts a profile. A concurrent insert for the same user is absorbed
	// and the stored row is loaded into profile.
	Create(ctx context.Context, profile *entity.Profile) error

	// Update writes the type and the text fields of a profile.
	Update(ctx context.Context, profile *entity.Profile) error

	// ListByType returns all profiles of a type ordered by id, with users loaded.
	ListByType(ctx context.Context, profileType entity.ProfileType) ([]*entity.Profile, error)
}
