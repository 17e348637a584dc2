package usecase

import (
	"context"

	"coderr/internal/domain/entity"
)

// UpdateProfileInput is a partial update. Nil fields are left untouched.
type UpdateProfileInput struct {
	FirstName    *string
	LastName     *string
	Email        *string
	File         *string
	Location     *string
	Tel          *string
	Description  *string
	WorkingHours *string
}

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	// GetProfile returns the profile of userID, creating it when missing.
	GetProfile(ctx context.Context, userID uint) (*entity.Profile, error)

	// AuthorizeUpdate fails unless userID exists and is actorID.
	AuthorizeUpdate(ctx context.Context, actorID, userID uint) error

	// UpdateProfile lets actorID edit their own profile and user names.
	UpdateProfile(ctx context.Context, actorID, userID uint, input UpdateProfileInput) (*entity.Profile, error)

	// ListProfiles returns every profile of the given type.
	ListProfiles(ctx context.Context, profileType entity.ProfileType) ([]*entity.Profile, error)
}
