package handler

import (
	"log/slog"
	"time"

	"coderr/internal/delivery/api/response"
	"coderr/internal/domain/entity"
	"coderr/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves profile reads, edits and the business and customer listings.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// UpdateProfileRequest is the body of PATCH /profile/{id}/. Absent fields stay untouched.
type UpdateProfileRequest struct {
	FirstName    *string `json:"first_name" validate:"omitempty,max=150"`
	LastName     *string `json:"last_name" validate:"omitempty,max=150"`
	Email        *string `json:"email" validate:"omitempty,email,max=254"`
	File         *string `json:"file" validate:"omitnil,max=255"`
	Location     *string `json:"location" validate:"omitempty,max=255"`
	Tel          *string `json:"tel" validate:"omitempty,max=50"`
	Description  *string `json:"description"`
	WorkingHours *string `json:"working_hours" validate:"omitempty,max=100"`
}

// ProfileResponse is the full profile view.
type ProfileResponse struct {
	User         uint      `json:"user"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	File         *string   `json:"file"`
	Location     string    `json:"location"`
	Tel          string    `json:"tel"`
	Description  string    `json:"description"`
	WorkingHours string    `json:"working_hours"`
	Type         string    `json:"type"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"created_at"`
}

// BusinessProfileResponse is an item of GET /profiles/business/.
type BusinessProfileResponse struct {
	User         uint    `json:"user"`
	Username     string  `json:"username"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	File         *string `json:"file"`
	Location     string  `json:"location"`
	Tel          string  `json:"tel"`
	Description  string  `json:"description"`
	WorkingHours string  `json:"working_hours"`
	Type         string  `json:"type"`
}

// CustomerProfileResponse is an item of GET /profiles/customer/.
type CustomerProfileResponse struct {
	User      uint    `json:"user"`
	Username  string  `json:"username"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	File      *string `json:"file"`
	Type      string  `json:"type"`
}

// GetProfile returns the profile of the user in the path, creating it on first access.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.OK(c, newProfileResponse(profile))
}

// UpdateProfile edits the caller's own profile.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.profileUC.AuthorizeUpdate(c.Request().Context(), actor, userID); err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	profile, err := h.profileUC.UpdateProfile(c.Request().Context(), actor, userID, usecase.UpdateProfileInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		File:         req.File,
		Location:     req.Location,
		Tel:          req.Tel,
		Description:  req.Description,
		WorkingHours: req.WorkingHours,
	})
	if err != nil {
		return err
	}

	return response.OK(c, newProfileResponse(profile))
}

// ListBusinessProfiles lists every business profile.
func (h *ProfileHandler) ListBusinessProfiles(c echo.Context) error {
	profiles, err := h.profileUC.ListProfiles(c.Request().Context(), entity.ProfileTypeBusiness)
	if err != nil {
		return err
	}

	items := make([]BusinessProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		user := profileUser(p)
		items = append(items, BusinessProfileResponse{
			User:         p.UserID,
			Username:     user.Username,
			FirstName:    user.FirstName,
			LastName:     user.LastName,
			File:         nullableString(p.File),
			Location:     p.Location,
			Tel:          p.Tel,
			Description:  p.Description,
			WorkingHours: p.WorkingHours,
			Type:         p.Type.String(),
		})
	}

	return response.OK(c, items)
}

// ListCustomerProfiles lists every customer profile.
func (h *ProfileHandler) ListCustomerProfiles(c echo.Context) error {
	profiles, err := h.profileUC.ListProfiles(c.Request().Context(), entity.ProfileTypeCustomer)
	if err != nil {
		return err
	}

	items := make([]CustomerProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		user := profileUser(p)
		items = append(items, CustomerProfileResponse{
			User:      p.UserID,
			Username:  user.Username,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			File:      nullableString(p.File),
			Type:      p.Type.String(),
		})
	}

	return response.OK(c, items)
}

func newProfileResponse(p *entity.Profile) ProfileResponse {
	user := profileUser(p)

	return ProfileResponse{
		User:         p.UserID,
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		File:         nullableString(p.File),
		Location:     p.Location,
		Tel:          p.Tel,
		Description:  p.Description,
		WorkingHours: p.WorkingHours,
		Type:         p.Type.String(),
		Email:        user.Email,
		CreatedAt:    p.CreatedAt,
	}
}

func profileUser(p *entity.Profile) *entity.User {
	if p.User != nil {
		return p.User
	}

	return &entity.User{ID: p.UserID}
}
