package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"coderr/internal/delivery/api/response"
	"coderr/internal/domain/entity"
	domainerrors "coderr/internal/domain/errors"
	"coderr/internal/domain/repository"
	"coderr/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler serves customer reviews of businesses.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler.
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// CreateReviewRequest is the body of POST /reviews/.
type CreateReviewRequest struct {
	BusinessUser json.RawMessage `json:"business_user"`
	Rating       *int            `json:"rating"`
	Description  string          `json:"description"`
}

// UpdateReviewRequest is the body of PATCH /reviews/{id}/.
type UpdateReviewRequest struct {
	Rating      *int    `json:"rating"`
	Description *string `json:"description"`
}

// ReviewResponse is the review view.
type ReviewResponse struct {
	ID           uint      `json:"id"`
	BusinessUser uint      `json:"business_user"`
	Reviewer     uint      `json:"reviewer"`
	Rating       int       `json:"rating"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ListReviews returns reviews, optionally filtered by business or reviewer.
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	businessUserID, ok := queryUint(c, "business_user_id")
	if !ok {
		return domainerrors.ErrInvalidQuery.WithMessage("business_user_id must be an integer.")
	}

	reviewerID, ok := queryUint(c, "reviewer_id")
	if !ok {
		return domainerrors.ErrInvalidQuery.WithMessage("reviewer_id must be an integer.")
	}

	reviews, err := h.reviewUC.ListReviews(c.Request().Context(), repository.ReviewFilter{
		BusinessUserID: businessUserID,
		ReviewerID:     reviewerID,
		Ordering:       repository.ReviewOrdering(strings.TrimSpace(c.QueryParam("ordering"))),
	})
	if err != nil {
		return err
	}

	items := make([]ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		items = append(items, newReviewResponse(review))
	}

	return response.OK(c, items)
}

// CreateReview lets a customer review a business.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	if err := h.reviewUC.AuthorizeCreate(c.Request().Context(), actor); err != nil {
		return err
	}

	var req CreateReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	businessUserID := looseUint(req.BusinessUser)
	if businessUserID == nil && len(req.BusinessUser) > 0 && string(req.BusinessUser) != "null" {
		kind := jsonKind(req.BusinessUser)
		if kind == "int" {
			return domainerrors.NewFieldError("business_user", fmt.Sprintf("Invalid pk %q - object does not exist.", string(req.BusinessUser)))
		}

		return domainerrors.NewFieldError("business_user", "Incorrect type. Expected pk value, received "+kind+".")
	}

	review, err := h.reviewUC.CreateReview(c.Request().Context(), actor, usecase.CreateReviewInput{
		BusinessUserID: businessUserID,
		Rating:         req.Rating,
		Description:    req.Description,
	})
	if err != nil {
		return err
	}

	return response.Created(c, newReviewResponse(review))
}

// GetReview returns a single review.
func (h *ReviewHandler) GetReview(c echo.Context) error {
	reviewID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	review, err := h.reviewUC.GetReview(c.Request().Context(), reviewID)
	if err != nil {
		return err
	}

	return response.OK(c, newReviewResponse(review))
}

// UpdateReview edits rating or description of the caller's review.
func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	reviewID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.reviewUC.AuthorizeUpdate(c.Request().Context(), actor, reviewID); err != nil {
		return err
	}

	var req UpdateReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	review, err := h.reviewUC.UpdateReview(c.Request().Context(), actor, reviewID, usecase.UpdateReviewInput{
		Rating:      req.Rating,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return response.OK(c, newReviewResponse(review))
}

// DeleteReview removes the caller's review.
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	reviewID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.reviewUC.DeleteReview(c.Request().Context(), actor, reviewID); err != nil {
		return err
	}

	return response.NoContent(c)
}

func newReviewResponse(r *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:           r.ID,
		BusinessUser: r.BusinessUserID,
		Reviewer:     r.ReviewerID,
		Rating:       r.Rating,
		Description:  r.Description,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// jsonKind names the JSON type of raw for error messages.
func jsonKind(raw json.RawMessage) string {
	switch text := strings.TrimSpace(string(raw)); {
	case strings.HasPrefix(text, `"`):
		return "str"
	case strings.HasPrefix(text, "["):
		return "list"
	case strings.HasPrefix(text, "{"):
		return "dict"
	case text == "true" || text == "false":
		return "bool"
	default:
		return "int"
	}
}
