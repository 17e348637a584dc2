package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"coderr/config"
	"coderr/internal/delivery/api/response"
	"coderr/internal/domain/entity"
	domainerrors "coderr/internal/domain/errors"
	"coderr/internal/domain/repository"
	"coderr/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// OfferHandlerParams holds dependencies for OfferHandler, injected by Fx.
type OfferHandlerParams struct {
	fx.In

	OfferUC usecase.OfferUsecase
	Config  *config.Config
	Logger  *slog.Logger
}

// OfferHandler serves offers and their details.
type OfferHandler struct {
	offerUC         usecase.OfferUsecase
	baseURL         string
	defaultPageSize int
	maxPageSize     int
	logger          *slog.Logger
}

// NewOfferHandler is the constructor for OfferHandler.
func NewOfferHandler(params OfferHandlerParams) *OfferHandler {
	return &OfferHandler{
		offerUC:         params.OfferUC,
		baseURL:         params.Config.HTTP.BaseURL,
		defaultPageSize: params.Config.Pagination.DefaultPageSize,
		maxPageSize:     params.Config.Pagination.MaxPageSize,
		logger:          params.Logger,
	}
}

// OfferDetailRequest is one tier of a new offer.
type OfferDetailRequest struct {
	Title              string           `json:"title" validate:"required,max=255"`
	Revisions          *int             `json:"revisions" validate:"required,gte=-1"`
	DeliveryTimeInDays *int             `json:"delivery_time_in_days" validate:"required,gte=0"`
	Price              *decimal.Decimal `json:"price" validate:"required,gte=0,decimal=10 2"`
	Features           []string         `json:"features"`
	OfferType          string           `json:"offer_type" validate:"required"`
}

// CreateOfferRequest is the body of POST /offers/. The tier rules are checked by the use case.
type CreateOfferRequest struct {
	Title       string               `json:"title" validate:"required,max=255"`
	Image       string               `json:"image" validate:"max=255"`
	Description string               `json:"description"`
	Details     []OfferDetailRequest `json:"details" validate:"dive"`
}

// OfferDetailPatchRequest updates the detail matching OfferType.
type OfferDetailPatchRequest struct {
	OfferType          *string          `json:"offer_type"`
	Title              *string          `json:"title" validate:"omitnil,min=1,max=255"`
	Revisions          *int             `json:"revisions" validate:"omitnil,gte=-1"`
	DeliveryTimeInDays *int             `json:"delivery_time_in_days" validate:"omitnil,gte=0"`
	Price              *decimal.Decimal `json:"price" validate:"omitnil,gte=0,decimal=10 2"`
	Features           *[]string        `json:"features"`
}

// UpdateOfferRequest is the body of PATCH /offers/{id}/.
type UpdateOfferRequest struct {
	Title       *string                   `json:"title" validate:"omitnil,min=1,max=255"`
	Image       *string                   `json:"image" validate:"omitnil,max=255"`
	Description *string                   `json:"description"`
	Details     []OfferDetailPatchRequest `json:"details" validate:"dive"`
}

// OfferDetailResponse is the full form of a detail.
type OfferDetailResponse struct {
	ID                 uint     `json:"id"`
	Title              string   `json:"title"`
	Revisions          int      `json:"revisions"`
	DeliveryTimeInDays int      `json:"delivery_time_in_days"`
	Price              string   `json:"price"`
	Features           []string `json:"features"`
	OfferType          string   `json:"offer_type"`
}

// OfferDetailLink is the link form of a detail used in offer reads.
type OfferDetailLink struct {
	ID  uint   `json:"id"`
	URL string `json:"url"`
}

// UserDetails is the owner summary attached to listing items.
type UserDetails struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

// OfferResponse is the read form of an offer. UserDetails is only set in listings.
type OfferResponse struct {
	ID              uint              `json:"id"`
	User            uint              `json:"user"`
	Title           string            `json:"title"`
	Image           *string           `json:"image"`
	Description     string            `json:"description"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	Details         []OfferDetailLink `json:"details"`
	MinPrice        *json.Number      `json:"min_price"`
	MinDeliveryTime *int              `json:"min_delivery_time"`
	UserDetails     *UserDetails      `json:"user_details,omitempty"`
}

// OfferWriteResponse is returned by create and update.
type OfferWriteResponse struct {
	ID          uint                  `json:"id"`
	Title       string                `json:"title"`
	Image       *string               `json:"image"`
	Description string                `json:"description"`
	Details     []OfferDetailResponse `json:"details"`
}

// ListOffers serves the public paginated offer listing.
// Query parameters are checked in a fixed order and the first failure is reported.
func (h *OfferHandler) ListOffers(c echo.Context) error {
	query, err := h.parseOfferQuery(c)
	if err != nil {
		return err
	}

	page, err := h.offerUC.ListOffers(c.Request().Context(), query)
	if err != nil {
		return err
	}

	items := make([]OfferResponse, 0, len(page.Offers))
	for _, offer := range page.Offers {
		item := h.newOfferResponse(c, offer)
		owner := offer.User
		if owner == nil {
			owner = &entity.User{ID: offer.UserID}
		}
		item.UserDetails = &UserDetails{
			FirstName: owner.FirstName,
			LastName:  owner.LastName,
			Username:  owner.Username,
		}
		items = append(items, item)
	}

	return response.OK(c, response.NewPage(c, h.baseURL, page.Count, page.Page, page.HasNext(), page.HasPrevious(), items))
}

func (h *OfferHandler) parseOfferQuery(c echo.Context) (usecase.OfferQuery, error) {
	query := usecase.OfferQuery{
		Ordering: repository.OfferOrdering(strings.TrimSpace(c.QueryParam("ordering"))),
		Search:   strings.TrimSpace(c.QueryParam("search")),
	}

	if !query.Ordering.IsValid() {
		return query, errors.Wrapf(domainerrors.ErrInvalidOrdering, "ordering %q", query.Ordering)
	}

	creatorID, ok := queryUint(c, "creator_id")
	if !ok {
		return query, domainerrors.ErrInvalidQuery.WithMessage("creator_id must be an integer.")
	}
	query.CreatorID = creatorID

	if raw := strings.TrimSpace(c.QueryParam("min_price")); raw != "" {
		minPrice, err := decimal.NewFromString(raw)
		if err != nil {
			return query, domainerrors.ErrInvalidQuery.WithMessage("min_price must be a number.")
		}
		query.MinPrice = &minPrice
	}

	if raw := strings.TrimSpace(c.QueryParam("max_delivery_time")); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			return query, domainerrors.ErrInvalidQuery.WithMessage("max_delivery_time must be an integer.")
		}
		query.MaxDeliveryTime = &days
	}

	query.Page = 1
	if raw := strings.TrimSpace(c.QueryParam("page")); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return query, errors.Wrapf(domainerrors.ErrInvalidPage, "page %q", raw)
		}
		query.Page = page
	}

	query.PageSize = h.defaultPageSize
	if size, err := strconv.Atoi(c.QueryParam("page_size")); err == nil && size > 0 {
		query.PageSize = min(size, h.maxPageSize)
	}

	return query, nil
}

// CreateOffer publishes an offer with its three tiers.
// The caller's role is checked before the body is read.
func (h *OfferHandler) CreateOffer(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	if err := h.offerUC.AuthorizeCreate(c.Request().Context(), actor); err != nil {
		return err
	}

	var req CreateOfferRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := usecase.CreateOfferInput{
		Title:       req.Title,
		Image:       req.Image,
		Description: req.Description,
		Details:     make([]usecase.OfferDetailInput, 0, len(req.Details)),
	}
	for _, d := range req.Details {
		input.Details = append(input.Details, usecase.OfferDetailInput{
			Title:              d.Title,
			Revisions:          *d.Revisions,
			DeliveryTimeInDays: *d.DeliveryTimeInDays,
			Price:              *d.Price,
			Features:           nonNilFeatures(d.Features),
			OfferType:          entity.OfferType(d.OfferType),
		})
	}

	offer, err := h.offerUC.CreateOffer(c.Request().Context(), actor, input)
	if err != nil {
		return err
	}

	return response.Created(c, newOfferWriteResponse(offer))
}

// GetOffer returns a single offer with detail links.
func (h *OfferHandler) GetOffer(c echo.Context) error {
	offerID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	offer, err := h.offerUC.GetOffer(c.Request().Context(), offerID)
	if err != nil {
		return err
	}

	return response.OK(c, h.newOfferResponse(c, offer))
}

// UpdateOffer patches an offer and any of its tiers.
func (h *OfferHandler) UpdateOffer(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	offerID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.offerUC.AuthorizeUpdate(c.Request().Context(), actor, offerID); err != nil {
		return err
	}

	var req UpdateOfferRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := usecase.UpdateOfferInput{
		Title:       req.Title,
		Image:       req.Image,
		Description: req.Description,
	}
	for _, d := range req.Details {
		input.Details = append(input.Details, usecase.OfferDetailPatch{
			OfferType:          d.OfferType,
			Title:              d.Title,
			Revisions:          d.Revisions,
			DeliveryTimeInDays: d.DeliveryTimeInDays,
			Price:              d.Price,
			Features:           d.Features,
		})
	}

	offer, err := h.offerUC.UpdateOffer(c.Request().Context(), actor, offerID, input)
	if err != nil {
		return err
	}

	return response.OK(c, newOfferWriteResponse(offer))
}

// DeleteOffer removes an offer owned by the caller.
func (h *OfferHandler) DeleteOffer(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	offerID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.offerUC.DeleteOffer(c.Request().Context(), actor, offerID); err != nil {
		return err
	}

	return response.NoContent(c)
}

// GetOfferDetail returns one tier in full form.
func (h *OfferHandler) GetOfferDetail(c echo.Context) error {
	detailID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.offerUC.GetOfferDetail(c.Request().Context(), detailID)
	if err != nil {
		return err
	}

	return response.OK(c, newOfferDetailResponse(detail))
}

func (h *OfferHandler) newOfferResponse(c echo.Context, offer *entity.Offer) OfferResponse {
	links := make([]OfferDetailLink, 0, len(offer.Details))
	for _, d := range offer.Details {
		links = append(links, OfferDetailLink{
			ID:  d.ID,
			URL: response.AbsoluteURL(c, h.baseURL, fmt.Sprintf("/api/offerdetails/%d/", d.ID)),
		})
	}

	var minPrice *json.Number
	if lowest := offer.MinPrice(); lowest != nil {
		n := json.Number(lowest.String())
		minPrice = &n
	}

	return OfferResponse{
		ID:              offer.ID,
		User:            offer.UserID,
		Title:           offer.Title,
		Image:           nullableString(offer.Image),
		Description:     offer.Description,
		CreatedAt:       offer.CreatedAt,
		UpdatedAt:       offer.UpdatedAt,
		Details:         links,
		MinPrice:        minPrice,
		MinDeliveryTime: offer.MinDeliveryTime(),
	}
}

func newOfferWriteResponse(offer *entity.Offer) OfferWriteResponse {
	details := make([]OfferDetailResponse, 0, len(offer.Details))
	for _, d := range offer.Details {
		details = append(details, newOfferDetailResponse(d))
	}

	return OfferWriteResponse{
		ID:          offer.ID,
		Title:       offer.Title,
		Image:       nullableString(offer.Image),
		Description: offer.Description,
		Details:     details,
	}
}

func newOfferDetailResponse(d *entity.OfferDetail) OfferDetailResponse {
	return OfferDetailResponse{
		ID:                 d.ID,
		Title:              d.Title,
		Revisions:          d.Revisions,
		DeliveryTimeInDays: d.DeliveryTimeInDays,
		Price:              d.Price.StringFixed(2),
		Features:           nonNilFeatures(d.Features),
		OfferType:          d.OfferType.String(),
	}
}

func nonNilFeatures(features []string) []string {
	if features == nil {
		return []string{}
	}

	return features
}
