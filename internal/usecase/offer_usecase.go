package usecase

import (
	"context"

	"coderr/internal/domain/entity"
	"coderr/internal/domain/repository"

	"github.com/shopspring/decimal"
)

// OfferDetailInput is one tier of a new offer.
type OfferDetailInput struct {
	Title              string
	Revisions          int
	DeliveryTimeInDays int
	Price              decimal.Decimal
	Features           []string
	OfferType          entity.OfferType
}

// CreateOfferInput defines a new offer with its tiers.
type CreateOfferInput struct {
	Title       string
	Image       string
	Description string
	Details     []OfferDetailInput
}

// OfferDetailPatch updates the existing detail whose type is OfferType.
type OfferDetailPatch struct {
	OfferType          *string
	Title              *string
	Revisions          *int
	DeliveryTimeInDays *int
	Price              *decimal.Decimal
	Features           *[]string
}

// UpdateOfferInput is a partial offer update.
type UpdateOfferInput struct {
	Title       *string
	Image       *string
	Description *string
	Details     []OfferDetailPatch
}

// OfferQuery combines listing filters with the requested page.
type OfferQuery struct {
	CreatorID       *uint
	MinPrice        *decimal.Decimal
	MaxDeliveryTime *int
	Search          string
	Ordering        repository.OfferOrdering
	Page            int
	PageSize        int
}

// OfferPage is one page of an offer listing.
type OfferPage struct {
	Offers   []*entity.Offer
	Count    int64
	Page     int
	PageSize int
}

// HasNext reports whether a page follows this one.
func (p *OfferPage) HasNext() bool {
	return int64(p.Page*p.PageSize) < p.Count
}

// HasPrevious reports whether a page precedes this one.
func (p *OfferPage) HasPrevious() bool {
	return p.Page > 1
}

// OfferUsecase defines offer publishing and browsing.
// The Authorize methods run the role and ownership checks of the matching
// write on their own, so callers can reject a request before reading its body.
type OfferUsecase interface {
	AuthorizeCreate(ctx context.Context, actorID uint) error
	AuthorizeUpdate(ctx context.Context, actorID, offerID uint) error
	ListOffers(ctx context.Context, query OfferQuery) (*OfferPage, error)
	CreateOffer(ctx context.Context, actorID uint, input CreateOfferInput) (*entity.Offer, error)
	GetOffer(ctx context.Context, offerID uint) (*entity.Offer, error)
	UpdateOffer(ctx context.Context, actorID, offerID uint, input UpdateOfferInput) (*entity.Offer, error)
	DeleteOffer(ctx context.Context, actorID, offerID uint) error
	GetOfferDetail(ctx context.Context, detailID uint) (*entity.OfferDetail, error)
}
