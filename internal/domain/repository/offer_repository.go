package repository

import (
	"context"
	"errors"

	"coderr/internal/domain/entity"

	"github.com/shopspring/decimal"
)

var (
	// ErrOfferNotFound is returned when an offer does not exist.
	ErrOfferNotFound = errors.New("offer not found")
	// ErrOfferDetailNotFound is returned when an offer detail does not exist.
	ErrOfferDetailNotFound = errors.New("offer detail not found")
)

// OfferOrdering is an accepted ordering key for offer listings.
type OfferOrdering string

const (
	OfferOrderingDefault       OfferOrdering = ""
	OfferOrderingUpdatedAt     OfferOrdering = "updated_at"
	OfferOrderingUpdatedAtDesc OfferOrdering = "-updated_at"
	OfferOrderingMinPrice      OfferOrdering = "min_price"
	OfferOrderingMinPriceDesc  OfferOrdering = "-min_price"
)

// IsValid checks if the OfferOrdering is a valid value.
func (o OfferOrdering) IsValid() bool {
	switch o {
	case OfferOrderingDefault, OfferOrderingUpdatedAt, OfferOrderingUpdatedAtDesc,
		OfferOrderingMinPrice, OfferOrderingMinPriceDesc:
		return true
	default:
		return false
	}
}

// OfferFilter narrows and pages an offer listing.
type OfferFilter struct {
	CreatorID       *uint
	MinPrice        *decimal.Decimal // compared against the per-offer minimum price
	MaxDeliveryTime *int             // compared against the per-offer minimum delivery time
	Search          string           // case-insensitive substring of title or description
	Ordering        OfferOrdering
	Offset          int
	Limit           int
}

// OfferRepository persists offers together with their details.
type OfferRepository interface {
	// Create inserts the offer and all of its details.
	Create(ctx context.Context, offer *entity.Offer) error

	// FindByID returns an offer with details and owner loaded.
	FindByID(ctx context.Context, id uint) (*entity.Offer, error)

	// List returns one page of offers matching filter and the total match count.
	List(ctx context.Context, filter OfferFilter) ([]*entity.Offer, int64, error)

	// Update writes title, image and description of the offer.
	Update(ctx context.Context, offer *entity.Offer) error

	// UpdateDetail writes every field of a single detail.
	UpdateDetail(ctx context.Context, detail *entity.OfferDetail) error

	// Delete removes an offer and, by cascade, its details.
	Delete(ctx context.Context, id uint) error

	// FindDetailByID returns a single detail.
	FindDetailByID(ctx context.Context, id uint) (*entity.OfferDetail, error)
}
