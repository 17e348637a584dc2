package entity

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// RequiredOfferDetails is the number of tiers every offer carries.
const RequiredOfferDetails = 3

// OfferType is the pricing tier of an OfferDetail.
type OfferType string

const (
	OfferTypeBasic    OfferType = "basic"
	OfferTypeStandard OfferType = "standard"
	OfferTypePremium  OfferType = "premium"
)

// OfferTypes lists the tiers in display order.
var OfferTypes = []OfferType{OfferTypeBasic, OfferTypeStandard, OfferTypePremium}

// String returns the string representation of the OfferType.
func (t OfferType) String() string {
	return string(t)
}

// IsValid checks if the OfferType is a valid value.
func (t OfferType) IsValid() bool {
	return slices.Contains(OfferTypes, t)
}

// Rank returns the display position of the tier, or len(OfferTypes) for unknown values.
func (t OfferType) Rank() int {
	if i := slices.Index(OfferTypes, t); i >= 0 {
		return i
	}

	return len(OfferTypes)
}

// Offer is a listing published by a business user.
type Offer struct {
	ID          uint
	UserID      uint
	Title       string
	Image       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Details []*OfferDetail
	User    *User // Owner, loaded for list output.
}

// OfferDetail is one priced tier of an Offer.
type OfferDetail struct {
	ID                 uint
	OfferID            uint
	Title              string
	Revisions          int
	DeliveryTimeInDays int
	Price              decimal.Decimal
	Features           []string
	OfferType          OfferType
}

// MinPrice returns the lowest detail price, or nil when the offer has no details.
func (o *Offer) MinPrice() *decimal.Decimal {
	var lowest *decimal.Decimal
	for _, d := range o.Details {
		if lowest == nil || d.Price.LessThan(*lowest) {
			price := d.Price
			lowest = &price
		}
	}

	return lowest
}

// MinDeliveryTime returns the fastest delivery across details, or nil when the offer has no details.
func (o *Offer) MinDeliveryTime() *int {
	var fastest *int
	for _, d := range o.Details {
		if fastest == nil || d.DeliveryTimeInDays < *fastest {
			days := d.DeliveryTimeInDays
			fastest = &days
		}
	}

	return fastest
}

// DetailByType returns the detail of the given tier, or nil.
func (o *Offer) DetailByType(offerType OfferType) *OfferDetail {
	for _, d := range o.Details {
		if d.OfferType == offerType {
			return d
		}
	}

	return nil
}

// SortDetails orders details basic, standard, premium. Ties keep id order.
func (o *Offer) SortDetails() {
	slices.SortStableFunc(o.Details, func(a, b *OfferDetail) int {
		if a.OfferType.Rank() != b.OfferType.Rank() {
			return a.OfferType.Rank() - b.OfferType.Rank()
		}

		return int(a.ID) - int(b.ID)
	})
}
