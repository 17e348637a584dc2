package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDetail(id uint, offerType OfferType, price string, days int) *OfferDetail {
	return &OfferDetail{
		ID:                 id,
		OfferType:          offerType,
		Price:              decimal.RequireFromString(price),
		DeliveryTimeInDays: days,
	}
}

func TestOffer_MinPriceAndDelivery(t *testing.T) {
	t.Parallel()

	offer := &Offer{Details: []*OfferDetail{
		newDetail(1, OfferTypeBasic, "100.00", 7),
		newDetail(2, OfferTypeStandard, "49.90", 10),
		newDetail(3, OfferTypePremium, "250.00", 3),
	}}

	minPrice := offer.MinPrice()
	require.NotNil(t, minPrice)
	assert.Equal(t, "49.90", minPrice.StringFixed(2))

	minDelivery := offer.MinDeliveryTime()
	require.NotNil(t, minDelivery)
	assert.Equal(t, 3, *minDelivery)
}

func TestOffer_MinValuesWithoutDetails(t *testing.T) {
	t.Parallel()

	offer := &Offer{}

	assert.Nil(t, offer.MinPrice())
	assert.Nil(t, offer.MinDeliveryTime())
}

func TestOffer_DetailByType(t *testing.T) {
	t.Parallel()

	premium := newDetail(3, OfferTypePremium, "1", 1)
	offer := &Offer{Details: []*OfferDetail{newDetail(1, OfferTypeBasic, "1", 1), premium}}

	assert.Same(t, premium, offer.DetailByType(OfferTypePremium))
	assert.Nil(t, offer.DetailByType(OfferTypeStandard))
}

func TestOffer_SortDetails(t *testing.T) {
	t.Parallel()

	offer := &Offer{Details: []*OfferDetail{
		newDetail(7, OfferTypePremium, "3", 1),
		newDetail(5, OfferTypeBasic, "1", 1),
		newDetail(6, OfferTypeStandard, "2", 1),
	}}

	offer.SortDetails()

	got := make([]OfferType, 0, len(offer.Details))
	for _, d := range offer.Details {
		got = append(got, d.OfferType)
	}
	assert.Equal(t, OfferTypes, got)
}

func TestOfferType_IsValid(t *testing.T) {
	t.Parallel()

	for _, offerType := range OfferTypes {
		assert.True(t, offerType.IsValid(), offerType)
	}
	assert.False(t, OfferType("gold").IsValid())
	assert.Equal(t, len(OfferTypes), OfferType("gold").Rank())
}

func TestNewOrderFromDetail_SnapshotsDetail(t *testing.T) {
	t.Parallel()

	detail := &OfferDetail{
		ID:                 9,
		Title:              "Logo Design Basic",
		Revisions:          2,
		DeliveryTimeInDays: 5,
		Price:              decimal.RequireFromString("150.00"),
		Features:           []string{"Logo", "Visitenkarte"},
		OfferType:          OfferTypeBasic,
	}

	order := NewOrderFromDetail(11, 22, detail)

	assert.Equal(t, uint(11), order.CustomerUserID)
	assert.Equal(t, uint(22), order.BusinessUserID)
	assert.Equal(t, detail.Title, order.Title)
	assert.Equal(t, detail.Revisions, order.Revisions)
	assert.Equal(t, detail.DeliveryTimeInDays, order.DeliveryTimeInDays)
	assert.True(t, detail.Price.Equal(order.Price))
	assert.Equal(t, detail.Features, order.Features)
	assert.Equal(t, OrderStatusInProgress, order.Status)

	// Later edits to the detail must not leak into the order.
	detail.Features[0] = "Changed"
	assert.Equal(t, "Logo", order.Features[0])
}

func TestIsValidRating(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rating int
		want   bool
	}{
		{rating: 0, want: false},
		{rating: 1, want: true},
		{rating: 3, want: true},
		{rating: 5, want: true},
		{rating: 6, want: false},
		{rating: -1, want: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidRating(tt.rating), tt.rating)
	}
}
