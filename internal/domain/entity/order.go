package entity

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus tracks an order through its lifecycle.
type OrderStatus string

const (
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// Order is a purchase of one OfferDetail. The detail fields are copied when the
// order is placed and are not updated afterwards.
type Order struct {
	ID                 uint
	CustomerUserID     uint
	BusinessUserID     uint
	Title              string
	Revisions          int
	DeliveryTimeInDays int
	Price              decimal.Decimal
	Features           []string
	OfferType          OfferType
	Status             OrderStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewOrderFromDetail snapshots detail into a fresh in-progress order.
func NewOrderFromDetail(customerUserID, businessUserID uint, detail *OfferDetail) *Order {
	return &Order{
		CustomerUserID:     customerUserID,
		BusinessUserID:     businessUserID,
		Title:              detail.Title,
		Revisions:          detail.Revisions,
		DeliveryTimeInDays: detail.DeliveryTimeInDays,
		Price:              detail.Price,
		Features:           slices.Clone(detail.Features),
		OfferType:          detail.OfferType,
		Status:             OrderStatusInProgress,
	}
}
