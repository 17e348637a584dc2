package usecase

import (
	"context"

	"coderr/internal/domain/entity"
)

// CreateOrderInput names the offer detail to buy. A nil ID means the field was missing or malformed.
type CreateOrderInput struct {
	OfferDetailID *uint
}

// UpdateOrderInput changes the order status. A nil status leaves the order as is.
type UpdateOrderInput struct {
	Status *string
}

// OrderUsecase defines the order lifecycle.
type OrderUsecase interface {
	AuthorizeCreate(ctx context.Context, actorID uint) error
	AuthorizeUpdate(ctx context.Context, actorID, orderID uint) error
	ListOrders(ctx context.Context, actorID uint) ([]*entity.Order, error)
	CreateOrder(ctx context.Context, actorID uint, input CreateOrderInput) (*entity.Order, error)
	UpdateOrder(ctx context.Context, actorID, orderID uint, input UpdateOrderInput) (*entity.Order, error)
	DeleteOrder(ctx context.Context, actorID, orderID uint) error

	// CountOrders counts a business user's orders in the given status.
	CountOrders(ctx context.Context, businessUserID uint, status entity.OrderStatus) (int64, error)
}
