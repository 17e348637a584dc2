package repository

import (
	"context"
	"errors"

	"coderr/internal/domain/entity"
)

// ErrOrderNotFound is returned when an order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository persists orders.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uint) (*entity.Order, error)

	// ListByParticipant returns orders where userID is the customer or the business, by id.
	ListByParticipant(ctx context.Context, userID uint) ([]*entity.Order, error)

	// UpdateStatus writes the status of an order and refreshes UpdatedAt.
	UpdateStatus(ctx context.Context, order *entity.Order) error

	Delete(ctx context.Context, id uint) error

	// CountByBusinessAndStatus counts orders of a business user in a given status.
	CountByBusinessAndStatus(ctx context.Context, businessUserID uint, status entity.OrderStatus) (int64, error)
}
