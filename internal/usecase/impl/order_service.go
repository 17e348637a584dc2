package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "coderr/internal/delivery/context"
	"coderr/internal/domain/entity"
	domainerrors "coderr/internal/domain/errors"
	"coderr/internal/domain/policy"
	"coderr/internal/domain/repository"
	"coderr/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

// ListOrders returns the orders the actor takes part in.
func (srv *orderService) ListOrders(ctx context.Context, actorID uint) ([]*entity.Order, error) {
	var orders []*entity.Order

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		found, err := repos.OrderRepo().ListByParticipant(ctx, actorID)
		if err != nil {
			return errors.Wrap(err, "failed to list orders")
		}
		orders = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// CreateOrder snapshots an offer detail into a new order for a customer.
func (srv *orderService) CreateOrder(ctx context.Context, actorID uint, input usecase.CreateOrderInput) (*entity.Order, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		actor, err := requireBuyer(ctx, repos, actorID)
		if err != nil {
			return err
		}

		if input.OfferDetailID == nil {
			return domainerrors.NewFieldError("offer_detail_id", "A valid integer is required.")
		}

		offerRepo := repos.OfferRepo()
		detail, err := offerRepo.FindDetailByID(ctx, *input.OfferDetailID)
		if err != nil {
			if errors.Is(err, repository.ErrOfferDetailNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "offer detail not found")
			}

			return errors.Wrap(err, "failed to find offer detail")
		}

		offer, err := findOffer(ctx, repos, detail.OfferID)
		if err != nil {
			return err
		}

		order = entity.NewOrderFromDetail(actor.ID, offer.UserID, detail)
		if err := repos.OrderRepo().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	logger.Info("Order placed",
		slog.Uint64("order_id", uint64(order.ID)),
		slog.Uint64("customer_user_id", uint64(order.CustomerUserID)),
		slog.Uint64("business_user_id", uint64(order.BusinessUserID)),
	)

	return order, nil
}

// AuthorizeCreate fails unless the actor is a customer.
func (srv *orderService) AuthorizeCreate(ctx context.Context, actorID uint) error {
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		_, err := requireBuyer(ctx, repos, actorID)

		return err
	})
	if err != nil {
		return errors.Wrap(err, "failed to authorize order creation")
	}

	return nil
}

// AuthorizeUpdate fails unless the order exists and the actor is its business user.
func (srv *orderService) AuthorizeUpdate(ctx context.Context, actorID, orderID uint) error {
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		_, err := findManagedOrder(ctx, repos, actorID, orderID)

		return err
	})
	if err != nil {
		return errors.Wrap(err, "failed to authorize order update")
	}

	return nil
}

// UpdateOrder changes the status of an order. Only its business user may do so.
func (srv *orderService) UpdateOrder(ctx context.Context, actorID, orderID uint, input usecase.UpdateOrderInput) (*entity.Order, error) {
	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		var err error
		order, err = findManagedOrder(ctx, repos, actorID, orderID)
		if err != nil {
			return err
		}

		if input.Status == nil {
			return nil
		}

		status := entity.OrderStatus(*input.Status)
		if !status.IsValid() {
			return domainerrors.NewFieldError("status", fmt.Sprintf("%q is not a valid choice.", *input.Status))
		}

		order.Status = status
		if err := repos.OrderRepo().UpdateStatus(ctx, order); err != nil {
			return errors.Wrap(err, "failed to update order status")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update order")
	}

	return order, nil
}

// DeleteOrder removes an order. Staff only; the check runs before the lookup.
func (srv *orderService) DeleteOrder(ctx context.Context, actorID, orderID uint) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		actor, err := findActor(ctx, repos, actorID)
		if err != nil {
			return err
		}

		if !policy.IsStaff(actor) {
			return errors.Wrap(domainerrors.ErrForbidden, "only staff can delete orders")
		}

		if err := repos.OrderRepo().Delete(ctx, orderID); err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "order not found")
			}

			return errors.Wrap(err, "failed to delete order")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete order")
	}

	logger.Info("Order deleted", slog.Uint64("order_id", uint64(orderID)))

	return nil
}

// CountOrders counts the orders of a business user in one status.
func (srv *orderService) CountOrders(ctx context.Context, businessUserID uint, status entity.OrderStatus) (int64, error) {
	var count int64

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		user, err := findUser(ctx, repos, businessUserID, domainerrors.ErrNotFound)
		if err != nil {
			return err
		}

		profile, err := resolveProfile(ctx, repos, user, entity.ProfileTypeCustomer)
		if err != nil {
			return err
		}
		if !policy.IsBusiness(profile) {
			return errors.Wrap(domainerrors.ErrNotFound, "user is not a business")
		}

		count, err = repos.OrderRepo().CountByBusinessAndStatus(ctx, businessUserID, status)
		if err != nil {
			return errors.Wrap(err, "failed to count orders")
		}

		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return count, nil
}

func findOrder(ctx context.Context, repos repository.RepositoryFactory, orderID uint) (*entity.Order, error) {
	order, err := repos.OrderRepo().FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "order not found")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// requireBuyer returns the actor when its profile is customer-typed.
func requireBuyer(ctx context.Context, repos repository.RepositoryFactory, actorID uint) (*entity.User, error) {
	actor, err := findActor(ctx, repos, actorID)
	if err != nil {
		return nil, err
	}

	profile, err := resolveProfile(ctx, repos, actor, entity.ProfileTypeCustomer)
	if err != nil {
		return nil, err
	}
	if !policy.IsCustomer(profile) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only customers can place orders")
	}

	return actor, nil
}

func findManagedOrder(ctx context.Context, repos repository.RepositoryFactory, actorID, orderID uint) (*entity.Order, error) {
	order, err := findOrder(ctx, repos, orderID)
	if err != nil {
		return nil, err
	}

	if !policy.IsOrderBusinessOwner(actorID, order) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "order belongs to another business")
	}

	return order, nil
}
