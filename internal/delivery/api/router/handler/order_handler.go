package handler

import (
	"encoding/json"
	"log/slog"
	"time"

	"coderr/internal/delivery/api/response"
	"coderr/internal/domain/entity"
	"coderr/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves orders and the per-business order counters.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// CreateOrderRequest is the body of POST /orders/. The id may arrive as a number or a numeric string.
type CreateOrderRequest struct {
	OfferDetailID json.RawMessage `json:"offer_detail_id"`
}

// UpdateOrderRequest is the body of PATCH /orders/{id}/.
type UpdateOrderRequest struct {
	Status *string `json:"status"`
}

// OrderResponse is the order view.
type OrderResponse struct {
	ID                 uint      `json:"id"`
	CustomerUser       uint      `json:"customer_user"`
	BusinessUser       uint      `json:"business_user"`
	Title              string    `json:"title"`
	Revisions          int       `json:"revisions"`
	DeliveryTimeInDays int       `json:"delivery_time_in_days"`
	Price              string    `json:"price"`
	Features           []string  `json:"features"`
	OfferType          string    `json:"offer_type"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ListOrders returns the orders the caller takes part in.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	items := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		items = append(items, newOrderResponse(order))
	}

	return response.OK(c, items)
}

// CreateOrder places an order for an offer detail.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	if err := h.orderUC.AuthorizeCreate(c.Request().Context(), actor); err != nil {
		return err
	}

	var req CreateOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), actor, usecase.CreateOrderInput{
		OfferDetailID: looseUint(req.OfferDetailID),
	})
	if err != nil {
		return err
	}

	return response.Created(c, newOrderResponse(order))
}

// UpdateOrder changes the status of an order owned by the calling business.
func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.orderUC.AuthorizeUpdate(c.Request().Context(), actor, orderID); err != nil {
		return err
	}

	var req UpdateOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.UpdateOrder(c.Request().Context(), actor, orderID, usecase.UpdateOrderInput{
		Status: req.Status,
	})
	if err != nil {
		return err
	}

	return response.OK(c, newOrderResponse(order))
}

// DeleteOrder removes an order. Staff only.
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.orderUC.DeleteOrder(c.Request().Context(), actor, orderID); err != nil {
		return err
	}

	return response.NoContent(c)
}

// CountInProgress returns {"order_count": n} for a business user.
func (h *OrderHandler) CountInProgress(c echo.Context) error {
	return h.count(c, entity.OrderStatusInProgress, "order_count")
}

// CountCompleted returns {"completed_order_count": n} for a business user.
func (h *OrderHandler) CountCompleted(c echo.Context) error {
	return h.count(c, entity.OrderStatusCompleted, "completed_order_count")
}

func (h *OrderHandler) count(c echo.Context, status entity.OrderStatus, key string) error {
	businessUserID, err := pathID(c, "business_user_id")
	if err != nil {
		return err
	}

	n, err := h.orderUC.CountOrders(c.Request().Context(), businessUserID, status)
	if err != nil {
		return err
	}

	return response.OK(c, map[string]int64{key: n})
}

func newOrderResponse(o *entity.Order) OrderResponse {
	return OrderResponse{
		ID:                 o.ID,
		CustomerUser:       o.CustomerUserID,
		BusinessUser:       o.BusinessUserID,
		Title:              o.Title,
		Revisions:          o.Revisions,
		DeliveryTimeInDays: o.DeliveryTimeInDays,
		Price:              o.Price.StringFixed(2),
		Features:           nonNilFeatures(o.Features),
		OfferType:          o.OfferType.String(),
		Status:             o.Status.String(),
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}
