// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"coderr/internal/delivery/api/middleware"
	"coderr/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	ProfileHandler  *handler.ProfileHandler
	OfferHandler    *handler.OfferHandler
	OrderHandler    *handler.OrderHandler
	ReviewHandler   *handler.ReviewHandler
	BaseInfoHandler *handler.BaseInfoHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	profileHandler  *handler.ProfileHandler
	offerHandler    *handler.OfferHandler
	orderHandler    *handler.OrderHandler
	reviewHandler   *handler.ReviewHandler
	baseInfoHandler *handler.BaseInfoHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		profileHandler:  params.ProfileHandler,
		offerHandler:    params.OfferHandler,
		orderHandler:    params.OrderHandler,
		reviewHandler:   params.ReviewHandler,
		baseInfoHandler: params.BaseInfoHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Paths end with a slash; the server adds it to requests that omit it.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Public routes
	api.POST("/registration/", r.authHandler.Register)
	api.POST("/login/", r.authHandler.Login)
	api.GET("/base-info/", r.baseInfoHandler.GetBaseInfo)
	api.GET("/offers/", r.offerHandler.ListOffers, r.authMiddleware.OptionalAuthenticate)

	// Everything else requires a token
	auth := api.Group("", r.authMiddleware.Authenticate)

	auth.GET("/profile/:id/", r.profileHandler.GetProfile)
	auth.PATCH("/profile/:id/", r.profileHandler.UpdateProfile)
	auth.GET("/profiles/business/", r.profileHandler.ListBusinessProfiles)
	auth.GET("/profiles/customer/", r.profileHandler.ListCustomerProfiles)

	auth.POST("/offers/", r.offerHandler.CreateOffer)
	auth.GET("/offers/:id/", r.offerHandler.GetOffer)
	auth.PATCH("/offers/:id/", r.offerHandler.UpdateOffer)
	auth.DELETE("/offers/:id/", r.offerHandler.DeleteOffer)
	auth.GET("/offerdetails/:id/", r.offerHandler.GetOfferDetail)

	auth.GET("/orders/", r.orderHandler.ListOrders)
	auth.POST("/orders/", r.orderHandler.CreateOrder)
	auth.PATCH("/orders/:id/", r.orderHandler.UpdateOrder)
	auth.DELETE("/orders/:id/", r.orderHandler.DeleteOrder)
	auth.GET("/order-count/:business_user_id/", r.orderHandler.CountInProgress)
	auth.GET("/completed-order-count/:business_user_id/", r.orderHandler.CountCompleted)

	auth.GET("/reviews/", r.reviewHandler.ListReviews)
	auth.POST("/reviews/", r.reviewHandler.CreateReview)
	auth.GET("/reviews/:id/", r.reviewHandler.GetReview)
	auth.PATCH("/reviews/:id/", r.reviewHandler.UpdateReview)
	auth.DELETE("/reviews/:id/", r.reviewHandler.DeleteReview)
}
