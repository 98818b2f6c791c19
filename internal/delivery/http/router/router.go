// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"shoply/internal/delivery/http/middleware"
	"shoply/internal/delivery/http/router/handler"
	"shoply/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CartHandler      *handler.CartHandler
	CheckoutHandler  *handler.CheckoutHandler
	OrderHandler     *handler.OrderHandler
	DiscountHandler  *handler.DiscountHandler
	InventoryHandler *handler.InventoryHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cartHandler      *handler.CartHandler
	checkoutHandler  *handler.CheckoutHandler
	orderHandler     *handler.OrderHandler
	discountHandler  *handler.DiscountHandler
	inventoryHandler *handler.InventoryHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cartHandler:      params.CartHandler,
		checkoutHandler:  params.CheckoutHandler,
		orderHandler:     params.OrderHandler,
		discountHandler:  params.DiscountHandler,
		inventoryHandler: params.InventoryHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public catalog-facing routes
	e.GET("/products/:productId/inventory", r.inventoryHandler.GetByProduct)

	// Cart routes that require authentication
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PUT("/items", r.cartHandler.SetItemQuantity)
		cartGroup.DELETE("/items/:productId", r.cartHandler.RemoveItem)
	}

	// Checkout routes that require authentication
	checkoutGroup := e.Group("/checkout")
	checkoutGroup.Use(r.authMiddleware.Authenticate)
	{
		checkoutGroup.POST("/review", r.checkoutHandler.Review)
		checkoutGroup.GET("/delivery-address", r.checkoutHandler.DefaultAddress)
	}

	// Order routes that require authentication
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.Place)
		orderGroup.GET("", r.orderHandler.ListByUser)
		orderGroup.GET("/:id", r.orderHandler.GetByID)
		orderGroup.POST("/:id/cancel", r.orderHandler.Cancel)
		orderGroup.GET("/:id/tracking-qr", r.orderHandler.TrackingQR)
	}

	// Discount evaluation for authenticated buyers
	discountGroup := e.Group("/discounts")
	discountGroup.Use(r.authMiddleware.Authenticate)
	{
		discountGroup.POST("/evaluate", r.discountHandler.Evaluate)
	}

	// Merchant routes that require authentication and "merchant" role
	merchantGroup := e.Group("/merchant")
	merchantGroup.Use(r.authMiddleware.Authenticate)
	merchantGroup.Use(r.authMiddleware.RequireRole(constants.RoleMerchant))
	{
		merchantGroup.POST("/shops/:shopId/discounts", r.discountHandler.Create)
		merchantGroup.GET("/shops/:shopId/discounts", r.discountHandler.ListByShop)
		merchantGroup.DELETE("/shops/:shopId/discounts/:id", r.discountHandler.Delete)
		merchantGroup.POST("/shops/:shopId/discounts/cancel-usage", r.discountHandler.CancelUsage)
		merchantGroup.POST("/inventory/stock", r.inventoryHandler.AddStock)
	}

	// Back-office routes that require authentication and "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(constants.RoleAdmin))
	{
		adminGroup.GET("/orders", r.orderHandler.List)
		adminGroup.PATCH("/orders/:id/status", r.orderHandler.UpdateStatus)
	}
}
