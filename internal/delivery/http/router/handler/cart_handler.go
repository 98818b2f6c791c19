// Package handler contains the HTTP handlers for the shop API.
package handler

import (
	"log/slog"
	"net/http"

	"shoply/internal/delivery/http/middleware"
	"shoply/internal/delivery/http/response"
	"shoply/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler holds dependencies for cart-related handlers
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddItemRequest represents the request body for adding or incrementing a cart line
type AddItemRequest struct {
	ProductID     uuid.UUID  `json:"product_id" validate:"required"`
	VariantID     *uuid.UUID `json:"variant_id,omitempty"`
	QuantityDelta int        `json:"quantity_delta" validate:"required"`
}

// SetItemQuantityRequest represents the request body for setting an exact line quantity
type SetItemQuantityRequest struct {
	ProductID           uuid.UUID  `json:"product_id" validate:"required"`
	VariantID           *uuid.UUID `json:"variant_id,omitempty"`
	NewVariantID        *uuid.UUID `json:"new_variant_id,omitempty"`
	NewQuantity         int        `json:"new_quantity" validate:"gte=0"`
	ExpectedOldQuantity int        `json:"expected_old_quantity" validate:"gte=1"`
}

// AddItem handles adding a product to the cart or adjusting its quantity by a delta
func (h *CartHandler) AddItem(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	cart, err := h.cartUC.AddItem(c.Request().Context(), userID, &usecase.AddItemInput{
		ProductID:     req.ProductID,
		VariantID:     req.VariantID,
		QuantityDelta: req.QuantityDelta,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart, "Cart item updated successfully")
}

// SetItemQuantity handles setting an exact quantity on a cart line
func (h *CartHandler) SetItemQuantity(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SetItemQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	cart, err := h.cartUC.SetItemQuantity(c.Request().Context(), userID, &usecase.SetItemQuantityInput{
		ProductID:           req.ProductID,
		VariantID:           req.VariantID,
		NewVariantID:        req.NewVariantID,
		NewQuantity:         req.NewQuantity,
		ExpectedOldQuantity: req.ExpectedOldQuantity,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart, "Cart item quantity updated successfully")
}

// RemoveItem handles removing a cart line entirely
func (h *CartHandler) RemoveItem(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var variantID *uuid.UUID
	if raw := c.QueryParam("variant_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid variant ID")
		}
		variantID = &parsed
	}

	cart, err := h.cartUC.RemoveItem(c.Request().Context(), userID, productID, variantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart, "Cart item removed successfully")
}

// GetCart handles retrieving the user's active cart
func (h *CartHandler) GetCart(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	cart, err := h.cartUC.GetCart(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart, "Cart retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
