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

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// CheckoutHandler holds dependencies for checkout-related handlers
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

// CheckoutItemRequest is one cart line submitted for review
type CheckoutItemRequest struct {
	ProductID uuid.UUID  `json:"product_id" validate:"required"`
	VariantID *uuid.UUID `json:"variant_id,omitempty"`
	Quantity  int        `json:"quantity" validate:"required,gte=1"`
	Price     float64    `json:"price" validate:"gte=0"`
}

// ShopGroupRequest is the per-shop slice of a review request
type ShopGroupRequest struct {
	ShopID       uuid.UUID             `json:"shop_id" validate:"required"`
	DiscountCode string                `json:"discount_code,omitempty"`
	Items        []CheckoutItemRequest `json:"items" validate:"required,min=1,dive"`
}

// ReviewRequest represents the request body for a checkout review
type ReviewRequest struct {
	CartID     uuid.UUID          `json:"cart_id" validate:"required"`
	ShopGroups []ShopGroupRequest `json:"shop_groups" validate:"required,min=1,dive"`
}

// Review handles repricing and validating the client's cart snapshot
func (h *CheckoutHandler) Review(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout review input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.checkoutUC.Review(c.Request().Context(), userID, toReviewInput(&req))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Checkout reviewed successfully")
}

// DefaultAddress handles retrieving the user's default shipping address
func (h *CheckoutHandler) DefaultAddress(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	address, err := h.checkoutUC.DefaultAddress(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, address, "Default address retrieved successfully")
}

// toReviewInput maps the request body to the usecase input.
func toReviewInput(req *ReviewRequest) *usecase.ReviewInput {
	input := &usecase.ReviewInput{
		CartID:     req.CartID,
		ShopGroups: make([]usecase.ShopGroupInput, 0, len(req.ShopGroups)),
	}
	for _, group := range req.ShopGroups {
		items := make([]usecase.CheckoutItemInput, 0, len(group.Items))
		for _, item := range group.Items {
			items = append(items, usecase.CheckoutItemInput{
				ProductID: item.ProductID,
				VariantID: item.VariantID,
				Quantity:  item.Quantity,
				Price:     item.Price,
			})
		}
		input.ShopGroups = append(input.ShopGroups, usecase.ShopGroupInput{
			ShopID:       group.ShopID,
			DiscountCode: group.DiscountCode,
			Items:        items,
		})
	}

	return input
}
