package handler

import (
	"log/slog"
	"net/http"
	"time"

	"shoply/internal/delivery/http/middleware"
	"shoply/internal/delivery/http/response"
	"shoply/internal/domain/entity"
	"shoply/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DiscountHandlerParams holds dependencies for DiscountHandler, injected by Fx.
type DiscountHandlerParams struct {
	fx.In

	DiscountUC usecase.DiscountUsecase
	Logger     *slog.Logger
}

// DiscountHandler holds dependencies for discount-related handlers
type DiscountHandler struct {
	discountUC usecase.DiscountUsecase
	logger     *slog.Logger
}

// NewDiscountHandler is the constructor for DiscountHandler
func NewDiscountHandler(params DiscountHandlerParams) *DiscountHandler {
	return &DiscountHandler{
		discountUC: params.DiscountUC,
		logger:     params.Logger,
	}
}

// DiscountProductRequest is one line submitted for evaluation
type DiscountProductRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Price     float64   `json:"price" validate:"gte=0"`
	Quantity  int       `json:"quantity" validate:"required,gte=1"`
}

// EvaluateDiscountRequest represents the request body for evaluating a code
type EvaluateDiscountRequest struct {
	Code     string                   `json:"code" validate:"required"`
	ShopID   uuid.UUID                `json:"shop_id" validate:"required"`
	Products []DiscountProductRequest `json:"products" validate:"required,min=1,dive"`
}

// CreateDiscountRequest represents the request body for creating a discount
type CreateDiscountRequest struct {
	Code           string    `json:"code" validate:"required"`
	Name           string    `json:"name" validate:"required"`
	Type           string    `json:"type" validate:"required,oneof=percentage fixed_amount"`
	Value          float64   `json:"value" validate:"required,gt=0"`
	AppliesTo      string    `json:"applies_to" validate:"required,oneof=all specific"`
	ProductIDs     []string  `json:"product_ids,omitempty"`
	MinOrderAmount float64   `json:"min_order_amount" validate:"gte=0"`
	MaxUses        int       `json:"max_uses"`
	MaxUsesPerUser int       `json:"max_uses_per_user" validate:"gte=0"`
	ValidFrom      time.Time `json:"valid_from" validate:"required"`
	ValidUntil     time.Time `json:"valid_until" validate:"required"`
}

// CancelUsageRequest represents the request body for reverting a recorded use
type CancelUsageRequest struct {
	Code   string    `json:"code" validate:"required"`
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

// Evaluate handles evaluating a discount code against a set of lines
func (h *DiscountHandler) Evaluate(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req EvaluateDiscountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid discount evaluation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	products := make([]usecase.DiscountProduct, 0, len(req.Products))
	for _, p := range req.Products {
		products = append(products, usecase.DiscountProduct{
			ProductID: p.ProductID,
			Price:     p.Price,
			Quantity:  p.Quantity,
		})
	}

	result, err := h.discountUC.Evaluate(c.Request().Context(), &usecase.EvaluateDiscountInput{
		Code:     req.Code,
		UserID:   userID,
		ShopID:   req.ShopID,
		Products: products,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Discount evaluated successfully")
}

// Create handles registering a new discount under a shop
func (h *DiscountHandler) Create(c echo.Context) error {
	shopID, err := uuid.Parse(c.Param("shopId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid shop ID")
	}

	var req CreateDiscountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid discount input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	productIDs := make([]uuid.UUID, 0, len(req.ProductIDs))
	for _, raw := range req.ProductIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid product ID in discount scope")
		}
		productIDs = append(productIDs, id)
	}

	discount, err := h.discountUC.Create(c.Request().Context(), shopID, &usecase.CreateDiscountInput{
		Code:           req.Code,
		Name:           req.Name,
		Type:           entity.DiscountType(req.Type),
		Value:          req.Value,
		AppliesTo:      entity.DiscountApplies(req.AppliesTo),
		ProductIDs:     productIDs,
		MinOrderAmount: req.MinOrderAmount,
		MaxUses:        req.MaxUses,
		MaxUsesPerUser: req.MaxUsesPerUser,
		ValidFrom:      req.ValidFrom,
		ValidUntil:     req.ValidUntil,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, discount, "Discount created successfully")
}

// ListByShop handles listing a shop's discounts
func (h *DiscountHandler) ListByShop(c echo.Context) error {
	shopID, err := uuid.Parse(c.Param("shopId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid shop ID")
	}

	limit, offset := parsePagination(c)

	discounts, total, err := h.discountUC.ListByShop(c.Request().Context(), shopID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"discounts": discounts,
		"total":     total,
	}, "Discounts retrieved successfully")
}

// CancelUsage handles reverting one recorded use of a code for a user
func (h *DiscountHandler) CancelUsage(c echo.Context) error {
	shopID, err := uuid.Parse(c.Param("shopId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid shop ID")
	}

	var req CancelUsageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cancel usage input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.discountUC.CancelUsage(c.Request().Context(), shopID, req.Code, req.UserID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Discount usage cancelled successfully"}, "Discount usage cancelled successfully")
}

// Delete handles removing a discount owned by the shop
func (h *DiscountHandler) Delete(c echo.Context) error {
	shopID, err := uuid.Parse(c.Param("shopId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid shop ID")
	}

	discountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid discount ID")
	}

	if err := h.discountUC.Delete(c.Request().Context(), shopID, discountID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Discount deleted successfully"}, "Discount deleted successfully")
}
