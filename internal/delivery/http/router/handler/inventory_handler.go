package handler

import (
	"log/slog"
	"net/http"

	"shoply/internal/delivery/http/response"
	"shoply/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// InventoryHandlerParams holds dependencies for InventoryHandler, injected by Fx.
type InventoryHandlerParams struct {
	fx.In

	InventoryUC usecase.InventoryUsecase
	Logger      *slog.Logger
}

// InventoryHandler holds dependencies for inventory-related handlers
type InventoryHandler struct {
	inventoryUC usecase.InventoryUsecase
	logger      *slog.Logger
}

// NewInventoryHandler is the constructor for InventoryHandler
func NewInventoryHandler(params InventoryHandlerParams) *InventoryHandler {
	return &InventoryHandler{
		inventoryUC: params.InventoryUC,
		logger:      params.Logger,
	}
}

// AddStockRequest represents the request body for a merchant restock
type AddStockRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	ShopID    uuid.UUID `json:"shop_id"`
	Quantity  int       `json:"quantity" validate:"required,gte=1"`
	Location  string    `json:"location,omitempty"`
}

// AddStock handles incrementing a product's stock record
func (h *InventoryHandler) AddStock(c echo.Context) error {
	var req AddStockRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid stock input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	view, err := h.inventoryUC.AddStock(c.Request().Context(), &usecase.AddStockInput{
		ProductID: req.ProductID,
		ShopID:    req.ShopID,
		Quantity:  req.Quantity,
		Location:  req.Location,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view, "Stock added successfully")
}

// GetByProduct handles reading a product's stock record and derived status
func (h *InventoryHandler) GetByProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	view, err := h.inventoryUC.GetByProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view, "Inventory retrieved successfully")
}
