package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"shoply/internal/delivery/http/middleware"
	"shoply/internal/delivery/http/response"
	"shoply/internal/domain/entity"
	"shoply/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultPageSize = 20

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order-related handlers
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// ShippingAddressRequest is the shipping snapshot submitted at placement.
// An empty recipient falls back to the user's default address.
type ShippingAddressRequest struct {
	Recipient string `json:"recipient"`
	Phone     string `json:"phone"`
	Street    string `json:"street"`
	City      string `json:"city"`
	Country   string `json:"country"`
	ZipCode   string `json:"zip_code"`
}

// PaymentInfoRequest is the payment snapshot submitted at placement
type PaymentInfoRequest struct {
	Method string `json:"method" validate:"required"`
}

// PlaceOrderRequest represents the request body for placing an order
type PlaceOrderRequest struct {
	CartID     uuid.UUID              `json:"cart_id" validate:"required"`
	ShopGroups []ShopGroupRequest     `json:"shop_groups" validate:"required,min=1,dive"`
	Address    ShippingAddressRequest `json:"address"`
	Payment    PaymentInfoRequest     `json:"payment" validate:"required"`
}

// UpdateOrderStatusRequest represents the request body for a status transition
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Place handles placing an order from a reviewed checkout
func (h *OrderHandler) Place(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	review := toReviewInput(&ReviewRequest{CartID: req.CartID, ShopGroups: req.ShopGroups})
	order, err := h.orderUC.Place(c.Request().Context(), userID, &usecase.PlaceOrderInput{
		CartID:     req.CartID,
		ShopGroups: review.ShopGroups,
		Address: entity.ShippingAddress{
			Recipient: req.Address.Recipient,
			Phone:     req.Address.Phone,
			Street:    req.Address.Street,
			City:      req.Address.City,
			Country:   req.Address.Country,
			ZipCode:   req.Address.ZipCode,
		},
		Payment: entity.PaymentInfo{
			Method: req.Payment.Method,
		},
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// Cancel handles cancelling an order owned by the user
func (h *OrderHandler) Cancel(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.Cancel(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Order cancelled successfully")
}

// UpdateStatus handles advancing an order along the state machine
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	order, err := h.orderUC.UpdateStatus(c.Request().Context(), orderID, entity.OrderStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated successfully")
}

// GetByID handles retrieving a single order owned by the user
func (h *OrderHandler) GetByID(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.GetByID(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// ListByUser handles listing the user's orders, newest first
func (h *OrderHandler) ListByUser(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	limit, offset := parsePagination(c)

	orders, total, err := h.orderUC.ListByUser(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"orders": orders,
		"total":  total,
	}, "Orders retrieved successfully")
}

// List handles the back-office order listing, optionally filtered by status
func (h *OrderHandler) List(c echo.Context) error {
	var status *entity.OrderStatus
	if raw := c.QueryParam("status"); raw != "" {
		if !entity.ValidOrderStatus(raw) {
			return response.BadRequest(c, "INVALID_STATUS", "Invalid order status filter")
		}
		parsed := entity.OrderStatus(raw)
		status = &parsed
	}

	limit, offset := parsePagination(c)

	orders, total, err := h.orderUC.List(c.Request().Context(), status, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"orders": orders,
		"total":  total,
	}, "Orders retrieved successfully")
}

// TrackingQR handles rendering the order's tracking number as a QR code PNG
func (h *OrderHandler) TrackingQR(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	png, err := h.orderUC.TrackingQR(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// parsePagination reads limit and offset query parameters with defaults.
func parsePagination(c echo.Context) (limit, offset int) {
	limit = defaultPageSize
	if raw := c.QueryParam("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}
	if raw := c.QueryParam("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			offset = parsed
		}
	}

	return limit, offset
}
