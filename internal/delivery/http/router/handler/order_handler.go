package handler

import (
	"net/http"
	"strings"

	"relay/internal/delivery/http/middleware"
	"relay/internal/delivery/http/response"
	"relay/internal/domain/entity"
	"relay/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// OrderItemRequest is one line of a new order
type OrderItemRequest struct {
	ProductID string  `json:"product_id" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Quantity  int     `json:"quantity" validate:"min=1"`
	Price     float64 `json:"price" validate:"min=0"`
}

// CreateOrderRequest represents the request body for placing an order
type CreateOrderRequest struct {
	Items       []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	TotalAmount float64            `json:"total_amount" validate:"min=0"`
}

// UpdateOrderStatusRequest represents the request body for an order status change
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=ORDER_CONFIRMED SHIPPED OUT_FOR_DELIVERY DELIVERED CANCELLED"`
}

// CreateOrder handles placing an order for the caller.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	items := make([]entity.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, entity.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	order, err := h.uc.CreateOrder(c.Request().Context(), userID, usecase.OrderInput{
		Items:       items,
		TotalAmount: req.TotalAmount,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toOrderResponse(order), "Order placed successfully")
}

// UpdateOrderStatus handles an operator changing an order's status.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("orderId"))
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

	order, err := h.uc.UpdateOrderStatus(c.Request().Context(), orderID, entity.OrderStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order), "Order status updated successfully")
}

// ListMyOrders handles a user reading their own orders.
func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	query, err := parseOrderQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", err.Error())
	}

	orders, err := h.uc.ListMyOrders(c.Request().Context(), userID, query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPageResponse(orders, toOrderResponse), "")
}

// ListOrders handles operators browsing every order.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	query, err := parseOrderQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", err.Error())
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPageResponse(orders, toOrderResponse), "")
}

// parseOrderQuery reads page, limit, q, status, from and to.
func parseOrderQuery(c echo.Context) (usecase.OrderQuery, error) {
	page, limit := parsePaging(c)

	from, to, err := parseDateRange(c)
	if err != nil {
		return usecase.OrderQuery{}, err
	}

	return usecase.OrderQuery{
		Page:   page,
		Limit:  limit,
		Status: entity.OrderStatus(allAsEmpty(c.QueryParam("status"))),
		Search: strings.TrimSpace(c.QueryParam("q")),
		From:   from,
		To:     to,
	}, nil
}
