package handlers

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"marketplace-api/internal/services"
	"marketplace-api/pkg/httpapi"
)

// OrderHandler handles order requests
type OrderHandler struct {
	orders services.OrderService
	log    *logrus.Entry
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orders services.OrderService) *OrderHandler {
	return &OrderHandler{
		orders: orders,
		log:    logrus.WithField("handler", "orders"),
	}
}

// Create handles POST /orders
func (h *OrderHandler) Create(ctx context.Context, req *httpapi.Request) *httpapi.Response {
	var body services.CreateOrderRequest
	if err := req.Bind(&body); err != nil {
		return httpapi.Error(http.StatusBadRequest, err.Error())
	}

	order, err := h.orders.Create(ctx, req.Principal.AccountID, &body)
	if err != nil {
		return errorResponse(h.log, err)
	}
	return httpapi.JSON(http.StatusCreated, order)
}

// ListMine handles GET /orders
func (h *OrderHandler) ListMine(ctx context.Context, req *httpapi.Request) *httpapi.Response {
	orders, err := h.orders.ListByAccount(ctx, req.Principal.AccountID)
	if err != nil {
		return errorResponse(h.log, err)
	}
	return httpapi.JSON(http.StatusOK, orders)
}
