package handlers

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"marketplace-api/internal/services"
	"marketplace-api/pkg/httpapi"
)

// ItemHandler handles catalog item requests
type ItemHandler struct {
	items services.ItemService
	log   *logrus.Entry
}

// NewItemHandler creates a new item handler
func NewItemHandler(items services.ItemService) *ItemHandler {
	return &ItemHandler{
		items: items,
		log:   logrus.WithField("handler", "items"),
	}
}

// Add handles POST /items
func (h *ItemHandler) Add(ctx context.Context, req *httpapi.Request) *httpapi.Response {
	var body services.AddItemRequest
	if err := req.Bind(&body); err != nil {
		return httpapi.Error(http.StatusBadRequest, err.Error())
	}

	item, err := h.items.Add(ctx, &body)
	if err != nil {
		return errorResponse(h.log, err)
	}
	return httpapi.JSON(http.StatusCreated, item)
}

// ListByStore handles GET /items?storeId=...
func (h *ItemHandler) ListByStore(ctx context.Context, req *httpapi.Request) *httpapi.Response {
	storeID := req.Query["storeId"]
	if storeID == "" {
		return httpapi.Error(http.StatusBadRequest, "storeId query parameter is required")
	}

	items, err := h.items.ListByStore(ctx, storeID)
	if err != nil {
		return errorResponse(h.log, err)
	}
	return httpapi.JSON(http.StatusOK, items)
}
