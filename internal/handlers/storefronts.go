package handlers

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"marketplace-api/internal/services"
	"marketplace-api/pkg/httpapi"
)

// StorefrontHandler handles storefront-related requests
type StorefrontHandler struct {
	storefronts services.StorefrontService
	log         *logrus.Entry
}

// NewStorefrontHandler creates a new storefront handler
func NewStorefrontHandler(storefronts services.StorefrontService) *StorefrontHandler {
	return &StorefrontHandler{
		storefronts: storefronts,
		log:         logrus.WithField("handler", "storefronts"),
	}
}

// Create handles POST /storefronts (seller only)
func (h *StorefrontHandler) Create(ctx context.Context, req *httpapi.Request) *httpapi.Response {
	var body services.CreateStorefrontRequest
	if err := req.Bind(&body); err != nil {
		return httpapi.Error(http.StatusBadRequest, err.Error())
	}

	storefront, err := h.storefronts.Create(ctx, req.Principal.AccountID, &body)
	if err != nil {
		return errorResponse(h.log, err)
	}
	return httpapi.JSON(http.StatusCreated, storefront)
}

// Get handles GET /storefronts/:id
func (h *StorefrontHandler) Get(ctx context.Context, req *httpapi.Request) *httpapi.Response {
	storefront, err := h.storefronts.Get(ctx, req.PathParams["id"])
	if err != nil {
		return errorResponse(h.log, err)
	}
	return httpapi.JSON(http.StatusOK, storefront)
}

// ListMine handles GET /storefronts/mine (seller only)
func (h *StorefrontHandler) ListMine(ctx context.Context, req *httpapi.Request) *httpapi.Response {
	storefronts, err := h.storefronts.ListByOwner(ctx, req.Principal.AccountID)
	if err != nil {
		return errorResponse(h.log, err)
	}
	return httpapi.JSON(http.StatusOK, storefronts)
}

// ListAll handles GET /storefronts
func (h *StorefrontHandler) ListAll(ctx context.Context, req *httpapi.Request) *httpapi.Response {
	storefronts, err := h.storefronts.ListAll(ctx)
	if err != nil {
		return errorResponse(h.log, err)
	}
	return httpapi.JSON(http.StatusOK, storefronts)
}
