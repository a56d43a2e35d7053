package handlers

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"marketplace-api/internal/services"
	"marketplace-api/pkg/httpapi"
)

// ReviewHandler handles review requests
type ReviewHandler struct {
	reviews services.ReviewService
	log     *logrus.Entry
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviews services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviews: reviews,
		log:     logrus.WithField("handler", "reviews"),
	}
}

// Create handles POST /reviews
func (h *ReviewHandler) Create(ctx context.Context, req *httpapi.Request) *httpapi.Response {
	var body services.CreateReviewRequest
	if err := req.Bind(&body); err != nil {
		return httpapi.Error(http.StatusBadRequest, err.Error())
	}

	review, err := h.reviews.Create(ctx, req.Principal.AccountID, &body)
	if err != nil {
		return errorResponse(h.log, err)
	}
	return httpapi.JSON(http.StatusCreated, review)
}

// ListByItem handles GET /reviews?itemId=...
func (h *ReviewHandler) ListByItem(ctx context.Context, req *httpapi.Request) *httpapi.Response {
	itemID := req.Query["itemId"]
	if itemID == "" {
		return httpapi.Error(http.StatusBadRequest, "itemId query parameter is required")
	}

	summary, err := h.reviews.ListByItem(ctx, itemID)
	if err != nil {
		return errorResponse(h.log, err)
	}
	return httpapi.JSON(http.StatusOK, summary)
}
