package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"marketplace-api/internal/models"
	"marketplace-api/internal/repositories"
)

// reviewService implements the ReviewService interface
type reviewService struct {
	reviews   repositories.ReviewRepository
	items     repositories.ItemRepository
	validator *validator.Validate
	log       *logrus.Entry
}

// NewReviewService creates a new review service instance
func NewReviewService(reviews repositories.ReviewRepository, items repositories.ItemRepository) ReviewService {
	return &reviewService{
		reviews:   reviews,
		items:     items,
		validator: validator.New(),
		log:       logrus.WithField("service", "reviews"),
	}
}

// Create submits a review. One review per (item, account) pair; the guard is
// an advisory pre-insert lookup, so two concurrent submissions can still both
// land. Accepted race, not silently fixed here.
func (s *reviewService) Create(ctx context.Context, accountID string, req *CreateReviewRequest) (*models.Review, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalidInput("%v", err)
	}

	comment := strings.TrimSpace(req.Comment)
	if comment == "" {
		return nil, invalidInput("comment must not be empty")
	}

	if _, err := s.items.GetByID(ctx, req.ItemID); err != nil {
		return nil, err
	}

	existing, err := s.reviews.ListByItemAndAccount(ctx, req.ItemID, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing review: %w", err)
	}
	if len(existing) > 0 {
		return nil, repositories.DuplicateError("review", "item", req.ItemID)
	}

	review := models.NewReview(req.ItemID, accountID, req.Rating, comment)
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"review_id": review.ID,
		"item_id":   review.ItemID,
		"rating":    review.Rating,
	}).Info("Review submitted")

	return review, nil
}

// ListByItem returns an item's reviews newest-first with aggregates
// recomputed from the full review set on every read.
func (s *reviewService) ListByItem(ctx context.Context, itemID string) (*ReviewSummary, error) {
	if itemID == "" {
		return nil, invalidInput("itemId is required")
	}

	if _, err := s.items.GetByID(ctx, itemID); err != nil {
		return nil, err
	}

	reviews, err := s.reviews.ListByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []models.Review{}
	}

	models.SortReviewsNewestFirst(reviews)

	return &ReviewSummary{
		Reviews:       reviews,
		AverageRating: models.AverageRating(reviews),
		TotalReviews:  len(reviews),
	}, nil
}
