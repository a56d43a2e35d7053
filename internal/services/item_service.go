package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"marketplace-api/internal/models"
	"marketplace-api/internal/repositories"
)

// itemService implements the ItemService interface
type itemService struct {
	items     repositories.ItemRepository
	validator *validator.Validate
	log       *logrus.Entry
}

// NewItemService creates a new catalog item service instance
func NewItemService(items repositories.ItemRepository) ItemService {
	return &itemService{
		items:     items,
		validator: validator.New(),
		log:       logrus.WithField("service", "items"),
	}
}

// Add creates a catalog item. Price zero is a valid price; negatives are not.
func (s *itemService) Add(ctx context.Context, req *AddItemRequest) (*models.Item, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalidInput("%v", err)
	}

	item := models.NewItem(req.StoreID, req.Name, req.Description, req.Category, req.ImageURL, req.Price)
	if err := s.items.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"item_id":  item.ID,
		"store_id": item.StoreID,
	}).Info("Item added")

	return item, nil
}

// ListByStore returns all items listed in the given storefront
func (s *itemService) ListByStore(ctx context.Context, storeID string) ([]models.Item, error) {
	if storeID == "" {
		return nil, invalidInput("storeId is required")
	}

	items, err := s.items.ListByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Item{}
	}
	return items, nil
}
