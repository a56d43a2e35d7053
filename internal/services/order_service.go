package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"marketplace-api/internal/models"
	"marketplace-api/internal/repositories"
)

// orderService implements the OrderService interface
type orderService struct {
	orders    repositories.OrderRepository
	items     repositories.ItemRepository
	validator *validator.Validate
	log       *logrus.Entry
}

// NewOrderService creates a new order service instance
func NewOrderService(orders repositories.OrderRepository, items repositories.ItemRepository) OrderService {
	return &orderService{
		orders:    orders,
		items:     items,
		validator: validator.New(),
		log:       logrus.WithField("service", "orders"),
	}
}

// Create places a pending order for the account
func (s *orderService) Create(ctx context.Context, accountID string, req *CreateOrderRequest) (*models.Order, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalidInput("%v", err)
	}

	lines := make([]models.OrderLine, len(req.Items))
	for i, line := range req.Items {
		lines[i] = models.OrderLine{
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
			Price:    line.Price,
		}
	}

	order := models.NewOrder(accountID, lines, req.ShippingAddress, req.Total)
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"order_id":   order.ID,
		"account_id": accountID,
		"lines":      len(lines),
	}).Info("Order placed")

	return order, nil
}

// ListByAccount returns the account's orders with each line item resolved
// against the catalog. Line lookups run concurrently; a failed lookup
// degrades that line's itemDetails to null instead of failing the response.
func (s *orderService) ListByAccount(ctx context.Context, accountID string) ([]models.EnrichedOrder, error) {
	orders, err := s.orders.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	enriched := make([]models.EnrichedOrder, len(orders))
	for i, order := range orders {
		enriched[i] = s.enrich(ctx, order)
	}
	return enriched, nil
}

// enrich resolves the order's line items with one lookup per line. No
// ordering requirement among the lookups; results land by index.
func (s *orderService) enrich(ctx context.Context, order models.Order) models.EnrichedOrder {
	lines := make([]models.EnrichedOrderLine, len(order.Items))

	var wg sync.WaitGroup
	for i, line := range order.Items {
		wg.Add(1)
		go func(i int, line models.OrderLine) {
			defer wg.Done()

			detail, err := s.items.GetByID(ctx, line.ItemID)
			if err != nil {
				s.log.WithFields(logrus.Fields{
					"order_id": order.ID,
					"item_id":  line.ItemID,
				}).WithError(err).Warn("Line item lookup failed, returning null detail")
				detail = nil
			}
			lines[i] = models.EnrichedOrderLine{OrderLine: line, ItemDetails: detail}
		}(i, line)
	}
	wg.Wait()

	return models.EnrichedOrder{Order: order, Items: lines}
}
