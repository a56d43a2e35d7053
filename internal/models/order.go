package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus constants
const (
	OrderStatusPending = "pending"
)

// OrderLine is a single line item on an order. Price is the price at time of
// purchase, not a reference into the catalog.
type OrderLine struct {
	ItemID   string  `json:"itemId" dynamodbav:"itemId"`
	Quantity int     `json:"quantity" dynamodbav:"quantity"`
	Price    float64 `json:"price" dynamodbav:"price"`
}

// Order represents a placed order
type Order struct {
	ID              string      `json:"id" dynamodbav:"id"`
	AccountID       string      `json:"accountId" dynamodbav:"accountId"`
	Items           []OrderLine `json:"items" dynamodbav:"items"`
	ShippingAddress string      `json:"shippingAddress" dynamodbav:"shippingAddress"`
	Total           float64     `json:"total" dynamodbav:"total"`
	Status          string      `json:"status" dynamodbav:"status"`
	CreatedAt       time.Time   `json:"createdAt" dynamodbav:"createdAt"`
}

// NewOrder creates a pending order for the given account
func NewOrder(accountID string, items []OrderLine, shippingAddress string, total float64) *Order {
	return &Order{
		ID:              uuid.New().String(),
		AccountID:       accountID,
		Items:           items,
		ShippingAddress: shippingAddress,
		Total:           total,
		Status:          OrderStatusPending,
		CreatedAt:       time.Now().UTC(),
	}
}

// EnrichedOrderLine is an order line joined with its catalog item. ItemDetails
// is null when the catalog lookup failed or the item no longer exists; one
// missing item never fails the whole order response.
type EnrichedOrderLine struct {
	OrderLine
	ItemDetails *Item `json:"itemDetails"`
}

// EnrichedOrder is an order whose line items have been resolved against the catalog
type EnrichedOrder struct {
	Order
	Items []EnrichedOrderLine `json:"items"`
}
