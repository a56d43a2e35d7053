package models

import (
	"time"

	"github.com/google/uuid"
)

// Item represents a catalog item listed in a storefront.
// AverageRating and ReviewCount are stored as zero at creation and recomputed
// from the review set on every read; no write path updates them in place.
type Item struct {
	ID            string    `json:"id" dynamodbav:"id"`
	StoreID       string    `json:"storeId" dynamodbav:"storeId"`
	Name          string    `json:"name" dynamodbav:"name"`
	Description   string    `json:"description" dynamodbav:"description"`
	Price         float64   `json:"price" dynamodbav:"price"`
	Category      string    `json:"category" dynamodbav:"category"`
	ImageURL      string    `json:"imageUrl" dynamodbav:"imageUrl"`
	AverageRating float64   `json:"averageRating" dynamodbav:"averageRating"`
	ReviewCount   int       `json:"reviewCount" dynamodbav:"reviewCount"`
	CreatedAt     time.Time `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt" dynamodbav:"updatedAt"`
}

// NewItem creates a catalog item for the given storefront
func NewItem(storeID, name, description, category, imageURL string, price float64) *Item {
	now := time.Now().UTC()
	return &Item{
		ID:          uuid.New().String(),
		StoreID:     storeID,
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
		ImageURL:    imageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
