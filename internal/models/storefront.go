package models

import (
	"time"

	"github.com/google/uuid"
)

// Storefront represents a seller's shop. OwnerName is denormalized at creation
// time so listings do not need an account lookup per storefront.
type Storefront struct {
	ID          string    `json:"id" dynamodbav:"id"`
	Name        string    `json:"name" dynamodbav:"name"`
	Description string    `json:"description" dynamodbav:"description"`
	Category    string    `json:"category" dynamodbav:"category"`
	ImageURL    string    `json:"imageUrl" dynamodbav:"imageUrl"`
	OwnerID     string    `json:"ownerId" dynamodbav:"ownerId"`
	OwnerName   string    `json:"ownerName" dynamodbav:"ownerName"`
	ItemIDs     []string  `json:"items" dynamodbav:"items"`
	CreatedAt   time.Time `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" dynamodbav:"updatedAt"`
}

// NewStorefront creates a storefront owned by the given account
func NewStorefront(owner *Account, name, description, category, imageURL string) *Storefront {
	now := time.Now().UTC()
	return &Storefront{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		Category:    category,
		ImageURL:    imageURL,
		OwnerID:     owner.ID,
		OwnerName:   owner.Name,
		ItemIDs:     []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
