package services

import (
	"context"

	"marketplace-api/internal/models"
)

// RegisterRequest is the payload for account registration
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=buyer seller"`
}

// LoginRequest is the payload for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResult carries an account together with a freshly issued bearer token
type AuthResult struct {
	Account *models.Account `json:"account"`
	Token   string          `json:"token"`
}

// AccountService handles registration, login and profile lookup
type AccountService interface {
	Register(ctx context.Context, req *RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req *LoginRequest) (*AuthResult, error)
	GetProfile(ctx context.Context, accountID string) (*models.Account, error)
}

// CreateStorefrontRequest is the payload for storefront creation
type CreateStorefrontRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl"`
}

// StorefrontService handles storefront creation and lookups
type StorefrontService interface {
	Create(ctx context.Context, ownerID string, req *CreateStorefrontRequest) (*models.Storefront, error)
	Get(ctx context.Context, id string) (*models.Storefront, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Storefront, error)
	ListAll(ctx context.Context) ([]models.Storefront, error)
}

// AddItemRequest is the payload for adding a catalog item
type AddItemRequest struct {
	StoreID     string  `json:"storeId" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
}

// ItemService handles catalog item creation and listing
type ItemService interface {
	Add(ctx context.Context, req *AddItemRequest) (*models.Item, error)
	ListByStore(ctx context.Context, storeID string) ([]models.Item, error)
}

// CreateReviewRequest is the payload for submitting a review
type CreateReviewRequest struct {
	ItemID  string `json:"itemId" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required"`
}

// ReviewSummary is the read model for an item's reviews: the review list
// newest-first plus aggregates recomputed on every read.
type ReviewSummary struct {
	Reviews       []models.Review `json:"reviews"`
	AverageRating float64         `json:"averageRating"`
	TotalReviews  int             `json:"totalReviews"`
}

// ReviewService handles review submission and aggregation
type ReviewService interface {
	Create(ctx context.Context, accountID string, req *CreateReviewRequest) (*models.Review, error)
	ListByItem(ctx context.Context, itemID string) (*ReviewSummary, error)
}

// OrderLineRequest is one line of an order creation payload
type OrderLineRequest struct {
	ItemID   string  `json:"itemId" validate:"required"`
	Quantity int     `json:"quantity" validate:"required,min=1"`
	Price    float64 `json:"price" validate:"gte=0"`
}

// CreateOrderRequest is the payload for placing an order
type CreateOrderRequest struct {
	Items           []OrderLineRequest `json:"items" validate:"required,min=1,dive"`
	ShippingAddress string             `json:"shippingAddress" validate:"required"`
	Total           float64            `json:"total" validate:"required,gt=0"`
}

// OrderService handles order placement and enriched listing
type OrderService interface {
	Create(ctx context.Context, accountID string, req *CreateOrderRequest) (*models.Order, error)
	ListByAccount(ctx context.Context, accountID string) ([]models.EnrichedOrder, error)
}
