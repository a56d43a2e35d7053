package repositories

import (
	"context"

	"marketplace-api/internal/models"
)

// AccountRepository defines data access operations for accounts
type AccountRepository interface {
	// Create inserts a new account record
	Create(ctx context.Context, account *models.Account) error

	// GetByID retrieves an account by its primary key
	GetByID(ctx context.Context, id string) (*models.Account, error)

	// GetByEmail retrieves an account by its normalized email address.
	// Returns ErrNotFound when no account carries the address.
	GetByEmail(ctx context.Context, email string) (*models.Account, error)

	// SetHasStorefront flips the account's storefront flag. This is the only
	// in-place update in the system.
	SetHasStorefront(ctx context.Context, id string, has bool) error
}

// StorefrontRepository defines data access operations for storefronts
type StorefrontRepository interface {
	Create(ctx context.Context, storefront *models.Storefront) error
	GetByID(ctx context.Context, id string) (*models.Storefront, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Storefront, error)
	ListAll(ctx context.Context) ([]models.Storefront, error)
}

// ItemRepository defines data access operations for catalog items
type ItemRepository interface {
	Create(ctx context.Context, item *models.Item) error
	GetByID(ctx context.Context, id string) (*models.Item, error)
	ListByStore(ctx context.Context, storeID string) ([]models.Item, error)
}

// ReviewRepository defines data access operations for reviews
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	ListByItem(ctx context.Context, itemID string) ([]models.Review, error)

	// ListByItemAndAccount returns the reviews a single account has written
	// for a single item; used as the pre-insert duplicate guard.
	ListByItemAndAccount(ctx context.Context, itemID, accountID string) ([]models.Review, error)
}

// OrderRepository defines data access operations for orders
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	ListByAccount(ctx context.Context, accountID string) ([]models.Order, error)
}
