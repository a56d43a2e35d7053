package services

import (
	"context"
	"errors"

	"marketplace-api/internal/models"
	"marketplace-api/internal/repositories"
)

// In-memory repository doubles shared by the service tests. They mirror the
// real repositories' error semantics: missing records come back as not-found
// repository errors, everything else succeeds.

type fakeAccountRepo struct {
	accounts map[string]*models.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[string]*models.Account{}}
}

func (f *fakeAccountRepo) Create(ctx context.Context, account *models.Account) error {
	f.accounts[account.ID] = account
	return nil
}

func (f *fakeAccountRepo) GetByID(ctx context.Context, id string) (*models.Account, error) {
	if account, ok := f.accounts[id]; ok {
		return account, nil
	}
	return nil, repositories.NotFoundError("account", id)
}

func (f *fakeAccountRepo) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	for _, account := range f.accounts {
		if account.Email == models.NormalizeEmail(email) {
			return account, nil
		}
	}
	return nil, repositories.NotFoundError("account", email)
}

func (f *fakeAccountRepo) SetHasStorefront(ctx context.Context, id string, has bool) error {
	account, ok := f.accounts[id]
	if !ok {
		return repositories.NotFoundError("account", id)
	}
	account.HasStorefront = has
	return nil
}

type fakeStorefrontRepo struct {
	storefronts map[string]*models.Storefront
}

func newFakeStorefrontRepo() *fakeStorefrontRepo {
	return &fakeStorefrontRepo{storefronts: map[string]*models.Storefront{}}
}

func (f *fakeStorefrontRepo) Create(ctx context.Context, storefront *models.Storefront) error {
	f.storefronts[storefront.ID] = storefront
	return nil
}

func (f *fakeStorefrontRepo) GetByID(ctx context.Context, id string) (*models.Storefront, error) {
	if storefront, ok := f.storefronts[id]; ok {
		return storefront, nil
	}
	return nil, repositories.NotFoundError("storefront", id)
}

func (f *fakeStorefrontRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Storefront, error) {
	var out []models.Storefront
	for _, storefront := range f.storefronts {
		if storefront.OwnerID == ownerID {
			out = append(out, *storefront)
		}
	}
	return out, nil
}

func (f *fakeStorefrontRepo) ListAll(ctx context.Context) ([]models.Storefront, error) {
	var out []models.Storefront
	for _, storefront := range f.storefronts {
		out = append(out, *storefront)
	}
	return out, nil
}

type fakeItemRepo struct {
	items map[string]*models.Item

	// failIDs makes GetByID fail with a downstream error for specific items,
	// simulating a catalog that is partially unavailable.
	failIDs map[string]bool
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: map[string]*models.Item{}, failIDs: map[string]bool{}}
}

func (f *fakeItemRepo) Create(ctx context.Context, item *models.Item) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeItemRepo) GetByID(ctx context.Context, id string) (*models.Item, error) {
	if f.failIDs[id] {
		return nil, repositories.DownstreamError("get", "item", errors.New("catalog unavailable"))
	}
	if item, ok := f.items[id]; ok {
		return item, nil
	}
	return nil, repositories.NotFoundError("item", id)
}

func (f *fakeItemRepo) ListByStore(ctx context.Context, storeID string) ([]models.Item, error) {
	var out []models.Item
	for _, item := range f.items {
		if item.StoreID == storeID {
			out = append(out, *item)
		}
	}
	return out, nil
}

type fakeReviewRepo struct {
	reviews []*models.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{}
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *models.Review) error {
	f.reviews = append(f.reviews, review)
	return nil
}

func (f *fakeReviewRepo) ListByItem(ctx context.Context, itemID string) ([]models.Review, error) {
	var out []models.Review
	for _, review := range f.reviews {
		if review.ItemID == itemID {
			out = append(out, *review)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) ListByItemAndAccount(ctx context.Context, itemID, accountID string) ([]models.Review, error) {
	var out []models.Review
	for _, review := range f.reviews {
		if review.ItemID == itemID && review.AccountID == accountID {
			out = append(out, *review)
		}
	}
	return out, nil
}

type fakeOrderRepo struct {
	orders []*models.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{}
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *models.Order) error {
	f.orders = append(f.orders, order)
	return nil
}

func (f *fakeOrderRepo) ListByAccount(ctx context.Context, accountID string) ([]models.Order, error) {
	var out []models.Order
	for _, order := range f.orders {
		if order.AccountID == accountID {
			out = append(out, *order)
		}
	}
	return out, nil
}

var (
	_ repositories.AccountRepository    = (*fakeAccountRepo)(nil)
	_ repositories.StorefrontRepository = (*fakeStorefrontRepo)(nil)
	_ repositories.ItemRepository       = (*fakeItemRepo)(nil)
	_ repositories.ReviewRepository     = (*fakeReviewRepo)(nil)
	_ repositories.OrderRepository      = (*fakeOrderRepo)(nil)
)
