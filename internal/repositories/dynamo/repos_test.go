package dynamo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace-api/internal/config"
	"marketplace-api/internal/models"
	"marketplace-api/internal/repositories"
)

func testConfig() *config.Config {
	return &config.Config{
		Tables: config.TablesConfig{
			Accounts:    "accounts",
			Storefronts: "storefronts",
			Items:       "items",
			Reviews:     "reviews",
			Orders:      "orders",
		},
		Indexes: config.IndexesConfig{
			AccountsByEmail:    "email-index",
			StorefrontsByOwner: "owner-index",
			ItemsByStore:       "store-index",
			ReviewsByItem:      "item-index",
			OrdersByAccount:    "account-index",
		},
	}
}

func TestAccountRoundtrip(t *testing.T) {
	db := &fakeDB{}
	repo := NewAccountRepository(db, testConfig())

	account := models.NewAccount("Alice", "alice@example.com", models.RoleSeller)
	account.PasswordHash = "hashed"
	require.NoError(t, repo.Create(context.Background(), account))

	got, err := repo.GetByID(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Equal(t, account.Email, got.Email)
	assert.Equal(t, "hashed", got.PasswordHash)
	assert.Equal(t, models.RoleSeller, got.Role)
}

func TestAccountGetByIDNotFound(t *testing.T) {
	repo := NewAccountRepository(&fakeDB{}, testConfig())

	_, err := repo.GetByID(context.Background(), "missing")
	assert.True(t, repositories.IsNotFound(err))
}

func TestAccountGetByEmail(t *testing.T) {
	db := &fakeDB{}
	repo := NewAccountRepository(db, testConfig())

	account := models.NewAccount("Alice", "alice@example.com", models.RoleBuyer)
	require.NoError(t, repo.Create(context.Background(), account))

	// Lookup normalizes the address the same way storage does
	got, err := repo.GetByEmail(context.Background(), " ALICE@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, account.ID, got.ID)

	_, err = repo.GetByEmail(context.Background(), "nobody@example.com")
	assert.True(t, repositories.IsNotFound(err))
}

// The email lookup survives a broken index by scanning
func TestAccountGetByEmailScanFallback(t *testing.T) {
	db := &fakeDB{}
	repo := NewAccountRepository(db, testConfig())

	account := models.NewAccount("Alice", "alice@example.com", models.RoleBuyer)
	require.NoError(t, repo.Create(context.Background(), account))

	db.queryErr = errors.New("index still building")

	got, err := repo.GetByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, account.ID, got.ID)
	assert.Equal(t, 1, db.scanCalls)
}

func TestReviewListByItemAndAccount(t *testing.T) {
	db := &fakeDB{}
	repo := NewReviewRepository(db, testConfig())

	require.NoError(t, repo.Create(context.Background(), models.NewReview("item-1", "acc-1", 4, "good")))
	require.NoError(t, repo.Create(context.Background(), models.NewReview("item-1", "acc-2", 5, "great")))
	require.NoError(t, repo.Create(context.Background(), models.NewReview("item-2", "acc-1", 1, "meh")))

	byItem, err := repo.ListByItem(context.Background(), "item-1")
	require.NoError(t, err)
	assert.Len(t, byItem, 2)

	guard, err := repo.ListByItemAndAccount(context.Background(), "item-1", "acc-1")
	require.NoError(t, err)
	require.Len(t, guard, 1)
	assert.Equal(t, "acc-1", guard[0].AccountID)

	none, err := repo.ListByItemAndAccount(context.Background(), "item-1", "acc-3")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestItemListByStore(t *testing.T) {
	db := &fakeDB{}
	repo := NewItemRepository(db, testConfig())

	first := models.NewItem("store-1", "A", "", "", "", 1)
	require.NoError(t, repo.Create(context.Background(), first))
	require.NoError(t, repo.Create(context.Background(), models.NewItem("store-2", "B", "", "", "", 2)))

	got, err := repo.ListByStore(context.Background(), "store-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, first.ID, got[0].ID)
}

func TestOrderListByAccount(t *testing.T) {
	db := &fakeDB{}
	repo := NewOrderRepository(db, testConfig())

	order := models.NewOrder("acc-1", []models.OrderLine{{ItemID: "i", Quantity: 1, Price: 2.5}}, "1 Main St", 2.5)
	require.NoError(t, repo.Create(context.Background(), order))

	got, err := repo.ListByAccount(context.Background(), "acc-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, order.ID, got[0].ID)
	require.Len(t, got[0].Items, 1)
	assert.Equal(t, "i", got[0].Items[0].ItemID)

	none, err := repo.ListByAccount(context.Background(), "acc-2")
	require.NoError(t, err)
	assert.Empty(t, none)
}
