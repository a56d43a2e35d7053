package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace-api/internal/auth"
	"marketplace-api/internal/models"
	"marketplace-api/internal/repositories"
	"marketplace-api/internal/services"
	"marketplace-api/pkg/httpapi"
)

// In-memory repositories so the full route table can be exercised without
// DynamoDB. Error semantics mirror the real repositories.

type memAccounts struct{ byID map[string]*models.Account }

func (m *memAccounts) Create(ctx context.Context, a *models.Account) error {
	m.byID[a.ID] = a
	return nil
}

func (m *memAccounts) GetByID(ctx context.Context, id string) (*models.Account, error) {
	if a, ok := m.byID[id]; ok {
		return a, nil
	}
	return nil, repositories.NotFoundError("account", id)
}

func (m *memAccounts) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	for _, a := range m.byID {
		if a.Email == models.NormalizeEmail(email) {
			return a, nil
		}
	}
	return nil, repositories.NotFoundError("account", email)
}

func (m *memAccounts) SetHasStorefront(ctx context.Context, id string, has bool) error {
	a, ok := m.byID[id]
	if !ok {
		return repositories.NotFoundError("account", id)
	}
	a.HasStorefront = has
	return nil
}

type memStorefronts struct{ byID map[string]*models.Storefront }

func (m *memStorefronts) Create(ctx context.Context, s *models.Storefront) error {
	m.byID[s.ID] = s
	return nil
}

func (m *memStorefronts) GetByID(ctx context.Context, id string) (*models.Storefront, error) {
	if s, ok := m.byID[id]; ok {
		return s, nil
	}
	return nil, repositories.NotFoundError("storefront", id)
}

func (m *memStorefronts) ListByOwner(ctx context.Context, ownerID string) ([]models.Storefront, error) {
	var out []models.Storefront
	for _, s := range m.byID {
		if s.OwnerID == ownerID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *memStorefronts) ListAll(ctx context.Context) ([]models.Storefront, error) {
	var out []models.Storefront
	for _, s := range m.byID {
		out = append(out, *s)
	}
	return out, nil
}

type memItems struct{ byID map[string]*models.Item }

func (m *memItems) Create(ctx context.Context, i *models.Item) error {
	m.byID[i.ID] = i
	return nil
}

func (m *memItems) GetByID(ctx context.Context, id string) (*models.Item, error) {
	if i, ok := m.byID[id]; ok {
		return i, nil
	}
	return nil, repositories.NotFoundError("item", id)
}

func (m *memItems) ListByStore(ctx context.Context, storeID string) ([]models.Item, error) {
	var out []models.Item
	for _, i := range m.byID {
		if i.StoreID == storeID {
			out = append(out, *i)
		}
	}
	return out, nil
}

type memReviews struct{ all []*models.Review }

func (m *memReviews) Create(ctx context.Context, r *models.Review) error {
	m.all = append(m.all, r)
	return nil
}

func (m *memReviews) ListByItem(ctx context.Context, itemID string) ([]models.Review, error) {
	var out []models.Review
	for _, r := range m.all {
		if r.ItemID == itemID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memReviews) ListByItemAndAccount(ctx context.Context, itemID, accountID string) ([]models.Review, error) {
	var out []models.Review
	for _, r := range m.all {
		if r.ItemID == itemID && r.AccountID == accountID {
			out = append(out, *r)
		}
	}
	return out, nil
}

type memOrders struct{ all []*models.Order }

func (m *memOrders) Create(ctx context.Context, o *models.Order) error {
	m.all = append(m.all, o)
	return nil
}

func (m *memOrders) ListByAccount(ctx context.Context, accountID string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range m.all {
		if o.AccountID == accountID {
			out = append(out, *o)
		}
	}
	return out, nil
}

type tokenAuth struct{ tokens *auth.Service }

func (a tokenAuth) Authenticate(token string) (*httpapi.Principal, error) {
	claims, err := a.tokens.ValidateToken(token)
	if err != nil {
		return nil, err
	}
	return &httpapi.Principal{AccountID: claims.AccountID, Email: claims.Email, Role: claims.Role}, nil
}

func newAPIRouter() *httpapi.Router {
	accounts := &memAccounts{byID: map[string]*models.Account{}}
	storefronts := &memStorefronts{byID: map[string]*models.Storefront{}}
	items := &memItems{byID: map[string]*models.Item{}}
	reviews := &memReviews{}
	orders := &memOrders{}

	tokens := auth.NewService(&auth.Config{Secret: "test-secret"})

	return NewRouter(&RouterConfig{
		Accounts:      services.NewAccountService(accounts, tokens),
		Storefronts:   services.NewStorefrontService(storefronts, accounts),
		Items:         services.NewItemService(items),
		Reviews:       services.NewReviewService(reviews, items),
		Orders:        services.NewOrderService(orders, items),
		Authenticator: tokenAuth{tokens: tokens},
	})
}

func do(t *testing.T, rt *httpapi.Router, method, path, token string, payload interface{}) *httpapi.Response {
	t.Helper()

	req := &httpapi.Request{Method: method, Path: path, Headers: map[string]string{}, Query: map[string]string{}}
	if token != "" {
		req.Headers["Authorization"] = "Bearer " + token
	}
	if payload != nil {
		body, err := json.Marshal(payload)
		require.NoError(t, err)
		req.Body = body
	}

	// Split off a query string if the path carries one
	for i := 0; i < len(path); i++ {
		if path[i] == '?' {
			req.Path = path[:i]
			q := path[i+1:]
			for _, pair := range splitPairs(q) {
				req.Query[pair[0]] = pair[1]
			}
			break
		}
	}

	return rt.Dispatch(context.Background(), req)
}

func splitPairs(q string) [][2]string {
	var pairs [][2]string
	start := 0
	for i := 0; i <= len(q); i++ {
		if i == len(q) || q[i] == '&' {
			part := q[start:i]
			for j := 0; j < len(part); j++ {
				if part[j] == '=' {
					pairs = append(pairs, [2]string{part[:j], part[j+1:]})
					break
				}
			}
			start = i + 1
		}
	}
	return pairs
}

func decode(t *testing.T, resp *httpapi.Response, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(resp.Body, out))
}

type authPayload struct {
	Account struct {
		ID            string `json:"id"`
		Email         string `json:"email"`
		HasStorefront bool   `json:"hasStorefront"`
	} `json:"account"`
	Token string `json:"token"`
}

func register(t *testing.T, rt *httpapi.Router, name, email, role string) authPayload {
	t.Helper()

	resp := do(t, rt, http.MethodPost, "/api/v1/accounts/register", "", map[string]interface{}{
		"name":     name,
		"email":    email,
		"password": "hunter2hunter2",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "register: %s", resp.Body)

	var out authPayload
	decode(t, resp, &out)
	return out
}

// Full seller journey: register, open a storefront, list an item, take a
// review, and read back the aggregates.
func TestSellerJourney(t *testing.T) {
	rt := newAPIRouter()

	seller := register(t, rt, "Alice", "alice@example.com", "seller")
	require.NotEmpty(t, seller.Token)
	assert.False(t, seller.Account.HasStorefront)

	// Open a storefront
	resp := do(t, rt, http.MethodPost, "/api/v1/storefronts", seller.Token, map[string]string{
		"name": "Alice's Bakes",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "storefront: %s", resp.Body)
	var storefront struct {
		ID      string `json:"id"`
		OwnerID string `json:"ownerId"`
	}
	decode(t, resp, &storefront)
	assert.Equal(t, seller.Account.ID, storefront.OwnerID)

	// The owner's flag flipped
	resp = do(t, rt, http.MethodGet, "/api/v1/accounts/profile", seller.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var profile struct {
		HasStorefront bool `json:"hasStorefront"`
	}
	decode(t, resp, &profile)
	assert.True(t, profile.HasStorefront)

	// List an item
	resp = do(t, rt, http.MethodPost, "/api/v1/items", "", map[string]interface{}{
		"storeId": storefront.ID,
		"name":    "Croissant",
		"price":   19.99,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "item: %s", resp.Body)
	var item struct {
		ID    string  `json:"id"`
		Price float64 `json:"price"`
	}
	decode(t, resp, &item)
	assert.Equal(t, 19.99, item.Price)

	// Item shows up for its store
	resp = do(t, rt, http.MethodGet, "/api/v1/items?storeId="+storefront.ID, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var listed []struct {
		ID string `json:"id"`
	}
	decode(t, resp, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, item.ID, listed[0].ID)

	// A buyer reviews it
	buyer := register(t, rt, "Bob", "bob@example.com", "buyer")
	resp = do(t, rt, http.MethodPost, "/api/v1/reviews", buyer.Token, map[string]interface{}{
		"itemId":  item.ID,
		"rating":  4,
		"comment": "flaky and excellent",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "review: %s", resp.Body)

	// Aggregates recomputed on read
	resp = do(t, rt, http.MethodGet, "/api/v1/reviews?itemId="+item.ID, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var summary struct {
		AverageRating float64 `json:"averageRating"`
		TotalReviews  int     `json:"totalReviews"`
	}
	decode(t, resp, &summary)
	assert.Equal(t, 4.0, summary.AverageRating)
	assert.Equal(t, 1, summary.TotalReviews)

	// Same buyer cannot review twice
	resp = do(t, rt, http.MethodPost, "/api/v1/reviews", buyer.Token, map[string]interface{}{
		"itemId":  item.ID,
		"rating":  5,
		"comment": "changed my mind",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestBuyerCannotOpenStorefront(t *testing.T) {
	rt := newAPIRouter()

	buyer := register(t, rt, "Bob", "bob@example.com", "buyer")

	resp := do(t, rt, http.MethodPost, "/api/v1/storefronts", buyer.Token, map[string]string{"name": "Bob's"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = do(t, rt, http.MethodGet, "/api/v1/storefronts/mine", buyer.Token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestDuplicateRegistration(t *testing.T) {
	rt := newAPIRouter()

	register(t, rt, "Alice", "alice@example.com", "seller")

	resp := do(t, rt, http.MethodPost, "/api/v1/accounts/register", "", map[string]interface{}{
		"name":     "Impostor",
		"email":    "ALICE@example.com",
		"password": "hunter2hunter2",
		"role":     "buyer",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestLoginFlow(t *testing.T) {
	rt := newAPIRouter()

	register(t, rt, "Alice", "alice@example.com", "seller")

	resp := do(t, rt, http.MethodPost, "/api/v1/accounts/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "hunter2hunter2",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out authPayload
	decode(t, resp, &out)
	assert.NotEmpty(t, out.Token)

	resp = do(t, rt, http.MethodPost, "/api/v1/accounts/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestValidationFailures(t *testing.T) {
	rt := newAPIRouter()
	seller := register(t, rt, "Alice", "alice@example.com", "seller")

	resp := do(t, rt, http.MethodPost, "/api/v1/storefronts", seller.Token, map[string]string{"name": "Shop"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var storefront struct {
		ID string `json:"id"`
	}
	decode(t, resp, &storefront)

	// Negative price rejected, zero accepted
	resp = do(t, rt, http.MethodPost, "/api/v1/items", "", map[string]interface{}{
		"storeId": storefront.ID, "name": "Freebie", "price": -0.01,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, rt, http.MethodPost, "/api/v1/items", "", map[string]interface{}{
		"storeId": storefront.ID, "name": "Freebie", "price": 0,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var item struct {
		ID string `json:"id"`
	}
	decode(t, resp, &item)

	// Out-of-range ratings and blank comments rejected
	for _, rating := range []int{0, 6} {
		resp = do(t, rt, http.MethodPost, "/api/v1/reviews", seller.Token, map[string]interface{}{
			"itemId": item.ID, "rating": rating, "comment": "x",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "rating %d", rating)
	}
	resp = do(t, rt, http.MethodPost, "/api/v1/reviews", seller.Token, map[string]interface{}{
		"itemId": item.ID, "rating": 3, "comment": "   ",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Listing items requires a store filter
	resp = do(t, rt, http.MethodGet, "/api/v1/items", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestOrderFlow(t *testing.T) {
	rt := newAPIRouter()

	seller := register(t, rt, "Alice", "alice@example.com", "seller")
	resp := do(t, rt, http.MethodPost, "/api/v1/storefronts", seller.Token, map[string]string{"name": "Shop"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var storefront struct {
		ID string `json:"id"`
	}
	decode(t, resp, &storefront)

	resp = do(t, rt, http.MethodPost, "/api/v1/items", "", map[string]interface{}{
		"storeId": storefront.ID, "name": "Croissant", "price": 3.50,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var item struct {
		ID string `json:"id"`
	}
	decode(t, resp, &item)

	buyer := register(t, rt, "Bob", "bob@example.com", "buyer")

	// Orders require a token
	resp = do(t, rt, http.MethodPost, "/api/v1/orders", "", map[string]interface{}{
		"items":           []map[string]interface{}{{"itemId": item.ID, "quantity": 2, "price": 3.50}},
		"shippingAddress": "1 Main St",
		"total":           7.00,
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = do(t, rt, http.MethodPost, "/api/v1/orders", buyer.Token, map[string]interface{}{
		"items":           []map[string]interface{}{{"itemId": item.ID, "quantity": 2, "price": 3.50}, {"itemId": "gone-item", "quantity": 1, "price": 1.00}},
		"shippingAddress": "1 Main St",
		"total":           8.00,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "order: %s", resp.Body)
	var order struct {
		Status string `json:"status"`
	}
	decode(t, resp, &order)
	assert.Equal(t, "pending", order.Status)

	// Listing enriches lines; the vanished item degrades to null detail
	resp = do(t, rt, http.MethodGet, "/api/v1/orders", buyer.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var enriched []struct {
		Items []struct {
			ItemID      string `json:"itemId"`
			ItemDetails *struct {
				Name string `json:"name"`
			} `json:"itemDetails"`
		} `json:"items"`
	}
	decode(t, resp, &enriched)
	require.Len(t, enriched, 1)
	require.Len(t, enriched[0].Items, 2)

	byItem := map[string]bool{}
	for _, line := range enriched[0].Items {
		byItem[line.ItemID] = line.ItemDetails != nil
	}
	assert.True(t, byItem[item.ID])
	assert.False(t, byItem["gone-item"])
}

func TestStorefrontListingPublic(t *testing.T) {
	rt := newAPIRouter()

	seller := register(t, rt, "Alice", "alice@example.com", "seller")
	resp := do(t, rt, http.MethodPost, "/api/v1/storefronts", seller.Token, map[string]string{"name": "Shop"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var storefront struct {
		ID string `json:"id"`
	}
	decode(t, resp, &storefront)

	resp = do(t, rt, http.MethodGet, "/api/v1/storefronts", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var all []struct {
		ID string `json:"id"`
	}
	decode(t, resp, &all)
	require.Len(t, all, 1)

	resp = do(t, rt, http.MethodGet, "/api/v1/storefronts/"+storefront.ID, "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, rt, http.MethodGet, "/api/v1/storefronts/no-such-id", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
