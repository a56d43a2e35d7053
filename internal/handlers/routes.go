package handlers

import (
	"net/http"

	"marketplace-api/internal/models"
	"marketplace-api/internal/services"
	"marketplace-api/pkg/httpapi"
)

// RouterConfig holds the services the route table dispatches into
type RouterConfig struct {
	Accounts      services.AccountService
	Storefronts   services.StorefrontService
	Items         services.ItemService
	Reviews       services.ReviewService
	Orders        services.OrderService
	Authenticator httpapi.Authenticator
}

// NewRouter builds the API route table. Literal segments are registered before
// parameterized ones so /storefronts/mine wins over /storefronts/:id.
func NewRouter(cfg *RouterConfig) *httpapi.Router {
	accounts := NewAccountHandler(cfg.Accounts)
	storefronts := NewStorefrontHandler(cfg.Storefronts)
	items := NewItemHandler(cfg.Items)
	reviews := NewReviewHandler(cfg.Reviews)
	orders := NewOrderHandler(cfg.Orders)

	routes := []httpapi.Route{
		{Method: http.MethodPost, Pattern: "/api/v1/accounts/register", Handler: accounts.Register},
		{Method: http.MethodPost, Pattern: "/api/v1/accounts/login", Handler: accounts.Login},
		{Method: http.MethodGet, Pattern: "/api/v1/accounts/profile", Handler: accounts.Profile, Auth: httpapi.AuthRequired},

		{Method: http.MethodPost, Pattern: "/api/v1/storefronts", Handler: storefronts.Create, Auth: httpapi.AuthRequired, Role: string(models.RoleSeller)},
		{Method: http.MethodGet, Pattern: "/api/v1/storefronts/mine", Handler: storefronts.ListMine, Auth: httpapi.AuthRequired, Role: string(models.RoleSeller)},
		{Method: http.MethodGet, Pattern: "/api/v1/storefronts/:id", Handler: storefronts.Get},
		{Method: http.MethodGet, Pattern: "/api/v1/storefronts", Handler: storefronts.ListAll},

		{Method: http.MethodPost, Pattern: "/api/v1/items", Handler: items.Add},
		{Method: http.MethodGet, Pattern: "/api/v1/items", Handler: items.ListByStore},

		{Method: http.MethodPost, Pattern: "/api/v1/reviews", Handler: reviews.Create, Auth: httpapi.AuthRequired},
		{Method: http.MethodGet, Pattern: "/api/v1/reviews", Handler: reviews.ListByItem},

		{Method: http.MethodPost, Pattern: "/api/v1/orders", Handler: orders.Create, Auth: httpapi.AuthRequired},
		{Method: http.MethodGet, Pattern: "/api/v1/orders", Handler: orders.ListMine, Auth: httpapi.AuthRequired},
	}

	return httpapi.NewRouter(cfg.Authenticator, routes)
}
