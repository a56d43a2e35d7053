// Package server wires configuration, storage, services and the route table
// into one dependency container shared by the local server and the Lambda
// entrypoint.
package server

import (
	"context"
	"fmt"
	"time"

	"marketplace-api/internal/auth"
	"marketplace-api/internal/config"
	"marketplace-api/internal/handlers"
	"marketplace-api/internal/repositories/dynamo"
	"marketplace-api/internal/services"
	"marketplace-api/pkg/httpapi"
)

// Container holds all application dependencies
type Container struct {
	Config            *config.Config
	AccountService    services.AccountService
	StorefrontService services.StorefrontService
	ItemService       services.ItemService
	ReviewService     services.ReviewService
	OrderService      services.OrderService
	Router            *httpapi.Router

	tokens *auth.Service
}

// NewContainer creates a new dependency injection container
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	db, err := dynamo.NewClient(ctx, cfg.AWS)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}

	accountRepo := dynamo.NewAccountRepository(db, cfg)
	storefrontRepo := dynamo.NewStorefrontRepository(db, cfg)
	itemRepo := dynamo.NewItemRepository(db, cfg)
	reviewRepo := dynamo.NewReviewRepository(db, cfg)
	orderRepo := dynamo.NewOrderRepository(db, cfg)

	tokens := auth.NewService(&auth.Config{
		Secret:        cfg.JWT.Secret,
		TokenDuration: time.Duration(cfg.JWT.ExpiryHours) * time.Hour,
	})

	container := &Container{
		Config:            cfg,
		AccountService:    services.NewAccountService(accountRepo, tokens),
		StorefrontService: services.NewStorefrontService(storefrontRepo, accountRepo),
		ItemService:       services.NewItemService(itemRepo),
		ReviewService:     services.NewReviewService(reviewRepo, itemRepo),
		OrderService:      services.NewOrderService(orderRepo, itemRepo),
		tokens:            tokens,
	}

	container.Router = handlers.NewRouter(&handlers.RouterConfig{
		Accounts:      container.AccountService,
		Storefronts:   container.StorefrontService,
		Items:         container.ItemService,
		Reviews:       container.ReviewService,
		Orders:        container.OrderService,
		Authenticator: &tokenAuthenticator{tokens: tokens},
	})

	return container, nil
}

// Close cleans up all resources
func (c *Container) Close() error {
	return nil
}

// tokenAuthenticator adapts the token service onto the router's Authenticator
// interface.
type tokenAuthenticator struct {
	tokens *auth.Service
}

func (a *tokenAuthenticator) Authenticate(token string) (*httpapi.Principal, error) {
	claims, err := a.tokens.ValidateToken(token)
	if err != nil {
		return nil, err
	}
	return &httpapi.Principal{
		AccountID: claims.AccountID,
		Email:     claims.Email,
		Role:      claims.Role,
	}, nil
}
