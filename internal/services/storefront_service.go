package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"marketplace-api/internal/models"
	"marketplace-api/internal/repositories"
)

// storefrontService implements the StorefrontService interface
type storefrontService struct {
	storefronts repositories.StorefrontRepository
	accounts    repositories.AccountRepository
	validator   *validator.Validate
	log         *logrus.Entry
}

// NewStorefrontService creates a new storefront service instance
func NewStorefrontService(storefronts repositories.StorefrontRepository, accounts repositories.AccountRepository) StorefrontService {
	return &storefrontService{
		storefronts: storefronts,
		accounts:    accounts,
		validator:   validator.New(),
		log:         logrus.WithField("service", "storefronts"),
	}
}

// Create inserts a storefront for the owner and flips the owner's storefront
// flag. The owner's display name is denormalized onto the record.
func (s *storefrontService) Create(ctx context.Context, ownerID string, req *CreateStorefrontRequest) (*models.Storefront, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalidInput("%v", err)
	}

	owner, err := s.accounts.GetByID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve owner: %w", err)
	}

	storefront := models.NewStorefront(owner, req.Name, req.Description, req.Category, req.ImageURL)
	if err := s.storefronts.Create(ctx, storefront); err != nil {
		return nil, fmt.Errorf("failed to create storefront: %w", err)
	}

	if err := s.accounts.SetHasStorefront(ctx, owner.ID, true); err != nil {
		return nil, fmt.Errorf("failed to mark owner as storefront holder: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"storefront_id": storefront.ID,
		"owner_id":      owner.ID,
	}).Info("Storefront created")

	return storefront, nil
}

// Get retrieves a storefront by ID
func (s *storefrontService) Get(ctx context.Context, id string) (*models.Storefront, error) {
	if id == "" {
		return nil, invalidInput("storefront ID is required")
	}
	return s.storefronts.GetByID(ctx, id)
}

// ListByOwner returns the storefronts owned by the given account
func (s *storefrontService) ListByOwner(ctx context.Context, ownerID string) ([]models.Storefront, error) {
	storefronts, err := s.storefronts.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if storefronts == nil {
		storefronts = []models.Storefront{}
	}
	return storefronts, nil
}

// ListAll returns every storefront
func (s *storefrontService) ListAll(ctx context.Context) ([]models.Storefront, error) {
	storefronts, err := s.storefronts.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if storefronts == nil {
		storefronts = []models.Storefront{}
	}
	return storefronts, nil
}
