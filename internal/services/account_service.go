package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"marketplace-api/internal/auth"
	"marketplace-api/internal/models"
	"marketplace-api/internal/repositories"
)

// accountService implements the AccountService interface
type accountService struct {
	accounts  repositories.AccountRepository
	tokens    *auth.Service
	validator *validator.Validate
	log       *logrus.Entry
}

// NewAccountService creates a new account service instance
func NewAccountService(accounts repositories.AccountRepository, tokens *auth.Service) AccountService {
	return &accountService{
		accounts:  accounts,
		tokens:    tokens,
		validator: validator.New(),
		log:       logrus.WithField("service", "accounts"),
	}
}

// Register creates a new account and issues a token for it. Email uniqueness
// is a best-effort pre-insert lookup, not a transactional guarantee: two
// concurrent registrations for the same address can both pass the check.
func (s *accountService) Register(ctx context.Context, req *RegisterRequest) (*AuthResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalidInput("%v", err)
	}

	email := models.NormalizeEmail(req.Email)
	existing, err := s.accounts.GetByEmail(ctx, email)
	if err != nil && !repositories.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if existing != nil {
		return nil, repositories.DuplicateError("account", "email", email)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := models.NewAccount(req.Name, email, models.Role(req.Role))
	account.PasswordHash = hash

	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	token, err := s.tokens.GenerateToken(account.ID, account.Email, string(account.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"account_id": account.ID,
		"role":       account.Role,
	}).Info("Account registered")

	return &AuthResult{Account: account, Token: token}, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password produce the same error.
func (s *accountService) Login(ctx context.Context, req *LoginRequest) (*AuthResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalidInput("%v", err)
	}

	account, err := s.accounts.GetByEmail(ctx, models.NormalizeEmail(req.Email))
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, ErrBadCredentials
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if !auth.CheckPassword(account.PasswordHash, req.Password) {
		return nil, ErrBadCredentials
	}

	token, err := s.tokens.GenerateToken(account.ID, account.Email, string(account.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &AuthResult{Account: account, Token: token}, nil
}

// GetProfile resolves the account behind a verified token. The record is
// fetched fresh so a deleted account yields not-found even with a valid token.
func (s *accountService) GetProfile(ctx context.Context, accountID string) (*models.Account, error) {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return account, nil
}
