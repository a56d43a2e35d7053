package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role represents an account role
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
)

// ValidRole reports whether s is one of the known account roles
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleBuyer, RoleSeller:
		return true
	}
	return false
}

// Account represents a registered user account.
// The email is stored lowercased; every lookup normalizes the same way.
type Account struct {
	ID            string    `json:"id" dynamodbav:"id"`
	Email         string    `json:"email" dynamodbav:"email"`
	Name          string    `json:"name" dynamodbav:"name"`
	PasswordHash  string    `json:"-" dynamodbav:"passwordHash"`
	Role          Role      `json:"role" dynamodbav:"role"`
	HasStorefront bool      `json:"hasStorefront" dynamodbav:"hasStorefront"`
	CreatedAt     time.Time `json:"createdAt" dynamodbav:"createdAt"`
}

// NewAccount creates an account with a generated ID, normalized email and creation timestamp
func NewAccount(name, email string, role Role) *Account {
	return &Account{
		ID:        uuid.New().String(),
		Email:     NormalizeEmail(email),
		Name:      strings.TrimSpace(name),
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
}

// NormalizeEmail lowercases and trims an email address for storage and lookup
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsSeller returns true if the account can own a storefront
func (a *Account) IsSeller() bool {
	return a.Role == RoleSeller
}
