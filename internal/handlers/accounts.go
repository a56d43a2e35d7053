package handlers

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"marketplace-api/internal/services"
	"marketplace-api/pkg/httpapi"
)

// AccountHandler handles account-related requests
type AccountHandler struct {
	accounts services.AccountService
	log      *logrus.Entry
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accounts services.AccountService) *AccountHandler {
	return &AccountHandler{
		accounts: accounts,
		log:      logrus.WithField("handler", "accounts"),
	}
}

// Register handles POST /accounts/register
func (h *AccountHandler) Register(ctx context.Context, req *httpapi.Request) *httpapi.Response {
	var body services.RegisterRequest
	if err := req.Bind(&body); err != nil {
		return httpapi.Error(http.StatusBadRequest, err.Error())
	}

	result, err := h.accounts.Register(ctx, &body)
	if err != nil {
		return errorResponse(h.log, err)
	}
	return httpapi.JSON(http.StatusCreated, result)
}

// Login handles POST /accounts/login
func (h *AccountHandler) Login(ctx context.Context, req *httpapi.Request) *httpapi.Response {
	var body services.LoginRequest
	if err := req.Bind(&body); err != nil {
		return httpapi.Error(http.StatusBadRequest, err.Error())
	}

	result, err := h.accounts.Login(ctx, &body)
	if err != nil {
		return errorResponse(h.log, err)
	}
	return httpapi.JSON(http.StatusOK, result)
}

// Profile handles GET /accounts/profile
func (h *AccountHandler) Profile(ctx context.Context, req *httpapi.Request) *httpapi.Response {
	account, err := h.accounts.GetProfile(ctx, req.Principal.AccountID)
	if err != nil {
		return errorResponse(h.log, err)
	}
	return httpapi.JSON(http.StatusOK, account)
}
