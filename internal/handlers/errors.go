package handlers

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"marketplace-api/internal/repositories"
	"marketplace-api/internal/services"
	"marketplace-api/pkg/httpapi"
)

// errorResponse maps a service error onto the error taxonomy: validation 400,
// bad credentials 401, not found 404, duplicate 409, anything else 500 with a
// generic message so internal detail never leaks to the caller.
func errorResponse(log *logrus.Entry, err error) *httpapi.Response {
	switch {
	case services.IsInvalidInput(err):
		return httpapi.Error(http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrBadCredentials):
		return httpapi.Error(http.StatusUnauthorized, "Invalid email or password")
	case repositories.IsNotFound(err):
		return httpapi.Error(http.StatusNotFound, err.Error())
	case repositories.IsDuplicate(err):
		return httpapi.Error(http.StatusConflict, err.Error())
	default:
		log.WithError(err).Error("Request failed")
		return httpapi.Error(http.StatusInternalServerError, "Internal server error")
	}
}
