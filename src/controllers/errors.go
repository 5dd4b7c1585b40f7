package controllers

import (
	"errors"
	"net/http"

	"github.com/CollectorsVault/CollectorsVault-Backend/src/services"
)

// statusFor maps service errors to HTTP status codes. Anything that is not the
// caller's fault is a 500, which is also how the API reports "not found or not owned".
func statusFor(err error) int {
	if errors.Is(err, services.ErrValidation) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
