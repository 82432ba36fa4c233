// Package apierrors holds the error taxonomy of the service. All errors
// that cross a package boundary are created here, so the REST layer can
// map them onto status codes in a single place.
package apierrors

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError is the generic error carrying an HTTP-equivalent status.
type StatusError struct {
	status  int
	message string
	details string
}

func (e *StatusError) Error() string {
	if e.details == "" {
		return e.message
	}

	return fmt.Sprintf("%s: %s", e.message, e.details)
}

func (e *StatusError) Status() int {
	return e.status
}

func (e *StatusError) Details() string {
	return e.details
}

func newStatusError(status int, message, details string) error {
	return &StatusError{
		status:  status,
		message: message,
		details: details,
	}
}

func NewBadRequest(details string) error {
	return newStatusError(http.StatusBadRequest, "bad request", details)
}

func NewUnauthorized(details string) error {
	return newStatusError(http.StatusUnauthorized, "unauthorized", details)
}

func NewForbidden(details string) error {
	return newStatusError(http.StatusForbidden, "forbidden", details)
}

func NewNotFound(details string) error {
	return newStatusError(http.StatusNotFound, "not found", details)
}

func NewConflict(details string) error {
	return newStatusError(http.StatusConflict, "conflict", details)
}

func NewInternalServerError(details string) error {
	return newStatusError(http.StatusInternalServerError, "internal server error", details)
}

// NewBadGateway wraps an upstream transport failure for the REST layer.
func NewBadGateway(details string) error {
	return newStatusError(http.StatusBadGateway, "upstream unavailable", details)
}

// AsAPIStatus returns the StatusError if err carries one, else nil.
func AsAPIStatus(err error) *StatusError {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr
	}

	return nil
}

func isStatus(err error, status int) bool {
	if statusErr := AsAPIStatus(err); statusErr != nil {
		return statusErr.status == status
	}

	return false
}

func IsBadRequestError(err error) bool {
	return isStatus(err, http.StatusBadRequest)
}

func IsUnauthorizedError(err error) bool {
	return isStatus(err, http.StatusUnauthorized)
}

func IsForbiddenError(err error) bool {
	return isStatus(err, http.StatusForbidden)
}

func IsNotFoundError(err error) bool {
	return isStatus(err, http.StatusNotFound)
}

func IsConflictError(err error) bool {
	return isStatus(err, http.StatusConflict)
}

func IsInternalServerError(err error) bool {
	return isStatus(err, http.StatusInternalServerError)
}

func IsBadGatewayError(err error) bool {
	return isStatus(err, http.StatusBadGateway)
}

// ValidationError is raised when a gateway-specific required field is
// missing at request-build time, before any network call happens.
type ValidationError struct {
	Field     string
	GatewayID string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %s is required for gateway %s", e.Field, e.GatewayID)
}

func NewValidation(field, gatewayID string) error {
	return &ValidationError{
		Field:     field,
		GatewayID: gatewayID,
	}
}

func AsValidation(err error) *ValidationError {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	return AsValidation(err) != nil
}

// PrecheckError is raised when the shop profile or public key is
// unavailable, before the request payload is even assembled.
type PrecheckError struct {
	Reason string
}

func (e *PrecheckError) Error() string {
	return e.Reason
}

func NewPrecheck(reason string) error {
	return &PrecheckError{Reason: reason}
}

func IsPrecheckError(err error) bool {
	var precheckErr *PrecheckError
	return errors.As(err, &precheckErr)
}
