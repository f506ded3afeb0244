package httperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

// AuthError covers missing and unverifiable tokens.
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string { return e.Message }

func MissingToken() error {
	return &AuthError{Code: "missing_token", Message: "authorization header is missing or malformed"}
}

func InvalidToken() error {
	return &AuthError{Code: "invalid_token", Message: "token is invalid or expired"}
}

func InvalidCredentials() error {
	return &AuthError{Code: "invalid_credentials", Message: "login or password is incorrect"}
}

func InactiveStaff() error {
	return &AuthError{Code: "staff_inactive", Message: "staff account is not activated"}
}

// AuthzError covers role denials on otherwise valid tokens.
type AuthzError struct {
	Code    string
	Message string
}

func (e *AuthzError) Error() string { return e.Message }

func RoleNotPermitted(role string) error {
	return &AuthzError{Code: "role_not_permitted", Message: fmt.Sprintf("role %q is not permitted for this action", role)}
}

// ValidationError covers rejected field values: duplicates and closed-set
// violations.
type ValidationError struct {
	Code    string
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func DuplicateField(field string) error {
	return &ValidationError{Code: "duplicate_field", Field: field, Message: fmt.Sprintf("%s already exists", field)}
}

func InvalidFieldValue(field, message string) error {
	return &ValidationError{Code: "invalid_field_value", Field: field, Message: message}
}

func InvalidEnumValue(field string, allowed []string) error {
	return &ValidationError{Code: "invalid_enum_value", Field: field, Message: fmt.Sprintf("%s must be one of %v", field, allowed)}
}

type NotFoundError struct {
	Entity  string
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func EntityNotFound(entity string) error {
	return &NotFoundError{Entity: entity, Message: entity + " not found"}
}

type StorageError struct {
	Err error
}

func (e *StorageError) Error() string { return "storage error: " + e.Err.Error() }
func (e *StorageError) Unwrap() error { return e.Err }

func Storage(err error) error {
	return &StorageError{Err: err}
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

// Respond maps a service error onto the wire. Unknown errors are reported as
// internal without leaking their text.
func Respond(c *gin.Context, err error) {
	var (
		authErr  *AuthError
		authzErr *AuthzError
		valErr   *ValidationError
		nfErr    *NotFoundError
	)
	switch {
	case errors.As(err, &authErr):
		Write(c, http.StatusUnauthorized, authErr.Code, authErr.Message)
	case errors.As(err, &authzErr):
		Write(c, http.StatusUnauthorized, authzErr.Code, authzErr.Message)
	case errors.As(err, &valErr):
		Write(c, http.StatusBadRequest, valErr.Code, valErr.Message)
	case errors.As(err, &nfErr):
		Write(c, http.StatusNotFound, "not_found", nfErr.Message)
	default:
		Write(c, http.StatusInternalServerError, "internal_error", "internal error")
	}
}
