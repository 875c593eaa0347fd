// Package errors defines the application error taxonomy shared by all
// layers. Every component raises the most specific kind it can
// determine; the HTTP boundary maps each kind to a stable status code.
package errors

import (
	"net/http"

	"cardapio/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error carrying detailed information.
// The copy still matches its predefined base value through errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches two BaseErrors by error code, so detailed copies classify
// the same as the bare predefined values.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// Predefined error kinds, the complete failure taxonomy of the core.
var (
	// ErrValidationFailed covers malformed or missing input the caller can fix.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Dados inválidos",
		"",
	)

	// ErrInvalidIdentifier is a validation failure specific to slugs and
	// schema names, the only strings ever interpolated into SQL text.
	ErrInvalidIdentifier = NewBaseError(
		http.StatusBadRequest,
		"INVALID_IDENTIFIER",
		"Identificador inválido",
		"",
	)

	// ErrNotFound means the primary entity named by the request is absent.
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Recurso não encontrado",
		"",
	)

	// ErrReferencedNotFound means a secondary reference in the request
	// body (e.g. the product being linked) is absent.
	ErrReferencedNotFound = NewBaseError(
		http.StatusUnprocessableEntity,
		"REFERENCED_RESOURCE_NOT_FOUND",
		"Recurso referenciado não encontrado",
		"",
	)

	// ErrConflict covers uniqueness violations: duplicate slug, schema,
	// email, category name or promotion-product pair.
	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Registro duplicado",
		"",
	)

	// ErrInvalidReference is an insert or update pointing at a row that
	// does not exist, caught by the database foreign key.
	ErrInvalidReference = NewBaseError(
		http.StatusBadRequest,
		"FOREIGN_KEY_CONSTRAINT",
		"Referência inválida",
		"",
	)

	// ErrResourceInUse is a delete blocked by dependent rows.
	ErrResourceInUse = NewBaseError(
		http.StatusConflict,
		"FOREIGN_KEY_VIOLATION",
		"Recurso em uso não pode ser removido",
		"",
	)

	// ErrForbidden is the cross-tenant isolation boundary: the
	// authenticated tenant does not match the tenant in the request path.
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Acesso proibido para este restaurante",
		"",
	)

	// ErrBusinessRule covers type/field consistency violations that pass
	// schema validation but break a cross-field rule.
	ErrBusinessRule = NewBaseError(
		http.StatusUnprocessableEntity,
		"BUSINESS_RULE",
		"Operação inconsistente com as regras do negócio",
		"",
	)

	// ErrInvalidCredentials is deliberately identical for unknown email,
	// inactive tenant and wrong password.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Credenciais inválidas ou restaurante não ativo",
		"",
	)

	// ErrTokenExpired distinguishes an expired token from a bad one so
	// clients know to re-authenticate.
	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"Token expirado",
		"",
	)

	// ErrTokenInvalid covers malformed tokens and bad signatures.
	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Token inválido",
		"",
	)

	// ErrProvisioningFailed is any non-conflict failure while creating a
	// tenant and its schema. The transaction has been rolled back.
	ErrProvisioningFailed = NewBaseError(
		http.StatusInternalServerError,
		"PROVISIONING_FAILED",
		"Falha ao provisionar o restaurante",
		"",
	)

	// ErrInternal is the unclassified fallback. Details are logged, never
	// returned to the caller.
	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Erro interno no servidor",
		"",
	)
)
