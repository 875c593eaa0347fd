// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"cardapio/internal/domain/entity"
)

// TenantContext is the resolved identity of an authenticated request:
// exactly one tenant and its private schema. It is built by the auth
// middleware from verified token claims and passed explicitly through
// every tenant-scoped call chain.
type TenantContext struct {
	TenantID int64
	Email    string
	Schema   entity.Identifier
}
