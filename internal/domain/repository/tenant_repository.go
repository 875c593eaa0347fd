// Package repository defines the persistence contracts the use case
// layer depends on, keeping it independent of any database driver.
package repository

import (
	"context"

	"cardapio/internal/domain/entity"
)

// TenantRepository manages the global tenant registry in the shared
// public schema.
type TenantRepository interface {
	// Create inserts the registry row and fills in the generated ID and
	// timestamps. A duplicate slug, schema name or email surfaces as
	// domainerrors.ErrConflict.
	Create(ctx context.Context, tenant *entity.Tenant) error

	// FindByID returns domainerrors.ErrNotFound when absent.
	FindByID(ctx context.Context, id int64) (*entity.Tenant, error)

	// FindByEmail is used by authentication; it returns the stored
	// password hash alongside the tenant.
	FindByEmail(ctx context.Context, email string) (*entity.Tenant, error)

	// FindActiveBySlug backs the public menu page: inactive tenants are
	// reported as not found.
	FindActiveBySlug(ctx context.Context, slug entity.Identifier) (*entity.Tenant, error)

	// Update applies a partial registry update and returns the fresh row.
	// Identity fields are out of the patch type, so they cannot change.
	Update(ctx context.Context, id int64, patch entity.TenantPatch) (*entity.Tenant, error)
}

// SchemaProvisioner creates the per-tenant schema and its tables.
// Implementations must accept the namespace only as a validated
// entity.Identifier, the sole value ever interpolated into DDL text.
type SchemaProvisioner interface {
	// CreateTenantSchema runs the full DDL template for a new tenant.
	// It is only called inside the provisioning transaction, so a failed
	// attempt leaves nothing behind.
	CreateTenantSchema(ctx context.Context, schema entity.Identifier) error
}
