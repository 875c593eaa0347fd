package repository

import "context"

// TransactionManager runs multi-step persistence work inside one
// database transaction. Provisioning depends on this to make the
// registry insert and all schema DDL atomic.
type TransactionManager interface {
	// Execute runs fn inside a transaction. A returned error rolls the
	// whole transaction back; nil commits it. All repositories obtained
	// from the factory share the transaction's connection.
	Execute(ctx context.Context, fn func(factory RepositoryFactory) error) error
}

// RepositoryFactory yields repository instances bound to the current
// transaction.
type RepositoryFactory interface {
	Tenants() TenantRepository
	Provisioner() SchemaProvisioner
	Categories() CategoryRepository
	Products() ProductRepository
	Promotions() PromotionRepository
}
