// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"fmt"

	"cardapio/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds one GORM transaction object and hands out repositories bound
// to it, so registry writes and tenant schema DDL share a transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

// Tenants creates a tenant registry repository bound to the transaction.
func (f *gormRepositoryFactory) Tenants() repository.TenantRepository {
	return NewTenantRepository(f.tx)
}

// Provisioner creates a schema provisioner bound to the transaction.
func (f *gormRepositoryFactory) Provisioner() repository.SchemaProvisioner {
	return NewSchemaProvisioner(f.tx)
}

// Categories creates a category repository bound to the transaction.
func (f *gormRepositoryFactory) Categories() repository.CategoryRepository {
	return NewCategoryRepository(f.tx)
}

// Products creates a product repository bound to the transaction.
func (f *gormRepositoryFactory) Products() repository.ProductRepository {
	return NewProductRepository(f.tx)
}

// Promotions creates a promotion repository bound to the transaction.
func (f *gormRepositoryFactory) Promotions() repository.PromotionRepository {
	return NewPromotionRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// A panic inside the callback must never leave a transaction open.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}

	err := fn(factory)
	if err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
