// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"cardapio/internal/domain/entity"
	domainerrors "cardapio/internal/domain/errors"
	"cardapio/internal/domain/repository"
	"cardapio/internal/domain/service"
	"cardapio/internal/usecase"

	"github.com/pkg/errors"
)

// tenantService implements the TenantUsecase interface.
type tenantService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	menuCache service.MenuCache
	logger    *slog.Logger
}

// NewTenantService is the constructor for tenantService.
func NewTenantService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	menuCache service.MenuCache,
	logger *slog.Logger,
) usecase.TenantUsecase {
	return &tenantService{
		txManager: txManager,
		hasher:    hasher,
		menuCache: menuCache,
		logger:    logger,
	}
}

// Provision creates a new tenant end to end: the registry row in the
// public schema plus the tenant's own schema and menu tables, all in
// one transaction so a failure at any step leaves nothing behind.
func (srv *tenantService) Provision(ctx context.Context, input *usecase.ProvisionTenantInput) (*usecase.TenantOutput, error) {
	srv.logger.Info("Provisioning tenant", "slug", input.Slug, "schema", input.SchemaName)

	slug, err := entity.ParseIdentifier(input.Slug)
	if err != nil {
		return nil, errors.Wrap(err, "invalid slug")
	}
	schema, err := entity.ParseIdentifier(input.SchemaName)
	if err != nil {
		return nil, errors.Wrap(err, "invalid schema name")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	tenant := &entity.Tenant{
		Slug:         slug,
		DisplayName:  input.DisplayName,
		LegalName:    input.LegalName,
		CNPJ:         input.CNPJ,
		Address:      input.Address,
		Phone:        input.Phone,
		LogoPath:     input.LogoPath,
		PrimaryHex:   input.PrimaryHex,
		SecondaryHex: input.SecondaryHex,
		SchemaName:   schema,
		Email:        input.Email,
		PasswordHash: hash,
		Active:       true,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// 1. Insert the registry row. Duplicate slug, schema or email
		// aborts here as a conflict before any DDL runs.
		if err := repoFactory.Tenants().Create(ctx, tenant); err != nil {
			return errors.Wrap(err, "failed to create tenant registry row")
		}

		// 2. Create the schema and its tables. Rolling back also drops
		// the schema, since DDL is transactional in PostgreSQL.
		if err := repoFactory.Provisioner().CreateTenantSchema(ctx, tenant.SchemaName); err != nil {
			return errors.Wrap(err, "failed to provision tenant schema")
		}

		return nil
	})

	if err != nil {
		srv.logger.Error("tenant provisioning failed", "slug", input.Slug, "error", err)

		return nil, errors.Wrap(err, "failed to provision tenant")
	}
	srv.logger.Info("tenant provisioned", "tenantID", tenant.ID, "schema", tenant.SchemaName)

	return usecase.NewTenantOutput(tenant), nil
}

// Get returns the authenticated tenant's registry data.
func (srv *tenantService) Get(ctx context.Context, tc usecase.TenantContext) (*usecase.TenantOutput, error) {
	srv.logger.Debug("Getting tenant", "tenantID", tc.TenantID)

	var tenant *entity.Tenant

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.Tenants().FindByID(ctx, tc.TenantID)
		if err != nil {
			return errors.Wrap(err, "failed to find tenant")
		}
		tenant = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get tenant")
	}

	return usecase.NewTenantOutput(tenant), nil
}

// Update applies a partial registry update. Identity fields are not in
// the input type, so slug, schema and email cannot change here.
func (srv *tenantService) Update(ctx context.Context, tc usecase.TenantContext, input *usecase.UpdateTenantInput) (*usecase.TenantOutput, error) {
	srv.logger.Info("Updating tenant", "tenantID", tc.TenantID)

	if input.OpenDays != nil {
		if err := validateOpenDays(input.OpenDays); err != nil {
			return nil, err
		}
	}

	patch := entity.TenantPatch{
		DisplayName:  input.DisplayName,
		LegalName:    input.LegalName,
		CNPJ:         input.CNPJ,
		Address:      input.Address,
		Phone:        input.Phone,
		LogoPath:     input.LogoPath,
		PrimaryHex:   input.PrimaryHex,
		SecondaryHex: input.SecondaryHex,
		OpeningTime:  input.OpeningTime,
		ClosingTime:  input.ClosingTime,
		OpenDays:     input.OpenDays,
	}
	if patch.Empty() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "no fields to update")
	}

	return srv.applyPatch(ctx, tc, patch)
}

// UpdateLogo stores the public path of an uploaded logo.
func (srv *tenantService) UpdateLogo(ctx context.Context, tc usecase.TenantContext, logoPath string) (*usecase.TenantOutput, error) {
	srv.logger.Info("Updating tenant logo", "tenantID", tc.TenantID)

	if logoPath == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "empty logo path")
	}

	return srv.applyPatch(ctx, tc, entity.TenantPatch{LogoPath: &logoPath})
}

func (srv *tenantService) applyPatch(ctx context.Context, tc usecase.TenantContext, patch entity.TenantPatch) (*usecase.TenantOutput, error) {
	var tenant *entity.Tenant

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		updated, err := repoFactory.Tenants().Update(ctx, tc.TenantID, patch)
		if err != nil {
			return errors.Wrap(err, "failed to update tenant")
		}
		tenant = updated

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update tenant")
	}

	// Profile fields show up on the public menu page.
	if err := srv.menuCache.InvalidateMenu(ctx, tenant.Slug.String()); err != nil {
		srv.logger.Warn("failed to invalidate menu cache", "slug", tenant.Slug, "error", err)
	}

	return usecase.NewTenantOutput(tenant), nil
}

func validateOpenDays(days map[string]bool) error {
	valid := map[string]struct{}{
		"dom": {}, "seg": {}, "ter": {}, "qua": {}, "qui": {}, "sex": {}, "sab": {},
	}
	for key := range days {
		if _, ok := valid[key]; !ok {
			return errors.Wrap(domainerrors.ErrValidationFailed, "dias_funcionamento: unknown day key "+key)
		}
	}

	return nil
}
