package postgres

import (
	"context"

	"cardapio/internal/domain/entity"
	domainerrors "cardapio/internal/domain/errors"
	"cardapio/internal/domain/repository"
	"cardapio/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tenantRepository implements the domain.TenantRepository interface using GORM.
// It is the only repository that touches the shared public schema.
type tenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository is the constructor for tenantRepository.
func NewTenantRepository(db *gorm.DB) repository.TenantRepository {
	return &tenantRepository{db: db}
}

// Create inserts the registry row and backfills generated fields.
func (repo *tenantRepository) Create(ctx context.Context, tenant *entity.Tenant) error {
	m := model.FromTenantDomain(tenant)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WithDetails("identificador_url, nome_schema_db ou email_responsavel já cadastrado")
		}

		return errors.Wrap(err, "failed to insert tenant registry row")
	}

	tenant.ID = m.ID
	tenant.Active = m.Active
	tenant.CreatedAt = m.CreatedAt
	tenant.UpdatedAt = m.UpdatedAt

	return nil
}

// FindByID retrieves a single tenant by its registry ID.
func (repo *tenantRepository) FindByID(ctx context.Context, id int64) (*entity.Tenant, error) {
	var m model.TenantModel

	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "tenant not found")
		}

		return nil, errors.Wrap(err, "failed to find tenant by id")
	}

	return model.ToTenantDomain(&m), nil
}

// FindByEmail retrieves a tenant by its responsible-party login email.
func (repo *tenantRepository) FindByEmail(ctx context.Context, email string) (*entity.Tenant, error) {
	var m model.TenantModel

	err := repo.db.WithContext(ctx).Where("email_responsavel = ?", email).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "tenant not found")
		}

		return nil, errors.Wrap(err, "failed to find tenant by email")
	}

	return model.ToTenantDomain(&m), nil
}

// FindActiveBySlug resolves a public menu slug. Inactive tenants look
// exactly like missing ones from the outside.
func (repo *tenantRepository) FindActiveBySlug(ctx context.Context, slug entity.Identifier) (*entity.Tenant, error) {
	var m model.TenantModel

	err := repo.db.WithContext(ctx).
		Where("identificador_url = ? AND ativo = TRUE", slug.String()).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "tenant not found")
		}

		return nil, errors.Wrap(err, "failed to find tenant by slug")
	}

	return model.ToTenantDomain(&m), nil
}

// Update writes only the columns present in the patch, then reloads the row.
func (repo *tenantRepository) Update(ctx context.Context, id int64, patch entity.TenantPatch) (*entity.Tenant, error) {
	updates := tenantPatchColumns(patch)

	result := repo.db.WithContext(ctx).
		Model(&model.TenantModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update tenant")
	}
	if result.RowsAffected == 0 {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "tenant not found")
	}

	return repo.FindByID(ctx, id)
}

func tenantPatchColumns(patch entity.TenantPatch) map[string]any {
	updates := make(map[string]any)

	if patch.DisplayName != nil {
		updates["nome_fantasia"] = *patch.DisplayName
	}
	if patch.LegalName != nil {
		updates["razao_social"] = *patch.LegalName
	}
	if patch.CNPJ != nil {
		updates["cnpj"] = *patch.CNPJ
	}
	if patch.Address != nil {
		updates["endereco_completo"] = *patch.Address
	}
	if patch.Phone != nil {
		updates["telefone_contato"] = *patch.Phone
	}
	if patch.LogoPath != nil {
		updates["path_logo"] = *patch.LogoPath
	}
	if patch.PrimaryHex != nil {
		updates["cor_primaria_hex"] = *patch.PrimaryHex
	}
	if patch.SecondaryHex != nil {
		updates["cor_secundaria_hex"] = *patch.SecondaryHex
	}
	if patch.OpeningTime != nil {
		updates["horario_abertura"] = *patch.OpeningTime
	}
	if patch.ClosingTime != nil {
		updates["horario_fechamento"] = *patch.ClosingTime
	}
	if patch.OpenDays != nil {
		updates["dias_funcionamento"] = model.OpenDaysMap(patch.OpenDays)
	}

	return updates
}
