package postgres

import (
	"context"
	"fmt"

	"cardapio/internal/domain/entity"
	domainerrors "cardapio/internal/domain/errors"
	"cardapio/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// schemaProvisioner runs the per-tenant DDL. Every statement addresses
// objects schema-qualified, so no search_path juggling is needed and a
// concurrent request can never land in the wrong namespace.
//
// The schema name is the single value interpolated into the DDL text,
// and it only ever arrives as an entity.Identifier, whose constructor
// rejects anything beyond [a-z0-9_].
type schemaProvisioner struct {
	db *gorm.DB
}

// NewSchemaProvisioner is the constructor for schemaProvisioner.
func NewSchemaProvisioner(db *gorm.DB) repository.SchemaProvisioner {
	return &schemaProvisioner{db: db}
}

// CreateTenantSchema creates the namespace, the shared trigger function
// and the four menu tables. It is called inside the provisioning
// transaction, so any failure rolls everything back, registry row
// included.
func (prov *schemaProvisioner) CreateTenantSchema(ctx context.Context, schema entity.Identifier) error {
	for _, stmt := range tenantSchemaStatements(schema.String()) {
		if err := prov.db.WithContext(ctx).Exec(stmt).Error; err != nil {
			if isUniqueConstraintViolation(err) {
				return domainerrors.ErrConflict.WithDetails("schema do tenant já existe")
			}

			return errors.Wrapf(domainerrors.ErrProvisioningFailed, "tenant schema DDL failed: %v", err)
		}
	}

	return nil
}

func tenantSchemaStatements(schema string) []string {
	return []string{
		fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %s`, schema),

		// Shared BEFORE UPDATE trigger function keeping data_atualizacao fresh.
		fmt.Sprintf(`
			CREATE OR REPLACE FUNCTION %s.atualizar_data_atualizacao_tenant_tables()
			RETURNS TRIGGER AS $$
			BEGIN
				NEW.data_atualizacao = CURRENT_TIMESTAMP;
				RETURN NEW;
			END;
			$$ LANGUAGE plpgsql`, schema),

		fmt.Sprintf(`
			CREATE TABLE %s.categorias (
				id SERIAL PRIMARY KEY,
				nome TEXT NOT NULL UNIQUE,
				descricao TEXT,
				ordem_exibicao INTEGER DEFAULT 0,
				ativo BOOLEAN DEFAULT TRUE,
				data_criacao TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
				data_atualizacao TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
			)`, schema),
		fmt.Sprintf(`
			CREATE TRIGGER trg_categorias_data_atualizacao
			BEFORE UPDATE ON %s.categorias
			FOR EACH ROW EXECUTE FUNCTION %s.atualizar_data_atualizacao_tenant_tables()`, schema, schema),

		fmt.Sprintf(`
			CREATE TABLE %s.produtos (
				id SERIAL PRIMARY KEY,
				categoria_id INTEGER NOT NULL REFERENCES %s.categorias(id) ON DELETE RESTRICT,
				nome TEXT NOT NULL,
				descricao TEXT,
				preco NUMERIC(10, 2) NOT NULL,
				url_foto TEXT,
				ativo BOOLEAN DEFAULT TRUE,
				ordem_exibicao INTEGER DEFAULT 0,
				data_criacao TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
				data_atualizacao TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
			)`, schema, schema),
		fmt.Sprintf(`CREATE INDEX idx_produtos_categoria_id ON %s.produtos(categoria_id)`, schema),
		fmt.Sprintf(`CREATE INDEX idx_produtos_nome ON %s.produtos(nome)`, schema),
		fmt.Sprintf(`
			CREATE TRIGGER trg_produtos_data_atualizacao
			BEFORE UPDATE ON %s.produtos
			FOR EACH ROW EXECUTE FUNCTION %s.atualizar_data_atualizacao_tenant_tables()`, schema, schema),

		fmt.Sprintf(`
			CREATE TABLE %s.promocoes (
				id SERIAL PRIMARY KEY,
				nome_promocao TEXT NOT NULL,
				descricao_promocao TEXT,
				tipo_promocao TEXT NOT NULL CHECK (tipo_promocao IN (
					'DESCONTO_PERCENTUAL_PRODUTO',
					'PRECO_FIXO_PRODUTO',
					'COMBO_PRECO_FIXO',
					'LEVE_X_PAGUE_Y_PRODUTO'
				)),
				valor_desconto_percentual NUMERIC(5, 2) CHECK (
					valor_desconto_percentual IS NULL OR
					(valor_desconto_percentual > 0 AND valor_desconto_percentual <= 100)
				),
				preco_promocional_combo NUMERIC(10, 2) CHECK (
					preco_promocional_combo IS NULL OR preco_promocional_combo > 0
				),
				data_inicio TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				data_fim TIMESTAMPTZ,
				ativo BOOLEAN DEFAULT TRUE,
				data_criacao TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
				data_atualizacao TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
			)`, schema),
		fmt.Sprintf(`
			CREATE TRIGGER trg_promocoes_data_atualizacao
			BEFORE UPDATE ON %s.promocoes
			FOR EACH ROW EXECUTE FUNCTION %s.atualizar_data_atualizacao_tenant_tables()`, schema, schema),

		fmt.Sprintf(`
			CREATE TABLE %s.promocao_produtos (
				id SERIAL PRIMARY KEY,
				promocao_id INTEGER NOT NULL REFERENCES %s.promocoes(id) ON DELETE CASCADE,
				produto_id INTEGER NOT NULL REFERENCES %s.produtos(id) ON DELETE RESTRICT,
				quantidade_no_combo INTEGER DEFAULT 1 CHECK (quantidade_no_combo > 0),
				preco_promocional_produto_individual NUMERIC(10, 2) CHECK (
					preco_promocional_produto_individual IS NULL OR
					preco_promocional_produto_individual >= 0
				),
				data_criacao TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
				UNIQUE (promocao_id, produto_id)
			)`, schema, schema, schema),
	}
}
