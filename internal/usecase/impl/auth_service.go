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

// authService implements the AuthUsecase interface.
type authService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	tokens    service.TokenService
	logger    *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager: txManager,
		hasher:    hasher,
		tokens:    tokens,
		logger:    logger,
	}
}

// Login authenticates a tenant's responsible party and issues a bearer
// token. Unknown email, inactive tenant and wrong password all surface
// as the same ErrInvalidCredentials, so responses do not reveal which
// part failed.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Authenticating tenant", "email", input.Email)

	var tenant *entity.Tenant

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.Tenants().FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown email")
			}

			return errors.Wrap(err, "failed to find tenant by email")
		}
		tenant = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "login failed")
	}

	if !tenant.Active {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "tenant inactive")
	}

	if !srv.hasher.Check(input.Password, tenant.PasswordHash) {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "wrong password")
	}

	token, err := srv.tokens.GenerateToken(tenant.ID, tenant.Email, tenant.SchemaName.String())
	if err != nil {
		srv.logger.Error("failed to sign token", "tenantID", tenant.ID, "error", err)

		return nil, errors.Wrap(err, "failed to sign token")
	}
	srv.logger.Info("tenant authenticated", "tenantID", tenant.ID)

	return &usecase.LoginOutput{
		Token: token,
		Tenant: usecase.TenantSummary{
			ID:          tenant.ID,
			DisplayName: tenant.DisplayName,
			Email:       tenant.Email,
			SchemaName:  tenant.SchemaName.String(),
		},
	}, nil
}
