package usecase

import (
	"context"
)

// LoginInput is the credential payload for tenant authentication.
type LoginInput struct {
	Email    string `json:"email_responsavel" validate:"required,email"`
	Password string `json:"senha_responsavel" validate:"required"`
}

// TenantSummary is the minimal tenant identity returned on login.
type TenantSummary struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"nome_fantasia"`
	Email       string `json:"email_responsavel"`
	SchemaName  string `json:"nome_schema_db"`
}

// LoginOutput carries the signed bearer token plus basic tenant data.
type LoginOutput struct {
	Token  string        `json:"token"`
	Tenant TenantSummary `json:"restaurante"`
}

// AuthUsecase authenticates a tenant's responsible party and issues a
// bearer token embedding the tenant context.
type AuthUsecase interface {
	// Login returns domainerrors.ErrInvalidCredentials for unknown email,
	// inactive tenant and wrong password alike.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
