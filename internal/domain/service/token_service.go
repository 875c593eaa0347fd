package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the verified payload of a bearer token: the complete tenant
// context for a request. The schema name is embedded at login and
// trusted after signature verification, never re-read from storage per
// request; that is safe because schema names are immutable once
// provisioned.
type Claims struct {
	TenantID int64  `json:"restauranteId"`
	Email    string `json:"email"`
	Schema   string `json:"nomeSchemaDb"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies the signed, time-limited bearer
// tokens that carry a tenant's identity between requests.
type TokenService interface {
	// GenerateToken signs a token embedding the tenant context.
	GenerateToken(tenantID int64, email, schema string) (string, error)

	// ValidateToken verifies signature and expiry. Expired tokens return
	// domainerrors.ErrTokenExpired; anything else invalid returns
	// domainerrors.ErrTokenInvalid.
	ValidateToken(tokenString string) (*Claims, error)
}
