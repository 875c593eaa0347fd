package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"cardapio/config"
	domainerrors "cardapio/internal/domain/errors"
	"cardapio/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// One symmetric key signs every tenant token; the claims carry the full
// tenant context so requests never look the schema up again.
type jwtService struct {
	secret   string
	tokenTTL time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.JWT == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	tokenTTL := 7 * 24 * time.Hour
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		tokenTTL = cfg.Auth.TokenTTL
	}

	return &jwtService{
		secret:   cfg.SecretKey.JWT,
		tokenTTL: tokenTTL,
	}, nil
}

// GenerateToken signs a token embedding the tenant's identity and schema.
func (s *jwtService) GenerateToken(tenantID int64, email, schema string) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		TenantID: tenantID,
		Email:    email,
		Schema:   schema,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken verifies signature and expiry and returns the embedded claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.Wrap(domainerrors.ErrTokenExpired, err.Error())
		}

		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, err.Error())
	}

	if !token.Valid {
		return nil, domainerrors.ErrTokenInvalid
	}

	return claims, nil
}
