package middleware

import (
	"strconv"
	"strings"

	"cardapio/internal/domain/entity"
	"cardapio/internal/domain/service"
	"cardapio/internal/usecase"

	"github.com/labstack/echo/v4"

	"cardapio/internal/delivery/http/response"
)

// tenantContextKey is where Authenticate stores the resolved tenant
// context on the Echo context.
const tenantContextKey = "tenantContext"

// AuthMiddleware provides middleware for JWT authentication and
// per-tenant authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and resolves the full tenant
// context from its claims. Everything fails closed: no token, a bad
// token or claims that do not parse all end the request with 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		// The schema name was validated at provisioning time, but the
		// token is still external input; re-parse before it gets near SQL.
		schema, err := entity.ParseIdentifier(claims.Schema)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid schema name in token")
		}

		c.Set(tenantContextKey, usecase.TenantContext{
			TenantID: claims.TenantID,
			Email:    claims.Email,
			Schema:   schema,
		})

		return next(c)
	}
}

// RequireTenant rejects requests whose route tenant ID differs from the
// authenticated tenant. One token can never touch another tenant's
// data, whatever the URL says. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireTenant(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tc, ok := TenantFromContext(c)
		if !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Tenant context missing")
		}

		routeID, err := strconv.ParseInt(c.Param("restauranteId"), 10, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid restaurant ID in URL")
		}

		if routeID != tc.TenantID {
			return response.Forbidden(c, "FORBIDDEN", "Token does not grant access to this restaurant")
		}

		return next(c)
	}
}

// TenantFromContext returns the tenant context set by Authenticate.
func TenantFromContext(c echo.Context) (usecase.TenantContext, bool) {
	tc, ok := c.Get(tenantContextKey).(usecase.TenantContext)

	return tc, ok
}
