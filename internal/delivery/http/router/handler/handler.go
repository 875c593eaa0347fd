// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"

	"cardapio/internal/delivery/http/middleware"
	"cardapio/internal/delivery/http/response"
	"cardapio/internal/usecase"

	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// tenantContext pulls the authenticated tenant context, which the auth
// middleware guarantees on protected routes.
func tenantContext(c echo.Context) (usecase.TenantContext, error) {
	tc, ok := middleware.TenantFromContext(c)
	if !ok {
		return usecase.TenantContext{}, echo.NewHTTPError(http.StatusUnauthorized, "Tenant context missing")
	}

	return tc, nil
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name+" in URL")
	}

	return id, nil
}
