package handler

import (
	"log/slog"
	"net/http"

	"cardapio/internal/delivery/http/response"
	"cardapio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PublicHandler serves the unauthenticated menu endpoint.
type PublicHandler struct {
	uc     usecase.PublicUsecase
	logger *slog.Logger
}

// NewPublicHandler is the constructor for PublicHandler, injected by Fx.
func NewPublicHandler(uc usecase.PublicUsecase, logger *slog.Logger) *PublicHandler {
	return &PublicHandler{uc: uc, logger: logger}
}

// Menu returns the complete public menu for a restaurant slug.
func (h *PublicHandler) Menu(c echo.Context) error {
	output, err := h.uc.Menu(c.Request().Context(), c.Param("identificador_url"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Menu retrieved")
}
