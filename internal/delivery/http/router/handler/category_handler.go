package handler

import (
	"log/slog"
	"net/http"

	"cardapio/internal/delivery/http/response"
	"cardapio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CategoryHandler holds dependencies for category CRUD handlers.
type CategoryHandler struct {
	uc     usecase.CategoryUsecase
	logger *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler, injected by Fx.
func NewCategoryHandler(uc usecase.CategoryUsecase, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{uc: uc, logger: logger}
}

// Create adds a menu category.
func (h *CategoryHandler) Create(c echo.Context) error {
	tc, err := tenantContext(c)
	if err != nil {
		return err
	}

	var input *usecase.CreateCategoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Create(c.Request().Context(), tc, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Category created")
}

// List returns all categories of the tenant's menu.
func (h *CategoryHandler) List(c echo.Context) error {
	tc, err := tenantContext(c)
	if err != nil {
		return err
	}

	output, err := h.uc.List(c.Request().Context(), tc)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Categories retrieved")
}

// Get returns one category.
func (h *CategoryHandler) Get(c echo.Context) error {
	tc, err := tenantContext(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "categoriaId")
	if err != nil {
		return err
	}

	output, err := h.uc.Get(c.Request().Context(), tc, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Category retrieved")
}

// Update applies a partial category update.
func (h *CategoryHandler) Update(c echo.Context) error {
	tc, err := tenantContext(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "categoriaId")
	if err != nil {
		return err
	}

	var input *usecase.UpdateCategoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Update(c.Request().Context(), tc, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Category updated")
}

// Delete removes a category without products.
func (h *CategoryHandler) Delete(c echo.Context) error {
	tc, err := tenantContext(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "categoriaId")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), tc, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Category deleted"}, "Category deleted")
}
