package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"cardapio/config"
	"cardapio/internal/delivery/http/response"
	"cardapio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for product CRUD handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, cfg *config.Config, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, cfg: cfg, logger: logger}
}

// Create adds a menu product.
func (h *ProductHandler) Create(c echo.Context) error {
	tc, err := tenantContext(c)
	if err != nil {
		return err
	}

	var input *usecase.CreateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Create(c.Request().Context(), tc, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Product created")
}

// List returns the tenant's products, optionally filtered by category
// via the categoria_id query parameter.
func (h *ProductHandler) List(c echo.Context) error {
	tc, err := tenantContext(c)
	if err != nil {
		return err
	}

	var categoryID *int64
	if raw := c.QueryParam("categoria_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid categoria_id filter")
		}
		categoryID = &id
	}

	output, err := h.uc.List(c.Request().Context(), tc, categoryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Products retrieved")
}

// Get returns one product.
func (h *ProductHandler) Get(c echo.Context) error {
	tc, err := tenantContext(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "produtoId")
	if err != nil {
		return err
	}

	output, err := h.uc.Get(c.Request().Context(), tc, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Product retrieved")
}

// Update applies a partial product update.
func (h *ProductHandler) Update(c echo.Context) error {
	tc, err := tenantContext(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "produtoId")
	if err != nil {
		return err
	}

	var input *usecase.UpdateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Update(c.Request().Context(), tc, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Product updated")
}

// Delete removes a product not referenced by any promotion.
func (h *ProductHandler) Delete(c echo.Context) error {
	tc, err := tenantContext(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "produtoId")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), tc, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Product deleted"}, "Product deleted")
}

// UploadImage stores the product photo and records its public URL.
func (h *ProductHandler) UploadImage(c echo.Context) error {
	tc, err := tenantContext(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "produtoId")
	if err != nil {
		return err
	}

	baseName := "produto_" + strconv.FormatInt(tc.TenantID, 10) + "_" + strconv.FormatInt(id, 10)
	publicPath, err := saveImageUpload(c, h.cfg, "imagem", baseName)
	if err != nil {
		return err
	}

	output, err := h.uc.Update(c.Request().Context(), tc, id, &usecase.UpdateProductInput{PhotoURL: &publicPath})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Product image updated")
}
