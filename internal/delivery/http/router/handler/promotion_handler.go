package handler

import (
	"log/slog"
	"net/http"

	"cardapio/internal/delivery/http/response"
	"cardapio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PromotionHandler holds dependencies for promotion handlers, covering
// both the promotions themselves and their product links.
type PromotionHandler struct {
	uc     usecase.PromotionUsecase
	logger *slog.Logger
}

// NewPromotionHandler is the constructor for PromotionHandler, injected by Fx.
func NewPromotionHandler(uc usecase.PromotionUsecase, logger *slog.Logger) *PromotionHandler {
	return &PromotionHandler{uc: uc, logger: logger}
}

// Create adds a promotion.
func (h *PromotionHandler) Create(c echo.Context) error {
	tc, err := tenantContext(c)
	if err != nil {
		return err
	}

	var input *usecase.CreatePromotionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid promotion input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Create(c.Request().Context(), tc, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Promotion created")
}

// List returns all promotions of the tenant.
func (h *PromotionHandler) List(c echo.Context) error {
	tc, err := tenantContext(c)
	if err != nil {
		return err
	}

	output, err := h.uc.List(c.Request().Context(), tc)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Promotions retrieved")
}

// Get returns one promotion.
func (h *PromotionHandler) Get(c echo.Context) error {
	tc, err := tenantContext(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "promocaoId")
	if err != nil {
		return err
	}

	output, err := h.uc.Get(c.Request().Context(), tc, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Promotion retrieved")
}

// Update applies a partial promotion update, revalidating the merged
// type and value fields.
func (h *PromotionHandler) Update(c echo.Context) error {
	tc, err := tenantContext(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "promocaoId")
	if err != nil {
		return err
	}

	var input *usecase.UpdatePromotionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid promotion input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Update(c.Request().Context(), tc, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Promotion updated")
}

// Delete removes a promotion and its links.
func (h *PromotionHandler) Delete(c echo.Context) error {
	tc, err := tenantContext(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "promocaoId")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), tc, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Promotion deleted"}, "Promotion deleted")
}

// LinkProduct attaches a product to a promotion.
func (h *PromotionHandler) LinkProduct(c echo.Context) error {
	tc, err := tenantContext(c)
	if err != nil {
		return err
	}

	promotionID, err := pathID(c, "promocaoId")
	if err != nil {
		return err
	}

	var input *usecase.LinkProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid promotion product input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.LinkProduct(c.Request().Context(), tc, promotionID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Product linked to promotion")
}

// ListLinks returns the products linked to a promotion.
func (h *PromotionHandler) ListLinks(c echo.Context) error {
	tc, err := tenantContext(c)
	if err != nil {
		return err
	}

	promotionID, err := pathID(c, "promocaoId")
	if err != nil {
		return err
	}

	output, err := h.uc.ListLinks(c.Request().Context(), tc, promotionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Promotion products retrieved")
}

// UnlinkProduct detaches a product from a promotion.
func (h *PromotionHandler) UnlinkProduct(c echo.Context) error {
	tc, err := tenantContext(c)
	if err != nil {
		return err
	}

	promotionID, err := pathID(c, "promocaoId")
	if err != nil {
		return err
	}

	productID, err := pathID(c, "produtoId")
	if err != nil {
		return err
	}

	if err := h.uc.UnlinkProduct(c.Request().Context(), tc, promotionID, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Product unlinked"}, "Product unlinked from promotion")
}
