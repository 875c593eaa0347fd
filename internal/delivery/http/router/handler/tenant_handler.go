package handler

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"cardapio/config"
	"cardapio/internal/delivery/http/response"
	"cardapio/internal/infra/metrics"
	"cardapio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TenantHandler holds dependencies for tenant lifecycle handlers.
type TenantHandler struct {
	uc      usecase.TenantUsecase
	cfg     *config.Config
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewTenantHandler is the constructor for TenantHandler, injected by Fx.
func NewTenantHandler(uc usecase.TenantUsecase, cfg *config.Config, m *metrics.Metrics, logger *slog.Logger) *TenantHandler {
	return &TenantHandler{
		uc:      uc,
		cfg:     cfg,
		metrics: m,
		logger:  logger,
	}
}

// Provision handles the restaurant registration request. This is the
// only handler that triggers schema DDL.
func (h *TenantHandler) Provision(c echo.Context) error {
	var input *usecase.ProvisionTenantInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Provision(c.Request().Context(), input)
	if err != nil {
		h.metrics.ObserveProvisioning("failure")

		return errors.WithStack(err)
	}
	h.metrics.ObserveProvisioning("success")

	return response.Success(c, http.StatusCreated, output, "Restaurant provisioned successfully")
}

// Get returns the authenticated tenant's registry profile.
func (h *TenantHandler) Get(c echo.Context) error {
	tc, err := tenantContext(c)
	if err != nil {
		return err
	}

	output, err := h.uc.Get(c.Request().Context(), tc)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Restaurant profile retrieved")
}

// Update applies a partial profile update.
func (h *TenantHandler) Update(c echo.Context) error {
	tc, err := tenantContext(c)
	if err != nil {
		return err
	}

	var input *usecase.UpdateTenantInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile update input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Update(c.Request().Context(), tc, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Restaurant profile updated")
}

// UploadLogo stores the uploaded logo file and records its public path.
func (h *TenantHandler) UploadLogo(c echo.Context) error {
	tc, err := tenantContext(c)
	if err != nil {
		return err
	}

	publicPath, err := saveImageUpload(c, h.cfg, "logo", "logo_"+strconv.FormatInt(tc.TenantID, 10))
	if err != nil {
		return err
	}

	output, err := h.uc.UpdateLogo(c.Request().Context(), tc, publicPath)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Logo updated")
}

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// saveImageUpload writes a multipart image field to the uploads
// directory under the given base name and returns its public path.
func saveImageUpload(c echo.Context, cfg *config.Config, field, baseName string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "No image file was sent")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExtensions[ext] {
		return "", echo.NewHTTPError(http.StatusBadRequest, "Unsupported image format")
	}

	src, err := file.Open()
	if err != nil {
		return "", errors.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	if err := os.MkdirAll(cfg.Uploads.Dir, 0o755); err != nil {
		return "", errors.Wrap(err, "failed to create uploads directory")
	}

	name := baseName + ext
	dst, err := os.Create(filepath.Join(cfg.Uploads.Dir, name))
	if err != nil {
		return "", errors.Wrap(err, "failed to create upload destination")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", errors.Wrap(err, "failed to store uploaded file")
	}

	return path.Join(cfg.Uploads.PublicPath, name), nil
}
