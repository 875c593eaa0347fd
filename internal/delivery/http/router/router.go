// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cardapio/config"
	"cardapio/internal/delivery/http/middleware"
	"cardapio/internal/delivery/http/router/handler"
	"cardapio/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

// RouterParams holds everything the router needs, injected by Fx.
type RouterParams struct {
	fx.In

	Config           *config.Config
	Metrics          *metrics.Metrics
	TenantHandler    *handler.TenantHandler
	AuthHandler      *handler.AuthHandler
	CategoryHandler  *handler.CategoryHandler
	ProductHandler   *handler.ProductHandler
	PromotionHandler *handler.PromotionHandler
	PublicHandler    *handler.PublicHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	if p.Config.Metrics != nil && p.Config.Metrics.Enabled {
		path := p.Config.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		e.GET(path, echo.WrapHandler(promhttp.HandlerFor(p.Metrics.Registry(), promhttp.HandlerOpts{})))
	}

	// Uploaded logos and product photos are served as static files.
	if p.Config.Uploads != nil && p.Config.Uploads.Dir != "" {
		e.Static(p.Config.Uploads.PublicPath, p.Config.Uploads.Dir)
	}

	api := e.Group("/api/v1")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", p.AuthHandler.Login)
	}

	// Public menu, no authentication
	publicGroup := api.Group("/public")
	{
		publicGroup.GET("/cardapio/:identificador_url", p.PublicHandler.Menu)
	}

	// Tenant registration is open; everything below it requires a
	// token whose tenant matches the route.
	restaurantes := api.Group("/restaurantes")
	restaurantes.POST("", p.TenantHandler.Provision)

	admin := restaurantes.Group("/:restauranteId")
	admin.Use(p.AuthMiddleware.Authenticate)
	admin.Use(p.AuthMiddleware.RequireTenant)
	{
		admin.GET("", p.TenantHandler.Get)
		admin.PUT("", p.TenantHandler.Update)
		admin.PUT("/logo", p.TenantHandler.UploadLogo)

		admin.POST("/categorias", p.CategoryHandler.Create)
		admin.GET("/categorias", p.CategoryHandler.List)
		admin.GET("/categorias/:categoriaId", p.CategoryHandler.Get)
		admin.PUT("/categorias/:categoriaId", p.CategoryHandler.Update)
		admin.DELETE("/categorias/:categoriaId", p.CategoryHandler.Delete)

		admin.POST("/produtos", p.ProductHandler.Create)
		admin.GET("/produtos", p.ProductHandler.List)
		admin.GET("/produtos/:produtoId", p.ProductHandler.Get)
		admin.PUT("/produtos/:produtoId", p.ProductHandler.Update)
		admin.DELETE("/produtos/:produtoId", p.ProductHandler.Delete)
		admin.POST("/produtos/:produtoId/imagem", p.ProductHandler.UploadImage)

		admin.POST("/promocoes", p.PromotionHandler.Create)
		admin.GET("/promocoes", p.PromotionHandler.List)
		admin.GET("/promocoes/:promocaoId", p.PromotionHandler.Get)
		admin.PUT("/promocoes/:promocaoId", p.PromotionHandler.Update)
		admin.DELETE("/promocoes/:promocaoId", p.PromotionHandler.Delete)

		admin.POST("/promocoes/:promocaoId/produtos", p.PromotionHandler.LinkProduct)
		admin.GET("/promocoes/:promocaoId/produtos", p.PromotionHandler.ListLinks)
		admin.DELETE("/promocoes/:promocaoId/produtos/:produtoId", p.PromotionHandler.UnlinkProduct)
	}
}
