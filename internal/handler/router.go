package handler

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"couponhub/internal/handler/api"
	"couponhub/internal/handler/middleware"
	"couponhub/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	couponHandler *api.CouponHandler,
	authHandler *api.AuthHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, couponHandler, authHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	cfg config.Config,
	couponHandler *api.CouponHandler,
	authHandler *api.AuthHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	engine.GET("/robots.txt", staticFile(cfg.Server.StaticDir, "robots.txt"))
	engine.GET("/sitemap.xml", staticFile(cfg.Server.StaticDir, "sitemap.xml"))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	var writeGuard []gin.HandlerFunc
	if cfg.Auth.ProtectWrites {
		writeGuard = []gin.HandlerFunc{authMiddleware.RequireAuth()}
	}

	apiGroup := engine.Group("/api")
	{
		coupons := apiGroup.Group("/coupons")
		addRoutes(coupons, []route{
			{Method: http.MethodGet, Path: "", Handler: couponHandler.List},
			{Method: http.MethodPost, Path: "", Handler: couponHandler.Create, Mw: writeGuard},
			{Method: http.MethodPut, Path: "/:id", Handler: couponHandler.Update, Mw: writeGuard},
			{Method: http.MethodDelete, Path: "/:id", Handler: couponHandler.Delete, Mw: writeGuard},
			{Method: http.MethodGet, Path: "/:id/interactions", Handler: couponHandler.Interactions},
			{Method: http.MethodPost, Path: "/:id/click", Handler: couponHandler.Click},
			{Method: http.MethodPost, Path: "/:id/thumbs-up", Handler: couponHandler.ThumbsUp},
			{Method: http.MethodPost, Path: "/:id/thumbs-down", Handler: couponHandler.ThumbsDown},
		})

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := admin.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/validateToken", Handler: authHandler.ValidateToken},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func staticFile(dir, name string) gin.HandlerFunc {
	path := filepath.Join(dir, name)
	return func(c *gin.Context) {
		c.File(path)
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
