package handlers

import (
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/letsgoparty/letsgoparty_backend/cmd/docs"
	portssvc "github.com/letsgoparty/letsgoparty_backend/internal/core/ports/services"
	"github.com/letsgoparty/letsgoparty_backend/internal/middleware"
	"github.com/letsgoparty/letsgoparty_backend/internal/platform/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	metrics *middleware.Metrics,
) {
	registerValidators()

	r.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))
	if metrics != nil {
		r.Use(metrics.Middleware())
		r.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	registerRootRoutes(r)
	registerImageRoutes(r, services.Images)

	setupPublicRoutes(r, cfg, services)
	setupPrivateRoutes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

func setupPublicRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	registerAuthRoutes(r, services, cfg.IsProduction)
	registerGoogleOAuthRoutes(r, services, cfg.FrontendBaseURL, cfg.IsProduction)
	registerPublicEventRoutes(r, services.Event, cfg.APIBaseURL, cfg.IsProduction)
	registerContactRoutes(r, services.Contact, cfg.IsProduction)
}

// setupPrivateRoutes mounts every route that needs a session token. The
// routes keep their root paths, so the group only carries the middleware.
func setupPrivateRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	private := r.Group("", middleware.AuthMiddleware(cfg.JWTSecret, cfg.IsProduction))

	registerUserRoutes(private, services.User, cfg.IsProduction)
	registerOwnerEventRoutes(private, services.Event, cfg.IsProduction)
	registerLikeRoutes(private, services.Like, cfg.IsProduction)
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowHeaders = append(c.AllowHeaders, "Authorization")
	c.ExposeHeaders = []string{"X-Request-ID"}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	return c
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
