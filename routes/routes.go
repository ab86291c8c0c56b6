package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ken-eddy/bakeryApp/config"
	"github.com/ken-eddy/bakeryApp/controllers"
	"github.com/ken-eddy/bakeryApp/middleware"
)

// NewRouter builds the engine with its middleware chain and all routes.
func NewRouter(cfg *config.Config, db *gorm.DB, log *zap.Logger) *gin.Engine {
	router := gin.New()

	router.Use(ginzap.Ginzap(log, time.RFC3339, true))
	router.Use(ginzap.RecoveryWithZap(log, true))
	router.Use(corsMiddleware(cfg.Server.CORSOrigins))
	if cfg.Metrics.Enabled {
		router.Use(middleware.MetricsMiddleware())
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	SetupRoutes(router, controllers.New(db, log, cfg), cfg.Auth)
	return router
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		return cors.Default()
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

func SetupRoutes(router *gin.Engine, ctrl *controllers.Controller, auth config.AuthConfig) {
	router.GET("/", ctrl.Home)
	router.GET("/health", ctrl.Health)

	// Public routes
	router.GET("/bakeries", ctrl.GetBakeries)
	router.GET("/bakeries/:id", ctrl.GetBakery)
	router.GET("/bakeries/:id/menu.pdf", ctrl.BakeryMenu)
	router.GET("/baked_goods/by_price", ctrl.GetBakedGoodsByPrice)
	router.GET("/baked_goods/most_expensive", ctrl.GetMostExpensiveBakedGood)

	// Mutation routes, token-protected when auth is configured
	protected := router.Group("/")
	if auth.Enabled() {
		router.POST("/auth/token", ctrl.IssueToken)
		protected.Use(middleware.AuthMiddleware(auth.JWTSecret))
	}
	{
		protected.POST("/baked_goods", ctrl.CreateBakedGood)
		protected.PATCH("/bakeries/:id", ctrl.UpdateBakery)
		protected.DELETE("/baked_goods/:id", ctrl.DeleteBakedGood)
	}
}
