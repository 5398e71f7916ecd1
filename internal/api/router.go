package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/minewatch-gh/minewatch-backend-go/internal/config"
	"github.com/minewatch-gh/minewatch-backend-go/internal/handler"
	"github.com/minewatch-gh/minewatch-backend-go/internal/middleware"
)

// Handlers bundles the route handlers the router wires up.
type Handlers struct {
	Analysis *handler.AnalysisHandler
	District *handler.DistrictHandler
	Report   *handler.ReportHandler
	Auth     *handler.AuthHandler
}

// SetupRouter builds the gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "MineWatch analysis API is running",
		})
	})

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(60, time.Minute))
	{
		api.POST("/auth/token", h.Auth.Token)

		api.GET("/districts", h.District.List)
		api.GET("/districts/:name/profile", h.District.Profile)

		api.GET("/reports", h.Report.List)
		api.GET("/reports/:id", h.Report.Get)

		protected := api.Group("")
		protected.Use(middleware.Auth(cfg.JWTSecret))
		{
			protected.POST("/analysis", h.Analysis.Run)
		}
	}

	return r
}
