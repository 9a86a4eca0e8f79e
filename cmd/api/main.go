package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tutorlinkhq/tutor-marketplace/internal/cache"
	"github.com/tutorlinkhq/tutor-marketplace/internal/config"
	dbpkg "github.com/tutorlinkhq/tutor-marketplace/internal/db"
	"github.com/tutorlinkhq/tutor-marketplace/internal/logging"
	"github.com/tutorlinkhq/tutor-marketplace/internal/middleware"
	"github.com/tutorlinkhq/tutor-marketplace/internal/routes"
)

func main() {

	cfg := config.Load()

	log := logging.New(cfg.Env)
	defer log.Sync()

	db := dbpkg.NewDB(cfg, log)

	availCache := cache.NewAvailabilityCache(cfg, 10*time.Minute)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, availCache, cfg, log)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
