package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marketops/backoffice/internal/auth"
	"github.com/marketops/backoffice/internal/config"
	dbpkg "github.com/marketops/backoffice/internal/db"
	"github.com/marketops/backoffice/internal/logger"
	"github.com/marketops/backoffice/internal/middleware"
	"github.com/marketops/backoffice/internal/routes"
	"github.com/marketops/backoffice/internal/services"
	"github.com/marketops/backoffice/internal/storage"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db := dbpkg.NewDB(cfg, log)

	store, err := storage.NewLocalStore(cfg.StaticDir)
	if err != nil {
		log.Fatalw("failed to prepare static dir", "error", err)
	}

	tokens := auth.NewTokenAuthority(
		cfg.AccessTokenKey,
		cfg.RefreshTokenKey,
		cfg.AccessTokenTTL,
		cfg.RefreshTokenTTL,
	)

	svc := services.NewSet(db, log, tokens, store)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLog(log))
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, svc)

	log.Infow("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalw("server stopped", "error", err)
	}
}
