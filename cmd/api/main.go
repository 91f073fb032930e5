package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/bazarkua/polydebate/app"
	"github.com/bazarkua/polydebate/app/api"
	"github.com/bazarkua/polydebate/app/categories"
	"github.com/bazarkua/polydebate/app/markets"
	"github.com/bazarkua/polydebate/internal/cache"
	"github.com/bazarkua/polydebate/internal/deps"
	"github.com/bazarkua/polydebate/internal/gamma"
	"github.com/bazarkua/polydebate/internal/logger"
	"github.com/bazarkua/polydebate/internal/router"
	"github.com/bazarkua/polydebate/internal/sanitizer"
)

// @title Polydebate API
// @version 1.0
// @description Normalized read layer over Polymarket prediction markets.

// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	level := logger.LevelInfo
	if cfg.Env == "development" {
		level = logger.LevelDebug
	}
	l := logger.NewZeroLogger(os.Stdout, level, logger.Fields{"service": "polydebate"})

	var cacheService cache.Cache[string]
	switch cfg.Cache.Backend {
	case cache.RedisBackend:
		cacheService = cache.NewCache[string](cache.RedisBackend, cfg.RedisOptions())
	default:
		cacheService = cache.NewCache[string](cache.MemoryBackend)
	}

	gammaClient := gamma.NewClient(cfg.Polymarket.BaseURL, cfg.Polymarket.Timeout, l)
	container := deps.NewContainer(gammaClient, cacheService, l, sanitizer.NewHTMLStripper())

	r := gin.Default()
	r.Use(api.CorsMiddleware())
	r.Use(api.RequestID())

	marketsConfig := markets.GetDefaultConfig()
	marketsConfig.ListTTL = cfg.Cache.MarketsTTL
	marketsConfig.DetailTTL = cfg.Cache.MarketDetails

	router.NewMounter(container).
		Public(r).
		Mount(func(g *gin.RouterGroup, c *deps.Container) {
			g.GET("/healthz", api.HealthCheck)
		}).
		Mount(func(g *gin.RouterGroup, c *deps.Container) {
			markets.Init(g, markets.Dependencies{
				Client:    c.Gamma,
				Cache:     c.Cache,
				Config:    marketsConfig,
				Logger:    c.Logger,
				Sanitizer: c.Sanitizer,
			})
		}).
		Mount(func(g *gin.RouterGroup, c *deps.Container) {
			categories.Init(g, categories.Dependencies{
				Client: c.Gamma,
				Cache:  c.Cache,
				TTL:    cfg.Cache.CategoriesTTL,
				Logger: c.Logger,
			})
		})

	l.Info("starting server", logger.Fields{
		"host": cfg.AppHost,
		"port": cfg.AppPort,
		"env":  cfg.Env,
	})
	if err := r.Run(fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
