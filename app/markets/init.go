package markets

import (
	"github.com/gin-gonic/gin"

	"github.com/bazarkua/polydebate/internal/cache"
	"github.com/bazarkua/polydebate/internal/logger"
	"github.com/bazarkua/polydebate/internal/sanitizer"
)

// Dependencies represents the dependencies needed for the markets module
type Dependencies struct {
	Client    EventFetcher
	Cache     cache.Cache[string]
	Config    *Config
	Logger    logger.Logger
	Sanitizer sanitizer.HTMLStripperer
}

// Init initializes the markets module and mounts routes
func Init(r *gin.RouterGroup, deps Dependencies) {
	config := deps.Config
	if config == nil {
		config = GetDefaultConfig()
	}

	if err := config.Validate(); err != nil {
		panic("Invalid markets configuration: " + err.Error())
	}

	srvs := NewService(deps.Client, deps.Cache, config, deps.Logger, deps.Sanitizer)
	handler := NewHandler(srvs)

	marketsGroup := r.Group("/markets")
	marketsGroup.GET("", handler.GetMarkets)
	marketsGroup.GET("/:id", handler.GetMarketByID)
}
