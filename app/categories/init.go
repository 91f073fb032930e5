package categories

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bazarkua/polydebate/internal/cache"
	"github.com/bazarkua/polydebate/internal/logger"
)

// Dependencies represent the dependencies needed for the categories module
type Dependencies struct {
	Client TagFetcher
	Cache  cache.Cache[string]
	TTL    time.Duration
	Logger logger.Logger
}

// Init initializes the categories module and mounts routes
func Init(r *gin.RouterGroup, deps Dependencies) {
	srvs := NewService(deps.Client, deps.Cache, deps.TTL, deps.Logger)
	handler := NewHandler(srvs)

	categoriesGroup := r.Group("/categories")
	categoriesGroup.GET("", handler.GetCategories)
}
