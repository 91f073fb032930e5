package deps

import (
	"github.com/bazarkua/polydebate/internal/cache"
	"github.com/bazarkua/polydebate/internal/gamma"
	"github.com/bazarkua/polydebate/internal/logger"
	"github.com/bazarkua/polydebate/internal/sanitizer"
)

// Container holds all shared dependencies. A single instance is built at
// startup and handed to each module's Init.
type Container struct {
	Gamma     *gamma.Client
	Cache     cache.Cache[string]
	Logger    logger.Logger
	Sanitizer sanitizer.HTMLStripperer
}

func NewContainer(client *gamma.Client, c cache.Cache[string], l logger.Logger, s sanitizer.HTMLStripperer) *Container {
	return &Container{
		Gamma:     client,
		Cache:     c,
		Logger:    l,
		Sanitizer: s,
	}
}
