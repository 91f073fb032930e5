package app

import (
	"time"

	"github.com/bazarkua/polydebate/internal/cache"
	"github.com/bazarkua/polydebate/internal/nexus"
)

type Config struct {
	AppHost string `env:"APP_HOST" env-default:"localhost"`
	AppPort string `env:"APP_PORT" env-default:"8080"`
	Env     string `env:"APP_ENV" env-default:"development"`

	Polymarket PolymarketConfig
	Cache      CacheConfig
	Redis      RedisConfig
}

// PolymarketConfig points the transport shim at the Gamma API.
type PolymarketConfig struct {
	BaseURL string        `env:"POLYMARKET_API_URL" env-default:"https://gamma-api.polymarket.com"`
	Timeout time.Duration `env:"POLYMARKET_TIMEOUT" env-default:"10s"`
}

// CacheConfig selects the backend and the three per-operation TTLs.
type CacheConfig struct {
	Backend       string        `env:"CACHE_BACKEND" env-default:"memory" validate:"oneof=memory redis"`
	MarketsTTL    time.Duration `env:"CACHE_MARKETS_TTL" env-default:"60s" validate:"gt=0"`
	MarketDetails time.Duration `env:"CACHE_MARKET_DETAILS_TTL" env-default:"30s" validate:"gt=0"`
	CategoriesTTL time.Duration `env:"CACHE_CATEGORIES_TTL" env-default:"1h" validate:"gt=0"`
}

type RedisConfig struct {
	Addr         string `env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password     string `env:"REDIS_PASSWORD"`
	DB           int    `env:"REDIS_DB" env-default:"0"`
	PoolSize     int    `env:"REDIS_POOL_SIZE" env-default:"100"`
	MinIdleConns int    `env:"REDIS_MIN_IDLE_CONNS" env-default:"2"`
}

// LoadConfig loads the application configuration from environment variables
// or a config file.
func LoadConfig() (*Config, error) {
	c := &Config{}
	err := nexus.NewLoader().Load(c)
	return c, err
}

// RedisOptions maps the redis section onto the cache package options.
func (c *Config) RedisOptions() *cache.RedisOptions {
	return &cache.RedisOptions{
		Addr:         c.Redis.Addr,
		Password:     c.Redis.Password,
		DB:           c.Redis.DB,
		PoolSize:     c.Redis.PoolSize,
		MinIdleConns: c.Redis.MinIdleConns,
	}
}
