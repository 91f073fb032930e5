package markets

import (
	"errors"
	"time"
)

// Config holds the markets module tunables. Defaults mirror the upstream
// API limits: Gamma caps a page at 100 events and has no server-side
// category filter, so category queries over-fetch and filter locally.
type Config struct {
	// DefaultLimit applies when a request does not specify one.
	DefaultLimit int
	// MaxLimit bounds the caller-requested page size.
	MaxLimit int
	// UpstreamPageCap is the hard per-page cap of the Gamma events listing.
	UpstreamPageCap int
	// FilterFetchLimit is the oversized page requested when filtering by
	// category client-side.
	FilterFetchLimit int

	// ListTTL and DetailTTL govern the two cache classes owned by this module.
	ListTTL   time.Duration
	DetailTTL time.Duration
}

// GetDefaultConfig returns the stock configuration.
func GetDefaultConfig() *Config {
	return &Config{
		DefaultLimit:     100,
		MaxLimit:         500,
		UpstreamPageCap:  100,
		FilterFetchLimit: 500,
		ListTTL:          time.Minute,
		DetailTTL:        30 * time.Second,
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.DefaultLimit < 1 || c.DefaultLimit > c.MaxLimit {
		return errors.New("default limit must be between 1 and the max limit")
	}
	if c.UpstreamPageCap < 1 {
		return errors.New("upstream page cap must be positive")
	}
	if c.FilterFetchLimit < c.UpstreamPageCap {
		return errors.New("filter fetch limit cannot be below the upstream page cap")
	}
	if c.ListTTL <= 0 || c.DetailTTL <= 0 {
		return errors.New("cache TTLs must be positive")
	}
	return nil
}
