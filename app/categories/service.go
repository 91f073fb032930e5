package categories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/bazarkua/polydebate/internal/cache"
	"github.com/bazarkua/polydebate/internal/logger"
	"github.com/bazarkua/polydebate/models"
)

// cacheKey covers the whole tag list; the upstream endpoint is unpaged.
const cacheKey = "categories:all"

// DefaultTTL is long on purpose. Tags change rarely next to prices.
const DefaultTTL = time.Hour

type service struct {
	client TagFetcher
	cache  cache.Cache[string]
	ttl    time.Duration
	logger logger.Logger
}

// NewService builds the categories service.
func NewService(client TagFetcher, c cache.Cache[string], ttl time.Duration, l logger.Logger) Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if l == nil {
		l = logger.NewNullLogger()
	}
	return &service{
		client: client,
		cache:  c,
		ttl:    ttl,
		logger: l,
	}
}

// GetCategories returns the normalized tag list, served from cache when
// a fresh entry exists.
func (s *service) GetCategories(ctx context.Context) ([]models.Category, error) {
	if raw, err := s.cache.Get(ctx, cacheKey); err == nil {
		var cached []models.Category
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			s.logger.Debug("cache hit", logger.Fields{"key": cacheKey})
			return cached, nil
		}
		s.logger.Error(errors.New("stale cache encoding"), logger.Fields{"key": cacheKey})
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Error(err, logger.Fields{"op": "cache get", "key": cacheKey})
	}

	tags, err := s.client.Tags(ctx)
	if err != nil {
		return nil, err
	}

	categories := ToCategoryList(tags)

	if data, err := json.Marshal(categories); err == nil {
		if err := s.cache.Set(ctx, cacheKey, string(data), s.ttl); err != nil {
			s.logger.Error(err, logger.Fields{"op": "cache set", "key": cacheKey})
		}
	}
	return categories, nil
}
