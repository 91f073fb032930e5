package markets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bazarkua/polydebate/internal/cache"
	"github.com/bazarkua/polydebate/internal/gamma"
	"github.com/bazarkua/polydebate/internal/logger"
	"github.com/bazarkua/polydebate/internal/sanitizer"
	"github.com/bazarkua/polydebate/internal/validator"
	"github.com/bazarkua/polydebate/models"
)

type service struct {
	client    EventFetcher
	cache     cache.Cache[string]
	config    *Config
	logger    logger.Logger
	transform *transformer
}

// NewService builds the markets service.
func NewService(client EventFetcher,
	c cache.Cache[string],
	config *Config,
	l logger.Logger,
	stripper sanitizer.HTMLStripperer,
) Service {
	if l == nil {
		l = logger.NewNullLogger()
	}
	return &service{
		client:    client,
		cache:     c,
		config:    config,
		logger:    l,
		transform: newTransformer(stripper),
	}
}

// ListMarkets returns one page of normalized markets, serving from cache
// when a fresh entry exists. Category filtering happens here rather than
// upstream: Gamma has no category parameter, so filtered requests fetch
// an oversized page and narrow it locally.
func (s *service) ListMarkets(ctx context.Context, req *ListMarketsRequest) (*MarketListResponse, error) {
	if err := req.Normalize(s.config); err != nil {
		return nil, err
	}

	key := listCacheKey(req)
	var cached MarketListResponse
	if s.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	fetchLimit := s.config.FilterFetchLimit
	if req.Category == "" {
		fetchLimit = req.Limit
		if fetchLimit > s.config.UpstreamPageCap {
			fetchLimit = s.config.UpstreamPageCap
		}
	}

	events, err := s.client.Events(ctx, gamma.EventsParams{
		Limit:  fetchLimit,
		Offset: req.Offset,
		Closed: req.Closed,
		TagID:  req.TagID,
	})
	if err != nil {
		return nil, err
	}

	ranked := s.transform.listMarkets(events)
	ranked = filterByCategory(ranked, req.Category, req.Limit)

	markets := make([]models.Market, len(ranked))
	for i := range ranked {
		markets[i] = ranked[i].market
	}

	resp := &MarketListResponse{
		Markets: markets,
		Total:   len(markets),
		Offset:  req.Offset,
		Limit:   req.Limit,
		HasMore: len(markets) == req.Limit,
	}
	s.cacheSet(ctx, key, resp, s.config.ListTTL)
	return resp, nil
}

// GetMarket returns the detail view for one market id.
func (s *service) GetMarket(ctx context.Context, id string) (*models.MarketDetail, error) {
	if !validator.NotBlank(id) {
		return nil, models.ErrInvalidMarketID
	}

	key := detailCacheKey(id)
	var cached models.MarketDetail
	if s.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	event, err := s.client.Event(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := s.transform.detail(event)
	s.cacheSet(ctx, key, &detail, s.config.DetailTTL)
	return &detail, nil
}

// filterByCategory narrows a normalized page to the requested category
// and truncates it to limit. The synthetic "breaking" and "trending"
// categories are volume rankings, not label matches.
func filterByCategory(ranked []rankedMarket, category string, limit int) []rankedMarket {
	if category == "" {
		if len(ranked) > limit {
			ranked = ranked[:limit]
		}
		return ranked
	}

	lowered := strings.ToLower(category)
	if validator.In(lowered, "breaking", "trending") {
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].rawVolume > ranked[j].rawVolume
		})
		if len(ranked) > limit {
			ranked = ranked[:limit]
		}
		return ranked
	}

	filtered := make([]rankedMarket, 0, limit)
	for _, rm := range ranked {
		if strings.ToLower(rm.market.Category) != lowered {
			continue
		}
		filtered = append(filtered, rm)
		if len(filtered) == limit {
			break
		}
	}
	return filtered
}

func listCacheKey(req *ListMarketsRequest) string {
	return fmt.Sprintf("markets:%d:%d:%s:%s:%t",
		req.Limit, req.Offset, req.Category, req.TagID, req.Closed)
}

func detailCacheKey(id string) string {
	return "market:" + id
}

// cacheGet loads and decodes a cached entry. Backend failures and stale
// encodings degrade to a miss; the request proceeds against upstream.
func (s *service) cacheGet(ctx context.Context, key string, out interface{}) bool {
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Error(err, logger.Fields{"op": "cache get", "key": key})
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		s.logger.Error(err, logger.Fields{"op": "cache decode", "key": key})
		return false
	}
	s.logger.Debug("cache hit", logger.Fields{"key": key})
	return true
}

// cacheSet stores an entry best-effort. A write failure is logged and
// swallowed; the caller already holds a good response.
func (s *service) cacheSet(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Error(err, logger.Fields{"op": "cache encode", "key": key})
		return
	}
	if err := s.cache.Set(ctx, key, string(data), ttl); err != nil {
		s.logger.Error(err, logger.Fields{"op": "cache set", "key": key})
	}
}
