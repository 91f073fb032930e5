package markets

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bazarkua/polydebate/internal/cache"
	"github.com/bazarkua/polydebate/internal/gamma"
	"github.com/bazarkua/polydebate/models"
)

type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) Events(ctx context.Context, p gamma.EventsParams) ([]gamma.Event, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]gamma.Event), args.Error(1)
}

func (m *mockFetcher) Event(ctx context.Context, id string) (*gamma.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gamma.Event), args.Error(1)
}

func newTestService(fetcher EventFetcher, c cache.Cache[string]) Service {
	return NewService(fetcher, c, GetDefaultConfig(), nil, nil)
}

func eventWithVolume(id string, volume float64) gamma.Event {
	return gamma.Event{
		ID:      id,
		Title:   "Event " + id,
		Volume:  gamma.FlexFloat(volume),
		Tags:    []gamma.Tag{{ID: "1", Label: "Crypto", Slug: "crypto"}},
		Markets: []gamma.Market{{ID: id + "-m"}},
	}
}

func TestListMarketsCacheHitSkipsUpstream(t *testing.T) {
	fetcher := &mockFetcher{}
	mc := &cache.MockCache{}

	cached := MarketListResponse{
		Markets: []models.Market{{ID: "7", Question: "cached"}},
		Total:   1,
		Limit:   10,
	}
	raw, err := json.Marshal(&cached)
	require.NoError(t, err)
	mc.On("Get", mock.Anything, "markets:10:0:::false").Return(string(raw), nil)

	svc := newTestService(fetcher, mc)
	resp, err := svc.ListMarkets(context.Background(), &ListMarketsRequest{Limit: 10})

	require.NoError(t, err)
	require.Len(t, resp.Markets, 1)
	assert.Equal(t, "cached", resp.Markets[0].Question)
	fetcher.AssertNotCalled(t, "Events")
	mc.AssertExpectations(t)
}

func TestListMarketsCacheMissFetchesAndStores(t *testing.T) {
	fetcher := &mockFetcher{}
	mc := &cache.MockCache{}

	mc.On("Get", mock.Anything, mock.Anything).Return("", cache.ErrCacheMiss)
	mc.On("Set", mock.Anything, "markets:10:0:::false", mock.Anything, time.Minute).Return(nil)
	fetcher.On("Events", mock.Anything, gamma.EventsParams{Limit: 10}).
		Return([]gamma.Event{eventWithVolume("1", 100)}, nil)

	svc := newTestService(fetcher, mc)
	resp, err := svc.ListMarkets(context.Background(), &ListMarketsRequest{Limit: 10})

	require.NoError(t, err)
	require.Len(t, resp.Markets, 1)
	assert.Equal(t, "1", resp.Markets[0].ID)
	assert.False(t, resp.HasMore)
	mc.AssertExpectations(t)
	fetcher.AssertExpectations(t)
}

func TestListMarketsUpstreamFailureIsNotCached(t *testing.T) {
	fetcher := &mockFetcher{}
	mc := &cache.MockCache{}

	mc.On("Get", mock.Anything, mock.Anything).Return("", cache.ErrCacheMiss)
	fetcher.On("Events", mock.Anything, mock.Anything).
		Return(nil, &gamma.UpstreamError{Op: "list events", StatusCode: 500})

	svc := newTestService(fetcher, mc)
	_, err := svc.ListMarkets(context.Background(), &ListMarketsRequest{Limit: 10})

	require.Error(t, err)
	mc.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListMarketsCacheWriteFailureIsSwallowed(t *testing.T) {
	fetcher := &mockFetcher{}
	mc := &cache.MockCache{}

	mc.On("Get", mock.Anything, mock.Anything).Return("", cache.ErrCacheMiss)
	mc.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(assert.AnError)
	fetcher.On("Events", mock.Anything, mock.Anything).
		Return([]gamma.Event{eventWithVolume("1", 100)}, nil)

	svc := newTestService(fetcher, mc)
	resp, err := svc.ListMarkets(context.Background(), &ListMarketsRequest{Limit: 10})

	require.NoError(t, err)
	assert.Len(t, resp.Markets, 1)
}

func TestListMarketsTrendingRanksByRawVolume(t *testing.T) {
	fetcher := &mockFetcher{}
	mc := &cache.MockCache{}

	mc.On("Get", mock.Anything, mock.Anything).Return("", cache.ErrCacheMiss)
	mc.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	// Category requests always fetch the oversized page.
	fetcher.On("Events", mock.Anything, gamma.EventsParams{Limit: 500}).
		Return([]gamma.Event{
			eventWithVolume("a", 50),
			eventWithVolume("b", 500),
			eventWithVolume("c", 5),
		}, nil)

	svc := newTestService(fetcher, mc)
	resp, err := svc.ListMarkets(context.Background(), &ListMarketsRequest{
		Limit:    2,
		Category: "trending",
	})

	require.NoError(t, err)
	require.Len(t, resp.Markets, 2)
	assert.Equal(t, "b", resp.Markets[0].ID)
	assert.Equal(t, "a", resp.Markets[1].ID)
	assert.True(t, resp.HasMore)
	fetcher.AssertExpectations(t)
}

func TestListMarketsCategoryFilterIsCaseInsensitive(t *testing.T) {
	fetcher := &mockFetcher{}
	mc := &cache.MockCache{}

	mc.On("Get", mock.Anything, mock.Anything).Return("", cache.ErrCacheMiss)
	mc.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	politics := eventWithVolume("p", 10)
	politics.Tags = []gamma.Tag{{ID: "2", Label: "Politics", Slug: "politics"}}
	fetcher.On("Events", mock.Anything, mock.Anything).
		Return([]gamma.Event{eventWithVolume("c", 99), politics}, nil)

	svc := newTestService(fetcher, mc)
	resp, err := svc.ListMarkets(context.Background(), &ListMarketsRequest{
		Limit:    10,
		Category: "POLITICS",
	})

	require.NoError(t, err)
	require.Len(t, resp.Markets, 1)
	assert.Equal(t, "p", resp.Markets[0].ID)
	assert.Equal(t, "Politics", resp.Markets[0].Category)
	assert.False(t, resp.HasMore)
}

func TestListMarketsHasMoreOnFullPage(t *testing.T) {
	fetcher := &mockFetcher{}
	mc := &cache.MockCache{}

	mc.On("Get", mock.Anything, mock.Anything).Return("", cache.ErrCacheMiss)
	mc.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	fetcher.On("Events", mock.Anything, mock.Anything).
		Return([]gamma.Event{eventWithVolume("1", 1), eventWithVolume("2", 2)}, nil)

	svc := newTestService(fetcher, mc)
	resp, err := svc.ListMarkets(context.Background(), &ListMarketsRequest{Limit: 2})

	require.NoError(t, err)
	assert.True(t, resp.HasMore)
	assert.Equal(t, 2, resp.Total)
}

func TestListMarketsRawVolumeNeverSerialized(t *testing.T) {
	fetcher := &mockFetcher{}
	mc := &cache.MockCache{}

	mc.On("Get", mock.Anything, mock.Anything).Return("", cache.ErrCacheMiss)
	mc.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	fetcher.On("Events", mock.Anything, mock.Anything).
		Return([]gamma.Event{eventWithVolume("1", 123456789)}, nil)

	svc := newTestService(fetcher, mc)
	resp, err := svc.ListMarkets(context.Background(), &ListMarketsRequest{Limit: 10})
	require.NoError(t, err)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "raw_volume")
	assert.NotContains(t, string(raw), "123456789")
	assert.Contains(t, string(raw), "123.5M")
}

func TestListMarketsLimitBounds(t *testing.T) {
	svc := newTestService(&mockFetcher{}, &cache.MockCache{})

	_, err := svc.ListMarkets(context.Background(), &ListMarketsRequest{Limit: 501})
	assert.ErrorIs(t, err, models.ErrInvalidLimit)

	_, err = svc.ListMarkets(context.Background(), &ListMarketsRequest{Limit: 10, Offset: -1})
	assert.ErrorIs(t, err, models.ErrInvalidOffset)

	_, err = svc.ListMarkets(context.Background(), &ListMarketsRequest{
		Limit:    10,
		Category: strings.Repeat("x", 65),
	})
	assert.ErrorIs(t, err, models.ErrInvalidCategoryName)
}

func TestListMarketsDefaultLimitCapsUpstreamPage(t *testing.T) {
	fetcher := &mockFetcher{}
	mc := &cache.MockCache{}

	mc.On("Get", mock.Anything, mock.Anything).Return("", cache.ErrCacheMiss)
	mc.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	fetcher.On("Events", mock.Anything, gamma.EventsParams{Limit: 100}).
		Return([]gamma.Event{}, nil)

	svc := newTestService(fetcher, mc)
	resp, err := svc.ListMarkets(context.Background(), &ListMarketsRequest{Limit: 250})

	require.NoError(t, err)
	assert.Equal(t, 250, resp.Limit)
	fetcher.AssertExpectations(t)
}

func TestGetMarketCacheFlow(t *testing.T) {
	fetcher := &mockFetcher{}
	mc := &cache.MockCache{}

	mc.On("Get", mock.Anything, "market:42").Return("", cache.ErrCacheMiss)
	mc.On("Set", mock.Anything, "market:42", mock.Anything, 30*time.Second).Return(nil)
	fetcher.On("Event", mock.Anything, "42").Return(&gamma.Event{
		ID:      "42",
		Title:   "Detail",
		Markets: []gamma.Market{{ID: "a"}, {ID: "b"}},
	}, nil)

	svc := newTestService(fetcher, mc)
	detail, err := svc.GetMarket(context.Background(), "42")

	require.NoError(t, err)
	assert.Equal(t, "42", detail.ID)
	assert.Equal(t, models.MarketTypeBinary, detail.MarketType)
	mc.AssertExpectations(t)
}

func TestGetMarketServedFromCache(t *testing.T) {
	fetcher := &mockFetcher{}
	mc := &cache.MockCache{}

	cached := models.MarketDetail{ID: "42", Question: "cached detail"}
	raw, err := json.Marshal(&cached)
	require.NoError(t, err)
	mc.On("Get", mock.Anything, "market:42").Return(string(raw), nil)

	svc := newTestService(fetcher, mc)
	detail, err := svc.GetMarket(context.Background(), "42")

	require.NoError(t, err)
	assert.Equal(t, "cached detail", detail.Question)
	fetcher.AssertNotCalled(t, "Event")
}

func TestGetMarketBlankID(t *testing.T) {
	svc := newTestService(&mockFetcher{}, &cache.MockCache{})

	_, err := svc.GetMarket(context.Background(), "  ")
	assert.ErrorIs(t, err, models.ErrInvalidMarketID)
}

func TestGetMarketNotFoundPassesThrough(t *testing.T) {
	fetcher := &mockFetcher{}
	mc := &cache.MockCache{}

	mc.On("Get", mock.Anything, mock.Anything).Return("", cache.ErrCacheMiss)
	fetcher.On("Event", mock.Anything, "missing").
		Return(nil, &gamma.NotFoundError{MarketID: "missing"})

	svc := newTestService(fetcher, mc)
	_, err := svc.GetMarket(context.Background(), "missing")

	var notFound *gamma.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing", notFound.MarketID)
	mc.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListCacheKeyShape(t *testing.T) {
	key := listCacheKey(&ListMarketsRequest{
		Limit:    20,
		Offset:   40,
		Category: "crypto",
		TagID:    "7",
		Closed:   true,
	})
	assert.Equal(t, "markets:20:40:crypto:7:true", key)
}
