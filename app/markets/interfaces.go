package markets

import (
	"context"

	"github.com/bazarkua/polydebate/internal/gamma"
	"github.com/bazarkua/polydebate/models"
)

// EventFetcher is the slice of the Gamma client this module depends on.
type EventFetcher interface {
	Events(ctx context.Context, p gamma.EventsParams) ([]gamma.Event, error)
	Event(ctx context.Context, id string) (*gamma.Event, error)
}

// Service defines the markets business logic contract.
type Service interface {
	ListMarkets(ctx context.Context, req *ListMarketsRequest) (*MarketListResponse, error)
	GetMarket(ctx context.Context, id string) (*models.MarketDetail, error)
}
