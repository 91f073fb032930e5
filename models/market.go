package models

// MarketType identifies the outcome structure of a market.
type MarketType string

const (
	MarketTypeBinary      MarketType = "binary"
	MarketTypeCategorical MarketType = "categorical"
)

// Market is the normalized list-view representation of one Polymarket event.
// All fields are request-scoped snapshots; nothing here is persisted beyond
// the cache layer.
type Market struct {
	ID          string    `json:"id"`
	Question    string    `json:"question"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	TagID       string    `json:"tag_id,omitempty"`
	Outcomes    []Outcome `json:"outcomes"`
	Volume      string    `json:"volume"`
	EndDate     string    `json:"end_date"`
	CreatedDate string    `json:"created_date"`
	ImageURL    string    `json:"image_url"`
}

// MarketDetail is the richer single-item view. It is a superset of Market
// with type classification and the 24h volume / liquidity figures.
type MarketDetail struct {
	ID               string     `json:"id"`
	Question         string     `json:"question"`
	Description      string     `json:"description"`
	Category         string     `json:"category"`
	TagID            string     `json:"tag_id,omitempty"`
	MarketType       MarketType `json:"market_type"`
	Outcomes         []Outcome  `json:"outcomes"`
	Volume           string     `json:"volume"`
	Volume24h        string     `json:"volume_24h"`
	Liquidity        string     `json:"liquidity"`
	EndDate          string     `json:"end_date"`
	CreatedDate      string     `json:"created_date"`
	ResolutionSource string     `json:"resolution_source"`
	ImageURL         string     `json:"image_url"`
}

// Outcome is one resolution side of a market.
type Outcome struct {
	Name   string  `json:"name"`
	Slug   string  `json:"slug"`
	Price  float64 `json:"price"`
	Shares string  `json:"shares"`
}

// Validate performs basic sanity checks on a normalized market.
func (m *Market) Validate() error {
	if m.ID == "" {
		return ErrInvalidMarketID
	}
	if m.Category == "" {
		return ErrMissingCategory
	}
	if len(m.Outcomes) == 0 {
		return ErrNoOutcomes
	}
	return nil
}

// IsBinary reports whether the detail describes a two-outcome market.
func (m *MarketDetail) IsBinary() bool {
	return m.MarketType == MarketTypeBinary
}
