package markets

import (
	"strconv"

	"github.com/bazarkua/polydebate/internal/formatter"
	"github.com/bazarkua/polydebate/internal/gamma"
	"github.com/bazarkua/polydebate/internal/sanitizer"
	"github.com/bazarkua/polydebate/models"
)

// rankedMarket pairs a normalized market with the raw numeric volume it
// was derived from. The raw figure drives volume ranking but must never
// appear in a response, so it lives outside the model.
type rankedMarket struct {
	market    models.Market
	rawVolume float64
}

// transformer converts Gamma events into normalized market records.
type transformer struct {
	stripper sanitizer.HTMLStripperer
}

func newTransformer(stripper sanitizer.HTMLStripperer) *transformer {
	return &transformer{stripper: stripper}
}

// listMarkets normalizes a page of events. Events with no nested market
// sub-objects carry nothing tradeable and are dropped, as are records
// that fail basic validation (no id).
func (t *transformer) listMarkets(events []gamma.Event) []rankedMarket {
	ranked := make([]rankedMarket, 0, len(events))
	for i := range events {
		ev := &events[i]
		if len(ev.Markets) == 0 {
			continue
		}
		m := t.market(ev)
		if err := m.Validate(); err != nil {
			continue
		}
		ranked = append(ranked, rankedMarket{
			market:    m,
			rawVolume: float64(ev.Volume),
		})
	}
	return ranked
}

func (t *transformer) market(ev *gamma.Event) models.Market {
	return models.Market{
		ID:          ev.ID,
		Question:    t.clean(ev.Title),
		Description: t.clean(ev.Description),
		Category:    resolveCategory(ev.Tags),
		TagID:       firstTagID(ev.Tags),
		Outcomes:    t.outcomes(ev.Markets),
		Volume:      formatter.Volume(float64(ev.Volume)),
		EndDate:     ev.EndDate,
		CreatedDate: ev.CreatedAt,
		ImageURL:    ev.Image,
	}
}

// detail builds the single-market view. Classification is structural:
// exactly two outcome sub-objects means binary, anything else is
// categorical.
func (t *transformer) detail(ev *gamma.Event) models.MarketDetail {
	marketType := models.MarketTypeCategorical
	if len(ev.Markets) == 2 {
		marketType = models.MarketTypeBinary
	}
	return models.MarketDetail{
		ID:               ev.ID,
		Question:         t.clean(ev.Title),
		Description:      t.clean(ev.Description),
		Category:         resolveCategory(ev.Tags),
		TagID:            firstTagID(ev.Tags),
		MarketType:       marketType,
		Outcomes:         t.outcomes(ev.Markets),
		Volume:           formatter.Volume(float64(ev.Volume)),
		Volume24h:        formatter.Volume(float64(ev.Volume24hr)),
		Liquidity:        formatter.Volume(float64(ev.Liquidity)),
		EndDate:          ev.EndDate,
		CreatedDate:      ev.CreatedAt,
		ResolutionSource: ev.ResolutionSource,
		ImageURL:         ev.Image,
	}
}

// outcomes flattens the event's market sub-objects. Missing prices
// default to even odds; a missing CLOB token leaves the slug empty.
func (t *transformer) outcomes(ms []gamma.Market) []models.Outcome {
	outcomes := make([]models.Outcome, 0, len(ms))
	for i := range ms {
		m := &ms[i]

		price := 0.5
		if len(m.OutcomePrices) > 0 {
			price = m.OutcomePrices[0]
		}

		slug := ""
		if len(m.ClobTokenIDs) > 0 {
			slug = m.ClobTokenIDs[0]
		}

		name := m.GroupItemTitle
		if name == "" {
			name = m.Question
		}

		outcomes = append(outcomes, models.Outcome{
			Name:   name,
			Slug:   slug,
			Price:  price,
			Shares: strconv.FormatFloat(float64(m.Volume), 'f', -1, 64),
		})
	}
	return outcomes
}

func (t *transformer) clean(s string) string {
	if t.stripper == nil {
		return s
	}
	return t.stripper.StripHTML(s)
}
