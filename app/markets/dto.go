package markets

import (
	"strings"

	"github.com/bazarkua/polydebate/internal/validator"
	"github.com/bazarkua/polydebate/models"
)

// maxCategoryRunes bounds the category filter; resolved categories are
// short display names, anything longer cannot match.
const maxCategoryRunes = 64

// ListMarketsRequest carries the query parameters of the markets listing.
type ListMarketsRequest struct {
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=500"`
	Offset   int    `form:"offset" binding:"omitempty,min=0"`
	Category string `form:"category"`
	TagID    string `form:"tag_id"`
	Closed   bool   `form:"closed"`
}

// Normalize applies defaults and validates the bounds. It mutates the
// request in place so the cache key reflects the effective parameters.
func (r *ListMarketsRequest) Normalize(cfg *Config) error {
	if r.Limit == 0 {
		r.Limit = cfg.DefaultLimit
	}
	if !validator.Between(r.Limit, 1, cfg.MaxLimit) {
		return models.ErrInvalidLimit
	}
	if r.Offset < 0 {
		return models.ErrInvalidOffset
	}
	r.Category = strings.TrimSpace(r.Category)
	r.TagID = strings.TrimSpace(r.TagID)
	// Category values feed the cache key; keep them bounded.
	if !validator.MaxRunes(r.Category, maxCategoryRunes) {
		return models.ErrInvalidCategoryName
	}
	return nil
}

// MarketListResponse is the paginated listing payload.
type MarketListResponse struct {
	Markets []models.Market `json:"markets"`
	Total   int             `json:"total"`
	Offset  int             `json:"offset"`
	Limit   int             `json:"limit"`
	// HasMore is a heuristic. Upstream exposes no total count, so a full
	// page is read as "there is probably another one".
	HasMore bool `json:"has_more"`
}
