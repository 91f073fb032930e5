package models

// Category is the normalized representation of one Polymarket tag.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	MarketCount int    `json:"market_count"`
	// IconURL is always empty; the upstream API provides no icons.
	IconURL string `json:"icon_url"`
}

// Validate performs basic sanity checks on a category.
func (c *Category) Validate() error {
	if c.ID == "" {
		return ErrInvalidCategoryID
	}
	if c.Name == "" {
		return ErrInvalidCategoryName
	}
	return nil
}
