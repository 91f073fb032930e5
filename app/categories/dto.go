package categories

import (
	"github.com/bazarkua/polydebate/internal/gamma"
	"github.com/bazarkua/polydebate/models"
)

// ToCategoryList normalizes upstream tags. Missing labels and slugs fall
// back to the tag id so every entry stays addressable; id-less tags are
// unaddressable and skipped.
func ToCategoryList(tags []gamma.Tag) []models.Category {
	categories := make([]models.Category, 0, len(tags))
	for _, tag := range tags {
		name := tag.Label
		if name == "" {
			name = tag.ID
		}
		slug := tag.Slug
		if slug == "" {
			slug = tag.ID
		}
		category := models.Category{
			ID:          tag.ID,
			Name:        name,
			Slug:        slug,
			MarketCount: tag.EventCount,
		}
		if err := category.Validate(); err != nil {
			continue
		}
		categories = append(categories, category)
	}
	return categories
}
