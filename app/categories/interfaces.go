package categories

import (
	"context"

	"github.com/bazarkua/polydebate/internal/gamma"
	"github.com/bazarkua/polydebate/models"
)

// TagFetcher is the slice of the Gamma client this module depends on.
type TagFetcher interface {
	Tags(ctx context.Context) ([]gamma.Tag, error)
}

// Service defines the categories business logic contract.
type Service interface {
	GetCategories(ctx context.Context) ([]models.Category, error)
}
