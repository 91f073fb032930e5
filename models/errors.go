package models

import "errors"

var (
	ErrInvalidMarketID = errors.New("invalid market ID")
	ErrMissingCategory = errors.New("market has no category")
	ErrNoOutcomes      = errors.New("market has no outcomes")

	ErrInvalidCategoryID   = errors.New("invalid category ID")
	ErrInvalidCategoryName = errors.New("invalid category name")

	ErrInvalidLimit  = errors.New("limit must be between 1 and 500")
	ErrInvalidOffset = errors.New("offset cannot be negative")
)
