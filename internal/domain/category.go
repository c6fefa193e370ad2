package domain

import (
	"context"
	"errors"
)

var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines the read-only category operations
type CategoryRepository interface {
	// List retrieves all categories ordered by type
	List(ctx context.Context) ([]Category, error)

	// GetByID retrieves a category by its ID
	GetByID(ctx context.Context, id int64) (*Category, error)
}

// Category groups questions under a type label
type Category struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// CategoryMap renders categories as the id to type mapping clients expect
func CategoryMap(categories []Category) map[int64]string {
	m := make(map[int64]string, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}
	return m
}
