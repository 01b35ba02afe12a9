// Package store holds the product collection behind a narrow interface so the
// HTTP layer does not depend on a concrete implementation.
package store

import (
	"context"
	"errors"

	"github.com/shoplite/catalog/internal/model"
)

// ErrNotFound indicates the requested product id does not exist.
var ErrNotFound = errors.New("product not found")

// ListOptions narrows and pages a product listing. A zero Category means no
// filtering; Offset/Limit apply to the filtered sequence.
type ListOptions struct {
	Category string
	Offset   int
	Limit    int
}

// Store is the persistence contract for the product collection.
type Store interface {
	Ping(ctx context.Context) error

	// List returns the requested page of products and the total size of the
	// filtered (pre-paging) set.
	List(ctx context.Context, opts ListOptions) ([]model.Product, int, error)
	Get(ctx context.Context, id string) (model.Product, error)

	// SearchByName matches term case-insensitively against product names only.
	SearchByName(ctx context.Context, term string) ([]model.Product, error)

	// CategoryCounts groups the full collection by category.
	CategoryCounts(ctx context.Context) (map[string]int, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) (model.Product, error)
	Delete(ctx context.Context, id string) (model.Product, error)
}
