package store

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/shoplite/catalog/internal/model"
)

// Memory is the in-process Store implementation. The collection is an ordered
// slice; insertion order is preserved across updates and deletes. A single
// RWMutex serializes writers while letting reads run concurrently.
type Memory struct {
	mu       sync.RWMutex
	products []model.Product
}

var _ Store = (*Memory)(nil)

// NewMemory builds a store pre-populated with the given catalog. Seed records
// without an id are assigned one.
func NewMemory(seed []model.Product) *Memory {
	products := make([]model.Product, len(seed))
	copy(products, seed)
	for i := range products {
		if products[i].ID == "" {
			products[i].ID = uuid.NewString()
		}
	}
	return &Memory{products: products}
}

// Ping reports store health. The in-memory store is always reachable.
func (m *Memory) Ping(_ context.Context) error {
	return nil
}

func (m *Memory) List(_ context.Context, opts ListOptions) ([]model.Product, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	filtered := m.products
	if opts.Category != "" {
		filtered = make([]model.Product, 0, len(m.products))
		for _, p := range m.products {
			if p.Category == opts.Category {
				filtered = append(filtered, p)
			}
		}
	}

	total := len(filtered)
	start := opts.Offset
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}
	end := total
	if opts.Limit > 0 && start+opts.Limit < total {
		end = start + opts.Limit
	}

	page := make([]model.Product, end-start)
	copy(page, filtered[start:end])
	return page, total, nil
}

func (m *Memory) Get(_ context.Context, id string) (model.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, p := range m.products {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Product{}, ErrNotFound
}

func (m *Memory) SearchByName(_ context.Context, term string) ([]model.Product, error) {
	needle := strings.ToLower(term)

	m.mu.RLock()
	defer m.mu.RUnlock()

	matches := make([]model.Product, 0)
	for _, p := range m.products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

func (m *Memory) CategoryCounts(_ context.Context) (map[string]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	counts := make(map[string]int, len(m.products))
	for _, p := range m.products {
		counts[p.Category]++
	}
	return counts, nil
}

func (m *Memory) Create(_ context.Context, p model.Product) (model.Product, error) {
	p.ID = uuid.NewString()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.products = append(m.products, p)
	return p, nil
}

// Update replaces the business fields of the record with p.ID, keeping the
// record's position in the collection.
func (m *Memory) Update(_ context.Context, p model.Product) (model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.products {
		if m.products[i].ID == p.ID {
			m.products[i] = p
			return p, nil
		}
	}
	return model.Product{}, ErrNotFound
}

func (m *Memory) Delete(_ context.Context, id string) (model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, p := range m.products {
		if p.ID == id {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return p, nil
		}
	}
	return model.Product{}, ErrNotFound
}
