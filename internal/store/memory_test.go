package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoplite/catalog/internal/model"
)

func newSeededStore() *Memory {
	return NewMemory(DefaultCatalog())
}

func listAll(t *testing.T, m *Memory) []model.Product {
	t.Helper()
	items, _, err := m.List(context.Background(), ListOptions{Limit: 1000})
	require.NoError(t, err)
	return items
}

func TestNewMemory_AssignsMissingIDs(t *testing.T) {
	m := NewMemory([]model.Product{
		{Name: "Kettle", Description: "Electric kettle", Price: 29.99, Category: "kitchen", InStock: true},
	})

	items := listAll(t, m)
	require.Len(t, items, 1)
	assert.NotEmpty(t, items[0].ID)
}

func TestList_SeedCatalog(t *testing.T) {
	m := newSeededStore()

	items, total, err := m.List(context.Background(), ListOptions{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, items, 3)
	assert.Equal(t, "Laptop", items[0].Name)
	assert.Equal(t, "Smartphone", items[1].Name)
	assert.Equal(t, "Coffee Maker", items[2].Name)
}

func TestList_CategoryFilterReportsFilteredTotal(t *testing.T) {
	m := newSeededStore()

	items, total, err := m.List(context.Background(), ListOptions{Category: "electronics", Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, total, "total must reflect the filtered set, not the page")
	require.Len(t, items, 1)
	assert.Equal(t, "electronics", items[0].Category)
}

func TestList_Pagination(t *testing.T) {
	m := newSeededStore()

	tests := []struct {
		name      string
		offset    int
		limit     int
		wantNames []string
	}{
		{name: "first page", offset: 0, limit: 2, wantNames: []string{"Laptop", "Smartphone"}},
		{name: "second page", offset: 2, limit: 2, wantNames: []string{"Coffee Maker"}},
		{name: "out of range", offset: 10, limit: 2, wantNames: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, total, err := m.List(context.Background(), ListOptions{Offset: tt.offset, Limit: tt.limit})
			require.NoError(t, err)
			assert.Equal(t, 3, total)

			names := make([]string, 0, len(items))
			for _, p := range items {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestGet_ReturnsSeedRecord(t *testing.T) {
	m := newSeededStore()
	seeded := listAll(t, m)

	got, err := m.Get(context.Background(), seeded[0].ID)
	require.NoError(t, err)
	assert.Equal(t, seeded[0], got)
}

func TestGet_UnknownID(t *testing.T) {
	m := newSeededStore()

	_, err := m.Get(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearchByName_CaseInsensitiveSubstring(t *testing.T) {
	m := newSeededStore()

	matches, err := m.SearchByName(context.Background(), "lap")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Laptop", matches[0].Name)

	matches, err = m.SearchByName(context.Background(), "MAKER")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Coffee Maker", matches[0].Name)
}

func TestSearchByName_NoMatchIsEmptyNotNil(t *testing.T) {
	m := newSeededStore()

	matches, err := m.SearchByName(context.Background(), "zzz")
	require.NoError(t, err)
	assert.NotNil(t, matches)
	assert.Empty(t, matches)
}

func TestCategoryCounts_SeedCatalog(t *testing.T) {
	m := newSeededStore()

	counts, err := m.CategoryCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"electronics": 2, "kitchen": 1}, counts)
}

func TestCreate_AssignsUniqueIDAndAppends(t *testing.T) {
	m := newSeededStore()
	before := listAll(t, m)

	created, err := m.Create(context.Background(), model.Product{
		Name:        "Blender",
		Description: "500W blender",
		Price:       39.99,
		Category:    "kitchen",
		InStock:     true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	for _, p := range before {
		assert.NotEqual(t, p.ID, created.ID)
	}

	after := listAll(t, m)
	require.Len(t, after, len(before)+1)
	assert.Equal(t, created, after[len(after)-1], "new records append in insertion order")
}

func TestUpdate_ReplacesFieldsInPlace(t *testing.T) {
	m := newSeededStore()
	seeded := listAll(t, m)
	target := seeded[1]

	updated, err := m.Update(context.Background(), model.Product{
		ID:          target.ID,
		Name:        "Smartphone Pro",
		Description: "Latest model with 256GB storage",
		Price:       899.99,
		Category:    "electronics",
		InStock:     false,
	})
	require.NoError(t, err)
	assert.Equal(t, target.ID, updated.ID)

	after := listAll(t, m)
	require.Len(t, after, len(seeded))
	assert.Equal(t, updated, after[1], "updated record keeps its position")
}

func TestUpdate_UnknownID(t *testing.T) {
	m := newSeededStore()

	_, err := m.Update(context.Background(), model.Product{ID: "no-such-id", Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_RemovesRecord(t *testing.T) {
	m := newSeededStore()
	seeded := listAll(t, m)
	target := seeded[0]

	removed, err := m.Delete(context.Background(), target.ID)
	require.NoError(t, err)
	assert.Equal(t, target, removed)

	after := listAll(t, m)
	assert.Len(t, after, len(seeded)-1)

	_, err = m.Get(context.Background(), target.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_UnknownID(t *testing.T) {
	m := newSeededStore()

	_, err := m.Delete(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}
