package store

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/shoplite/catalog/internal/model"
)

// DefaultCatalog returns the built-in seed products used when no seed file is
// configured.
func DefaultCatalog() []model.Product {
	return []model.Product{
		{
			ID:          "1",
			Name:        "Laptop",
			Description: "High-performance laptop with 16GB RAM",
			Price:       999.99,
			Category:    "electronics",
			InStock:     true,
		},
		{
			ID:          "2",
			Name:        "Smartphone",
			Description: "Latest model with 128GB storage",
			Price:       699.99,
			Category:    "electronics",
			InStock:     true,
		},
		{
			ID:          "3",
			Name:        "Coffee Maker",
			Description: "Programmable coffee maker with timer",
			Price:       49.99,
			Category:    "kitchen",
			InStock:     false,
		},
	}
}

// LoadCatalogFile reads a YAML seed catalog. Each entry must carry the full
// set of business fields; ids are optional and assigned at store construction
// when absent.
func LoadCatalogFile(path string) ([]model.Product, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed catalog: %w", err)
	}

	var products []model.Product
	if err := yaml.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("parse seed catalog %s: %w", path, err)
	}

	for i, p := range products {
		if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Description) == "" || strings.TrimSpace(p.Category) == "" {
			return nil, fmt.Errorf("seed catalog %s: entry %d is missing name, description or category", path, i)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("seed catalog %s: entry %d has a negative price", path, i)
		}
	}
	return products, nil
}
