// Package model defines the catalog domain types.
package model

// Product is a single catalog entry. IDs are opaque strings assigned by the
// store; every stored record carries all five business fields.
type Product struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Price       float64 `json:"price" yaml:"price"`
	Category    string  `json:"category" yaml:"category"`
	InStock     bool    `json:"inStock" yaml:"inStock"`
}
