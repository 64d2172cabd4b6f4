// Package store holds the read-only product catalog of the inventory service.
package store

import (
	"errors"
	"fmt"

	"github.com/fairyhunter13/sri-rajeswari-provisions/internal/model"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrDuplicateID     = errors.New("duplicate product id")
)

// Store is an immutable, ordered product list. It is safe for concurrent use
// because nothing mutates it after New returns.
type Store struct {
	products []model.Product
}

// Seed returns the catalog every inventory process starts with.
func Seed() []model.Product {
	return []model.Product{
		{ID: 1, Name: "Basmati Rice", Category: "Rice", Price: 85.0, Stock: 100},
		{ID: 2, Name: "Sunflower Oil", Category: "Oil", Price: 180.0, Stock: 50},
	}
}

// New validates products and builds a Store keeping their order.
func New(products ...model.Product) (*Store, error) {
	seen := make(map[int]struct{}, len(products))
	ps := make([]model.Product, 0, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("store: %w", err)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("store: product %d: %w", p.ID, ErrDuplicateID)
		}
		seen[p.ID] = struct{}{}
		ps = append(ps, p)
	}
	return &Store{products: ps}, nil
}

// List returns a copy of all products in insertion order.
func (s *Store) List() []model.Product {
	out := make([]model.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get returns the first product with the given id.
func (s *Store) Get(id int) (model.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Product{}, fmt.Errorf("product %d: %w", id, ErrProductNotFound)
}

// Len returns the number of products.
func (s *Store) Len() int { return len(s.products) }
