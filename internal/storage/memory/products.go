package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/secureapp/secureapp/internal/products"
)

// ProductStore is a mutex-guarded in-memory products.Storage with
// auto-incrementing IDs.
type ProductStore struct {
	mu     sync.RWMutex
	items  map[int64]products.Product
	nextID int64
}

// NewProductStore returns an empty ProductStore.
func NewProductStore() *ProductStore {
	return &ProductStore{items: make(map[int64]products.Product), nextID: 1}
}

// List returns all products ordered by ID.
func (s *ProductStore) List(_ context.Context) ([]products.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]products.Product, 0, len(s.items))
	for _, p := range s.items {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Get returns the product or products.ErrProductNotFound.
func (s *ProductStore) Get(_ context.Context, id int64) (products.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.items[id]
	if !ok {
		return products.Product{}, products.ErrProductNotFound
	}
	return p, nil
}

// Create assigns the next ID and stores the product.
func (s *ProductStore) Create(_ context.Context, product products.Product) (products.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	product.ID = s.nextID
	product.CreatedAt = now
	product.UpdatedAt = now
	s.nextID++
	s.items[product.ID] = product
	return product, nil
}

// Update replaces the stored product or returns products.ErrProductNotFound.
func (s *ProductStore) Update(_ context.Context, product products.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.items[product.ID]
	if !ok {
		return products.ErrProductNotFound
	}
	product.CreatedAt = stored.CreatedAt
	product.UpdatedAt = time.Now()
	s.items[product.ID] = product
	return nil
}

// Delete removes the product or returns products.ErrProductNotFound.
func (s *ProductStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return products.ErrProductNotFound
	}
	delete(s.items, id)
	return nil
}
