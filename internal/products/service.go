package products

import (
	"context"
	"errors"
	"fmt"
)

// Service wraps catalog business rules over the injected store.
type Service struct {
	storage Storage
}

// NewService constructs a Service.
func NewService(storage Storage) *Service {
	return &Service{storage: storage}
}

// List returns all catalog entries.
func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.storage.List(ctx)
}

// Create validates and persists a new product.
func (s *Service) Create(ctx context.Context, product Product) (Product, error) {
	if err := validate(product); err != nil {
		return Product{}, err
	}
	return s.storage.Create(ctx, product)
}

// Update applies a partial update to an existing product. Fields absent
// from the input keep their stored values. Returns ErrProductNotFound
// for unknown IDs.
func (s *Service) Update(ctx context.Context, id int64, input UpdateInput) error {
	product, err := s.storage.Get(ctx, id)
	if err != nil {
		return err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Quantity != nil {
		product.Quantity = *input.Quantity
	}

	if err := validate(product); err != nil {
		return err
	}

	return s.storage.Update(ctx, product)
}

// Delete removes a product. Returns ErrProductNotFound for unknown IDs.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.storage.Delete(ctx, id)
}

func validate(p Product) error {
	if p.Name == "" {
		return errors.Join(ErrInvalidProduct, fmt.Errorf("name is required"))
	}
	if p.Price < 0 {
		return errors.Join(ErrInvalidProduct, fmt.Errorf("price must not be negative"))
	}
	if p.Quantity < 0 {
		return errors.Join(ErrInvalidProduct, fmt.Errorf("quantity must not be negative"))
	}
	return nil
}
