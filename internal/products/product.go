package products

import (
	"context"
	"errors"
	"time"
)

// Product is a catalog entry.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

var (
	// ErrProductNotFound is returned for unknown product IDs.
	ErrProductNotFound = errors.New("products: product not found")
	// ErrInvalidProduct is returned for products failing validation.
	ErrInvalidProduct = errors.New("products: invalid product")
)

// UpdateInput carries a partial update: nil fields keep their stored
// values, matching PUT semantics of the API.
type UpdateInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Quantity    *int     `json:"quantity"`
}

// Storage persists catalog entries.
type Storage interface {
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id int64) (Product, error)
	Create(ctx context.Context, product Product) (Product, error)
	Update(ctx context.Context, product Product) error
	Delete(ctx context.Context, id int64) error
}
