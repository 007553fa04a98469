package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/secureapp/secureapp/internal/products"
)

// ProductStore is a pgx-backed products.Storage.
type ProductStore struct {
	db *pgxpool.Pool
}

// NewProductStore constructs a ProductStore.
func NewProductStore(db *pgxpool.Pool) *ProductStore {
	return &ProductStore{db: db}
}

// List returns all products ordered by ID.
func (s *ProductStore) List(ctx context.Context) ([]products.Product, error) {
	const query = `
		SELECT id, name, description, price, quantity, created_at, updated_at
		FROM products
		ORDER BY id`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	defer rows.Close()

	var out []products.Product
	for rows.Next() {
		var p products.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Get returns the product or products.ErrProductNotFound.
func (s *ProductStore) Get(ctx context.Context, id int64) (products.Product, error) {
	const query = `
		SELECT id, name, description, price, quantity, created_at, updated_at
		FROM products
		WHERE id = $1`

	var p products.Product
	err := s.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNotFound(err) {
			return products.Product{}, products.ErrProductNotFound
		}
		return products.Product{}, fmt.Errorf("select product: %w", err)
	}
	return p, nil
}

// Create inserts the product and returns it with its assigned ID.
func (s *ProductStore) Create(ctx context.Context, product products.Product) (products.Product, error) {
	const query = `
		INSERT INTO products (name, description, price, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING id`

	now := time.Now()
	err := s.db.QueryRow(ctx, query, product.Name, product.Description, product.Price, product.Quantity, now).
		Scan(&product.ID)
	if err != nil {
		return products.Product{}, fmt.Errorf("insert product: %w", err)
	}
	product.CreatedAt = now
	product.UpdatedAt = now
	return product, nil
}

// Update rewrites the product row or returns products.ErrProductNotFound.
func (s *ProductStore) Update(ctx context.Context, product products.Product) error {
	const query = `
		UPDATE products
		SET name = $1, description = $2, price = $3, quantity = $4, updated_at = $5
		WHERE id = $6`

	tag, err := s.db.Exec(ctx, query, product.Name, product.Description, product.Price, product.Quantity, time.Now(), product.ID)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return products.ErrProductNotFound
	}
	return nil
}

// Delete removes the product row or returns products.ErrProductNotFound.
func (s *ProductStore) Delete(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return products.ErrProductNotFound
	}
	return nil
}
