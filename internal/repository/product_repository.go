package repository

import (
	"context"
	"fmt"
	"time"

	"gocart/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// productJoinColumns selects product fields plus the (possibly absent)
// category the product references. Categories can be deleted out from under
// products, hence the LEFT JOIN and nullable category columns.
const productJoinColumns = `
	p.id, p.name, p.price, p.description, p.category_id, p.images, p.created_at,
	c.id, c.name, c.created_at
`

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// Create inserts a new product and fills in its generated id.
func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	query := `
		INSERT INTO products (name, price, description, category_id, images)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		product.Name,
		product.Price,
		product.Description,
		product.CategoryID,
		product.Images,
	).Scan(&product.ID, &product.CreatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("name", product.Name).Msg("failed to insert product")
		return fmt.Errorf("failed to insert product: %w", err)
	}

	return nil
}

// GetAll retrieves every product with its category joined, newest first.
func (r *productRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	query := `
		SELECT ` + productJoinColumns + `
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		ORDER BY p.created_at DESC
	`

	return r.getMany(ctx, query)
}

// GetByID retrieves a single product with its category joined.
func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	query := `
		SELECT ` + productJoinColumns + `
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1
	`

	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to query product: %w", err)
		}
		r.logger.Debug().Str("product_id", id.String()).Msg("product not found")
		return nil, nil
	}

	p, err := scanProductJoin(rows)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to scan product row")
		return nil, fmt.Errorf("failed to scan product: %w", err)
	}

	return p, nil
}

// GetPage retrieves one page of products, newest first.
func (r *productRepository) GetPage(ctx context.Context, categoryID *uuid.UUID, limit, offset int) ([]model.Product, error) {
	query := `
		SELECT ` + productJoinColumns + `
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE ($1::uuid IS NULL OR p.category_id = $1)
		ORDER BY p.created_at DESC
		LIMIT $2 OFFSET $3
	`

	return r.getMany(ctx, query, categoryID, limit, offset)
}

// Count counts products, optionally within a single category.
func (r *productRepository) Count(ctx context.Context, categoryID *uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM products WHERE ($1::uuid IS NULL OR category_id = $1)`

	var count int64
	if err := r.pool.QueryRow(ctx, query, categoryID).Scan(&count); err != nil {
		r.logger.Error().Err(err).Msg("failed to count products")
		return 0, fmt.Errorf("failed to count products: %w", err)
	}

	return count, nil
}

// SearchByName retrieves products whose name contains the term,
// case-insensitively. An empty term matches everything.
func (r *productRepository) SearchByName(ctx context.Context, name string) ([]model.Product, error) {
	query := `
		SELECT ` + productJoinColumns + `
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.name ILIKE '%' || $1 || '%'
		ORDER BY p.created_at DESC
	`

	return r.getMany(ctx, query, name)
}

// Update persists the mutable fields of an existing product.
func (r *productRepository) Update(ctx context.Context, product *model.Product) error {
	query := `
		UPDATE products
		SET name = $2,
		    price = $3,
		    description = $4,
		    category_id = $5,
		    images = $6
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Price,
		product.Description,
		product.CategoryID,
		product.Images,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", product.ID.String()).Msg("failed to update product")
		return fmt.Errorf("failed to update product: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrProductNotFound
	}

	return nil
}

// Delete removes a product by id.
func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrProductNotFound
	}

	return nil
}

// DeleteAll removes every product.
func (r *productRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM products`); err != nil {
		r.logger.Error().Err(err).Msg("failed to delete all products")
		return fmt.Errorf("failed to delete all products: %w", err)
	}

	return nil
}

// getMany runs a multi-row product query with the join columns.
func (r *productRepository) getMany(ctx context.Context, query string, args ...any) ([]model.Product, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		p, err := scanProductJoin(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// scanProductJoin scans one row of productJoinColumns.
func scanProductJoin(rows pgx.Rows) (*model.Product, error) {
	var (
		p            model.Product
		catID        *uuid.UUID
		catName      *string
		catCreatedAt *time.Time
	)

	err := rows.Scan(
		&p.ID,
		&p.Name,
		&p.Price,
		&p.Description,
		&p.CategoryID,
		&p.Images,
		&p.CreatedAt,
		&catID,
		&catName,
		&catCreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if catID != nil {
		p.Category = &model.Category{
			ID:        *catID,
			Name:      *catName,
			CreatedAt: *catCreatedAt,
		}
	}

	return &p, nil
}
