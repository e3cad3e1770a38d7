package repository

import (
	"context"
	"errors"
	"fmt"

	"gocart/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// favoriteRepository implements the FavoriteRepository interface using PostgreSQL.
type favoriteRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewFavoriteRepository creates a new PostgreSQL-backed favorite repository.
func NewFavoriteRepository(pool *pgxpool.Pool, logger zerolog.Logger) FavoriteRepository {
	return &favoriteRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "favorite").Logger(),
	}
}

// CreateBatch inserts the given favorites and fills in generated ids.
func (r *favoriteRepository) CreateBatch(ctx context.Context, favorites []model.Favorite) error {
	if len(favorites) == 0 {
		return nil
	}

	query := `
		INSERT INTO favorites (user_id, product_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	batch := &pgx.Batch{}
	for i := range favorites {
		f := &favorites[i]
		batch.Queue(query, f.UserID, f.ProductID).QueryRow(func(row pgx.Row) error {
			return row.Scan(&f.ID, &f.CreatedAt)
		})
	}

	if err := r.pool.SendBatch(ctx, batch).Close(); err != nil {
		r.logger.Error().Err(err).Int("count", len(favorites)).Msg("failed to insert favorites")
		return fmt.Errorf("failed to insert favorites: %w", err)
	}

	return nil
}

// GetByUserAndProduct retrieves the favorite for a (user, product) pair.
// More than one row can exist because nothing constrains the pair; the oldest
// wins so that repeated toggles drain duplicates.
func (r *favoriteRepository) GetByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*model.Favorite, error) {
	query := `
		SELECT id, user_id, product_id, created_at
		FROM favorites
		WHERE user_id = $1 AND product_id = $2
		ORDER BY created_at
		LIMIT 1
	`

	var f model.Favorite
	err := r.pool.QueryRow(ctx, query, userID, productID).Scan(&f.ID, &f.UserID, &f.ProductID, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error().Err(err).
			Str("user_id", userID.String()).
			Str("product_id", productID.String()).
			Msg("failed to query favorite")
		return nil, fmt.Errorf("failed to query favorite: %w", err)
	}

	return &f, nil
}

// GetAllByUser retrieves a user's favorites with product fields joined.
func (r *favoriteRepository) GetAllByUser(ctx context.Context, userID uuid.UUID) ([]model.Favorite, error) {
	query := `
		SELECT f.id, f.user_id, f.product_id, f.created_at,
		       p.id, p.name, p.price, p.description, p.category_id, p.images, p.created_at
		FROM favorites f
		JOIN products p ON p.id = f.product_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to query favorites")
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	var favorites []model.Favorite
	for rows.Next() {
		var (
			f model.Favorite
			p model.Product
		)
		err := rows.Scan(
			&f.ID, &f.UserID, &f.ProductID, &f.CreatedAt,
			&p.ID, &p.Name, &p.Price, &p.Description, &p.CategoryID, &p.Images, &p.CreatedAt,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan favorite row")
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		f.Product = &p
		favorites = append(favorites, f)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating favorite rows")
		return nil, fmt.Errorf("error iterating favorites: %w", err)
	}

	return favorites, nil
}

// Delete removes a favorite by id.
func (r *favoriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM favorites WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("favorite_id", id.String()).Msg("failed to delete favorite")
		return fmt.Errorf("failed to delete favorite: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrFavoriteNotFound
	}

	return nil
}

// LikesByProduct counts favorites per product, most liked first.
func (r *favoriteRepository) LikesByProduct(ctx context.Context) ([]model.ProductLikes, error) {
	query := `
		SELECT f.product_id, COUNT(*) AS likes,
		       p.id, p.name, p.price, p.description, p.category_id, p.images, p.created_at
		FROM favorites f
		JOIN products p ON p.id = f.product_id
		GROUP BY f.product_id, p.id, p.name, p.price, p.description, p.category_id, p.images, p.created_at
		ORDER BY likes DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query likes per product")
		return nil, fmt.Errorf("failed to query likes per product: %w", err)
	}
	defer rows.Close()

	var likes []model.ProductLikes
	for rows.Next() {
		var l model.ProductLikes
		err := rows.Scan(
			&l.ProductID, &l.Likes,
			&l.Product.ID, &l.Product.Name, &l.Product.Price, &l.Product.Description,
			&l.Product.CategoryID, &l.Product.Images, &l.Product.CreatedAt,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan likes row")
			return nil, fmt.Errorf("failed to scan likes: %w", err)
		}
		likes = append(likes, l)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating likes rows")
		return nil, fmt.Errorf("error iterating likes: %w", err)
	}

	return likes, nil
}
