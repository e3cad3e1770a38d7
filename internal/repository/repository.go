package repository

import (
	"context"

	"gocart/internal/model"

	"github.com/google/uuid"
)

// UserRepository defines the interface for account data access operations.
type UserRepository interface {
	// Create inserts a new user and fills in its generated id and timestamp.
	Create(ctx context.Context, user *model.User) error

	// GetByID retrieves a user by id, or nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)

	// GetByEmail retrieves a user by email, or nil when absent.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// GetByResetToken retrieves the user holding a reset token, or nil.
	GetByResetToken(ctx context.Context, resetToken string) (*model.User, error)

	// GetAll retrieves every user.
	GetAll(ctx context.Context) ([]model.User, error)

	// GetAllExcludingRole retrieves users whose role differs from the given
	// one, newest first.
	GetAllExcludingRole(ctx context.Context, role string) ([]model.User, error)

	// SearchByName retrieves non-admin users whose first or last name contains
	// the term, case-insensitively, newest first.
	SearchByName(ctx context.Context, name string) ([]model.User, error)

	// Update persists the mutable fields of an existing user.
	Update(ctx context.Context, user *model.User) error

	// Delete removes a user by id.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryRepository defines the interface for category data access operations.
type CategoryRepository interface {
	// Create inserts a new category and fills in its generated id.
	Create(ctx context.Context, category *model.Category) error

	// GetAll retrieves every category.
	GetAll(ctx context.Context) ([]model.Category, error)

	// GetByID retrieves a category by id, or nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error)

	// Update renames an existing category. Returns the updated row, or nil
	// when the id is unknown.
	Update(ctx context.Context, id uuid.UUID, name string) (*model.Category, error)

	// Delete removes a category by id. Reports whether a row was removed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// ProductRepository defines the interface for catalogue data access operations.
type ProductRepository interface {
	// Create inserts a new product and fills in its generated id.
	Create(ctx context.Context, product *model.Product) error

	// GetAll retrieves every product with its category joined, newest first.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a product with its category joined, or nil.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// GetPage retrieves one page of products, newest first. A nil categoryID
	// spans the whole catalogue.
	GetPage(ctx context.Context, categoryID *uuid.UUID, limit, offset int) ([]model.Product, error)

	// Count counts products. A nil categoryID spans the whole catalogue.
	Count(ctx context.Context, categoryID *uuid.UUID) (int64, error)

	// SearchByName retrieves products whose name contains the term,
	// case-insensitively. An empty term matches everything.
	SearchByName(ctx context.Context, name string) ([]model.Product, error)

	// Update persists the mutable fields of an existing product.
	Update(ctx context.Context, product *model.Product) error

	// Delete removes a product by id.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteAll removes every product.
	DeleteAll(ctx context.Context) error
}

// FavoriteRepository defines the interface for favorite data access operations.
type FavoriteRepository interface {
	// CreateBatch inserts the given favorites and fills in generated ids.
	CreateBatch(ctx context.Context, favorites []model.Favorite) error

	// GetByUserAndProduct retrieves the favorite for a (user, product) pair,
	// or nil when absent.
	GetByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*model.Favorite, error)

	// GetAllByUser retrieves a user's favorites with product fields joined.
	GetAllByUser(ctx context.Context, userID uuid.UUID) ([]model.Favorite, error)

	// Delete removes a favorite by id.
	Delete(ctx context.Context, id uuid.UUID) error

	// LikesByProduct counts favorites per product, joined with product
	// fields, most liked first.
	LikesByProduct(ctx context.Context) ([]model.ProductLikes, error)
}
