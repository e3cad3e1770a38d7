package service

import (
	"context"

	"gocart/internal/model"

	"github.com/google/uuid"
)

// AuthService defines the credential and password-lifecycle operations.
type AuthService interface {
	// Register creates an account, optionally storing an avatar in the media
	// store first. The avatar is removed again if any later step fails.
	Register(ctx context.Context, req *model.RegisterRequest, avatar *model.Upload) (*model.User, error)

	// Login verifies a credential pair and returns a signed bearer token.
	Login(ctx context.Context, email, password string) (string, error)

	// CheckPassword verifies a credential pair without issuing a token.
	CheckPassword(ctx context.Context, email, password string) error

	// RequestPasswordReset issues a reset token and emails it to the account.
	RequestPasswordReset(ctx context.Context, email string) error

	// ConfirmPasswordReset consumes a reset token and stores a new password.
	ConfirmPasswordReset(ctx context.Context, resetToken, newPassword string) error
}

// UserService defines operations for account management.
type UserService interface {
	// GetAll retrieves every user.
	GetAll(ctx context.Context) ([]model.User, error)

	// GetByID retrieves a single user by id.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)

	// GetAllExcludingAdmin retrieves all non-admin users, newest first.
	GetAllExcludingAdmin(ctx context.Context) ([]model.User, error)

	// SearchByName retrieves non-admin users whose name contains the term.
	SearchByName(ctx context.Context, name string) ([]model.User, error)

	// Update changes profile fields, optionally the password and avatar.
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateUserRequest, avatar *model.Upload) (*model.User, error)

	// Delete removes a user and their avatar from the media store.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryService defines operations for category management.
type CategoryService interface {
	// Create adds a new category.
	Create(ctx context.Context, req *model.CategoryRequest) (*model.Category, error)

	// GetAll retrieves every category.
	GetAll(ctx context.Context) ([]model.Category, error)

	// GetByID retrieves a single category by id.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error)

	// Update renames a category.
	Update(ctx context.Context, id uuid.UUID, req *model.CategoryRequest) (*model.Category, error)

	// Delete removes a category. Products referencing it are untouched.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductService defines operations for catalogue management.
type ProductService interface {
	// Create adds a product, storing its images in the media store first.
	// Stored images are removed again if any later step fails.
	Create(ctx context.Context, req *model.ProductRequest, images []model.Upload) (*model.Product, error)

	// GetAll retrieves every product with its category, newest first.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product with its category.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// SearchByName retrieves products whose name contains the term. An empty
	// term returns the whole catalogue.
	SearchByName(ctx context.Context, name string) ([]model.Product, error)

	// Paginate retrieves one page of the catalogue with totals.
	Paginate(ctx context.Context, page, limit int) (*model.PaginatedProducts, error)

	// PaginateByCategory retrieves one page of a category with totals.
	PaginateByCategory(ctx context.Context, categoryID uuid.UUID, page, limit int) (*model.PaginatedProducts, error)

	// Update changes product fields. New images replace the old set; absent
	// images retain it.
	Update(ctx context.Context, id uuid.UUID, req *model.ProductRequest, images []model.Upload) (*model.Product, error)

	// Delete removes a product and its images from the media store.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteMany removes the listed products, skipping unknown ids.
	DeleteMany(ctx context.Context, ids []uuid.UUID) error

	// DeleteAll removes every product and all their images.
	DeleteAll(ctx context.Context) error
}

// FavoriteService defines operations for favorite management.
type FavoriteService interface {
	// CreateBatch inserts the given (user, product) pairs.
	CreateBatch(ctx context.Context, reqs []model.FavoriteRequest) ([]model.Favorite, error)

	// GetAllByUser retrieves a user's favorites with product data.
	GetAllByUser(ctx context.Context, userID uuid.UUID) ([]model.Favorite, error)

	// Toggle creates the favorite if absent or removes it if present.
	// It returns the created favorite, or nil with removed=true.
	Toggle(ctx context.Context, userID, productID uuid.UUID) (*model.Favorite, bool, error)

	// Delete removes the favorite for a (user, product) pair.
	Delete(ctx context.Context, userID, productID uuid.UUID) error

	// LikesByProduct ranks products by favorite count, descending.
	LikesByProduct(ctx context.Context) ([]model.ProductLikes, error)
}
