package model

import (
	"time"

	"github.com/google/uuid"
)

// Favorite links a user to a product they marked as liked. Uniqueness of the
// (user, product) pair is enforced by a check-before-insert in the service,
// not by a database constraint.
type Favorite struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"userId" db:"user_id"`
	ProductID uuid.UUID `json:"productId" db:"product_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Product   *Product  `json:"product,omitempty"`
}

// FavoriteRequest identifies a (user, product) pair.
type FavoriteRequest struct {
	UserID    uuid.UUID `json:"userId" validate:"required"`
	ProductID uuid.UUID `json:"productId" validate:"required"`
}

// FavoritesByUserRequest selects all favorites for one user.
type FavoritesByUserRequest struct {
	UserID uuid.UUID `json:"userId" validate:"required"`
}

// ProductLikes is one row of the likes-per-product aggregation.
type ProductLikes struct {
	ProductID uuid.UUID `json:"productId"`
	Likes     int64     `json:"likes"`
	Product   Product   `json:"product"`
}
