package model

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products. Deleting a category does not cascade to the
// products that reference it.
type Category struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// CategoryRequest carries the fields for category create and update.
type CategoryRequest struct {
	Name string `json:"name" validate:"required"`
}
