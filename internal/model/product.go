package model

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a catalogue item. Images holds object-store URLs.
// Category is populated on reads that join the categories table; it is nil
// when the referenced category no longer exists.
type Product struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Price       float64   `json:"price" db:"price"`
	Description string    `json:"description" db:"description"`
	CategoryID  uuid.UUID `json:"categoryId" db:"category_id"`
	Images      []string  `json:"images" db:"images"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	Category    *Category `json:"category,omitempty"`
}

// ProductRequest carries the scalar product fields; images arrive as
// multipart files alongside it.
type ProductRequest struct {
	Name        string    `json:"name" validate:"required"`
	Price       float64   `json:"price" validate:"required,gt=0"`
	Description string    `json:"description"`
	CategoryID  uuid.UUID `json:"category" validate:"required"`
}

// DeleteProductsRequest lists the products to remove in one call.
type DeleteProductsRequest struct {
	IDs []uuid.UUID `json:"ids" validate:"required,min=1"`
}

// ProductsByCategoryRequest selects a category page.
type ProductsByCategoryRequest struct {
	CategoryID uuid.UUID `json:"categoryId" validate:"required"`
}

// PaginatedProducts is the envelope for paginated catalogue reads.
type PaginatedProducts struct {
	TotalProducts int64     `json:"totalProducts"`
	TotalPages    int       `json:"totalPages"`
	CurrentPage   int       `json:"currentPage"`
	Products      []Product `json:"products"`
}
