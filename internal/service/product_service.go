package service

import (
	"context"
	"fmt"

	"gocart/internal/model"
	"gocart/internal/repository"
	"gocart/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	media       storage.Store
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, media storage.Store, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		media:       media,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// Create adds a product. Images are stored in the media store before the
// database write; a failing write unwinds the uploads.
func (s *productService) Create(ctx context.Context, req *model.ProductRequest, images []model.Upload) (*model.Product, error) {
	comp := newCompensations(s.logger)

	urls, err := s.uploadImages(ctx, images, comp)
	if err != nil {
		comp.run(ctx)
		return nil, err
	}

	product := &model.Product{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Images:      urls,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		comp.run(ctx)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Str("product_id", product.ID.String()).
		Int("images", len(urls)).
		Msg("product created")

	return product, nil
}

// GetAll retrieves every product with its category, newest first.
func (s *productService) GetAll(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product with its category.
func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}
	return product, nil
}

// SearchByName retrieves products matching the term; an empty term returns
// the whole catalogue.
func (s *productService) SearchByName(ctx context.Context, name string) ([]model.Product, error) {
	products, err := s.productRepo.SearchByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return products, nil
}

// Paginate retrieves one page of the catalogue with totals.
func (s *productService) Paginate(ctx context.Context, page, limit int) (*model.PaginatedProducts, error) {
	return s.paginate(ctx, nil, page, limit)
}

// PaginateByCategory retrieves one page of a category with totals.
func (s *productService) PaginateByCategory(ctx context.Context, categoryID uuid.UUID, page, limit int) (*model.PaginatedProducts, error) {
	return s.paginate(ctx, &categoryID, page, limit)
}

func (s *productService) paginate(ctx context.Context, categoryID *uuid.UUID, page, limit int) (*model.PaginatedProducts, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	total, err := s.productRepo.Count(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	offset := (page - 1) * limit

	products, err := s.productRepo.GetPage(ctx, categoryID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get product page: %w", err)
	}

	if products == nil {
		products = []model.Product{}
	}

	return &model.PaginatedProducts{
		TotalProducts: total,
		TotalPages:    totalPages,
		CurrentPage:   page,
		Products:      products,
	}, nil
}

// Update changes product fields. New images replace the old set, which is
// deleted from the media store; absent images retain the prior set.
func (s *productService) Update(ctx context.Context, id uuid.UUID, req *model.ProductRequest, images []model.Upload) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}

	comp := newCompensations(s.logger)

	oldImages := product.Images
	if len(images) > 0 {
		urls, err := s.uploadImages(ctx, images, comp)
		if err != nil {
			comp.run(ctx)
			return nil, err
		}
		product.Images = urls
	}

	product.Name = req.Name
	product.Price = req.Price
	product.Description = req.Description
	product.CategoryID = req.CategoryID
	product.Category = nil

	if err := s.productRepo.Update(ctx, product); err != nil {
		comp.run(ctx)
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	// The replaced set is orphaned once the row points at the new one.
	if len(images) > 0 {
		s.deleteImages(ctx, oldImages)
	}

	s.logger.Info().Str("product_id", id.String()).Msg("product updated")

	return product, nil
}

// Delete removes a product and its images.
func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return model.ErrProductNotFound
	}

	s.deleteImages(ctx, product.Images)

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.logger.Info().Str("product_id", id.String()).Msg("product deleted")

	return nil
}

// DeleteMany removes the listed products, skipping ids that no longer exist.
func (s *productService) DeleteMany(ctx context.Context, ids []uuid.UUID) error {
	for _, id := range ids {
		product, err := s.productRepo.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get product: %w", err)
		}
		if product == nil {
			s.logger.Warn().Str("product_id", id.String()).Msg("product not found, skipping")
			continue
		}

		s.deleteImages(ctx, product.Images)

		if err := s.productRepo.Delete(ctx, id); err != nil {
			return fmt.Errorf("failed to delete product: %w", err)
		}
	}

	s.logger.Info().Int("count", len(ids)).Msg("products deleted")

	return nil
}

// DeleteAll removes every product and all their images.
func (s *productService) DeleteAll(ctx context.Context) error {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to get products: %w", err)
	}
	if len(products) == 0 {
		return model.ErrNoProducts
	}

	for _, product := range products {
		s.deleteImages(ctx, product.Images)
	}

	if err := s.productRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to delete products: %w", err)
	}

	s.logger.Info().Int("count", len(products)).Msg("all products deleted")

	return nil
}

// uploadImages stores each upload and registers an undo per stored object.
func (s *productService) uploadImages(ctx context.Context, images []model.Upload, comp *compensations) ([]string, error) {
	urls := make([]string, 0, len(images))
	for _, img := range images {
		ref, err := s.media.Upload(ctx, img.Reader, img.Filename, img.ContentType)
		if err != nil {
			return nil, fmt.Errorf("failed to store image: %w", err)
		}
		urls = append(urls, ref)
		comp.add("delete uploaded image", func(ctx context.Context) error {
			return s.media.Delete(ctx, ref)
		})
	}
	return urls, nil
}

// deleteImages removes stored objects best-effort; failures are logged only.
func (s *productService) deleteImages(ctx context.Context, refs []string) {
	for _, ref := range refs {
		if err := s.media.Delete(ctx, ref); err != nil {
			s.logger.Warn().Err(err).Str("ref", ref).Msg("failed to delete image")
		}
	}
}
