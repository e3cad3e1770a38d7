package service

import (
	"context"
	"fmt"

	"gocart/internal/model"
	"gocart/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// favoriteService implements FavoriteService.
type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	logger       zerolog.Logger
}

// NewFavoriteService creates a new favorite service.
func NewFavoriteService(favoriteRepo repository.FavoriteRepository, logger zerolog.Logger) FavoriteService {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		logger:       logger.With().Str("service", "favorite").Logger(),
	}
}

// CreateBatch inserts the given pairs without a duplicate check; only Toggle
// guards against repeats.
func (s *favoriteService) CreateBatch(ctx context.Context, reqs []model.FavoriteRequest) ([]model.Favorite, error) {
	favorites := make([]model.Favorite, len(reqs))
	for i, req := range reqs {
		favorites[i] = model.Favorite{
			UserID:    req.UserID,
			ProductID: req.ProductID,
		}
	}

	if err := s.favoriteRepo.CreateBatch(ctx, favorites); err != nil {
		return nil, fmt.Errorf("failed to create favorites: %w", err)
	}

	s.logger.Debug().Int("count", len(favorites)).Msg("favorites created")

	return favorites, nil
}

// GetAllByUser retrieves a user's favorites with product data.
func (s *favoriteService) GetAllByUser(ctx context.Context, userID uuid.UUID) ([]model.Favorite, error) {
	favorites, err := s.favoriteRepo.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get favorites: %w", err)
	}
	return favorites, nil
}

// Toggle creates the favorite if absent or removes it if present. Two
// sequential toggles for the same pair return to the original state.
func (s *favoriteService) Toggle(ctx context.Context, userID, productID uuid.UUID) (*model.Favorite, bool, error) {
	existing, err := s.favoriteRepo.GetByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check favorite: %w", err)
	}

	if existing != nil {
		if err := s.favoriteRepo.Delete(ctx, existing.ID); err != nil {
			return nil, false, fmt.Errorf("failed to delete favorite: %w", err)
		}
		s.logger.Debug().
			Str("user_id", userID.String()).
			Str("product_id", productID.String()).
			Msg("favorite toggled off")
		return nil, true, nil
	}

	favorites := []model.Favorite{{UserID: userID, ProductID: productID}}
	if err := s.favoriteRepo.CreateBatch(ctx, favorites); err != nil {
		return nil, false, fmt.Errorf("failed to create favorite: %w", err)
	}

	s.logger.Debug().
		Str("user_id", userID.String()).
		Str("product_id", productID.String()).
		Msg("favorite toggled on")

	return &favorites[0], false, nil
}

// Delete removes the favorite for a (user, product) pair.
func (s *favoriteService) Delete(ctx context.Context, userID, productID uuid.UUID) error {
	favorite, err := s.favoriteRepo.GetByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return fmt.Errorf("failed to check favorite: %w", err)
	}
	if favorite == nil {
		return model.ErrFavoriteNotFound
	}

	if err := s.favoriteRepo.Delete(ctx, favorite.ID); err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}

	return nil
}

// LikesByProduct ranks products by favorite count, descending.
func (s *favoriteService) LikesByProduct(ctx context.Context) ([]model.ProductLikes, error) {
	likes, err := s.favoriteRepo.LikesByProduct(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get likes: %w", err)
	}
	return likes, nil
}
