package service

import (
	"context"
	"fmt"

	"gocart/internal/model"
	"gocart/internal/repository"
	"gocart/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// userService implements UserService.
type userService struct {
	userRepo repository.UserRepository
	media    storage.Store
	logger   zerolog.Logger
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository, media storage.Store, logger zerolog.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		media:    media,
		logger:   logger.With().Str("service", "user").Logger(),
	}
}

// GetAll retrieves every user.
func (s *userService) GetAll(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	return users, nil
}

// GetByID retrieves a single user by id.
func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

// GetAllExcludingAdmin retrieves all non-admin users, newest first.
func (s *userService) GetAllExcludingAdmin(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.GetAllExcludingRole(ctx, "admin")
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	if len(users) == 0 {
		return nil, model.ErrUserNotFound
	}
	return users, nil
}

// SearchByName retrieves non-admin users matching the term.
func (s *userService) SearchByName(ctx context.Context, name string) ([]model.User, error) {
	users, err := s.userRepo.SearchByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	if len(users) == 0 {
		return nil, model.ErrUserNotFound
	}
	return users, nil
}

// Update changes profile fields, optionally the password and avatar. A new
// avatar replaces the old one in the media store; the new upload is unwound
// if the database write fails.
func (s *userService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateUserRequest, avatar *model.Upload) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, model.ErrUserNotFound
	}

	if req.Password != "" {
		if len(req.Password) < minPasswordLen {
			return nil, model.ErrPasswordTooShort
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	comp := newCompensations(s.logger)

	oldAvatar := user.Avatar
	if avatar != nil {
		ref, err := s.media.Upload(ctx, avatar.Reader, avatar.Filename, avatar.ContentType)
		if err != nil {
			return nil, fmt.Errorf("failed to store avatar: %w", err)
		}
		user.Avatar = ref
		comp.add("delete uploaded avatar", func(ctx context.Context) error {
			return s.media.Delete(ctx, ref)
		})
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName

	if err := s.userRepo.Update(ctx, user); err != nil {
		comp.run(ctx)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	// The old avatar is orphaned once the row points at the new one.
	if avatar != nil && oldAvatar != "" {
		if err := s.media.Delete(ctx, oldAvatar); err != nil {
			s.logger.Warn().Err(err).Str("ref", oldAvatar).Msg("failed to delete replaced avatar")
		}
	}

	s.logger.Info().Str("user_id", user.ID.String()).Msg("user updated")

	return user, nil
}

// Delete removes a user. Their avatar is deleted from the media store first,
// best-effort.
func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return model.ErrUserNotFound
	}

	if user.Avatar != "" {
		if err := s.media.Delete(ctx, user.Avatar); err != nil {
			s.logger.Warn().Err(err).Str("ref", user.Avatar).Msg("failed to delete avatar")
		}
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info().Str("user_id", id.String()).Msg("user deleted")

	return nil
}
