package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"gocart/internal/mailer"
	"gocart/internal/model"
	"gocart/internal/repository"
	"gocart/internal/storage"
	"gocart/internal/token"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

const (
	// minPasswordLen is the minimum accepted password length, applied on
	// registration, profile update and reset alike.
	minPasswordLen = 6

	// resetTokenBytes gives 160 bits of entropy per reset token.
	resetTokenBytes = 20

	// resetTokenTTL is the absolute validity window of a reset token.
	resetTokenTTL = 5 * time.Minute
)

// authService implements AuthService.
type authService struct {
	userRepo repository.UserRepository
	media    storage.Store
	mail     mailer.Mailer
	tokens   *token.Manager
	logger   zerolog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(
	userRepo repository.UserRepository,
	media storage.Store,
	mail mailer.Mailer,
	tokens *token.Manager,
	logger zerolog.Logger,
) AuthService {
	return &authService{
		userRepo: userRepo,
		media:    media,
		mail:     mail,
		tokens:   tokens,
		logger:   logger.With().Str("service", "auth").Logger(),
	}
}

// Register creates an account. The avatar, when present, is stored in the
// media store before validation runs, matching the upload-then-validate order
// of the HTTP flow; every failure after that point unwinds the upload.
func (s *authService) Register(ctx context.Context, req *model.RegisterRequest, avatar *model.Upload) (*model.User, error) {
	comp := newCompensations(s.logger)

	avatarURL := ""
	if avatar != nil {
		ref, err := s.media.Upload(ctx, avatar.Reader, avatar.Filename, avatar.ContentType)
		if err != nil {
			return nil, fmt.Errorf("failed to store avatar: %w", err)
		}
		avatarURL = ref
		comp.add("delete uploaded avatar", func(ctx context.Context) error {
			return s.media.Delete(ctx, ref)
		})
	}

	if len(req.Password) < minPasswordLen {
		comp.run(ctx)
		return nil, model.ErrPasswordTooShort
	}

	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		comp.run(ctx)
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		comp.run(ctx)
		s.logger.Debug().Str("email", req.Email).Msg("registration rejected, email in use")
		return nil, model.ErrEmailInUse
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		comp.run(ctx)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		Avatar:       avatarURL,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		comp.run(ctx)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info().
		Str("user_id", user.ID.String()).
		Str("email", user.Email).
		Msg("user registered")

	return user, nil
}

// Login verifies the credential pair and returns a signed bearer token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return "", model.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", model.ErrInvalidCredentials
	}

	signed, err := s.tokens.Generate(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Debug().Str("user_id", user.ID.String()).Msg("login succeeded")

	return signed, nil
}

// CheckPassword verifies the credential pair without issuing a token. Unlike
// Login, unknown user and wrong password are reported separately.
func (s *authService) CheckPassword(ctx context.Context, email, password string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return model.ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return model.ErrWrongPassword
	}

	return nil
}

// RequestPasswordReset issues a fresh reset token with an absolute expiry and
// emails it to the account. A new request overwrites any previous token.
func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return model.ErrUserNotFound
	}

	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}
	resetToken := hex.EncodeToString(buf)
	expiry := time.Now().Add(resetTokenTTL)

	user.ResetToken = resetToken
	user.ResetExpiresAt = &expiry

	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	if err := s.mail.SendPasswordReset(ctx, user.Email, resetToken, resetTokenTTL); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID.String()).Msg("password reset requested")

	return nil
}

// ConfirmPasswordReset consumes a reset token. Expiry is a read-time check:
// an expired token stays on the account until a new request overwrites it.
func (s *authService) ConfirmPasswordReset(ctx context.Context, resetToken, newPassword string) error {
	user, err := s.userRepo.GetByResetToken(ctx, resetToken)
	if err != nil {
		return fmt.Errorf("failed to look up reset token: %w", err)
	}
	if user == nil {
		return model.ErrResetTokenInvalid
	}

	if user.ResetExpiresAt == nil || time.Now().After(*user.ResetExpiresAt) {
		return model.ErrResetTokenExpired
	}

	if len(newPassword) < minPasswordLen {
		return model.ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = string(hash)
	user.ResetToken = ""
	user.ResetExpiresAt = nil

	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to store new password: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID.String()).Msg("password reset completed")

	return nil
}
