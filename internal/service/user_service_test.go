package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gocart/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_GetByID(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo, new(MockStore), logger)

		id := uuid.New()
		expected := &model.User{ID: id, Email: "jane@example.com"}
		mockRepo.On("GetByID", ctx, id).Return(expected, nil)

		user, err := service.GetByID(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, expected, user)
	})

	t.Run("Not found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo, new(MockStore), logger)

		id := uuid.New()
		mockRepo.On("GetByID", ctx, id).Return(nil, nil)

		user, err := service.GetByID(ctx, id)

		require.ErrorIs(t, err, model.ErrUserNotFound)
		assert.Nil(t, user)
	})
}

func TestUserService_GetAllExcludingAdmin(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo, new(MockStore), logger)

		expected := []model.User{{ID: uuid.New(), Role: "user"}}
		mockRepo.On("GetAllExcludingRole", ctx, "admin").Return(expected, nil)

		users, err := service.GetAllExcludingAdmin(ctx)

		require.NoError(t, err)
		assert.Equal(t, expected, users)
	})

	t.Run("No matches", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo, new(MockStore), logger)

		mockRepo.On("GetAllExcludingRole", ctx, "admin").Return([]model.User{}, nil)

		users, err := service.GetAllExcludingAdmin(ctx)

		require.ErrorIs(t, err, model.ErrUserNotFound)
		assert.Nil(t, users)
	})
}

func TestUserService_SearchByName(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo, new(MockStore), logger)

		expected := []model.User{{ID: uuid.New(), FirstName: "Jane"}}
		mockRepo.On("SearchByName", ctx, "jan").Return(expected, nil)

		users, err := service.SearchByName(ctx, "jan")

		require.NoError(t, err)
		assert.Equal(t, expected, users)
	})

	t.Run("No matches", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo, new(MockStore), logger)

		mockRepo.On("SearchByName", ctx, "zzz").Return([]model.User{}, nil)

		users, err := service.SearchByName(ctx, "zzz")

		require.ErrorIs(t, err, model.ErrUserNotFound)
		assert.Nil(t, users)
	})
}

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	id := uuid.New()

	t.Run("Profile fields are updated", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo, new(MockStore), logger)

		mockRepo.On("GetByID", ctx, id).
			Return(&model.User{ID: id, FirstName: "Jane", PasswordHash: "keep-me"}, nil)
		mockRepo.On("Update", ctx, mock.MatchedBy(func(u *model.User) bool {
			return u.FirstName == "Janet" && u.LastName == "Doe" && u.PasswordHash == "keep-me"
		})).Return(nil)

		user, err := service.Update(ctx, id, &model.UpdateUserRequest{
			FirstName: "Janet",
			LastName:  "Doe",
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, "Janet", user.FirstName)
		mockRepo.AssertExpectations(t)
	})

	t.Run("New password is rehashed", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo, new(MockStore), logger)

		var stored *model.User
		mockRepo.On("GetByID", ctx, id).
			Return(&model.User{ID: id, PasswordHash: "old-hash"}, nil)
		mockRepo.On("Update", ctx, mock.AnythingOfType("*model.User")).
			Run(func(args mock.Arguments) {
				stored = args.Get(1).(*model.User)
			}).
			Return(nil)

		_, err := service.Update(ctx, id, &model.UpdateUserRequest{Password: "brandnew"}, nil)

		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.NotEqual(t, "old-hash", stored.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("brandnew")))
	})

	t.Run("Short password is rejected", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo, new(MockStore), logger)

		mockRepo.On("GetByID", ctx, id).Return(&model.User{ID: id}, nil)

		user, err := service.Update(ctx, id, &model.UpdateUserRequest{Password: "abc"}, nil)

		require.ErrorIs(t, err, model.ErrPasswordTooShort)
		assert.Nil(t, user)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("New avatar replaces and deletes the old one", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockStore := new(MockStore)
		service := NewUserService(mockRepo, mockStore, logger)

		oldURL := "https://bucket.s3.eu-west-1.amazonaws.com/media/old.png"
		newURL := "https://bucket.s3.eu-west-1.amazonaws.com/media/new.png"

		mockRepo.On("GetByID", ctx, id).Return(&model.User{ID: id, Avatar: oldURL}, nil)
		mockStore.On("Upload", ctx, mock.Anything, "new.png", "image/png").Return(newURL, nil)
		mockRepo.On("Update", ctx, mock.MatchedBy(func(u *model.User) bool {
			return u.Avatar == newURL
		})).Return(nil)
		mockStore.On("Delete", ctx, oldURL).Return(nil)

		user, err := service.Update(ctx, id, &model.UpdateUserRequest{}, &model.Upload{
			Reader:      strings.NewReader("png bytes"),
			Filename:    "new.png",
			ContentType: "image/png",
		})

		require.NoError(t, err)
		assert.Equal(t, newURL, user.Avatar)
		mockStore.AssertExpectations(t)
	})

	t.Run("Failing database write unwinds the new avatar", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockStore := new(MockStore)
		service := NewUserService(mockRepo, mockStore, logger)

		newURL := "https://bucket.s3.eu-west-1.amazonaws.com/media/new.png"
		mockRepo.On("GetByID", ctx, id).Return(&model.User{ID: id}, nil)
		mockStore.On("Upload", ctx, mock.Anything, "new.png", "image/png").Return(newURL, nil)
		mockRepo.On("Update", ctx, mock.AnythingOfType("*model.User")).
			Return(errors.New("database error"))
		mockStore.On("Delete", ctx, newURL).Return(nil)

		user, err := service.Update(ctx, id, &model.UpdateUserRequest{}, &model.Upload{
			Reader:      strings.NewReader("png bytes"),
			Filename:    "new.png",
			ContentType: "image/png",
		})

		require.Error(t, err)
		assert.Nil(t, user)
		mockStore.AssertExpectations(t)
	})

	t.Run("Not found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo, new(MockStore), logger)

		mockRepo.On("GetByID", ctx, id).Return(nil, nil)

		user, err := service.Update(ctx, id, &model.UpdateUserRequest{}, nil)

		require.ErrorIs(t, err, model.ErrUserNotFound)
		assert.Nil(t, user)
	})
}

func TestUserService_Delete(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	id := uuid.New()

	t.Run("Success removes avatar and row", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockStore := new(MockStore)
		service := NewUserService(mockRepo, mockStore, logger)

		avatarURL := "https://bucket.s3.eu-west-1.amazonaws.com/media/avatar.png"
		mockRepo.On("GetByID", ctx, id).Return(&model.User{ID: id, Avatar: avatarURL}, nil)
		mockStore.On("Delete", ctx, avatarURL).Return(nil)
		mockRepo.On("Delete", ctx, id).Return(nil)

		require.NoError(t, service.Delete(ctx, id))
		mockStore.AssertExpectations(t)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Avatar deletion failure does not block the row delete", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockStore := new(MockStore)
		service := NewUserService(mockRepo, mockStore, logger)

		avatarURL := "https://bucket.s3.eu-west-1.amazonaws.com/media/avatar.png"
		mockRepo.On("GetByID", ctx, id).Return(&model.User{ID: id, Avatar: avatarURL}, nil)
		mockStore.On("Delete", ctx, avatarURL).Return(errors.New("object store unreachable"))
		mockRepo.On("Delete", ctx, id).Return(nil)

		require.NoError(t, service.Delete(ctx, id))
		mockRepo.AssertExpectations(t)
	})

	t.Run("Not found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewUserService(mockRepo, new(MockStore), logger)

		mockRepo.On("GetByID", ctx, id).Return(nil, nil)

		err := service.Delete(ctx, id)

		require.ErrorIs(t, err, model.ErrUserNotFound)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
