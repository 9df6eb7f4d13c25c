package service

import (
	"errors"
	"testing"

	"github.com/andrew-chang-dewitt/hoops/config"
	"github.com/andrew-chang-dewitt/hoops/model"
	"github.com/andrew-chang-dewitt/hoops/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *mockUserRepo) GetUserByEmail(email string) (*model.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func TestUserService_Register(t *testing.T) {
	mockRepo := new(mockUserRepo)
	userService := NewUserService(mockRepo)

	// The stored password must be a hash, never the plaintext.
	mockRepo.On("CreateUser", mock.MatchedBy(func(u *model.User) bool {
		return u.Email == "andrew@example.com" &&
			u.Password != "password123" &&
			CheckPasswordHash("password123", u.Password)
	})).Return(nil).Once()

	user, err := userService.Register(model.RegisterRequest{
		Username: "andrew",
		Email:    "andrew@example.com",
		Password: "password123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "andrew", user.Username)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Login(t *testing.T) {
	config.AppConfig.JWT.SecretKey = "test-secret"

	hash, err := HashPassword("password123")
	assert.NoError(t, err)
	user := &model.User{ID: uuid.New(), Email: "andrew@example.com", Password: hash}

	t.Run("success", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		userService := NewUserService(mockRepo)
		mockRepo.On("GetUserByEmail", user.Email).Return(user, nil).Once()

		token, err := userService.Login(model.LoginRequest{Email: user.Email, Password: "password123"})

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		userService := NewUserService(mockRepo)
		mockRepo.On("GetUserByEmail", user.Email).Return(user, nil).Once()

		_, err := userService.Login(model.LoginRequest{Email: user.Email, Password: "wrongpassword"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email looks like wrong password", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		userService := NewUserService(mockRepo)
		mockRepo.On("GetUserByEmail", "nobody@example.com").Return(nil, repository.ErrNotFound).Once()

		_, err := userService.Login(model.LoginRequest{Email: "nobody@example.com", Password: "password123"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("storage error is not a credential failure", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		userService := NewUserService(mockRepo)
		storageErr := errors.New("connection refused")
		mockRepo.On("GetUserByEmail", user.Email).Return(nil, storageErr).Once()

		_, err := userService.Login(model.LoginRequest{Email: user.Email, Password: "password123"})

		assert.ErrorIs(t, err, storageErr)
	})
}
