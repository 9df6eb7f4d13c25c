package service

import (
	"errors"

	"github.com/andrew-chang-dewitt/hoops/model"
	"github.com/andrew-chang-dewitt/hoops/repository"

	"github.com/lib/pq"
)

var (
	// ErrEmailTaken is returned when registration hits the unique email
	// constraint.
	ErrEmailTaken = errors.New("a user with that email already exists")
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password, so login failures don't reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// uniqueViolation is the Postgres error code for a unique constraint hit.
const uniqueViolation = "23505"

// UserService handles registration and login.
type UserService struct {
	repo repository.IUserRepository
}

func NewUserService(repo repository.IUserRepository) *UserService {
	return &UserService{repo: repo}
}

// Register hashes the password and creates the user.
func (s *UserService) Register(req model.RegisterRequest) (*model.User, error) {
	hashedPassword, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
	}

	if err := s.repo.CreateUser(user); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and issues an access token.
func (s *UserService) Login(req model.LoginRequest) (string, error) {
	user, err := s.repo.GetUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !CheckPasswordHash(req.Password, user.Password) {
		return "", ErrInvalidCredentials
	}

	return GenerateJWT(user.ID)
}
