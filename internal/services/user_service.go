package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/exertrack/exercise-tracker-api/internal/models"
	"github.com/exertrack/exercise-tracker-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrUsernameRequired = errors.New("username is required")
	ErrUsernameTaken    = errors.New("username already exists")
	ErrUserNotFound     = errors.New("user not found")
)

// UserService handles user business logic.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// ListUsers returns every registered user.
func (s *UserService) ListUsers() ([]models.User, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// CreateUserInput represents the required information to create a new user.
type CreateUserInput struct {
	Username string
}

// CreateUser registers a new user with a unique username.
func (s *UserService) CreateUser(input CreateUserInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, ErrUsernameRequired
	}

	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	user := &models.User{Username: username}
	if err := s.userRepo.Create(user); err != nil {
		// A concurrent signup can slip past the pre-check; the unique
		// index decides and the outcome is the same conflict.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}
