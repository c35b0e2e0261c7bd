package dto

import (
	"github.com/exertrack/exercise-tracker-api/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// UserListResponse wraps the full user set
type UserListResponse struct {
	Users []UserDTO `json:"users"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Username: user.Username,
	}
}

// ToUserListResponse converts a slice of users to UserListResponse
func ToUserListResponse(users []models.User) UserListResponse {
	items := make([]UserDTO, len(users))
	for i, user := range users {
		items[i] = ToUserDTO(user)
	}
	return UserListResponse{Users: items}
}
