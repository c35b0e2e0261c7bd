package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/exertrack/exercise-tracker-api/internal/dto"
	apierrors "github.com/exertrack/exercise-tracker-api/internal/errors"
	"github.com/exertrack/exercise-tracker-api/internal/services"
)

// UserHandler coordinates user-related HTTP handlers.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ListUsers returns every registered user.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		log.Error().Err(err).Msg("failed to list users")
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserListResponse(users))
}

// CreateUser registers a new user.
func (h *UserHandler) CreateUser(c *gin.Context) {
	type CreateUserRequest struct {
		Username string `json:"username"`
	}

	var req CreateUserRequest
	// A missing or malformed body behaves like a missing username.
	_ = c.ShouldBindJSON(&req)

	user, err := h.userService.CreateUser(services.CreateUserInput{
		Username: req.Username,
	})
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}

func respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUsernameRequired):
		apierrors.BadRequest(c, "Username is required")
	case errors.Is(err, services.ErrUsernameTaken):
		apierrors.Conflict(c, "Username already exists")
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, "User not found")
	default:
		log.Error().Err(err).Msg("user handler: unexpected failure")
		apierrors.InternalError(c, "")
	}
}
