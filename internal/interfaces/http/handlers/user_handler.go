package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"insure-dw.backend/internal/domain/entities"
	domainerrors "insure-dw.backend/internal/domain/errors"
	"insure-dw.backend/internal/interfaces/http/response"
	"insure-dw.backend/pkg/utils"
)

type UserService interface {
	CreateUser(ctx context.Context, input *entities.CreateUserInput) (*entities.User, error)
	GetUser(ctx context.Context, id uint) (*entities.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]*entities.User, int64, error)
	UpdateUser(ctx context.Context, id uint, input *entities.UpdateUserInput) (*entities.User, error)
	DeleteUser(ctx context.Context, id uint) error
	ListUserQuotes(ctx context.Context, userID uint) ([]*entities.Quote, error)
	ListUserPolicies(ctx context.Context, userID uint) ([]*entities.Policy, error)
}

// UserHandler handles user endpoints
type UserHandler struct {
	userUsecase UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUsecase UserService) *UserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

// CreateUser creates a new user
// POST /api/v1/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var input entities.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.userUsecase.CreateUser(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, user)
}

// GetUser gets a user by ID
// GET /api/v1/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	user, err := h.userUsecase.GetUser(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// ListUsers lists users with pagination
// GET /api/v1/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	params := pagination(c)

	users, total, err := h.userUsecase.ListUsers(c.Request.Context(), params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"users":      users,
		"pagination": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// UpdateUser applies a partial update to a user
// PUT /api/v1/users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.userUsecase.UpdateUser(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// DeleteUser removes a user
// DELETE /api/v1/users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.userUsecase.DeleteUser(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "user deleted"})
}

// ListUserQuotes lists the user's quotes
// GET /api/v1/users/:id/quotes
func (h *UserHandler) ListUserQuotes(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	quotes, err := h.userUsecase.ListUserQuotes(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"quotes": quotes})
}

// ListUserPolicies lists the user's policies
// GET /api/v1/users/:id/policies
func (h *UserHandler) ListUserPolicies(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	policies, err := h.userUsecase.ListUserPolicies(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"policies": policies})
}
