package handlers

import (
	"errors"
	"net/http"

	"synkt/models"
	"synkt/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes user CRUD endpoints.
type UserHandler struct {
	Service user.UserService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// CreateUserHandler registers a new user.
func (h *UserHandler) CreateUserHandler(c *gin.Context) {
	logger := getLogger(c)
	var input models.User
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.Create(&input)
	if err != nil {
		if errors.Is(err, user.ErrInvalidUser) || errors.Is(err, user.ErrInvalidWorkHours) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetUserByIDHandler returns a user by id.
func (h *UserHandler) GetUserByIDHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	u, err := h.Service.GetByID(id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		logger.Error("Failed to fetch user", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}
	c.JSON(http.StatusOK, u)
}

// GetUserByEmailHandler returns a user by email.
func (h *UserHandler) GetUserByEmailHandler(c *gin.Context) {
	logger := getLogger(c)
	email := c.Param("email")

	u, err := h.Service.GetByEmail(email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		logger.Error("Failed to fetch user", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateUserHandler updates user details such as work hours and timezone.
func (h *UserHandler) UpdateUserHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	var input models.User
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	input.ID = id // Ensure the ID is set.

	updated, err := h.Service.Update(&input)
	if err != nil {
		if errors.Is(err, user.ErrInvalidUser) || errors.Is(err, user.ErrInvalidWorkHours) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to update user", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}
	c.JSON(http.StatusOK, updated)
}
