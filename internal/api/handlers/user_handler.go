package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/wojciech1000000/FitnessTracker/internal/domain/user"
	"github.com/wojciech1000000/FitnessTracker/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userService user.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService user.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ErrorResponse is the body of 4xx/5xx responses that carry one
type ErrorResponse struct {
	Message string `json:"message"`
	Errors  any    `json:"errors,omitempty"`
}

// GetAllUsers handles GET /v1/users
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.userService.GetAllUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, user.ToDTOs(users))
}

// GetUserByID handles GET /v1/users/:id
func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid user ID format"})
		return
	}

	u, err := h.userService.GetUserByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, user.ToDTO(u))
}

// SearchUsersByEmail handles GET /v1/users/email and GET /v1/users/search/email.
// The match is a case-insensitive substring; an empty fragment matches all.
func (h *UserHandler) SearchUsersByEmail(c *gin.Context) {
	fragment := c.Query("email")

	users, err := h.userService.SearchUsersByEmail(c.Request.Context(), fragment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, user.ToDTOs(users))
}

// SearchUsersByAge handles GET /v1/users/search/age?age=
func (h *UserHandler) SearchUsersByAge(c *gin.Context) {
	age, err := strconv.Atoi(c.Query("age"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid age parameter"})
		return
	}

	users, err := h.userService.SearchUsersByAgeGreaterThan(c.Request.Context(), age)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, user.ToDTOs(users))
}

// FindUsersOlderThan handles GET /v1/users/older/:date (ISO-8601 date)
func (h *UserHandler) FindUsersOlderThan(c *gin.Context) {
	date, err := time.Parse(user.DateFormat, c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid date, expected yyyy-mm-dd"})
		return
	}

	users, err := h.userService.FindUsersOlderThan(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, user.ToDTOs(users))
}

// CreateUser handles POST /v1/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var dto user.UserDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body", Errors: err.Error()})
		return
	}

	if err := validator.ValidateStruct(&dto); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "validation failed",
			Errors:  validator.FormatValidationError(err),
		})
		return
	}

	created, err := h.userService.CreateUser(c.Request.Context(), user.ToEntity(dto))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, user.ToDTO(created))
}

// UpdateUser handles PUT /v1/users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid user ID format"})
		return
	}

	var dto user.UserDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body", Errors: err.Error()})
		return
	}

	if err := validator.ValidateStruct(&dto); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "validation failed",
			Errors:  validator.FormatValidationError(err),
		})
		return
	}

	updated, err := h.userService.UpdateUser(c.Request.Context(), id, user.ToEntity(dto))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, user.ToDTO(updated))
}

// DeleteUser handles DELETE /v1/users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid user ID format"})
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
