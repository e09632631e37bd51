package handler

import (
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"skarchitects/internal/model"
	"skarchitects/internal/response"
	"skarchitects/internal/service"
)

// AuthHandler handles authentication and user administration endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=admin employee"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse is returned by register.
type TokenResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// LoginResponse is returned by login; the dashboard uses role and name
// directly without decoding the token.
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Role    string `json:"role"`
	Name    string `json:"name"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} TokenResponse
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Error(err.Error()))
	}

	token, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		if err == service.ErrUserAlreadyExists {
			return c.JSON(http.StatusConflict, response.Error(err.Error()))
		}
		log.Printf("register: %v", err)
		return c.JSON(http.StatusInternalServerError, response.Error("Server Error"))
	}

	return c.JSON(http.StatusCreated, TokenResponse{Success: true, Token: token})
}

// Login godoc
// @Summary Authenticate and obtain a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Error(err.Error()))
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if err == service.ErrInvalidCredentials {
			return c.JSON(http.StatusUnauthorized, response.Error(err.Error()))
		}
		log.Printf("login: %v", err)
		return c.JSON(http.StatusInternalServerError, response.Error("Server Error"))
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Success: true,
		Token:   token,
		Role:    user.Role,
		Name:    user.Name,
	})
}

// ListEmployees godoc
// @Summary List employee users
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=[]model.User}
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /auth/users [get]
func (h *AuthHandler) ListEmployees(c echo.Context) error {
	users, err := h.authService.ListEmployees(c.Request().Context())
	if err != nil {
		log.Printf("list employees: %v", err)
		return c.JSON(http.StatusInternalServerError, response.Error("Server Error"))
	}
	if users == nil {
		users = []model.User{}
	}
	return c.JSON(http.StatusOK, response.Data(users))
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /auth/users/{id} [delete]
func (h *AuthHandler) DeleteUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("invalid user id"))
	}

	if err := h.authService.DeleteUser(c.Request().Context(), id); err != nil {
		log.Printf("delete user: %v", err)
		return c.JSON(http.StatusInternalServerError, response.Error("Server Error"))
	}

	return c.JSON(http.StatusOK, response.Message("User deleted"))
}
