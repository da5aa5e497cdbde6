package handlers

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/fumio65/Thrift-Clothing/internal/models"
	"github.com/fumio65/Thrift-Clothing/internal/services"
)

// AuthHandler handles HTTP requests for registration and login.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/login", h.HandleLogin)
}

// RegisterRequest represents the request body for registration.
type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
}

// authPayload is the token-bearing response shape shared by register and
// login.
type authPayload struct {
	UserID    uint   `json:"userId"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Token     string `json:"token"`
}

// HandleRegister handles new user registration.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing register request body: %v", err)
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.validate.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			for _, e := range validationErrors {
				if e.Field() == "Password" && e.Tag() == "min" {
					return errorResponse(c, fiber.StatusBadRequest, "Password must be at least 8 characters")
				}
				if e.Field() == "Email" && e.Tag() == "email" {
					return errorResponse(c, fiber.StatusBadRequest, "Invalid email address")
				}
			}
		}
		return errorResponse(c, fiber.StatusBadRequest, "Missing required fields")
	}

	user := models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	}

	token, err := h.authService.Register(&user)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return errorResponse(c, fiber.StatusConflict, "Email already registered")
		}
		log.Printf("Error registering user: %v", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Registration failed")
	}

	return successResponse(c, fiber.StatusCreated, "Registration successful", authPayload{
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Token:     token,
	})
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin handles user login and issues a token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing login request body: %v", err)
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.validate.Struct(req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Email and password required")
	}

	user, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return errorResponse(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		log.Printf("Error during login for %s: %v", req.Email, err)
		return errorResponse(c, fiber.StatusInternalServerError, "Login failed")
	}

	return successResponse(c, fiber.StatusOK, "Login successful", authPayload{
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Token:     token,
	})
}
