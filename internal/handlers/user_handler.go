package handlers

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/fumio65/Thrift-Clothing/internal/models"
	"github.com/fumio65/Thrift-Clothing/internal/services"
)

// UserHandler handles profile, password and order-history requests for the
// authenticated user. All of its routes sit behind the auth middleware,
// which puts the token's user ID in c.Locals.
type UserHandler struct {
	service  *services.UserService
	validate *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/profile", h.HandleGetProfile)
	userRoutes.Put("/profile", h.HandleUpdateProfile)
	userRoutes.Post("/change-password", h.HandleChangePassword)
	userRoutes.Get("/orders", h.HandleGetOrders)
}

func currentUserID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals("user_id").(uint)
	return id, ok
}

// HandleGetProfile returns the stored profile fields.
func (h *UserHandler) HandleGetProfile(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	user, err := h.service.GetProfile(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return errorResponse(c, fiber.StatusNotFound, "User not found")
		}
		log.Printf("Error getting profile for user %d: %v", userID, err)
		return errorResponse(c, fiber.StatusInternalServerError, "Could not retrieve profile")
	}
	return successResponse(c, fiber.StatusOK, "Profile retrieved", user)
}

// UpdateProfileRequest represents the request body for a profile update.
// Every field is written as received; omitted fields become empty strings.
type UpdateProfileRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
	Province  string `json:"province"`
	Bio       string `json:"bio"`
}

// HandleUpdateProfile blind-overwrites the editable profile fields.
func (h *UserHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update profile request body: %v", err)
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user := models.User{
		ID:        userID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		City:      req.City,
		Province:  req.Province,
		Bio:       req.Bio,
	}

	if err := h.service.UpdateProfile(&user); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return errorResponse(c, fiber.StatusNotFound, "User not found")
		}
		log.Printf("Error updating profile for user %d: %v", userID, err)
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to update profile")
	}

	return successResponse(c, fiber.StatusOK, "Profile updated successfully", fiber.Map{
		"userId": userID,
	})
}

// ChangePasswordRequest represents the request body for a password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

// HandleChangePassword re-verifies the current password before storing the
// new one.
func (h *UserHandler) HandleChangePassword(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing change password request body: %v", err)
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.validate.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			for _, e := range validationErrors {
				if e.Field() == "NewPassword" && e.Tag() == "min" {
					return errorResponse(c, fiber.StatusBadRequest, "New password must be at least 8 characters")
				}
			}
		}
		return errorResponse(c, fiber.StatusBadRequest, "Missing password fields")
	}

	if err := h.service.ChangePassword(userID, req.CurrentPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, services.ErrWrongPassword):
			return errorResponse(c, fiber.StatusUnauthorized, "Current password is incorrect")
		case errors.Is(err, services.ErrUserNotFound):
			return errorResponse(c, fiber.StatusNotFound, "User not found")
		}
		log.Printf("Error changing password for user %d: %v", userID, err)
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to change password")
	}

	return successResponse(c, fiber.StatusOK, "Password changed successfully", fiber.Map{
		"userId": userID,
	})
}

// HandleGetOrders returns the user's order history, newest first.
func (h *UserHandler) HandleGetOrders(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	orders, err := h.service.GetOrders(userID)
	if err != nil {
		log.Printf("Error getting orders for user %d: %v", userID, err)
		return errorResponse(c, fiber.StatusInternalServerError, "Could not retrieve orders")
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return successResponse(c, fiber.StatusOK, "Orders retrieved", fiber.Map{
		"orders": orders,
	})
}
