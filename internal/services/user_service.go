package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/fumio65/Thrift-Clothing/internal/models"
	"github.com/fumio65/Thrift-Clothing/internal/repositories"
)

// UserService handles profile reads and mutations for an authenticated user.
type UserService struct {
	userRepo  repositories.UserRepository
	orderRepo repositories.OrderRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository, orderRepo repositories.OrderRepository) *UserService {
	return &UserService{
		userRepo:  userRepo,
		orderRepo: orderRepo,
	}
}

// GetProfile returns the stored profile for the given user.
func (s *UserService) GetProfile(userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile overwrites the editable profile fields with whatever the
// caller sent. Fields the caller omitted arrive as empty strings and are
// stored as such; this is a full overwrite, not a merge.
func (s *UserService) UpdateProfile(user *models.User) error {
	if err := s.userRepo.UpdateProfile(user); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

// ChangePassword re-verifies the current password before storing a new hash.
func (s *UserService) ChangePassword(userID uint, currentPassword, newPassword string) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return ErrWrongPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.userRepo.UpdatePassword(userID, string(hashed))
}

// GetOrders returns the user's orders, newest first.
func (s *UserService) GetOrders(userID uint) ([]models.Order, error) {
	return s.orderRepo.GetByUserID(userID)
}
