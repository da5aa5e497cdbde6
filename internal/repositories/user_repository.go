package repositories

import "github.com/fumio65/Thrift-Clothing/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
	UpdateProfile(user *models.User) error
	UpdatePassword(id uint, hash string) error
}
