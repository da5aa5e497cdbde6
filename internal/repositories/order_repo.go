package repositories

import "github.com/fumio65/Thrift-Clothing/internal/models"

// OrderRepository defines the interface for order data access. Orders are
// read-only through the API.
type OrderRepository interface {
	GetByUserID(userID uint) ([]models.Order, error)
}
