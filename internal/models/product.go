package models

import "time"

// Product represents a thrift item listed in the store. Listings are
// immutable once created; there is no update or delete endpoint.
type Product struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(255)" validate:"required,max=255"`
	Price       float64   `json:"price" validate:"required,gt=0"`
	Category    string    `json:"category" gorm:"type:varchar(100);index" validate:"required"`
	Condition   string    `json:"condition" gorm:"type:varchar(50)" validate:"required"`
	Description string    `json:"description" gorm:"type:text" validate:"required"`
	Stock       int       `json:"stock" validate:"gte=0"`
	Brand       string    `json:"brand" gorm:"type:varchar(100)"`
	ImageURL    string    `json:"image_url" gorm:"type:varchar(500)"`
	Sales       int       `json:"sales"` // drives the best_sellers sort
	CreatedAt   time.Time `json:"created_at"`
}
