package models

import "time"

// Order is a past purchase belonging to a user. Orders are read-only in
// this API; nothing here writes to the orders table.
type Order struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index"`
	Total     float64   `json:"total"`
	Status    string    `json:"status" gorm:"type:varchar(50)"`
	CreatedAt time.Time `json:"created_at"`
}
