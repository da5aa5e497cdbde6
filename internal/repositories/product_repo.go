package repositories

import "github.com/fumio65/Thrift-Clothing/internal/models"

// Sort keys accepted by ListParams. Anything else falls back to newest.
const (
	SortNewest      = "newest"
	SortPriceLow    = "price_low"
	SortPriceHigh   = "price_high"
	SortBestSellers = "best_sellers"
)

// ListParams describes one page of the product listing.
type ListParams struct {
	Limit    int
	Offset   int
	Category string // "" or "all" means no category filter
	Sort     string
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	List(params ListParams) ([]models.Product, int64, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
}
