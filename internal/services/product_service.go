package services

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fumio65/Thrift-Clothing/internal/models"
	"github.com/fumio65/Thrift-Clothing/internal/repositories"
	"github.com/fumio65/Thrift-Clothing/pkg/rabbitmq"
)

const defaultPageSize = 12

// ProductService handles the product listing and creation logic.
type ProductService struct {
	repo     repositories.ProductRepository
	mqClient *rabbitmq.Client // optional; nil skips event publishing
}

// NewProductService creates a new ProductService. mqClient may be nil.
func NewProductService(repo repositories.ProductRepository, mqClient *rabbitmq.Client) *ProductService {
	return &ProductService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// ListResult is one page of the catalog plus the total count for the same
// filter, which the client needs for load-more math.
type ListResult struct {
	Products []models.Product `json:"products"`
	Total    int64            `json:"total"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
}

// List returns a page of products. Limit defaults to 12, offset to 0;
// unknown sort keys fall back to newest-first.
func (s *ProductService) List(params repositories.ListParams) (*ListResult, error) {
	if params.Limit <= 0 {
		params.Limit = defaultPageSize
	}
	if params.Offset < 0 {
		params.Offset = 0
	}

	products, total, err := s.repo.List(params)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return &ListResult{
		Products: products,
		Total:    total,
		Limit:    params.Limit,
		Offset:   params.Offset,
	}, nil
}

// Get retrieves a single product by ID.
func (s *ProductService) Get(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

// Create inserts a new listing and publishes a product.added event when a
// message queue client is configured. Publishing failures are logged, not
// surfaced; the listing itself has already been stored.
func (s *ProductService) Create(product *models.Product) error {
	product.CreatedAt = time.Now()
	if err := s.repo.Create(product); err != nil {
		return err
	}

	if s.mqClient != nil {
		event := map[string]interface{}{
			"eventId":   uuid.New().String(),
			"type":      "product.added",
			"productId": product.ID,
			"name":      product.Name,
			"category":  product.Category,
			"price":     product.Price,
			"createdAt": product.CreatedAt,
		}
		body, err := json.Marshal(event)
		if err != nil {
			log.Printf("Failed to marshal product event: %v", err)
		} else if err := s.mqClient.Publish("product.added", body); err != nil {
			log.Printf("Warning: failed to publish product.added event for product %d: %v", product.ID, err)
		}
	}

	return nil
}
