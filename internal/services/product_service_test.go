package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/fumio65/Thrift-Clothing/internal/models"
	"github.com/fumio65/Thrift-Clothing/internal/repositories"
	"github.com/fumio65/Thrift-Clothing/internal/services"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(params repositories.ListParams) ([]models.Product, int64, error) {
	args := m.Called(params)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) GetByID(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func TestProductService_ListDefaults(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	expected := []models.Product{
		{ID: 1, Name: "Denim Jacket", Price: 850, Category: "jackets"},
		{ID: 2, Name: "Band Shirt", Price: 300, Category: "shirts"},
	}

	// Zero limit and a negative offset must be normalized before the repo
	// sees them.
	mockRepo.On("List", repositories.ListParams{Limit: 12, Offset: 0, Category: "all", Sort: "newest"}).
		Return(expected, int64(25), nil).Once()

	result, err := service.List(repositories.ListParams{Limit: 0, Offset: -3, Category: "all", Sort: "newest"})
	assert.NoError(t, err)
	assert.Equal(t, expected, result.Products)
	assert.Equal(t, int64(25), result.Total)
	assert.Equal(t, 12, result.Limit)
	assert.Equal(t, 0, result.Offset)
	mockRepo.AssertExpectations(t)
}

func TestProductService_ListEmptyPageIsNotNil(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	mockRepo.On("List", mock.AnythingOfType("repositories.ListParams")).
		Return([]models.Product(nil), int64(0), nil).Once()

	result, err := service.List(repositories.ListParams{Limit: 12})
	assert.NoError(t, err)
	assert.NotNil(t, result.Products)
	assert.Len(t, result.Products, 0)
	mockRepo.AssertExpectations(t)
}

func TestProductService_Get(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	expected := &models.Product{ID: 1, Name: "Denim Jacket", Price: 850}
	mockRepo.On("GetByID", uint(1)).Return(expected, nil).Once()

	product, err := service.Get(1)
	assert.NoError(t, err)
	assert.Equal(t, expected, product)

	mockRepo.On("GetByID", uint(99)).
		Return(nil, fmt.Errorf("failed to get product by ID 99: %w", gorm.ErrRecordNotFound)).Once()
	_, err = service.Get(99)
	assert.ErrorIs(t, err, services.ErrProductNotFound)

	mockRepo.AssertExpectations(t)
}

func TestProductService_Create(t *testing.T) {
	mockRepo := new(MockProductRepository)
	// nil mq client: creation must work without a broker.
	service := services.NewProductService(mockRepo, nil)

	product := &models.Product{Name: "Vintage Tee", Price: 250, Category: "shirts", Condition: "good", Description: "Soft cotton"}
	mockRepo.On("Create", product).Return(nil).Once()

	err := service.Create(product)
	assert.NoError(t, err)
	assert.False(t, product.CreatedAt.IsZero())
	mockRepo.AssertExpectations(t)

	// Repository failure surfaces to the caller.
	mockRepo.On("Create", product).Return(fmt.Errorf("database error")).Once()
	err = service.Create(product)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
}
