package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/fumio65/Thrift-Clothing/internal/models"
	"github.com/fumio65/Thrift-Clothing/internal/repositories"
	"github.com/fumio65/Thrift-Clothing/internal/services"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterPublicRoutes registers the read-only catalog routes.
func (h *ProductHandler) RegisterPublicRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleList)
	productRoutes.Get("/:id", h.HandleGet)
}

// RegisterProtectedRoutes registers the routes that need a bearer token.
func (h *ProductHandler) RegisterProtectedRoutes(router fiber.Router) {
	router.Post("/products", h.HandleCreate)
}

// HandleList returns one page of products with the total count for the
// current category filter.
func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
	params := repositories.ListParams{
		Limit:    c.QueryInt("limit", 12),
		Offset:   c.QueryInt("offset", 0),
		Category: c.Query("category"),
		Sort:     c.Query("sort", repositories.SortNewest),
	}

	result, err := h.service.List(params)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Could not retrieve products")
	}
	return successResponse(c, fiber.StatusOK, "Products retrieved", result)
}

// HandleGet returns a single product by ID.
func (h *ProductHandler) HandleGet(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Product ID required")
	}

	product, err := h.service.Get(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			return errorResponse(c, fiber.StatusNotFound, "Product not found")
		}
		log.Printf("Error getting product %d: %v", id, err)
		return errorResponse(c, fiber.StatusInternalServerError, "Could not retrieve product")
	}
	return successResponse(c, fiber.StatusOK, "Product retrieved", product)
}

// AddProductRequest represents the request body for listing a product.
// Stock is optional and defaults to 0.
type AddProductRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"required"`
	Condition   string  `json:"condition" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Stock       int     `json:"stock" validate:"gte=0"`
	Brand       string  `json:"brand"`
	ImageURL    string  `json:"image_url"`
}

// HandleCreate lists a new product. Any authenticated user may list; there
// is no role check beyond a valid token.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	var req AddProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add product request body: %v", err)
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.validate.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			e := validationErrors[0]
			return errorResponse(c, fiber.StatusBadRequest, "Missing field: "+e.Field())
		}
		return errorResponse(c, fiber.StatusBadRequest, "Missing required fields")
	}

	product := models.Product{
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Condition:   req.Condition,
		Description: req.Description,
		Stock:       req.Stock,
		Brand:       req.Brand,
		ImageURL:    req.ImageURL,
	}

	if err := h.service.Create(&product); err != nil {
		log.Printf("Error creating product: %v", err)
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to add product")
	}

	return successResponse(c, fiber.StatusCreated, "Product added successfully", fiber.Map{
		"id": product.ID,
	})
}
