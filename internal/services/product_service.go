package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"repair_shop_backend/internal/models"
	"repair_shop_backend/internal/repositories"
)

// --- Custom Service Errors for Product ---
var (
	ErrProductNotFound = errors.New("product not found")
)

// --- Product DTOs ---

// ProductRequest carries the full product row for create and update.
type ProductRequest struct {
	Name     string  `json:"name" binding:"required"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// --- ProductService Interface ---
type ProductService interface {
	CreateProduct(req ProductRequest) (*models.Product, error)
	GetProductByID(productID int64) (*models.Product, error)
	GetProducts() ([]models.Product, error)
	UpdateProduct(productID int64, req ProductRequest) (*models.Product, error)
	DeleteProduct(productID int64) error
}

// --- productService Implementation ---
type productService struct {
	productRepo repositories.ProductRepository
	db          *sql.DB
}

// NewProductService creates a new instance of ProductService.
func NewProductService(repo repositories.ProductRepository, db *sql.DB) ProductService {
	return &productService{
		productRepo: repo,
		db:          db,
	}
}

func (s *productService) validateProductData(req ProductRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: product name cannot be empty", ErrValidation)
	}
	if req.Quantity < 0 {
		return fmt.Errorf("%w: product quantity cannot be negative", ErrValidation)
	}
	if req.Price < 0 {
		return fmt.Errorf("%w: product price cannot be negative", ErrValidation)
	}
	return nil
}

func (s *productService) CreateProduct(req ProductRequest) (*models.Product, error) {
	if err := s.validateProductData(req); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:     req.Name,
		Quantity: req.Quantity,
		Price:    req.Price,
	}

	id, err := s.productRepo.CreateProduct(s.db, product)
	if err != nil {
		return nil, fmt.Errorf("failed to create product in repository: %w", err)
	}
	return s.productRepo.GetProductByID(s.db, id)
}

func (s *productService) GetProductByID(productID int64) (*models.Product, error) {
	product, err := s.productRepo.GetProductByID(s.db, productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID: %w", err)
	}
	return product, nil
}

func (s *productService) GetProducts() ([]models.Product, error) {
	products, err := s.productRepo.GetProducts()
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	return products, nil
}

func (s *productService) UpdateProduct(productID int64, req ProductRequest) (*models.Product, error) {
	if err := s.validateProductData(req); err != nil {
		return nil, err
	}

	product := &models.Product{
		ID:       productID,
		Name:     req.Name,
		Quantity: req.Quantity,
		Price:    req.Price,
	}

	err := s.productRepo.UpdateProduct(s.db, product)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product in repository: %w", err)
	}
	return s.productRepo.GetProductByID(s.db, productID)
}

func (s *productService) DeleteProduct(productID int64) error {
	err := s.productRepo.DeleteProduct(s.db, productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}
