package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"repair_shop_backend/internal/models"
	"repair_shop_backend/internal/repositories"
)

// --- Custom Service Errors for Purchase ---
var (
	ErrInsufficientStock      = errors.New("insufficient stock")
	ErrPurchaseProductMissing = errors.New("purchased product not found")
	ErrPurchaseClientMissing  = errors.New("purchase references a client that does not exist")
	ErrEmptyPurchase          = errors.New("purchase must contain at least one item")
)

// --- Purchase DTOs ---

// PurchaseItemRequest is one requested line of a purchase.
type PurchaseItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,gt=0"`
}

// CreatePurchaseRequest is the input for purchase creation.
type CreatePurchaseRequest struct {
	ClientID int64                 `json:"client_id" binding:"required"`
	Items    []PurchaseItemRequest `json:"items" binding:"required,dive"`
}

// --- PurchaseService Interface ---
type PurchaseService interface {
	CreatePurchase(req CreatePurchaseRequest) (int64, error)
	GetPurchasesForClient(clientID int64) ([]models.ClientPurchase, error)
}

// --- purchaseService Implementation ---
type purchaseService struct {
	purchaseRepo repositories.PurchaseRepository
	productRepo  repositories.ProductRepository
	db           *sql.DB // For managing transactions
}

// NewPurchaseService creates a new instance of PurchaseService.
func NewPurchaseService(
	pr repositories.PurchaseRepository,
	prodRepo repositories.ProductRepository,
	db *sql.DB,
) PurchaseService {
	return &purchaseService{
		purchaseRepo: pr,
		productRepo:  prodRepo,
		db:           db,
	}
}

// CreatePurchase runs the whole sale as one transaction: every line is
// checked against current stock, the total is accumulated from the current
// product prices (the snapshot), the purchase and its items are inserted and
// stock is decremented. Any failure rolls back every step; no partial
// purchase or partial decrement is ever observable.
func (s *purchaseService) CreatePurchase(req CreatePurchaseRequest) (int64, error) {
	if len(req.Items) == 0 {
		return 0, ErrEmptyPurchase
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to start purchase transaction: %w", err)
	}
	defer tx.Rollback()

	var totalPrice float64
	itemsToCreate := make([]models.PurchaseItem, 0, len(req.Items))

	for _, itemReq := range req.Items {
		if itemReq.Quantity <= 0 {
			return 0, fmt.Errorf("%w: quantity for product ID %d must be positive", ErrValidation, itemReq.ProductID)
		}

		product, repoErr := s.productRepo.GetProductByID(tx, itemReq.ProductID)
		if repoErr != nil {
			if errors.Is(repoErr, repositories.ErrNotFound) {
				return 0, fmt.Errorf("%w: product ID %d", ErrPurchaseProductMissing, itemReq.ProductID)
			}
			return 0, fmt.Errorf("failed to fetch product %d: %w", itemReq.ProductID, repoErr)
		}

		if product.Quantity < itemReq.Quantity {
			return 0, fmt.Errorf("%w for %s: requested %d, available %d",
				ErrInsufficientStock, product.Name, itemReq.Quantity, product.Quantity)
		}

		totalPrice += product.Price * float64(itemReq.Quantity)

		productID := itemReq.ProductID
		itemsToCreate = append(itemsToCreate, models.PurchaseItem{
			ProductID:         &productID,
			QuantityPurchased: itemReq.Quantity,
			PriceAtPurchase:   product.Price,
		})
	}

	purchase := models.Purchase{
		ClientID:     req.ClientID,
		PurchaseDate: time.Now(),
		TotalPrice:   totalPrice,
	}

	purchaseID, repoErr := s.purchaseRepo.CreatePurchase(tx, &purchase)
	if repoErr != nil {
		if errors.Is(repoErr, repositories.ErrForeignKeyViolation) {
			return 0, fmt.Errorf("%w: client ID %d", ErrPurchaseClientMissing, req.ClientID)
		}
		return 0, fmt.Errorf("failed to create purchase record: %w", repoErr)
	}

	for i := range itemsToCreate {
		itemsToCreate[i].PurchaseID = purchaseID
		if _, repoErr := s.purchaseRepo.CreatePurchaseItem(tx, &itemsToCreate[i]); repoErr != nil {
			return 0, fmt.Errorf("failed to create purchase item (product ID %d): %w", *itemsToCreate[i].ProductID, repoErr)
		}
		if repoErr := s.productRepo.DecrementStock(tx, *itemsToCreate[i].ProductID, itemsToCreate[i].QuantityPurchased); repoErr != nil {
			return 0, fmt.Errorf("failed to decrement stock for product ID %d: %w", *itemsToCreate[i].ProductID, repoErr)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit purchase transaction: %w", err)
	}
	return purchaseID, nil
}

// GetPurchasesForClient returns a client's purchase history, newest first.
func (s *purchaseService) GetPurchasesForClient(clientID int64) ([]models.ClientPurchase, error) {
	purchases, err := s.purchaseRepo.GetPurchasesByClientID(clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get purchases for client %d: %w", clientID, err)
	}
	return purchases, nil
}
