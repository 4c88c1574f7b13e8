package repositories

import (
	"database/sql"
	"fmt"

	"repair_shop_backend/internal/models"
)

// PurchaseRepository defines the interface for purchase persistence.
// CreatePurchase and CreatePurchaseItem take an executor because they only
// ever run inside the purchase-creation transaction.
type PurchaseRepository interface {
	CreatePurchase(executor SQLExecutor, purchase *models.Purchase) (int64, error)
	CreatePurchaseItem(executor SQLExecutor, item *models.PurchaseItem) (int64, error)
	GetPurchasesByClientID(clientID int64) ([]models.ClientPurchase, error)
}

type purchaseRepository struct {
	db *sql.DB
}

// NewPurchaseRepository creates a new instance of PurchaseRepository.
func NewPurchaseRepository(db *sql.DB) PurchaseRepository {
	return &purchaseRepository{db: db}
}

// CreatePurchase inserts the purchase header row and returns the generated id.
func (r *purchaseRepository) CreatePurchase(executor SQLExecutor, purchase *models.Purchase) (int64, error) {
	query := `INSERT INTO purchases (client_id, purchase_date, total_price) VALUES (?, ?, ?)`

	result, err := executor.Exec(query,
		purchase.ClientID, purchase.PurchaseDate.Format(sqliteTimeLayout), purchase.TotalPrice,
	)
	if err != nil {
		return 0, translateConstraintError(err, fmt.Sprintf("creating purchase for client ID %d", purchase.ClientID))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: reading new purchase id: %v", ErrDatabaseError, err)
	}
	purchase.ID = id
	return id, nil
}

// CreatePurchaseItem inserts one purchase line with its snapshot price.
func (r *purchaseRepository) CreatePurchaseItem(executor SQLExecutor, item *models.PurchaseItem) (int64, error) {
	query := `INSERT INTO purchase_items (purchase_id, product_id, quantity_purchased, price_at_purchase)
	          VALUES (?, ?, ?, ?)`

	result, err := executor.Exec(query,
		item.PurchaseID, item.ProductID, item.QuantityPurchased, item.PriceAtPurchase,
	)
	if err != nil {
		return 0, translateConstraintError(err, fmt.Sprintf("creating purchase item for purchase ID %d", item.PurchaseID))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: reading new purchase item id: %v", ErrDatabaseError, err)
	}
	item.ID = id
	return id, nil
}

// GetPurchasesByClientID retrieves a client's purchase history, newest first,
// each row carrying a concatenated "qty x product" summary of its lines.
// Lines whose product was deleted still appear, labelled as such.
func (r *purchaseRepository) GetPurchasesByClientID(clientID int64) ([]models.ClientPurchase, error) {
	query := `
		SELECT p.id, p.purchase_date, p.total_price,
		       COALESCE((
		           SELECT GROUP_CONCAT(pi.quantity_purchased || ' x ' || COALESCE(pr.name, 'Deleted product'), ', ')
		           FROM purchase_items pi
		           LEFT JOIN products pr ON pi.product_id = pr.id
		           WHERE pi.purchase_id = p.id
		       ), '')
		FROM purchases p
		WHERE p.client_id = ?
		ORDER BY p.purchase_date DESC`

	rows, err := r.db.Query(query, clientID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying purchases for client ID %d: %v", ErrDatabaseError, clientID, err)
	}
	defer rows.Close()

	purchases := []models.ClientPurchase{}
	for rows.Next() {
		var purchase models.ClientPurchase
		if err := rows.Scan(&purchase.ID, &purchase.PurchaseDate, &purchase.TotalPrice, &purchase.ProductSummary); err != nil {
			return nil, fmt.Errorf("%w: scanning client purchase: %v", ErrDatabaseError, err)
		}
		purchases = append(purchases, purchase)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating client purchase rows: %v", ErrDatabaseError, err)
	}
	return purchases, nil
}
