package services

import (
	"database/sql"
	"testing"

	"repair_shop_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPurchaseService(t *testing.T) (PurchaseService, *sql.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewPurchaseService(
		repositories.NewPurchaseRepository(db),
		repositories.NewProductRepository(db),
		db,
	)
	return svc, db
}

func TestPurchaseService_CreatePurchase(t *testing.T) {
	svc, db := newPurchaseService(t)

	clientID := createTestClient(t, db, "Amir", "ID-001")
	productID := createTestProduct(t, db, "Battery", 10, 5.00)

	purchaseID, err := svc.CreatePurchase(CreatePurchaseRequest{
		ClientID: clientID,
		Items:    []PurchaseItemRequest{{ProductID: productID, Quantity: 3}},
	})
	require.NoError(t, err)
	require.NotZero(t, purchaseID)

	assert.Equal(t, 7, productQuantity(t, db, productID), "stock decremented by the purchased amount")

	var totalPrice float64
	require.NoError(t, db.QueryRow(`SELECT total_price FROM purchases WHERE id = ?`, purchaseID).Scan(&totalPrice))
	assert.Equal(t, 15.00, totalPrice, "total is quantity times the price at sale time")

	var priceAtPurchase float64
	require.NoError(t, db.QueryRow(`SELECT price_at_purchase FROM purchase_items WHERE purchase_id = ?`, purchaseID).Scan(&priceAtPurchase))
	assert.Equal(t, 5.00, priceAtPurchase)
}

func TestPurchaseService_InsufficientStockRollsBackEverything(t *testing.T) {
	svc, db := newPurchaseService(t)

	clientID := createTestClient(t, db, "Amir", "ID-001")
	batteryID := createTestProduct(t, db, "Battery", 10, 5.00)
	screenID := createTestProduct(t, db, "Screen", 1, 80.00)

	// First line would succeed on its own; the second must sink the whole sale.
	_, err := svc.CreatePurchase(CreatePurchaseRequest{
		ClientID: clientID,
		Items: []PurchaseItemRequest{
			{ProductID: batteryID, Quantity: 2},
			{ProductID: screenID, Quantity: 5},
		},
	})
	require.ErrorIs(t, err, ErrInsufficientStock)

	assert.Equal(t, 10, productQuantity(t, db, batteryID), "no partial decrement")
	assert.Equal(t, 1, productQuantity(t, db, screenID))
	assert.Equal(t, 0, tableCount(t, db, "purchases"))
	assert.Equal(t, 0, tableCount(t, db, "purchase_items"))
}

func TestPurchaseService_UnknownProduct(t *testing.T) {
	svc, db := newPurchaseService(t)

	clientID := createTestClient(t, db, "Amir", "ID-001")

	_, err := svc.CreatePurchase(CreatePurchaseRequest{
		ClientID: clientID,
		Items:    []PurchaseItemRequest{{ProductID: 999, Quantity: 1}},
	})
	require.ErrorIs(t, err, ErrPurchaseProductMissing)
	assert.Equal(t, 0, tableCount(t, db, "purchases"))
}

func TestPurchaseService_UnknownClient(t *testing.T) {
	svc, db := newPurchaseService(t)

	productID := createTestProduct(t, db, "Battery", 10, 5.00)

	_, err := svc.CreatePurchase(CreatePurchaseRequest{
		ClientID: 999,
		Items:    []PurchaseItemRequest{{ProductID: productID, Quantity: 1}},
	})
	require.ErrorIs(t, err, ErrPurchaseClientMissing)
	assert.Equal(t, 10, productQuantity(t, db, productID))
}

func TestPurchaseService_EmptyPurchase(t *testing.T) {
	svc, db := newPurchaseService(t)

	clientID := createTestClient(t, db, "Amir", "ID-001")

	_, err := svc.CreatePurchase(CreatePurchaseRequest{ClientID: clientID})
	require.ErrorIs(t, err, ErrEmptyPurchase)
}

func TestPurchaseService_SnapshotPriceIgnoresLaterChanges(t *testing.T) {
	svc, db := newPurchaseService(t)

	clientID := createTestClient(t, db, "Amir", "ID-001")
	productID := createTestProduct(t, db, "Battery", 10, 5.00)

	purchaseID, err := svc.CreatePurchase(CreatePurchaseRequest{
		ClientID: clientID,
		Items:    []PurchaseItemRequest{{ProductID: productID, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = db.Exec(`UPDATE products SET price = 9.99 WHERE id = ?`, productID)
	require.NoError(t, err)

	var priceAtPurchase, totalPrice float64
	require.NoError(t, db.QueryRow(`SELECT price_at_purchase FROM purchase_items WHERE purchase_id = ?`, purchaseID).Scan(&priceAtPurchase))
	require.NoError(t, db.QueryRow(`SELECT total_price FROM purchases WHERE id = ?`, purchaseID).Scan(&totalPrice))
	assert.Equal(t, 5.00, priceAtPurchase)
	assert.Equal(t, 5.00, totalPrice)
}
