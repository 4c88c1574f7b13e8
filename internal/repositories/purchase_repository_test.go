package repositories

import (
	"testing"
	"time"

	"repair_shop_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchaseRepository_ClientHistorySummary(t *testing.T) {
	db := newTestDB(t)
	repo := NewPurchaseRepository(db)

	clientID := seedClient(t, db, "Amir", "ID-001")
	batteryID := seedProduct(t, db, "Battery", 10, 25.00)
	cableID := seedProduct(t, db, "Cable", 10, 3.00)

	oldID := seedPurchase(t, db, clientID, time.Now().AddDate(0, 0, -1), 25.00)
	_, err := repo.CreatePurchaseItem(db, &models.PurchaseItem{
		PurchaseID: oldID, ProductID: &batteryID, QuantityPurchased: 1, PriceAtPurchase: 25.00,
	})
	require.NoError(t, err)

	newID := seedPurchase(t, db, clientID, time.Now(), 31.00)
	_, err = repo.CreatePurchaseItem(db, &models.PurchaseItem{
		PurchaseID: newID, ProductID: &batteryID, QuantityPurchased: 1, PriceAtPurchase: 25.00,
	})
	require.NoError(t, err)
	_, err = repo.CreatePurchaseItem(db, &models.PurchaseItem{
		PurchaseID: newID, ProductID: &cableID, QuantityPurchased: 2, PriceAtPurchase: 3.00,
	})
	require.NoError(t, err)

	purchases, err := repo.GetPurchasesByClientID(clientID)
	require.NoError(t, err)
	require.Len(t, purchases, 2)

	assert.Equal(t, newID, purchases[0].ID, "newest purchase first")
	assert.Equal(t, "1 x Battery, 2 x Cable", purchases[0].ProductSummary)
	assert.Equal(t, "1 x Battery", purchases[1].ProductSummary)
}

func TestPurchaseRepository_DeletedProductKeepsSnapshot(t *testing.T) {
	db := newTestDB(t)
	repo := NewPurchaseRepository(db)

	clientID := seedClient(t, db, "Amir", "ID-001")
	productID := seedProduct(t, db, "Battery", 10, 25.00)

	purchaseID := seedPurchase(t, db, clientID, time.Now(), 50.00)
	_, err := repo.CreatePurchaseItem(db, &models.PurchaseItem{
		PurchaseID: purchaseID, ProductID: &productID, QuantityPurchased: 2, PriceAtPurchase: 25.00,
	})
	require.NoError(t, err)

	require.NoError(t, NewProductRepository(db).DeleteProduct(db, productID))

	var storedProductID *int64
	var priceAtPurchase float64
	err = db.QueryRow(`SELECT product_id, price_at_purchase FROM purchase_items WHERE purchase_id = ?`, purchaseID).
		Scan(&storedProductID, &priceAtPurchase)
	require.NoError(t, err)
	assert.Nil(t, storedProductID, "product reference is cleared, not the line")
	assert.Equal(t, 25.00, priceAtPurchase, "snapshot price survives deletion")

	purchases, err := repo.GetPurchasesByClientID(clientID)
	require.NoError(t, err)
	require.Len(t, purchases, 1)
	assert.Equal(t, "2 x Deleted product", purchases[0].ProductSummary)
}

func TestPurchaseRepository_CreateForMissingClient(t *testing.T) {
	db := newTestDB(t)
	repo := NewPurchaseRepository(db)

	_, err := repo.CreatePurchase(db, &models.Purchase{
		ClientID:     999,
		PurchaseDate: time.Now(),
		TotalPrice:   10.00,
	})
	require.ErrorIs(t, err, ErrForeignKeyViolation)
}
