package repositories

import (
	"testing"
	"time"

	"repair_shop_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryRepository_MergesAndOrdersEvents(t *testing.T) {
	db := newTestDB(t)
	repo := NewHistoryRepository(db)

	clientID := seedClient(t, db, "Amir", "ID-001")
	staffID := seedStaff(t, db, "Dana", "dana@example.com", models.RoleTechnician)
	productID := seedProduct(t, db, "Battery", 10, 25.00)

	// Repair two days ago, purchase yesterday: the purchase must come first.
	seedRepair(t, db, clientID, &staffID, models.StatusInProgress, time.Now().AddDate(0, 0, -2))
	purchaseID := seedPurchase(t, db, clientID, time.Now().AddDate(0, 0, -1), 50.00)
	_, err := NewPurchaseRepository(db).CreatePurchaseItem(db, &models.PurchaseItem{
		PurchaseID:        purchaseID,
		ProductID:         &productID,
		QuantityPurchased: 2,
		PriceAtPurchase:   25.00,
	})
	require.NoError(t, err)

	events, err := repo.GetHistory()
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "purchase", events[0].Type)
	assert.Equal(t, "Amir", events[0].ClientName)
	assert.Equal(t, "2 x Battery", events[0].Detail)
	assert.Nil(t, events[0].StaffName)
	require.NotNil(t, events[0].TotalPrice)
	assert.Equal(t, 50.00, *events[0].TotalPrice)

	assert.Equal(t, "repair", events[1].Type)
	assert.Equal(t, "cracked housing", events[1].Detail)
	require.NotNil(t, events[1].StaffName)
	assert.Equal(t, "Dana", *events[1].StaffName)
}

func TestHistoryRepository_EmptyStore(t *testing.T) {
	db := newTestDB(t)
	repo := NewHistoryRepository(db)

	events, err := repo.GetHistory()
	require.NoError(t, err)
	assert.Empty(t, events)
}
