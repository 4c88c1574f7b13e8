package repositories

import (
	"testing"
	"time"

	"repair_shop_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardRepository_StatsOnEmptyStore(t *testing.T) {
	db := newTestDB(t)
	repo := NewDashboardRepository(db)

	stats, err := repo.GetStats()
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalClients)
	assert.Equal(t, 0, stats.TotalStaff)
	assert.Equal(t, 0, stats.TotalRepairs)
	assert.Equal(t, 0.0, stats.TotalSales)
	assert.Equal(t, 0.0, stats.StockValue)
	assert.Equal(t, 0.0, stats.StockToSalesRatio, "ratio is zero when there are no sales")
	assert.Equal(t, 0, stats.OutOfStockCount)
}

func TestDashboardRepository_StatsAggregates(t *testing.T) {
	db := newTestDB(t)
	repo := NewDashboardRepository(db)

	clientID := seedClient(t, db, "Amir", "ID-001")
	seedProduct(t, db, "Battery", 4, 25.00) // stock value 100
	seedProduct(t, db, "Old cable", 0, 3.00)
	seedPurchase(t, db, clientID, time.Now(), 50.00)

	stats, err := repo.GetStats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalClients)
	assert.Equal(t, 50.00, stats.TotalSales)
	assert.Equal(t, 100.00, stats.StockValue)
	assert.Equal(t, 2.0, stats.StockToSalesRatio)
	assert.Equal(t, 1, stats.OutOfStockCount)
}

func TestDashboardRepository_RepairCountsByStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewDashboardRepository(db)

	clientID := seedClient(t, db, "Amir", "ID-001")
	seedRepair(t, db, clientID, nil, models.StatusNotStarted, time.Now())
	seedRepair(t, db, clientID, nil, models.StatusNotStarted, time.Now())
	seedRepair(t, db, clientID, nil, models.StatusCompleted, time.Now())

	counts, err := repo.GetRepairCountsByStatus()
	require.NoError(t, err)
	require.Len(t, counts, 2)

	byStatus := map[string]int{}
	for _, sc := range counts {
		byStatus[sc.Status] = sc.Count
	}
	assert.Equal(t, 2, byStatus[models.StatusNotStarted])
	assert.Equal(t, 1, byStatus[models.StatusCompleted])
}

func TestDashboardRepository_DailySalesWindow(t *testing.T) {
	db := newTestDB(t)
	repo := NewDashboardRepository(db)

	clientID := seedClient(t, db, "Amir", "ID-001")
	now := time.Now()
	seedPurchase(t, db, clientID, now, 10.00)
	seedPurchase(t, db, clientID, now, 5.00) // same day, must merge
	seedPurchase(t, db, clientID, now.AddDate(0, 0, -2), 7.50)
	seedPurchase(t, db, clientID, now.AddDate(0, 0, -10), 99.00) // outside the window

	series, err := repo.GetDailySales(7)
	require.NoError(t, err)
	require.Len(t, series, 2, "days without purchases produce no row")

	assert.Equal(t, now.AddDate(0, 0, -2).Format("2006-01-02"), series[0].Date)
	assert.Equal(t, 7.50, series[0].Total)
	assert.Equal(t, now.Format("2006-01-02"), series[1].Date)
	assert.Equal(t, 15.00, series[1].Total)
}

func TestDashboardRepository_RecentPurchasesSummary(t *testing.T) {
	db := newTestDB(t)
	repo := NewDashboardRepository(db)
	purchaseRepo := NewPurchaseRepository(db)

	clientID := seedClient(t, db, "Amir", "ID-001")
	productID := seedProduct(t, db, "Battery", 10, 25.00)

	for i := 0; i < 7; i++ {
		purchaseID := seedPurchase(t, db, clientID, time.Now().Add(time.Duration(i)*time.Minute), 25.00)
		_, err := purchaseRepo.CreatePurchaseItem(db, &models.PurchaseItem{
			PurchaseID:        purchaseID,
			ProductID:         &productID,
			QuantityPurchased: 1,
			PriceAtPurchase:   25.00,
		})
		require.NoError(t, err)
	}

	recent, err := repo.GetRecentPurchases(5)
	require.NoError(t, err)
	require.Len(t, recent, 5)
	assert.Equal(t, "Amir", recent[0].ClientName)
	assert.Equal(t, "Battery", recent[0].ProductSummary)
	assert.True(t, recent[0].PurchaseDate.After(recent[4].PurchaseDate), "newest first")
}

func TestDashboardRepository_TechnicianStats(t *testing.T) {
	db := newTestDB(t)
	repo := NewDashboardRepository(db)
	repairRepo := NewRepairRepository(db)

	clientID := seedClient(t, db, "Amir", "ID-001")
	staffID := seedStaff(t, db, "Dana", "dana@example.com", models.RoleTechnician)
	otherID := seedStaff(t, db, "Erik", "erik@example.com", models.RoleTechnician)

	// Two active, one of them overdue, one completed.
	seedRepair(t, db, clientID, &staffID, models.StatusInProgress, time.Now())
	overdueDate := time.Now().AddDate(0, 0, -3)
	_, err := repairRepo.CreateRepair(db, &models.Repair{
		Description: "overdue rework",
		Status:      models.StatusOnHold,
		Priority:    models.PriorityHigh,
		ClientID:    clientID,
		StaffID:     &staffID,
		DueDate:     &overdueDate,
	})
	require.NoError(t, err)
	seedRepair(t, db, clientID, &staffID, models.StatusCompleted, time.Now())

	// Another technician's workload must not leak in.
	seedRepair(t, db, clientID, &otherID, models.StatusInProgress, time.Now())

	stats, err := repo.GetTechnicianStats(staffID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.ActiveAssigned)
	assert.Equal(t, 1, stats.Overdue)
	assert.Equal(t, 1, stats.TotalCompleted)
}

func TestDashboardRepository_InventoryStats(t *testing.T) {
	db := newTestDB(t)
	repo := NewDashboardRepository(db)

	seedProduct(t, db, "Battery", 20, 25.00)
	seedProduct(t, db, "Screen", 3, 80.00)
	seedProduct(t, db, "Cable", 0, 3.00)

	stats, err := repo.GetInventoryStats(5)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.SKUCount)
	assert.Equal(t, 23, stats.TotalUnits)
	assert.Equal(t, 2, stats.LowStockCount)
	require.Len(t, stats.LowStockProducts, 2)
	assert.Equal(t, "Cable", stats.LowStockProducts[0].Name, "lowest stock first")
	assert.Equal(t, "Screen", stats.LowStockProducts[1].Name)
}
