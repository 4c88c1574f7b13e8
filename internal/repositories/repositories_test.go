package repositories

import (
	"database/sql"
	"testing"
	"time"

	"repair_shop_backend/internal/database"
	"repair_shop_backend/internal/models"

	"github.com/stretchr/testify/require"
)

// newTestDB opens a fresh in-memory store with the full schema applied.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db))
	return db
}

func seedClient(t *testing.T, db *sql.DB, name, idCard string) int64 {
	t.Helper()
	id, err := NewClientRepository(db).CreateClient(db, &models.Client{
		Name:    name,
		IDCard:  idCard,
		Address: "12 Workshop Lane",
		Email:   name + "@example.com",
		Phone:   "555-0100",
	})
	require.NoError(t, err)
	return id
}

func seedProduct(t *testing.T, db *sql.DB, name string, quantity int, price float64) int64 {
	t.Helper()
	id, err := NewProductRepository(db).CreateProduct(db, &models.Product{
		Name:     name,
		Quantity: quantity,
		Price:    price,
	})
	require.NoError(t, err)
	return id
}

func seedStaff(t *testing.T, db *sql.DB, name, email, role string) int64 {
	t.Helper()
	id, err := NewStaffRepository(db).CreateStaffMember(db, &models.StaffMember{
		Name:        name,
		Role:        role,
		IsAvailable: true,
		Email:       email,
	}, "not-a-real-hash")
	require.NoError(t, err)
	return id
}

func seedRepair(t *testing.T, db *sql.DB, clientID int64, staffID *int64, status string, requestDate time.Time) int64 {
	t.Helper()
	id, err := NewRepairRepository(db).CreateRepair(db, &models.Repair{
		Description: "cracked housing",
		Status:      status,
		Priority:    models.PriorityMedium,
		RequestDate: requestDate,
		ClientID:    clientID,
		StaffID:     staffID,
	})
	require.NoError(t, err)
	return id
}

func seedPurchase(t *testing.T, db *sql.DB, clientID int64, date time.Time, total float64) int64 {
	t.Helper()
	id, err := NewPurchaseRepository(db).CreatePurchase(db, &models.Purchase{
		ClientID:     clientID,
		PurchaseDate: date,
		TotalPrice:   total,
	})
	require.NoError(t, err)
	return id
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&n))
	return n
}
