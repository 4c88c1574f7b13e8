package services

import (
	"database/sql"
	"testing"

	"repair_shop_backend/internal/database"
	"repair_shop_backend/internal/models"
	"repair_shop_backend/internal/repositories"

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

func createTestClient(t *testing.T, db *sql.DB, name, idCard string) int64 {
	t.Helper()
	id, err := repositories.NewClientRepository(db).CreateClient(db, &models.Client{
		Name:   name,
		IDCard: idCard,
	})
	require.NoError(t, err)
	return id
}

func createTestProduct(t *testing.T, db *sql.DB, name string, quantity int, price float64) int64 {
	t.Helper()
	id, err := repositories.NewProductRepository(db).CreateProduct(db, &models.Product{
		Name:     name,
		Quantity: quantity,
		Price:    price,
	})
	require.NoError(t, err)
	return id
}

func productQuantity(t *testing.T, db *sql.DB, id int64) int {
	t.Helper()
	var quantity int
	require.NoError(t, db.QueryRow(`SELECT quantity FROM products WHERE id = ?`, id).Scan(&quantity))
	return quantity
}

func tableCount(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&n))
	return n
}
