package database

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMigrateIsIdempotent(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db))
	// A second run must be a no-op, not an error.
	require.NoError(t, Migrate(db))

	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%'`)
	require.NoError(t, err)
	defer rows.Close()

	tables := map[string]bool{}
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		tables[name] = true
	}
	require.NoError(t, rows.Err())

	for _, want := range []string{"clients", "products", "staff_members", "repairs", "purchases", "purchase_items"} {
		require.True(t, tables[want], "expected table %q to exist", want)
	}
}

func TestOpenEnforcesForeignKeys(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, Migrate(db))

	_, err = db.Exec(`INSERT INTO repairs (description, status, priority, request_date, client_id)
	                  VALUES ('broken screen', 'Not Started', 'Low', '2025-01-01 10:00:00', 999)`)
	require.Error(t, err, "insert referencing a missing client must be rejected")
}
