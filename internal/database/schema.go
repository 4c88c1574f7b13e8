package database

import "database/sql"

// Migrate creates the full schema if it does not exist yet. It runs on every
// process start inside a single transaction: either the whole schema is in
// place afterwards, or nothing was changed.
func Migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS clients (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			id_card TEXT NOT NULL UNIQUE,
			address TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			picture TEXT NULL
		);`,

		`CREATE TABLE IF NOT EXISTS products (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			quantity INTEGER NOT NULL DEFAULT 0 CHECK(quantity >= 0),
			price REAL NOT NULL DEFAULT 0 CHECK(price >= 0)
		);`,

		`CREATE TABLE IF NOT EXISTS staff_members (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'Not Assigned',
			is_available INTEGER NOT NULL DEFAULT 1,
			email TEXT NOT NULL UNIQUE,
			phone TEXT NOT NULL DEFAULT '',
			picture TEXT NULL,
			password_hash TEXT NOT NULL DEFAULT ''
		);`,

		`CREATE TABLE IF NOT EXISTS repairs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			description TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'Not Started',
			priority TEXT NOT NULL DEFAULT 'Low',
			request_date DATETIME NOT NULL,
			due_date DATETIME NULL,
			total_price REAL NULL,
			client_id INTEGER NOT NULL,
			staff_id INTEGER NULL,
			FOREIGN KEY(client_id) REFERENCES clients(id) ON DELETE CASCADE,
			FOREIGN KEY(staff_id) REFERENCES staff_members(id) ON DELETE SET NULL
		);`,

		`CREATE TABLE IF NOT EXISTS purchases (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			client_id INTEGER NOT NULL,
			purchase_date DATETIME NOT NULL,
			total_price REAL NOT NULL DEFAULT 0,
			FOREIGN KEY(client_id) REFERENCES clients(id) ON DELETE CASCADE
		);`,

		`CREATE TABLE IF NOT EXISTS purchase_items (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			purchase_id INTEGER NOT NULL,
			product_id INTEGER NULL,
			quantity_purchased INTEGER NOT NULL CHECK(quantity_purchased > 0),
			price_at_purchase REAL NOT NULL,
			FOREIGN KEY(purchase_id) REFERENCES purchases(id) ON DELETE CASCADE,
			FOREIGN KEY(product_id) REFERENCES products(id) ON DELETE SET NULL
		);`,

		`CREATE INDEX IF NOT EXISTS idx_repairs_client ON repairs(client_id);`,
		`CREATE INDEX IF NOT EXISTS idx_repairs_staff ON repairs(staff_id);`,
		`CREATE INDEX IF NOT EXISTS idx_repairs_request_date ON repairs(request_date);`,
		`CREATE INDEX IF NOT EXISTS idx_purchases_client_date ON purchases(client_id, purchase_date);`,
		`CREATE INDEX IF NOT EXISTS idx_purchase_items_purchase ON purchase_items(purchase_id);`,
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	for _, s := range stmts {
		if _, err := tx.Exec(s); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}
