package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"repair_shop_backend/internal/models"
)

// ProductRepository defines the interface for product stock operations.
// GetProductByID and DecrementStock accept an executor so the purchase
// transaction can run its stock check and decrement on the same *sql.Tx.
type ProductRepository interface {
	CreateProduct(executor SQLExecutor, product *models.Product) (int64, error)
	GetProductByID(executor SQLExecutor, id int64) (*models.Product, error)
	GetProducts() ([]models.Product, error)
	UpdateProduct(executor SQLExecutor, product *models.Product) error
	DeleteProduct(executor SQLExecutor, id int64) error
	DecrementStock(executor SQLExecutor, id int64, quantity int) error
}

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new instance of ProductRepository.
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

// CreateProduct inserts a new product and returns the generated id.
func (r *productRepository) CreateProduct(executor SQLExecutor, product *models.Product) (int64, error) {
	query := `INSERT INTO products (name, quantity, price) VALUES (?, ?, ?)`

	result, err := executor.Exec(query, product.Name, product.Quantity, product.Price)
	if err != nil {
		return 0, translateConstraintError(err, fmt.Sprintf("creating product %q", product.Name))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: reading new product id: %v", ErrDatabaseError, err)
	}
	product.ID = id
	return id, nil
}

// GetProductByID retrieves a product through the given executor, which may
// be the shared store handle or an open transaction.
func (r *productRepository) GetProductByID(executor SQLExecutor, id int64) (*models.Product, error) {
	if executor == nil {
		executor = r.db
	}
	var product models.Product
	err := executor.QueryRow(`SELECT id, name, quantity, price FROM products WHERE id = ?`, id).Scan(
		&product.ID, &product.Name, &product.Quantity, &product.Price,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting product by ID %d: %v", ErrDatabaseError, id, err)
	}
	return &product, nil
}

// GetProducts retrieves all products ordered by name.
func (r *productRepository) GetProducts() ([]models.Product, error) {
	rows, err := r.db.Query(`SELECT id, name, quantity, price FROM products ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying products: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var product models.Product
		if err := rows.Scan(&product.ID, &product.Name, &product.Quantity, &product.Price); err != nil {
			return nil, fmt.Errorf("%w: scanning product: %v", ErrDatabaseError, err)
		}
		products = append(products, product)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating product rows: %v", ErrDatabaseError, err)
	}
	return products, nil
}

// UpdateProduct replaces the full product row keyed by id.
func (r *productRepository) UpdateProduct(executor SQLExecutor, product *models.Product) error {
	query := `UPDATE products SET name = ?, quantity = ?, price = ? WHERE id = ?`

	result, err := executor.Exec(query, product.Name, product.Quantity, product.Price, product.ID)
	if err != nil {
		return translateConstraintError(err, fmt.Sprintf("updating product ID %d", product.ID))
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for updating product ID %d: %v", ErrDatabaseError, product.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteProduct removes a product. Historical purchase lines keep their
// snapshot price; the schema sets their product_id to NULL.
func (r *productRepository) DeleteProduct(executor SQLExecutor, id int64) error {
	result, err := executor.Exec(`DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting product ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for deleting product ID %d: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DecrementStock reduces a product's quantity by the purchased amount.
// Callers must have verified sufficiency beforehand inside the same
// transaction; the column CHECK rejects a negative result regardless.
func (r *productRepository) DecrementStock(executor SQLExecutor, id int64, quantity int) error {
	result, err := executor.Exec(`UPDATE products SET quantity = quantity - ? WHERE id = ?`, quantity, id)
	if err != nil {
		return fmt.Errorf("%w: decrementing stock for product ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for stock decrement of product ID %d: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
