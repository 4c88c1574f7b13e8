package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"repair_shop_backend/internal/models"
)

// ClientRepository defines the interface for client-related database operations.
type ClientRepository interface {
	CreateClient(executor SQLExecutor, client *models.Client) (int64, error)
	GetClientByID(id int64) (*models.Client, error)
	GetClients() ([]models.Client, error)
	UpdateClient(executor SQLExecutor, client *models.Client) error
	DeleteClient(executor SQLExecutor, id int64) error
}

type clientRepository struct {
	db *sql.DB
}

// NewClientRepository creates a new instance of ClientRepository.
func NewClientRepository(db *sql.DB) ClientRepository {
	return &clientRepository{db: db}
}

// CreateClient inserts a new client and returns the generated id.
func (r *clientRepository) CreateClient(executor SQLExecutor, client *models.Client) (int64, error) {
	query := `INSERT INTO clients (name, id_card, address, email, phone, picture)
	          VALUES (?, ?, ?, ?, ?, ?)`

	result, err := executor.Exec(query,
		client.Name, client.IDCard, client.Address, client.Email, client.Phone, client.Picture,
	)
	if err != nil {
		return 0, translateConstraintError(err, fmt.Sprintf("creating client %q", client.Name))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: reading new client id: %v", ErrDatabaseError, err)
	}
	client.ID = id
	return id, nil
}

// GetClientByID retrieves a client by their ID.
func (r *clientRepository) GetClientByID(id int64) (*models.Client, error) {
	query := `SELECT id, name, id_card, address, email, phone, picture
	          FROM clients WHERE id = ?`

	client, err := scanClientRow(r.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting client by ID %d: %v", ErrDatabaseError, id, err)
	}
	return client, nil
}

// GetClients retrieves all clients ordered alphabetically by name.
func (r *clientRepository) GetClients() ([]models.Client, error) {
	query := `SELECT id, name, id_card, address, email, phone, picture
	          FROM clients ORDER BY name ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying clients: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	clients := []models.Client{}
	for rows.Next() {
		client, err := scanClientRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning client: %v", ErrDatabaseError, err)
		}
		clients = append(clients, *client)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating client rows: %v", ErrDatabaseError, err)
	}
	return clients, nil
}

// UpdateClient replaces the full client row keyed by id.
func (r *clientRepository) UpdateClient(executor SQLExecutor, client *models.Client) error {
	query := `UPDATE clients SET
	            name = ?, id_card = ?, address = ?, email = ?, phone = ?, picture = ?
	          WHERE id = ?`

	result, err := executor.Exec(query,
		client.Name, client.IDCard, client.Address, client.Email, client.Phone, client.Picture,
		client.ID,
	)
	if err != nil {
		return translateConstraintError(err, fmt.Sprintf("updating client ID %d", client.ID))
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for updating client ID %d: %v", ErrDatabaseError, client.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteClient removes a client. Dependent repairs and purchases are removed
// by the schema's ON DELETE CASCADE actions, not by application logic.
func (r *clientRepository) DeleteClient(executor SQLExecutor, id int64) error {
	result, err := executor.Exec(`DELETE FROM clients WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting client ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for deleting client ID %d: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanClientRow(row scanner) (*models.Client, error) {
	var client models.Client
	var picture sql.NullString
	err := row.Scan(
		&client.ID, &client.Name, &client.IDCard, &client.Address,
		&client.Email, &client.Phone, &picture,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if picture.Valid {
		client.Picture = &picture.String
	}
	return &client, nil
}
