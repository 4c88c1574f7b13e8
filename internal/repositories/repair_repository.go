package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"repair_shop_backend/internal/models"
)

// RepairRepository defines the interface for repair work order operations.
// Read paths join in client name/address and (left join) the assigned staff
// name; these are computed at read time, never stored on the repair row.
type RepairRepository interface {
	CreateRepair(executor SQLExecutor, repair *models.Repair) (int64, error)
	GetRepairByID(id int64) (*models.Repair, error)
	GetRepairs() ([]models.Repair, error)
	GetRepairsByClientID(clientID int64) ([]models.Repair, error)
	UpdateRepair(executor SQLExecutor, repair *models.Repair) error
	DeleteRepair(executor SQLExecutor, id int64) error
}

type repairRepository struct {
	db *sql.DB
}

// NewRepairRepository creates a new instance of RepairRepository.
func NewRepairRepository(db *sql.DB) RepairRepository {
	return &repairRepository{db: db}
}

// CreateRepair inserts a new work order and returns the generated id.
// RequestDate is set here if the caller left it zero.
func (r *repairRepository) CreateRepair(executor SQLExecutor, repair *models.Repair) (int64, error) {
	if repair.RequestDate.IsZero() {
		repair.RequestDate = time.Now()
	}

	query := `INSERT INTO repairs (description, status, priority, request_date, due_date, total_price, client_id, staff_id)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := executor.Exec(query,
		repair.Description, repair.Status, repair.Priority,
		repair.RequestDate.Format(sqliteTimeLayout), formatNullableTime(repair.DueDate),
		repair.TotalPrice, repair.ClientID, repair.StaffID,
	)
	if err != nil {
		return 0, translateConstraintError(err, fmt.Sprintf("creating repair for client ID %d", repair.ClientID))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: reading new repair id: %v", ErrDatabaseError, err)
	}
	repair.ID = id
	return id, nil
}

const repairJoinedSelect = `
	SELECT r.id, r.description, r.status, r.priority, r.request_date, r.due_date,
	       r.total_price, r.client_id, r.staff_id, c.name, c.address, s.name
	FROM repairs r
	JOIN clients c ON r.client_id = c.id
	LEFT JOIN staff_members s ON r.staff_id = s.id`

// GetRepairByID retrieves a work order with its joined client and staff names.
func (r *repairRepository) GetRepairByID(id int64) (*models.Repair, error) {
	repair, err := scanJoinedRepairRow(r.db.QueryRow(repairJoinedSelect+` WHERE r.id = ?`, id))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting repair by ID %d: %v", ErrDatabaseError, id, err)
	}
	return repair, nil
}

// GetRepairs retrieves all work orders, newest request first, with joined
// client name/address and staff name.
func (r *repairRepository) GetRepairs() ([]models.Repair, error) {
	rows, err := r.db.Query(repairJoinedSelect + ` ORDER BY r.request_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying repairs: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	repairs := []models.Repair{}
	for rows.Next() {
		repair, err := scanJoinedRepairRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning repair: %v", ErrDatabaseError, err)
		}
		repairs = append(repairs, *repair)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating repair rows: %v", ErrDatabaseError, err)
	}
	return repairs, nil
}

// GetRepairsByClientID retrieves one client's work orders, newest first.
// Only the staff name is joined; the client is already known to the caller.
func (r *repairRepository) GetRepairsByClientID(clientID int64) ([]models.Repair, error) {
	query := `
		SELECT r.id, r.description, r.status, r.priority, r.request_date, r.due_date,
		       r.total_price, r.client_id, r.staff_id, s.name
		FROM repairs r
		LEFT JOIN staff_members s ON r.staff_id = s.id
		WHERE r.client_id = ?
		ORDER BY r.request_date DESC`

	rows, err := r.db.Query(query, clientID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying repairs for client ID %d: %v", ErrDatabaseError, clientID, err)
	}
	defer rows.Close()

	repairs := []models.Repair{}
	for rows.Next() {
		var repair models.Repair
		var dueDate sql.NullTime
		var totalPrice sql.NullFloat64
		var staffID sql.NullInt64
		var staffName sql.NullString
		if err := rows.Scan(
			&repair.ID, &repair.Description, &repair.Status, &repair.Priority,
			&repair.RequestDate, &dueDate, &totalPrice, &repair.ClientID, &staffID, &staffName,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning client repair: %v", ErrDatabaseError, err)
		}
		applyNullableRepairFields(&repair, dueDate, totalPrice, staffID, staffName)
		repairs = append(repairs, repair)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating client repair rows: %v", ErrDatabaseError, err)
	}
	return repairs, nil
}

// UpdateRepair replaces the full work order row keyed by id.
func (r *repairRepository) UpdateRepair(executor SQLExecutor, repair *models.Repair) error {
	query := `UPDATE repairs SET
	            description = ?, status = ?, priority = ?, request_date = ?, due_date = ?,
	            total_price = ?, client_id = ?, staff_id = ?
	          WHERE id = ?`

	result, err := executor.Exec(query,
		repair.Description, repair.Status, repair.Priority,
		repair.RequestDate.Format(sqliteTimeLayout), formatNullableTime(repair.DueDate),
		repair.TotalPrice, repair.ClientID, repair.StaffID, repair.ID,
	)
	if err != nil {
		return translateConstraintError(err, fmt.Sprintf("updating repair ID %d", repair.ID))
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for updating repair ID %d: %v", ErrDatabaseError, repair.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteRepair removes a work order.
func (r *repairRepository) DeleteRepair(executor SQLExecutor, id int64) error {
	result, err := executor.Exec(`DELETE FROM repairs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting repair ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for deleting repair ID %d: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanJoinedRepairRow(row scanner) (*models.Repair, error) {
	var repair models.Repair
	var dueDate sql.NullTime
	var totalPrice sql.NullFloat64
	var staffID sql.NullInt64
	var clientName, clientAddress string
	var staffName sql.NullString

	err := row.Scan(
		&repair.ID, &repair.Description, &repair.Status, &repair.Priority,
		&repair.RequestDate, &dueDate, &totalPrice, &repair.ClientID, &staffID,
		&clientName, &clientAddress, &staffName,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	applyNullableRepairFields(&repair, dueDate, totalPrice, staffID, staffName)
	repair.ClientName = &clientName
	repair.ClientAddress = &clientAddress
	return &repair, nil
}

func applyNullableRepairFields(repair *models.Repair, dueDate sql.NullTime, totalPrice sql.NullFloat64, staffID sql.NullInt64, staffName sql.NullString) {
	if dueDate.Valid {
		repair.DueDate = &dueDate.Time
	}
	if totalPrice.Valid {
		repair.TotalPrice = &totalPrice.Float64
	}
	if staffID.Valid {
		repair.StaffID = &staffID.Int64
	}
	if staffName.Valid {
		repair.StaffName = &staffName.String
	}
}

// formatNullableTime renders an optional timestamp in the store layout.
func formatNullableTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(sqliteTimeLayout)
}
