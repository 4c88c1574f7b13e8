package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"repair_shop_backend/internal/models"
)

// StaffRepository defines the interface for staff-related database operations.
// The is_available 0/1 encoding never leaves this file: writes encode the
// boolean, reads decode it.
type StaffRepository interface {
	CreateStaffMember(executor SQLExecutor, staff *models.StaffMember, passwordHash string) (int64, error)
	GetStaffMemberByID(id int64) (*models.StaffMember, error)
	GetStaffMemberByEmail(email string) (*models.StaffMember, string, error)
	GetStaffMembers() ([]models.StaffMember, error)
	UpdateStaffMember(executor SQLExecutor, staff *models.StaffMember) error
	UpdatePasswordHash(executor SQLExecutor, id int64, passwordHash string) error
	DeleteStaffMember(executor SQLExecutor, id int64) error
}

type staffRepository struct {
	db *sql.DB
}

// NewStaffRepository creates a new instance of StaffRepository.
func NewStaffRepository(db *sql.DB) StaffRepository {
	return &staffRepository{db: db}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// CreateStaffMember inserts a new staff member and returns the generated id.
func (r *staffRepository) CreateStaffMember(executor SQLExecutor, staff *models.StaffMember, passwordHash string) (int64, error) {
	query := `INSERT INTO staff_members (name, role, is_available, email, phone, picture, password_hash)
	          VALUES (?, ?, ?, ?, ?, ?, ?)`

	result, err := executor.Exec(query,
		staff.Name, staff.Role, boolToInt(staff.IsAvailable),
		staff.Email, staff.Phone, staff.Picture, passwordHash,
	)
	if err != nil {
		return 0, translateConstraintError(err, fmt.Sprintf("creating staff member %q", staff.Name))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: reading new staff member id: %v", ErrDatabaseError, err)
	}
	staff.ID = id
	return id, nil
}

// GetStaffMemberByID retrieves a staff member by their ID.
func (r *staffRepository) GetStaffMemberByID(id int64) (*models.StaffMember, error) {
	query := `SELECT id, name, role, is_available, email, phone, picture
	          FROM staff_members WHERE id = ?`

	staff, err := scanStaffMemberRow(r.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting staff member by ID %d: %v", ErrDatabaseError, id, err)
	}
	return staff, nil
}

// GetStaffMemberByEmail retrieves a staff member and their password hash for
// credential verification. The hash is returned separately and never attached
// to the model.
func (r *staffRepository) GetStaffMemberByEmail(email string) (*models.StaffMember, string, error) {
	query := `SELECT id, name, role, is_available, email, phone, picture, password_hash
	          FROM staff_members WHERE email = ?`

	var staff models.StaffMember
	var isAvailable int
	var picture sql.NullString
	var passwordHash string
	err := r.db.QueryRow(query, email).Scan(
		&staff.ID, &staff.Name, &staff.Role, &isAvailable,
		&staff.Email, &staff.Phone, &picture, &passwordHash,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", ErrNotFound
		}
		return nil, "", fmt.Errorf("%w: getting staff member by email: %v", ErrDatabaseError, err)
	}
	staff.IsAvailable = isAvailable != 0
	if picture.Valid {
		staff.Picture = &picture.String
	}
	return &staff, passwordHash, nil
}

// GetStaffMembers retrieves all staff members ordered by name.
func (r *staffRepository) GetStaffMembers() ([]models.StaffMember, error) {
	query := `SELECT id, name, role, is_available, email, phone, picture
	          FROM staff_members ORDER BY name ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying staff members: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	staffMembers := []models.StaffMember{}
	for rows.Next() {
		staff, err := scanStaffMemberRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning staff member: %v", ErrDatabaseError, err)
		}
		staffMembers = append(staffMembers, *staff)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating staff rows: %v", ErrDatabaseError, err)
	}
	return staffMembers, nil
}

// UpdateStaffMember replaces the staff row keyed by id. The password hash is
// managed separately through UpdatePasswordHash.
func (r *staffRepository) UpdateStaffMember(executor SQLExecutor, staff *models.StaffMember) error {
	query := `UPDATE staff_members SET
	            name = ?, role = ?, is_available = ?, email = ?, phone = ?, picture = ?
	          WHERE id = ?`

	result, err := executor.Exec(query,
		staff.Name, staff.Role, boolToInt(staff.IsAvailable),
		staff.Email, staff.Phone, staff.Picture, staff.ID,
	)
	if err != nil {
		return translateConstraintError(err, fmt.Sprintf("updating staff member ID %d", staff.ID))
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for updating staff member ID %d: %v", ErrDatabaseError, staff.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdatePasswordHash stores a new credential hash for the staff member.
func (r *staffRepository) UpdatePasswordHash(executor SQLExecutor, id int64, passwordHash string) error {
	result, err := executor.Exec(`UPDATE staff_members SET password_hash = ? WHERE id = ?`, passwordHash, id)
	if err != nil {
		return fmt.Errorf("%w: updating password for staff member ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for password update of staff member ID %d: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteStaffMember removes a staff member. Repairs previously assigned to
// them keep existing; the schema sets their staff_id to NULL.
func (r *staffRepository) DeleteStaffMember(executor SQLExecutor, id int64) error {
	result, err := executor.Exec(`DELETE FROM staff_members WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting staff member ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for deleting staff member ID %d: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanStaffMemberRow(row scanner) (*models.StaffMember, error) {
	var staff models.StaffMember
	var isAvailable int
	var picture sql.NullString
	err := row.Scan(
		&staff.ID, &staff.Name, &staff.Role, &isAvailable,
		&staff.Email, &staff.Phone, &picture,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	staff.IsAvailable = isAvailable != 0
	if picture.Valid {
		staff.Picture = &picture.String
	}
	return &staff, nil
}
