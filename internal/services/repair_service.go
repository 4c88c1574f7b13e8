package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"repair_shop_backend/internal/models"
	"repair_shop_backend/internal/repositories"
)

// --- Custom Service Errors for Repair ---
var (
	ErrRepairNotFound        = errors.New("repair not found")
	ErrInvalidRepairStatus   = errors.New("invalid repair status")
	ErrInvalidRepairPriority = errors.New("invalid repair priority")
	ErrRepairClientMissing   = errors.New("repair references a client that does not exist")
	ErrRepairStaffMissing    = errors.New("repair references a staff member that does not exist")
)

// --- Repair DTOs ---

// RepairRequest carries the full work order row for create and update.
// StaffID is optional; an explicit 0 is treated the same as absent, since
// some callers still send 0 to mean "unassigned".
type RepairRequest struct {
	Description string   `json:"description" binding:"required"`
	Status      string   `json:"status"`
	Priority    string   `json:"priority"`
	DueDate     *string  `json:"due_date"` // Format YYYY-MM-DD
	TotalPrice  *float64 `json:"total_price"`
	ClientID    int64    `json:"client_id" binding:"required"`
	StaffID     *int64   `json:"staff_id"`
}

// --- RepairService Interface ---
type RepairService interface {
	CreateRepair(req RepairRequest) (*models.Repair, error)
	GetRepairByID(repairID int64) (*models.Repair, error)
	GetRepairs() ([]models.Repair, error)
	GetRepairsForClient(clientID int64) ([]models.Repair, error)
	UpdateRepair(repairID int64, req RepairRequest) (*models.Repair, error)
	DeleteRepair(repairID int64) error
}

// --- repairService Implementation ---
type repairService struct {
	repairRepo repositories.RepairRepository
	db         *sql.DB
}

// NewRepairService creates a new instance of RepairService.
func NewRepairService(repo repositories.RepairRepository, db *sql.DB) RepairService {
	return &repairService{
		repairRepo: repo,
		db:         db,
	}
}

func (s *repairService) buildRepair(req RepairRequest) (*models.Repair, error) {
	if strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("%w: repair description cannot be empty", ErrValidation)
	}

	status := req.Status
	if status == "" {
		status = models.StatusNotStarted
	}
	if !models.IsValidRepairStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRepairStatus, status)
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityLow
	}
	if !models.IsValidRepairPriority(priority) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRepairPriority, priority)
	}

	var dueDate *time.Time
	if req.DueDate != nil && strings.TrimSpace(*req.DueDate) != "" {
		parsed, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return nil, fmt.Errorf("%w: due date must be YYYY-MM-DD", ErrValidation)
		}
		dueDate = &parsed
	}

	if req.TotalPrice != nil && *req.TotalPrice < 0 {
		return nil, fmt.Errorf("%w: repair total price cannot be negative", ErrValidation)
	}

	// Zero is a legacy sentinel for "unassigned"; store NULL so the FK on
	// staff_id is never tripped by it.
	staffID := req.StaffID
	if staffID != nil && *staffID == 0 {
		staffID = nil
	}

	return &models.Repair{
		Description: req.Description,
		Status:      status,
		Priority:    priority,
		DueDate:     dueDate,
		TotalPrice:  req.TotalPrice,
		ClientID:    req.ClientID,
		StaffID:     staffID,
	}, nil
}

func (s *repairService) CreateRepair(req RepairRequest) (*models.Repair, error) {
	repair, err := s.buildRepair(req)
	if err != nil {
		return nil, err
	}
	repair.RequestDate = time.Now()

	id, err := s.repairRepo.CreateRepair(s.db, repair)
	if err != nil {
		if errors.Is(err, repositories.ErrForeignKeyViolation) {
			return nil, s.classifyForeignKeyError(req)
		}
		return nil, fmt.Errorf("failed to create repair in repository: %w", err)
	}
	return s.repairRepo.GetRepairByID(id)
}

func (s *repairService) GetRepairByID(repairID int64) (*models.Repair, error) {
	repair, err := s.repairRepo.GetRepairByID(repairID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRepairNotFound
		}
		return nil, fmt.Errorf("failed to get repair by ID: %w", err)
	}
	return repair, nil
}

func (s *repairService) GetRepairs() ([]models.Repair, error) {
	repairs, err := s.repairRepo.GetRepairs()
	if err != nil {
		return nil, fmt.Errorf("failed to get repairs: %w", err)
	}
	return repairs, nil
}

func (s *repairService) GetRepairsForClient(clientID int64) ([]models.Repair, error) {
	repairs, err := s.repairRepo.GetRepairsByClientID(clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get repairs for client %d: %w", clientID, err)
	}
	return repairs, nil
}

func (s *repairService) UpdateRepair(repairID int64, req RepairRequest) (*models.Repair, error) {
	existing, err := s.repairRepo.GetRepairByID(repairID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRepairNotFound
		}
		return nil, fmt.Errorf("failed to find repair for update: %w", err)
	}

	repair, err := s.buildRepair(req)
	if err != nil {
		return nil, err
	}
	repair.ID = repairID
	// The request date marks creation and is preserved across updates.
	repair.RequestDate = existing.RequestDate

	err = s.repairRepo.UpdateRepair(s.db, repair)
	if err != nil {
		if errors.Is(err, repositories.ErrForeignKeyViolation) {
			return nil, s.classifyForeignKeyError(req)
		}
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRepairNotFound
		}
		return nil, fmt.Errorf("failed to update repair in repository: %w", err)
	}
	return s.repairRepo.GetRepairByID(repairID)
}

func (s *repairService) DeleteRepair(repairID int64) error {
	err := s.repairRepo.DeleteRepair(s.db, repairID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrRepairNotFound
		}
		return fmt.Errorf("failed to delete repair: %w", err)
	}
	return nil
}

// classifyForeignKeyError decides which referenced record was missing.
// SQLite does not name the violated FK, so the staff reference is checked
// only when one was actually supplied.
func (s *repairService) classifyForeignKeyError(req RepairRequest) error {
	if req.StaffID != nil && *req.StaffID != 0 {
		return fmt.Errorf("%w: staff ID %d or client ID %d", ErrRepairStaffMissing, *req.StaffID, req.ClientID)
	}
	return fmt.Errorf("%w: client ID %d", ErrRepairClientMissing, req.ClientID)
}
