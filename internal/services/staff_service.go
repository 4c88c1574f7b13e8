package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"repair_shop_backend/internal/models"
	"repair_shop_backend/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// --- Custom Service Errors for Staff ---
var (
	ErrStaffNotFound    = errors.New("staff member not found")
	ErrStaffEmailExists = errors.New("a staff member with this email already exists")
	ErrInvalidRole      = errors.New("invalid staff role")
)

// --- Staff DTOs ---

// CreateStaffRequest carries a new staff member plus their initial password.
// The password is hashed here and only the hash reaches the repository.
type CreateStaffRequest struct {
	Name        string  `json:"name" binding:"required"`
	Role        string  `json:"role"`
	IsAvailable bool    `json:"is_available"`
	Email       string  `json:"email" binding:"required"`
	Phone       string  `json:"phone"`
	Picture     *string `json:"picture"`
	Password    string  `json:"password" binding:"required,min=8"`
}

// UpdateStaffRequest carries the full staff row for a whole-row replace.
// Password is optional; when set, the credential is rotated as well.
type UpdateStaffRequest struct {
	Name        string  `json:"name" binding:"required"`
	Role        string  `json:"role"`
	IsAvailable bool    `json:"is_available"`
	Email       string  `json:"email" binding:"required"`
	Phone       string  `json:"phone"`
	Picture     *string `json:"picture"`
	Password    *string `json:"password"`
}

// --- StaffService Interface ---
type StaffService interface {
	CreateStaffMember(req CreateStaffRequest) (*models.StaffMember, error)
	GetStaffMemberByID(staffID int64) (*models.StaffMember, error)
	GetStaffMembers() ([]models.StaffMember, error)
	UpdateStaffMember(staffID int64, req UpdateStaffRequest) (*models.StaffMember, error)
	DeleteStaffMember(staffID int64) error
}

// --- staffService Implementation ---
type staffService struct {
	staffRepo repositories.StaffRepository
	db        *sql.DB
}

// NewStaffService creates a new instance of StaffService.
func NewStaffService(repo repositories.StaffRepository, db *sql.DB) StaffService {
	return &staffService{
		staffRepo: repo,
		db:        db,
	}
}

func (s *staffService) validateStaffData(name, role, email string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("%w: staff name cannot be empty", ErrValidation)
	}
	if strings.TrimSpace(email) == "" {
		return "", fmt.Errorf("%w: staff email cannot be empty", ErrValidation)
	}
	if role == "" {
		role = models.RoleNotAssigned
	}
	if !models.IsValidStaffRole(role) {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
	return role, nil
}

func (s *staffService) CreateStaffMember(req CreateStaffRequest) (*models.StaffMember, error) {
	role, err := s.validateStaffData(req.Name, req.Role, req.Email)
	if err != nil {
		return nil, err
	}

	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	staff := &models.StaffMember{
		Name:        req.Name,
		Role:        role,
		IsAvailable: req.IsAvailable,
		Email:       req.Email,
		Phone:       req.Phone,
		Picture:     req.Picture,
	}

	id, err := s.staffRepo.CreateStaffMember(s.db, staff, string(hashedPasswordBytes))
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: %q", ErrStaffEmailExists, req.Email)
		}
		return nil, fmt.Errorf("failed to create staff member in repository: %w", err)
	}
	return s.staffRepo.GetStaffMemberByID(id)
}

func (s *staffService) GetStaffMemberByID(staffID int64) (*models.StaffMember, error) {
	staff, err := s.staffRepo.GetStaffMemberByID(staffID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to get staff member by ID: %w", err)
	}
	return staff, nil
}

func (s *staffService) GetStaffMembers() ([]models.StaffMember, error) {
	staffMembers, err := s.staffRepo.GetStaffMembers()
	if err != nil {
		return nil, fmt.Errorf("failed to get staff members: %w", err)
	}
	return staffMembers, nil
}

func (s *staffService) UpdateStaffMember(staffID int64, req UpdateStaffRequest) (*models.StaffMember, error) {
	role, err := s.validateStaffData(req.Name, req.Role, req.Email)
	if err != nil {
		return nil, err
	}

	staff := &models.StaffMember{
		ID:          staffID,
		Name:        req.Name,
		Role:        role,
		IsAvailable: req.IsAvailable,
		Email:       req.Email,
		Phone:       req.Phone,
		Picture:     req.Picture,
	}

	err = s.staffRepo.UpdateStaffMember(s.db, staff)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: %q", ErrStaffEmailExists, req.Email)
		}
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to update staff member in repository: %w", err)
	}

	if req.Password != nil && *req.Password != "" {
		hashedPasswordBytes, hashErr := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if hashErr != nil {
			return nil, fmt.Errorf("failed to hash new password: %w", hashErr)
		}
		if err := s.staffRepo.UpdatePasswordHash(s.db, staffID, string(hashedPasswordBytes)); err != nil {
			return nil, fmt.Errorf("failed to rotate staff password: %w", err)
		}
	}

	return s.staffRepo.GetStaffMemberByID(staffID)
}

func (s *staffService) DeleteStaffMember(staffID int64) error {
	err := s.staffRepo.DeleteStaffMember(s.db, staffID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrStaffNotFound
		}
		return fmt.Errorf("failed to delete staff member: %w", err)
	}
	return nil
}
