package services

import (
	"errors"
	"fmt"

	"repair_shop_backend/internal/models"
	"repair_shop_backend/internal/repositories"
	"repair_shop_backend/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

// --- Custom Service Errors for Auth ---
var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password; callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenGeneration    = errors.New("failed to generate token")
)

// --- Auth DTOs ---

// LoginRequest DTO
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse DTO
type AuthResponse struct {
	Staff       *models.StaffMember `json:"staff"`
	AccessToken string              `json:"access_token"`
}

// --- AuthService Interface ---
type AuthService interface {
	Login(req LoginRequest) (*AuthResponse, error)
	GetProfile(staffID int64) (*models.StaffMember, error)
}

// --- authService Implementation ---
type authService struct {
	staffRepo repositories.StaffRepository
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(staffRepo repositories.StaffRepository) AuthService {
	return &authService{staffRepo: staffRepo}
}

// Login verifies staff credentials and issues a session token.
func (s *authService) Login(req LoginRequest) (*AuthResponse, error) {
	staff, storedHash, err := s.staffRepo.GetStaffMemberByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login attempt failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := utils.GenerateAccessToken(staff.ID, staff.Name, staff.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}

	return &AuthResponse{
		Staff:       staff,
		AccessToken: accessToken,
	}, nil
}

// GetProfile retrieves the logged-in staff member's record.
func (s *authService) GetProfile(staffID int64) (*models.StaffMember, error) {
	staff, err := s.staffRepo.GetStaffMemberByID(staffID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to retrieve staff profile: %w", err)
	}
	return staff, nil
}
