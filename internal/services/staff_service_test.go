package services

import (
	"database/sql"
	"testing"

	"repair_shop_backend/internal/models"
	"repair_shop_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStaffService(t *testing.T) (StaffService, *sql.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewStaffService(repositories.NewStaffRepository(db), db), db
}

func TestStaffService_EmptyRoleDefaultsToNotAssigned(t *testing.T) {
	svc, _ := newStaffService(t)

	staff, err := svc.CreateStaffMember(CreateStaffRequest{
		Name:     "Dana",
		Email:    "dana@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleNotAssigned, staff.Role)
}

func TestStaffService_RejectsUnknownRole(t *testing.T) {
	svc, _ := newStaffService(t)

	_, err := svc.CreateStaffMember(CreateStaffRequest{
		Name:     "Dana",
		Role:     "Janitor",
		Email:    "dana@example.com",
		Password: "correct horse battery",
	})
	require.ErrorIs(t, err, ErrInvalidRole)
}

func TestStaffService_DuplicateEmail(t *testing.T) {
	svc, _ := newStaffService(t)

	_, err := svc.CreateStaffMember(CreateStaffRequest{
		Name:     "Dana",
		Role:     models.RoleTechnician,
		Email:    "dana@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	_, err = svc.CreateStaffMember(CreateStaffRequest{
		Name:     "Other Dana",
		Role:     models.RoleCashier,
		Email:    "dana@example.com",
		Password: "different password",
	})
	require.ErrorIs(t, err, ErrStaffEmailExists)
}

func TestStaffService_UpdateRotatesPassword(t *testing.T) {
	svc, db := newStaffService(t)

	created, err := svc.CreateStaffMember(CreateStaffRequest{
		Name:     "Dana",
		Role:     models.RoleTechnician,
		Email:    "dana@example.com",
		Password: "original password",
	})
	require.NoError(t, err)

	newPassword := "rotated password"
	_, err = svc.UpdateStaffMember(created.ID, UpdateStaffRequest{
		Name:     "Dana",
		Role:     models.RoleTechnician,
		Email:    "dana@example.com",
		Password: &newPassword,
	})
	require.NoError(t, err)

	authSvc := NewAuthService(repositories.NewStaffRepository(db))
	_, err = authSvc.Login(LoginRequest{Email: "dana@example.com", Password: "original password"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = authSvc.Login(LoginRequest{Email: "dana@example.com", Password: newPassword})
	require.NoError(t, err)
}
