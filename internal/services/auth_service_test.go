package services

import (
	"testing"

	"repair_shop_backend/internal/models"
	"repair_shop_backend/internal/repositories"
	"repair_shop_backend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (AuthService, StaffService) {
	t.Helper()
	db := newTestDB(t)
	staffRepo := repositories.NewStaffRepository(db)
	return NewAuthService(staffRepo), NewStaffService(staffRepo, db)
}

func TestAuthService_Login(t *testing.T) {
	authSvc, staffSvc := newAuthService(t)

	created, err := staffSvc.CreateStaffMember(CreateStaffRequest{
		Name:     "Dana",
		Role:     models.RoleManager,
		Email:    "dana@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	resp, err := authSvc.Login(LoginRequest{Email: "dana@example.com", Password: "correct horse battery"})
	require.NoError(t, err)
	require.NotNil(t, resp.Staff)
	assert.Equal(t, created.ID, resp.Staff.ID)
	require.NotEmpty(t, resp.AccessToken)

	claims, err := utils.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, created.ID, claims.StaffID)
	assert.Equal(t, models.RoleManager, claims.Role)
}

func TestAuthService_LoginRejectsBadCredentialsUniformly(t *testing.T) {
	authSvc, staffSvc := newAuthService(t)

	_, err := staffSvc.CreateStaffMember(CreateStaffRequest{
		Name:     "Dana",
		Role:     models.RoleManager,
		Email:    "dana@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	// Wrong password and unknown email must be indistinguishable.
	_, err = authSvc.Login(LoginRequest{Email: "dana@example.com", Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = authSvc.Login(LoginRequest{Email: "nobody@example.com", Password: "correct horse battery"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_GetProfile(t *testing.T) {
	authSvc, staffSvc := newAuthService(t)

	created, err := staffSvc.CreateStaffMember(CreateStaffRequest{
		Name:     "Dana",
		Role:     models.RoleTechnician,
		Email:    "dana@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	staff, err := authSvc.GetProfile(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dana", staff.Name)

	_, err = authSvc.GetProfile(999)
	require.ErrorIs(t, err, ErrStaffNotFound)
}
