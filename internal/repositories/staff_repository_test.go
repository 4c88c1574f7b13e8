package repositories

import (
	"testing"
	"time"

	"repair_shop_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaffRepository_AvailabilityRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewStaffRepository(db)

	availableID, err := repo.CreateStaffMember(db, &models.StaffMember{
		Name:        "Dana",
		Role:        models.RoleTechnician,
		IsAvailable: true,
		Email:       "dana@example.com",
	}, "hash-a")
	require.NoError(t, err)

	busyID, err := repo.CreateStaffMember(db, &models.StaffMember{
		Name:        "Erik",
		Role:        models.RoleTechnician,
		IsAvailable: false,
		Email:       "erik@example.com",
	}, "hash-b")
	require.NoError(t, err)

	available, err := repo.GetStaffMemberByID(availableID)
	require.NoError(t, err)
	assert.True(t, available.IsAvailable)

	busy, err := repo.GetStaffMemberByID(busyID)
	require.NoError(t, err)
	assert.False(t, busy.IsAvailable)
}

func TestStaffRepository_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewStaffRepository(db)

	seedStaff(t, db, "Dana", "dana@example.com", models.RoleTechnician)

	_, err := repo.CreateStaffMember(db, &models.StaffMember{
		Name:  "Other Dana",
		Role:  models.RoleCashier,
		Email: "dana@example.com",
	}, "hash")
	require.ErrorIs(t, err, ErrDuplicateKey)
}

func TestStaffRepository_GetByEmailReturnsHash(t *testing.T) {
	db := newTestDB(t)
	repo := NewStaffRepository(db)

	seedStaff(t, db, "Dana", "dana@example.com", models.RoleTechnician)

	staff, hash, err := repo.GetStaffMemberByEmail("dana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Dana", staff.Name)
	assert.Equal(t, "not-a-real-hash", hash)

	_, _, err = repo.GetStaffMemberByEmail("nobody@example.com")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStaffRepository_DeleteUnassignsRepairs(t *testing.T) {
	db := newTestDB(t)
	repo := NewStaffRepository(db)

	clientID := seedClient(t, db, "Amir", "ID-001")
	staffID := seedStaff(t, db, "Dana", "dana@example.com", models.RoleTechnician)
	repairID := seedRepair(t, db, clientID, &staffID, models.StatusInProgress, time.Now())

	require.NoError(t, repo.DeleteStaffMember(db, staffID))

	repair, err := NewRepairRepository(db).GetRepairByID(repairID)
	require.NoError(t, err)
	assert.Nil(t, repair.StaffID, "repair must survive unassigned")
	assert.Nil(t, repair.StaffName)
}
