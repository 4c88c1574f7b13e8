package services

import (
	"database/sql"
	"testing"

	"repair_shop_backend/internal/models"
	"repair_shop_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepairService(t *testing.T) (RepairService, *sql.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewRepairService(repositories.NewRepairRepository(db), db), db
}

func TestRepairService_CreateWithDefaults(t *testing.T) {
	svc, db := newRepairService(t)

	clientID := createTestClient(t, db, "Amir", "ID-001")

	repair, err := svc.CreateRepair(RepairRequest{
		Description: "cracked screen",
		ClientID:    clientID,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusNotStarted, repair.Status)
	assert.Equal(t, models.PriorityLow, repair.Priority)
	assert.False(t, repair.RequestDate.IsZero())
	require.NotNil(t, repair.ClientName)
	assert.Equal(t, "Amir", *repair.ClientName)
}

func TestRepairService_ZeroStaffIDMeansUnassigned(t *testing.T) {
	svc, db := newRepairService(t)

	clientID := createTestClient(t, db, "Amir", "ID-001")
	zero := int64(0)

	repair, err := svc.CreateRepair(RepairRequest{
		Description: "cracked screen",
		ClientID:    clientID,
		StaffID:     &zero,
	})
	require.NoError(t, err, "a zero staff id must not trip the staff foreign key")
	assert.Nil(t, repair.StaffID)
	assert.Nil(t, repair.StaffName)
}

func TestRepairService_InvalidStatusAndPriority(t *testing.T) {
	svc, db := newRepairService(t)

	clientID := createTestClient(t, db, "Amir", "ID-001")

	_, err := svc.CreateRepair(RepairRequest{
		Description: "cracked screen",
		ClientID:    clientID,
		Status:      "Waiting For Parts",
	})
	require.ErrorIs(t, err, ErrInvalidRepairStatus)

	_, err = svc.CreateRepair(RepairRequest{
		Description: "cracked screen",
		ClientID:    clientID,
		Priority:    "Critical",
	})
	require.ErrorIs(t, err, ErrInvalidRepairPriority)
}

func TestRepairService_MissingReferences(t *testing.T) {
	svc, db := newRepairService(t)

	_, err := svc.CreateRepair(RepairRequest{
		Description: "cracked screen",
		ClientID:    999,
	})
	require.ErrorIs(t, err, ErrRepairClientMissing)

	clientID := createTestClient(t, db, "Amir", "ID-001")
	missingStaff := int64(777)
	_, err = svc.CreateRepair(RepairRequest{
		Description: "cracked screen",
		ClientID:    clientID,
		StaffID:     &missingStaff,
	})
	require.ErrorIs(t, err, ErrRepairStaffMissing)
}

func TestRepairService_UpdatePreservesRequestDate(t *testing.T) {
	svc, db := newRepairService(t)

	clientID := createTestClient(t, db, "Amir", "ID-001")

	created, err := svc.CreateRepair(RepairRequest{
		Description: "cracked screen",
		ClientID:    clientID,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateRepair(created.ID, RepairRequest{
		Description: "cracked screen and battery swap",
		Status:      models.StatusInProgress,
		Priority:    models.PriorityHigh,
		ClientID:    clientID,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, updated.Status)
	assert.Equal(t, created.RequestDate.Unix(), updated.RequestDate.Unix(), "request date marks creation")
}

func TestRepairService_BadDueDate(t *testing.T) {
	svc, db := newRepairService(t)

	clientID := createTestClient(t, db, "Amir", "ID-001")
	badDate := "01/05/2025"

	_, err := svc.CreateRepair(RepairRequest{
		Description: "cracked screen",
		ClientID:    clientID,
		DueDate:     &badDate,
	})
	require.ErrorIs(t, err, ErrValidation)
}
