package permissions

import (
	"testing"

	"repair_shop_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestManagerWildcardGrantsEverything(t *testing.T) {
	for _, capability := range []string{
		ClientsManage, ProductsManage, StaffManage, RepairsManage,
		PurchasesCreate, HistoryView, DashboardView,
	} {
		assert.True(t, HasPermission(models.RoleManager, capability), capability)
	}
}

func TestRoleBoundaries(t *testing.T) {
	assert.True(t, HasPermission(models.RoleTechnician, RepairsManage))
	assert.False(t, HasPermission(models.RoleTechnician, ProductsManage))
	assert.False(t, HasPermission(models.RoleTechnician, StaffView))

	assert.True(t, HasPermission(models.RoleCashier, PurchasesCreate))
	assert.False(t, HasPermission(models.RoleCashier, ProductsManage))

	assert.True(t, HasPermission(models.RoleInventoryAssociate, ProductsManage))
	assert.False(t, HasPermission(models.RoleInventoryAssociate, ClientsView))
}

func TestNotAssignedAndUnknownRolesGetNothing(t *testing.T) {
	assert.False(t, HasPermission(models.RoleNotAssigned, DashboardView))
	assert.False(t, HasPermission("Janitor", DashboardView))
	assert.Empty(t, ForRole("Janitor"))
}

func TestAllCoversEveryRole(t *testing.T) {
	table := All()
	for _, role := range []string{
		models.RoleManager, models.RoleTechnician, models.RoleInventoryAssociate,
		models.RoleCashier, models.RoleNotAssigned,
	} {
		_, ok := table[role]
		assert.True(t, ok, role)
	}
}
