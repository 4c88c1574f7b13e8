// Package permissions holds the single role-to-capability table consulted by
// the HTTP authorization middleware and exported to the UI so both gates
// enforce the same policy.
package permissions

import "repair_shop_backend/internal/models"

// Wildcard grants every capability.
const Wildcard = "*"

// Capability strings checked at the route boundary.
const (
	ClientsView     = "clients:view"
	ClientsManage   = "clients:manage"
	ProductsView    = "products:view"
	ProductsManage  = "products:manage"
	StaffView       = "staff:view"
	StaffManage     = "staff:manage"
	RepairsView     = "repairs:view"
	RepairsManage   = "repairs:manage"
	PurchasesCreate = "purchases:create"
	PurchasesView   = "purchases:view"
	HistoryView     = "history:view"
	DashboardView   = "dashboard:view"
)

// rolePermissions maps each staff role to its capability set. Managers hold
// the wildcard; "Not Assigned" members can sign in but do nothing else.
var rolePermissions = map[string][]string{
	models.RoleManager: {Wildcard},
	models.RoleTechnician: {
		ClientsView, RepairsView, RepairsManage, HistoryView, DashboardView,
	},
	models.RoleInventoryAssociate: {
		ProductsView, ProductsManage, DashboardView,
	},
	models.RoleCashier: {
		ClientsView, ClientsManage, ProductsView,
		PurchasesCreate, PurchasesView, HistoryView, DashboardView,
	},
	models.RoleNotAssigned: {},
}

// ForRole returns the capability list granted to a role. Unknown roles get
// nothing.
func ForRole(role string) []string {
	perms, ok := rolePermissions[role]
	if !ok {
		return []string{}
	}
	out := make([]string, len(perms))
	copy(out, perms)
	return out
}

// HasPermission reports whether the role grants the given capability, either
// directly or through the wildcard.
func HasPermission(role, capability string) bool {
	for _, p := range rolePermissions[role] {
		if p == Wildcard || p == capability {
			return true
		}
	}
	return false
}

// All returns the full policy table, for export to the UI gate.
func All() map[string][]string {
	out := make(map[string][]string, len(rolePermissions))
	for role := range rolePermissions {
		out[role] = ForRole(role)
	}
	return out
}
