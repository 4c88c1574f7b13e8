package models

// Staff roles. "Not Assigned" is a real stored value for members without duties yet.
const (
	RoleManager            = "Manager"
	RoleTechnician         = "Technician"
	RoleInventoryAssociate = "Inventory Associate"
	RoleCashier            = "Cashier"
	RoleNotAssigned        = "Not Assigned"
)

// StaffMember represents an employee. IsAvailable is persisted as a 0/1
// integer; the staff repository owns that encoding and callers only ever
// see the boolean.
type StaffMember struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name" binding:"required"`
	Role        string  `json:"role" db:"role"`
	IsAvailable bool    `json:"is_available" db:"is_available"`
	Email       string  `json:"email" db:"email" binding:"required"`
	Phone       string  `json:"phone" db:"phone"`
	Picture     *string `json:"picture,omitempty" db:"picture"`
}

// IsValidStaffRole reports whether the given role is one of the known roles.
func IsValidStaffRole(role string) bool {
	switch role {
	case RoleManager, RoleTechnician, RoleInventoryAssociate, RoleCashier, RoleNotAssigned:
		return true
	default:
		return false
	}
}
