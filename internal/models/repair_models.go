package models

import "time"

// Repair work order statuses.
const (
	StatusNotStarted = "Not Started"
	StatusInProgress = "In Progress"
	StatusOnHold     = "On Hold"
	StatusCompleted  = "Completed"
)

// Repair priorities.
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
	PriorityUrgent = "Urgent"
)

// Repair represents a repair work order. ClientName, ClientAddress and
// StaffName are read-time join results, never stored on the repairs row.
type Repair struct {
	ID          int64      `json:"id" db:"id"`
	Description string     `json:"description" db:"description" binding:"required"`
	Status      string     `json:"status" db:"status"`
	Priority    string     `json:"priority" db:"priority"`
	RequestDate time.Time  `json:"request_date" db:"request_date"`
	DueDate     *time.Time `json:"due_date,omitempty" db:"due_date"`
	TotalPrice  *float64   `json:"total_price,omitempty" db:"total_price"`
	ClientID    int64      `json:"client_id" db:"client_id"`
	StaffID     *int64     `json:"staff_id,omitempty" db:"staff_id"`

	ClientName    *string `json:"client_name,omitempty"`
	ClientAddress *string `json:"client_address,omitempty"`
	StaffName     *string `json:"staff_name,omitempty"`
}

// IsValidRepairStatus reports whether the given status is a known work order status.
func IsValidRepairStatus(status string) bool {
	switch status {
	case StatusNotStarted, StatusInProgress, StatusOnHold, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsValidRepairPriority reports whether the given priority is a known priority.
func IsValidRepairPriority(priority string) bool {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}
