package models

type UserRole string
type SwapRequestStatus string
type AdminMessageType string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"

	// Swap request lifecycle. Pending is the only initial state; accepted is
	// the only non-terminal state after it.
	SwapStatusPending   SwapRequestStatus = "pending"
	SwapStatusAccepted  SwapRequestStatus = "accepted"
	SwapStatusRejected  SwapRequestStatus = "rejected"
	SwapStatusCompleted SwapRequestStatus = "completed"
	SwapStatusCancelled SwapRequestStatus = "cancelled"

	AdminMessageInfo        AdminMessageType = "info"
	AdminMessageWarning     AdminMessageType = "warning"
	AdminMessageMaintenance AdminMessageType = "maintenance"
	AdminMessageFeature     AdminMessageType = "feature"
)

// Availability slots a user can pick. Stored verbatim; no other values are
// accepted.
const (
	AvailabilityMornings   = "Mornings"
	AvailabilityAfternoons = "Afternoons"
	AvailabilityEvenings   = "Evenings"
	AvailabilityWeekdays   = "Weekdays"
	AvailabilityWeekends   = "Weekends"
)

// AvailabilitySlots lists every legal availability value.
var AvailabilitySlots = []string{
	AvailabilityMornings,
	AvailabilityAfternoons,
	AvailabilityEvenings,
	AvailabilityWeekdays,
	AvailabilityWeekends,
}

// IsTerminal reports whether no further transition is allowed from s.
func (s SwapRequestStatus) IsTerminal() bool {
	switch s {
	case SwapStatusRejected, SwapStatusCompleted, SwapStatusCancelled:
		return true
	}
	return false
}

// ValidSwapStatus reports whether s is one of the five lifecycle states.
func ValidSwapStatus(s SwapRequestStatus) bool {
	switch s {
	case SwapStatusPending, SwapStatusAccepted, SwapStatusRejected,
		SwapStatusCompleted, SwapStatusCancelled:
		return true
	}
	return false
}

// ValidAdminMessageType reports whether t is a known broadcast type.
func ValidAdminMessageType(t AdminMessageType) bool {
	switch t {
	case AdminMessageInfo, AdminMessageWarning, AdminMessageMaintenance, AdminMessageFeature:
		return true
	}
	return false
}
