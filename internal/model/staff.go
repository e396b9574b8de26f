package model

// Staff availability statuses.
const (
	StaffAvailable   = "available"
	StaffBusy        = "busy"
	StaffOnEvent     = "on_event"
	StaffUnavailable = "unavailable"
)

// StaffStatuses lists every valid staff status.
var StaffStatuses = []string{StaffAvailable, StaffBusy, StaffOnEvent, StaffUnavailable}

// ValidStaffStatus reports whether s is one of the known staff statuses.
func ValidStaffStatus(s string) bool {
	for _, v := range StaffStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Staff is an employee who can be assigned to events. Email is unique.
// HourlyRateCents is the pay rate in integer cents; Rating is an average
// score maintained by the business, not derived by this service.
type Staff struct {
	ID              uint64  `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone,omitempty"`
	Role            string  `json:"role"`
	Specialty       string  `json:"specialty,omitempty"`
	HourlyRateCents int64   `json:"hourly_rate_cents"`
	Status          string  `json:"status"`
	Rating          float64 `json:"rating"`
	TotalEvents     int     `json:"total_events"`
	CreatedAt       string  `json:"created_at"`
}

// StaffAssignment links a staff member to an event they will work.
type StaffAssignment struct {
	ID         uint64 `json:"id"`
	EventID    uint64 `json:"event_id"`
	StaffID    uint64 `json:"staff_id"`
	AssignedAt string `json:"assigned_at"`
	Notes      string `json:"notes,omitempty"`
}
