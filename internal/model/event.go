package model

// Layouts for the date and timestamp strings stored on records. All values
// are UTC; DateLayout matches DATE columns, TimeLayout matches DATETIME.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "2006-01-02 15:04:05"
)

// Event statuses. There is no enforced transition graph: an update request may
// move an event from any status to any other. The only status with special
// meaning is StatusCancelled, which releases the event's (venue, date) slot.
const (
	StatusPlanning      = "planning"
	StatusConfirmed     = "confirmed"
	StatusInPreparation = "in_preparation"
	StatusCompleted     = "completed"
	StatusCancelled     = "cancelled"
)

// EventStatuses lists every valid event status in declaration order.
var EventStatuses = []string{
	StatusPlanning,
	StatusConfirmed,
	StatusInPreparation,
	StatusCompleted,
	StatusCancelled,
}

// ValidEventStatus reports whether s is one of the known event statuses.
func ValidEventStatus(s string) bool {
	for _, v := range EventStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Event is a booked banquet or celebration tied to a client and a venue.
// A venue accepts at most one non-cancelled event per calendar day.
//
// Date is the calendar day of the event in "2006-01-02" form; StartTime and
// EndTime are full timestamps in DB format "2006-01-02 15:04:05" (UTC). The
// day, not the time window, is the unit of venue exclusivity. BudgetCents
// keeps the agreed budget in integer cents so revenue sums stay exact.
type Event struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	ClientID    uint64 `json:"client_id"`
	EventType   string `json:"event_type"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Venue       string `json:"venue"`
	GuestsCount int    `json:"guests_count"`
	BudgetCents int64  `json:"budget_cents"`
	Status      string `json:"status"`
	Notes       string `json:"notes,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
