// Package queue defines message payloads exchanged over the message broker
// together with their publisher and background consumer.
package queue

// StatusChangedMessage is published when an event moves into the confirmed or
// completed status. It carries enough information for downstream consumers to
// log or notify without querying the primary database.
type StatusChangedMessage struct {
	EventID     uint64 `json:"event_id"`
	Name        string `json:"name"`
	ClientID    uint64 `json:"client_id"`
	EventType   string `json:"event_type"`
	Venue       string `json:"venue"`
	Date        string `json:"date"`
	OldStatus   string `json:"old_status"`
	NewStatus   string `json:"new_status"`
	BudgetCents int64  `json:"budget_cents"`
	ChangedAt   string `json:"changed_at"`
}
