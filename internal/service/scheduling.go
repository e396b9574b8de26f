// Package service holds the scheduling and analytics logic that sits between
// the HTTP handlers and the repositories.
package service

import "context"

// venueCounter is the slice of EventRepo the guard needs: counting
// non-cancelled events on a (venue, date) slot.
type venueCounter interface {
	CountActiveByVenueDate(ctx context.Context, venue, date string, excludeID uint64) (int, error)
}

// ScheduleGuard answers whether a venue is free on a calendar date. Venue
// matching is exact and case-sensitive, the calendar day is the unit of
// exclusivity (start/end times are ignored), and cancelled events do not
// block the slot.
//
// The guard alone cannot prevent two concurrent creates from both passing;
// EventRepo.Create and Update therefore repeat the check inside the insert
// transaction. The guard backs the read-only availability endpoint and
// pre-checks on updates.
type ScheduleGuard struct {
	events venueCounter
}

// NewScheduleGuard constructs a ScheduleGuard over the given event source.
func NewScheduleGuard(events venueCounter) *ScheduleGuard {
	return &ScheduleGuard{events: events}
}

// CheckVenueAvailable reports whether venue is free on date ("2006-01-02").
// excludeEventID, when non-zero, names an event to ignore; update requests
// pass the event's own ID so it does not conflict with itself.
func (g *ScheduleGuard) CheckVenueAvailable(ctx context.Context, venue, date string, excludeEventID uint64) (bool, error) {
	n, err := g.events.CountActiveByVenueDate(ctx, venue, date, excludeEventID)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}
