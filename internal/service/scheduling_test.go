package service

import (
	"context"
	"errors"
	"testing"

	"github.com/banquetpro/banquetpro-api/internal/model"
)

// fakeEventStore implements venueCounter and completedLister over an
// in-memory slice, mirroring the SQL predicates in EventRepo.
type fakeEventStore struct {
	events []model.Event
	err    error
}

func (f *fakeEventStore) CountActiveByVenueDate(_ context.Context, venue, date string, excludeID uint64) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	n := 0
	for _, e := range f.events {
		if e.Venue == venue && e.Date == date && e.Status != model.StatusCancelled && e.ID != excludeID {
			n++
		}
	}
	return n, nil
}

func (f *fakeEventStore) ListCompletedBetween(_ context.Context, start, end string) ([]model.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	// Lexicographic comparison is correct for "2006-01-02" strings.
	out := []model.Event{}
	for _, e := range f.events {
		if e.Status == model.StatusCompleted && e.Date >= start && e.Date <= end {
			out = append(out, e)
		}
	}
	return out, nil
}

func TestCheckVenueAvailable(t *testing.T) {
	store := &fakeEventStore{events: []model.Event{
		{ID: 1, Venue: "Grand Hall", Date: "2024-03-05", Status: model.StatusConfirmed},
		{ID: 2, Venue: "Grand Hall", Date: "2024-03-06", Status: model.StatusCancelled},
		{ID: 3, Venue: "Terrace", Date: "2024-03-05", Status: model.StatusPlanning},
	}}
	g := NewScheduleGuard(store)

	tests := []struct {
		name    string
		venue   string
		date    string
		exclude uint64
		want    bool
	}{
		{"occupied slot", "Grand Hall", "2024-03-05", 0, false},
		{"same venue other day", "Grand Hall", "2024-03-07", 0, true},
		{"cancelled event frees slot", "Grand Hall", "2024-03-06", 0, true},
		{"other venue same day", "Ballroom", "2024-03-05", 0, true},
		{"venue match is case-sensitive", "grand hall", "2024-03-05", 0, true},
		{"update excludes own event", "Grand Hall", "2024-03-05", 1, true},
		{"exclude does not hide other events", "Terrace", "2024-03-05", 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.CheckVenueAvailable(context.Background(), tt.venue, tt.date, tt.exclude)
			if err != nil {
				t.Fatalf("CheckVenueAvailable: %v", err)
			}
			if got != tt.want {
				t.Errorf("CheckVenueAvailable(%q, %q, %d) = %v, want %v",
					tt.venue, tt.date, tt.exclude, got, tt.want)
			}
		})
	}
}

func TestCheckVenueAvailableStoreError(t *testing.T) {
	wantErr := errors.New("db down")
	g := NewScheduleGuard(&fakeEventStore{err: wantErr})
	_, err := g.CheckVenueAvailable(context.Background(), "Grand Hall", "2024-03-05", 0)
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
}
