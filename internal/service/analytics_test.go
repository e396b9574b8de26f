package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/banquetpro/banquetpro-api/internal/model"
)

func completed(id uint64, venue, date, eventType string, budgetCents int64) model.Event {
	return model.Event{
		ID: id, Venue: venue, Date: date, EventType: eventType,
		BudgetCents: budgetCents, Status: model.StatusCompleted,
	}
}

func TestSummarizeTwoMonths(t *testing.T) {
	store := &fakeEventStore{events: []model.Event{
		completed(1, "VenueX", "2024-03-05", "Wedding", 100000),
		completed(2, "VenueX", "2024-03-20", "Wedding", 200000),
		completed(3, "VenueY", "2024-04-01", "Corporate", 50000),
		// Outside range or not completed: must not count anywhere.
		completed(4, "VenueZ", "2024-05-10", "Wedding", 999999),
		{ID: 5, Venue: "VenueX", Date: "2024-03-11", EventType: "Wedding", BudgetCents: 77700, Status: model.StatusConfirmed},
	}}
	a := NewAnalytics(store)

	s, err := a.Summarize(context.Background(), "2024-03-01", "2024-04-30")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	wantMonthly := []RevenueData{
		{Month: "March 2024", RevenueCents: 300000, EventsCount: 2},
		{Month: "April 2024", RevenueCents: 50000, EventsCount: 1},
	}
	if len(s.MonthlyRevenue) != len(wantMonthly) {
		t.Fatalf("monthly buckets = %d, want %d", len(s.MonthlyRevenue), len(wantMonthly))
	}
	for i, want := range wantMonthly {
		if s.MonthlyRevenue[i] != want {
			t.Errorf("monthly[%d] = %+v, want %+v", i, s.MonthlyRevenue[i], want)
		}
	}

	wantTypes := []EventTypeStats{
		{EventType: "Corporate", Count: 1, RevenueCents: 50000, Percentage: 33.33},
		{EventType: "Wedding", Count: 2, RevenueCents: 300000, Percentage: 66.67},
	}
	if len(s.EventTypes) != len(wantTypes) {
		t.Fatalf("type buckets = %d, want %d", len(s.EventTypes), len(wantTypes))
	}
	for i, want := range wantTypes {
		if s.EventTypes[i] != want {
			t.Errorf("types[%d] = %+v, want %+v", i, s.EventTypes[i], want)
		}
	}

	if s.TotalEvents != 3 {
		t.Errorf("TotalEvents = %d, want 3", s.TotalEvents)
	}
	if s.TotalRevenueCents != 350000 {
		t.Errorf("TotalRevenueCents = %d, want 350000", s.TotalRevenueCents)
	}
	if s.AverageSatisfaction != nil {
		t.Errorf("AverageSatisfaction = %v, want nil", *s.AverageSatisfaction)
	}
}

func TestSummarizeSingleMonth(t *testing.T) {
	store := &fakeEventStore{events: []model.Event{
		completed(1, "VenueX", "2024-03-05", "Wedding", 1000),
		completed(2, "VenueY", "2024-03-28", "Corporate", 2000),
	}}
	a := NewAnalytics(store)

	s, err := a.Summarize(context.Background(), "2024-03-01", "2024-03-31")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if len(s.MonthlyRevenue) != 1 {
		t.Fatalf("monthly buckets = %d, want 1", len(s.MonthlyRevenue))
	}
	if got := s.MonthlyRevenue[0]; got.Month != "March 2024" || got.EventsCount != 2 || got.RevenueCents != 3000 {
		t.Errorf("bucket = %+v", got)
	}
}

func TestSummarizeZeroCountMonths(t *testing.T) {
	store := &fakeEventStore{events: []model.Event{
		completed(1, "VenueX", "2024-01-15", "Wedding", 1000),
		completed(2, "VenueX", "2024-06-15", "Wedding", 1000),
	}}
	a := NewAnalytics(store)

	// Range spans Jan..Jun even though start/end days are mid-month.
	s, err := a.Summarize(context.Background(), "2024-01-10", "2024-06-20")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if len(s.MonthlyRevenue) != 6 {
		t.Fatalf("monthly buckets = %d, want 6", len(s.MonthlyRevenue))
	}
	for i, b := range s.MonthlyRevenue[1:5] {
		if b.EventsCount != 0 || b.RevenueCents != 0 {
			t.Errorf("bucket %d (%s) = %+v, want zero", i+1, b.Month, b)
		}
	}
	if s.MonthlyRevenue[0].Month != "January 2024" || s.MonthlyRevenue[5].Month != "June 2024" {
		t.Errorf("bucket order wrong: first=%s last=%s", s.MonthlyRevenue[0].Month, s.MonthlyRevenue[5].Month)
	}
}

func TestSummarizeNoEvents(t *testing.T) {
	a := NewAnalytics(&fakeEventStore{})
	s, err := a.Summarize(context.Background(), "2024-03-01", "2024-03-31")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if s.TotalEvents != 0 || s.TotalRevenueCents != 0 {
		t.Errorf("totals = %d/%d, want 0/0", s.TotalEvents, s.TotalRevenueCents)
	}
	if len(s.EventTypes) != 0 {
		t.Errorf("EventTypes = %+v, want empty", s.EventTypes)
	}
	// Still one bucket for the single month in range, with zero values.
	if len(s.MonthlyRevenue) != 1 || s.MonthlyRevenue[0].EventsCount != 0 {
		t.Errorf("MonthlyRevenue = %+v", s.MonthlyRevenue)
	}
}

func TestSummarizePercentagesReconcile(t *testing.T) {
	store := &fakeEventStore{events: []model.Event{
		completed(1, "A", "2024-03-01", "Wedding", 100),
		completed(2, "B", "2024-03-02", "Wedding", 100),
		completed(3, "C", "2024-03-03", "Corporate", 100),
		completed(4, "D", "2024-03-04", "Birthday", 100),
		completed(5, "E", "2024-03-05", "Birthday", 100),
		completed(6, "F", "2024-03-06", "Birthday", 100),
		completed(7, "G", "2024-03-07", "Gala", 100),
	}}
	a := NewAnalytics(store)

	s, err := a.Summarize(context.Background(), "2024-03-01", "2024-03-31")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	counts, pct := 0, 0.0
	for _, st := range s.EventTypes {
		counts += st.Count
		pct += st.Percentage
	}
	if counts != s.TotalEvents {
		t.Errorf("sum of type counts = %d, want %d", counts, s.TotalEvents)
	}
	if math.Abs(pct-100) > 0.05 {
		t.Errorf("sum of percentages = %v, want ~100", pct)
	}
}

func TestSummarizeDefaults(t *testing.T) {
	store := &fakeEventStore{events: []model.Event{
		completed(1, "VenueX", "2024-06-15", "Wedding", 1000),
		completed(2, "VenueX", "2023-06-01", "Wedding", 1000), // more than 365 days back
	}}
	a := NewAnalytics(store)
	a.now = func() time.Time { return time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC) }

	s, err := a.Summarize(context.Background(), "", "")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if s.TotalEvents != 1 {
		t.Errorf("TotalEvents = %d, want 1 (365-day default window)", s.TotalEvents)
	}
	if last := s.MonthlyRevenue[len(s.MonthlyRevenue)-1]; last.Month != "June 2024" {
		t.Errorf("last bucket = %s, want June 2024", last.Month)
	}
}

func TestSummarizeInvalidRange(t *testing.T) {
	a := NewAnalytics(&fakeEventStore{})
	tests := []struct {
		name       string
		start, end string
	}{
		{"end before start", "2024-04-01", "2024-03-01"},
		{"malformed start", "03/01/2024", "2024-04-01"},
		{"malformed end", "2024-03-01", "yesterday"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := a.Summarize(context.Background(), tt.start, tt.end); !errors.Is(err, ErrInvalidRange) {
				t.Errorf("err = %v, want ErrInvalidRange", err)
			}
		})
	}
}
