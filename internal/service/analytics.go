package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/banquetpro/banquetpro-api/internal/model"
)

// ErrInvalidRange is returned when the end date precedes the start date or a
// date fails to parse. Handlers translate it into a 400 response.
var ErrInvalidRange = errors.New("invalid date range")

// RevenueData is one calendar month of completed-event revenue.
type RevenueData struct {
	Month        string `json:"month"`
	RevenueCents int64  `json:"revenue_cents"`
	EventsCount  int    `json:"events_count"`
}

// EventTypeStats aggregates completed events sharing an event type.
// Percentage is the type's share of all completed events in range, rounded
// to two decimals.
type EventTypeStats struct {
	EventType    string  `json:"event_type"`
	Count        int     `json:"count"`
	RevenueCents int64   `json:"revenue_cents"`
	Percentage   float64 `json:"percentage"`
}

// Summary is the analytics response. AverageSatisfaction is always null:
// no satisfaction data is collected anywhere in the system, and emitting a
// fabricated number would be worse than an explicit absence.
type Summary struct {
	MonthlyRevenue      []RevenueData    `json:"monthly_revenue"`
	EventTypes          []EventTypeStats `json:"event_types"`
	TotalEvents         int              `json:"total_events"`
	TotalRevenueCents   int64            `json:"total_revenue_cents"`
	AverageSatisfaction *float64         `json:"average_satisfaction"`
}

// completedLister is the slice of EventRepo the aggregator needs: completed
// events with date inside [start, end] inclusive.
type completedLister interface {
	ListCompletedBetween(ctx context.Context, start, end string) ([]model.Event, error)
}

// Analytics buckets completed events by calendar month and by event type
// over a date range. All revenue figures are integer cents summed over the
// same range-filtered selection, so the totals always reconcile with the
// buckets.
type Analytics struct {
	events completedLister
	now    func() time.Time // test hook for the end-date default
}

// NewAnalytics constructs an Analytics service over the given event source.
func NewAnalytics(events completedLister) *Analytics {
	return &Analytics{events: events, now: time.Now}
}

// Summarize aggregates completed events with date in [startStr, endStr],
// both "2006-01-02". When endStr is empty the current UTC date is used; when
// startStr is empty it defaults to the end date minus 365 days. Returns
// ErrInvalidRange for malformed dates or end before start.
func (a *Analytics) Summarize(ctx context.Context, startStr, endStr string) (*Summary, error) {
	end := a.now().UTC().Truncate(24 * time.Hour)
	if endStr != "" {
		t, err := time.Parse(model.DateLayout, endStr)
		if err != nil {
			return nil, fmt.Errorf("%w: bad end_date %q", ErrInvalidRange, endStr)
		}
		end = t
	}
	start := end.AddDate(0, 0, -365)
	if startStr != "" {
		t, err := time.Parse(model.DateLayout, startStr)
		if err != nil {
			return nil, fmt.Errorf("%w: bad start_date %q", ErrInvalidRange, startStr)
		}
		start = t
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end_date before start_date", ErrInvalidRange)
	}

	events, err := a.events.ListCompletedBetween(ctx, start.Format(model.DateLayout), end.Format(model.DateLayout))
	if err != nil {
		return nil, err
	}

	// Parse every event date once; the repository stores them in DateLayout.
	dates := make([]time.Time, len(events))
	for i, e := range events {
		d, err := time.Parse(model.DateLayout, e.Date)
		if err != nil {
			return nil, fmt.Errorf("event %d has malformed date %q: %w", e.ID, e.Date, err)
		}
		dates[i] = d
	}

	s := &Summary{
		MonthlyRevenue: monthlyBuckets(events, dates, start, end),
		EventTypes:     typeBuckets(events),
		TotalEvents:    len(events),
	}
	for _, e := range events {
		s.TotalRevenueCents += e.BudgetCents
	}
	return s, nil
}

// monthlyBuckets walks every calendar month from start's month through end's
// month inclusive, emitting one bucket per month in chronological order.
// Months with no completed events appear with zero count and revenue.
func monthlyBuckets(events []model.Event, dates []time.Time, start, end time.Time) []RevenueData {
	first := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)

	buckets := []RevenueData{}
	for cur := first; !cur.After(last); cur = cur.AddDate(0, 1, 0) {
		b := RevenueData{Month: cur.Format("January 2006")}
		for i, e := range events {
			if dates[i].Year() == cur.Year() && dates[i].Month() == cur.Month() {
				b.EventsCount++
				b.RevenueCents += e.BudgetCents
			}
		}
		buckets = append(buckets, b)
	}
	return buckets
}

// typeBuckets groups events by event_type, sorted ascending by type so the
// output is deterministic. Percentages are zero when there are no events.
func typeBuckets(events []model.Event) []EventTypeStats {
	byType := map[string]*EventTypeStats{}
	for _, e := range events {
		st, ok := byType[e.EventType]
		if !ok {
			st = &EventTypeStats{EventType: e.EventType}
			byType[e.EventType] = st
		}
		st.Count++
		st.RevenueCents += e.BudgetCents
	}

	types := make([]string, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	sort.Strings(types)

	total := len(events)
	stats := []EventTypeStats{}
	for _, t := range types {
		st := *byType[t]
		if total > 0 {
			st.Percentage = round2(float64(st.Count) / float64(total) * 100)
		}
		stats = append(stats, st)
	}
	return stats
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
