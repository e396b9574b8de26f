package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/banquetpro/banquetpro-api/internal/metrics"
	"github.com/banquetpro/banquetpro-api/internal/model"
)

// EventRepo manages persistence for events. Creation and updates enforce the
// venue exclusivity rule inside a transaction: the conflicting rows are
// locked with SELECT ... FOR UPDATE before the write, so two concurrent
// requests for the same (venue, date) cannot both land.
type EventRepo struct {
	db *sql.DB
}

// NewEventRepo constructs an EventRepo with the given DB handle.
func NewEventRepo(db *sql.DB) *EventRepo {
	return &EventRepo{db: db}
}

// DB exposes the underlying sql.DB for callers that need transactions
// spanning multiple repositories.
func (r *EventRepo) DB() *sql.DB {
	return r.db
}

const eventColumns = `id, name, client_id, event_type, date, start_time, end_time, venue,
       guests_count, budget_cents, status, COALESCE(notes, ''), created_at, updated_at`

func scanEvent(row interface{ Scan(...any) error }, e *model.Event) error {
	return row.Scan(
		&e.ID, &e.Name, &e.ClientID, &e.EventType, &e.Date, &e.StartTime, &e.EndTime,
		&e.Venue, &e.GuestsCount, &e.BudgetCents, &e.Status, &e.Notes, &e.CreatedAt, &e.UpdatedAt,
	)
}

// lockConflicting locks and counts non-cancelled events occupying the given
// (venue, date) slot inside tx, excluding excludeID when non-zero. Venue and
// date comparison is exact; start/end times are never consulted.
func lockConflicting(ctx context.Context, tx *sql.Tx, venue, date string, excludeID uint64) (int, error) {
	const q = `SELECT COUNT(*) FROM events
               WHERE venue = ? AND date = ? AND status <> 'cancelled' AND id <> ?
               FOR UPDATE`
	var n int
	if err := tx.QueryRowContext(ctx, q, venue, date, excludeID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Create inserts a new event after verifying that the referenced client
// exists and that the venue is free on the requested date. It returns
// ErrClientNotFound or ErrVenueUnavailable accordingly. On success the
// generated ID and DB-default fields (status, timestamps) are populated on e.
func (r *EventRepo) Create(ctx context.Context, e *model.Event) (err error) {
	defer metrics.TrackDBOperation("event_create")(time.Now())

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	var one int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM clients WHERE id = ?`, e.ClientID).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrClientNotFound
		}
		return err
	}

	n, err := lockConflicting(ctx, tx, e.Venue, e.Date, 0)
	if err != nil {
		return err
	}
	if n > 0 {
		metrics.VenueConflictsTotal.Inc()
		err = ErrVenueUnavailable
		return err
	}

	const q = `INSERT INTO events
               (name, client_id, event_type, date, start_time, end_time, venue, guests_count, budget_cents, notes)
               VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q,
		e.Name, e.ClientID, e.EventType, e.Date, e.StartTime, e.EndTime,
		e.Venue, e.GuestsCount, e.BudgetCents, e.Notes,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = uint64(id)
	// Re-select to pick up DB defaults (status, created_at, updated_at).
	err = scanEvent(tx.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE id = ?`, e.ID), e)
	return err
}

// GetByID retrieves an event by its ID. It returns ErrEventNotFound when
// there is no matching row.
func (r *EventRepo) GetByID(ctx context.Context, id uint64) (*model.Event, error) {
	var e model.Event
	err := scanEvent(r.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE id = ?`, id), &e)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &e, nil
}

// List returns events ordered by date ascending, optionally filtered by
// status and/or event type. Empty filter strings match everything. When no
// events exist it returns an empty slice and nil error.
func (r *EventRepo) List(ctx context.Context, status, eventType string) ([]model.Event, error) {
	defer metrics.TrackDBOperation("event_list")(time.Now())

	q := `SELECT ` + eventColumns + ` FROM events WHERE 1=1`
	args := []any{}
	if status != "" {
		q += ` AND status = ?`
		args = append(args, status)
	}
	if eventType != "" {
		q += ` AND event_type = ?`
		args = append(args, eventType)
	}
	q += ` ORDER BY date ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := []model.Event{}
	for rows.Next() {
		var e model.Event
		if err := scanEvent(rows, &e); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

// Update rewrites all mutable fields of the event. Unless the new status is
// cancelled, the venue slot is re-checked (excluding the event itself) inside
// the same transaction, so moving or reviving an event cannot double-book a
// venue. Returns ErrEventNotFound when the row does not exist.
func (r *EventRepo) Update(ctx context.Context, e *model.Event) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	if e.Status != model.StatusCancelled {
		var n int
		n, err = lockConflicting(ctx, tx, e.Venue, e.Date, e.ID)
		if err != nil {
			return err
		}
		if n > 0 {
			metrics.VenueConflictsTotal.Inc()
			err = ErrVenueUnavailable
			return err
		}
	}

	const q = `UPDATE events
               SET name = ?, event_type = ?, date = ?, start_time = ?, end_time = ?, venue = ?,
                   guests_count = ?, budget_cents = ?, status = ?, notes = ?, updated_at = CURRENT_TIMESTAMP
               WHERE id = ?`
	res, err := tx.ExecContext(ctx, q,
		e.Name, e.EventType, e.Date, e.StartTime, e.EndTime, e.Venue,
		e.GuestsCount, e.BudgetCents, e.Status, e.Notes, e.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Either the row is gone or the values were already identical.
		var one int
		err = tx.QueryRowContext(ctx, `SELECT 1 FROM events WHERE id = ?`, e.ID).Scan(&one)
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrEventNotFound
		}
		if err != nil {
			return err
		}
	}
	err = scanEvent(tx.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE id = ?`, e.ID), e)
	return err
}

// Delete removes an event together with its staff assignments. The deletion
// runs in a transaction so no partial cleanup occurs. Returns
// ErrEventNotFound when the event does not exist.
func (r *EventRepo) Delete(ctx context.Context, id uint64) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	var one int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM events WHERE id = ?`, id).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrEventNotFound
		}
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM staff_assignments WHERE event_id = ?`, id); err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	return err
}

// CountActiveByVenueDate counts non-cancelled events occupying the given
// (venue, date) slot, excluding excludeID when non-zero. It backs the
// read-only availability endpoint and the scheduling guard.
func (r *EventRepo) CountActiveByVenueDate(ctx context.Context, venue, date string, excludeID uint64) (int, error) {
	const q = `SELECT COUNT(*) FROM events
               WHERE venue = ? AND date = ? AND status <> 'cancelled' AND id <> ?`
	var n int
	if err := r.db.QueryRowContext(ctx, q, venue, date, excludeID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// ListCompletedBetween returns completed events whose date lies inside
// [start, end] inclusive, ordered by date ascending. Dates use DateLayout.
func (r *EventRepo) ListCompletedBetween(ctx context.Context, start, end string) ([]model.Event, error) {
	defer metrics.TrackDBOperation("event_completed_range")(time.Now())

	const q = `SELECT ` + eventColumns + ` FROM events
               WHERE status = 'completed' AND date >= ? AND date <= ?
               ORDER BY date ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, q, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := []model.Event{}
	for rows.Next() {
		var e model.Event
		if err := scanEvent(rows, &e); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	return result, rows.Err()
}
