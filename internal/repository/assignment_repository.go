package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/banquetpro/banquetpro-api/internal/model"
)

// AssignmentRepo manages persistence for staff assignments, the link table
// between events and staff.
type AssignmentRepo struct {
	db *sql.DB
}

// NewAssignmentRepo constructs an AssignmentRepo with the given DB handle.
func NewAssignmentRepo(db *sql.DB) *AssignmentRepo {
	return &AssignmentRepo{db: db}
}

const assignmentColumns = `id, event_id, staff_id, assigned_at, COALESCE(notes, '')`

func scanAssignment(row interface{ Scan(...any) error }, a *model.StaffAssignment) error {
	return row.Scan(&a.ID, &a.EventID, &a.StaffID, &a.AssignedAt, &a.Notes)
}

// Create assigns a staff member to an event after verifying that both
// referenced rows exist. It returns ErrEventNotFound or ErrStaffNotFound
// when a reference is dangling.
func (r *AssignmentRepo) Create(ctx context.Context, a *model.StaffAssignment) (err error) {
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
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM events WHERE id = ?`, a.EventID).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrEventNotFound
		}
		return err
	}
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM staff WHERE id = ?`, a.StaffID).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrStaffNotFound
		}
		return err
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO staff_assignments (event_id, staff_id, notes) VALUES (?, ?, ?)`,
		a.EventID, a.StaffID, a.Notes,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	err = scanAssignment(tx.QueryRowContext(ctx,
		`SELECT `+assignmentColumns+` FROM staff_assignments WHERE id = ?`, a.ID), a)
	return err
}

// ListByEvent returns all assignments for the given event ordered by
// assignment time.
func (r *AssignmentRepo) ListByEvent(ctx context.Context, eventID uint64) ([]model.StaffAssignment, error) {
	const q = `SELECT ` + assignmentColumns + ` FROM staff_assignments
               WHERE event_id = ? ORDER BY assigned_at ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, q, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := []model.StaffAssignment{}
	for rows.Next() {
		var a model.StaffAssignment
		if err := scanAssignment(rows, &a); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, rows.Err()
}

// Delete removes an assignment, returning ErrAssignmentNotFound when the row
// does not exist.
func (r *AssignmentRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM staff_assignments WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}
