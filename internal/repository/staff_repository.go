package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/banquetpro/banquetpro-api/internal/model"
)

// StaffRepo manages persistence for staff members.
type StaffRepo struct {
	db *sql.DB
}

// NewStaffRepo constructs a StaffRepo with the given DB handle.
func NewStaffRepo(db *sql.DB) *StaffRepo {
	return &StaffRepo{db: db}
}

const staffColumns = `id, name, email, COALESCE(phone, ''), role, COALESCE(specialty, ''),
       hourly_rate_cents, status, rating, total_events, created_at`

func scanStaff(row interface{ Scan(...any) error }, s *model.Staff) error {
	return row.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Role, &s.Specialty,
		&s.HourlyRateCents, &s.Status, &s.Rating, &s.TotalEvents, &s.CreatedAt)
}

// Create inserts a new staff member. Status defaults to "available" in the
// DB. A reused email address yields ErrDuplicateEmail.
func (r *StaffRepo) Create(ctx context.Context, s *model.Staff) error {
	const q = `INSERT INTO staff (name, email, phone, role, specialty, hourly_rate_cents)
               VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.Name, s.Email, s.Phone, s.Role, s.Specialty, s.HourlyRateCents)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return scanStaff(r.db.QueryRowContext(ctx, `SELECT `+staffColumns+` FROM staff WHERE id = ?`, s.ID), s)
}

// GetByID retrieves a staff member by ID, returning ErrStaffNotFound when absent.
func (r *StaffRepo) GetByID(ctx context.Context, id uint64) (*model.Staff, error) {
	var s model.Staff
	err := scanStaff(r.db.QueryRowContext(ctx, `SELECT `+staffColumns+` FROM staff WHERE id = ?`, id), &s)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStaffNotFound
		}
		return nil, err
	}
	return &s, nil
}

// List returns staff ordered by name, optionally filtered by status.
func (r *StaffRepo) List(ctx context.Context, status string) ([]model.Staff, error) {
	q := `SELECT ` + staffColumns + ` FROM staff`
	args := []any{}
	if status != "" {
		q += ` WHERE status = ?`
		args = append(args, status)
	}
	q += ` ORDER BY name ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := []model.Staff{}
	for rows.Next() {
		var s model.Staff
		if err := scanStaff(rows, &s); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

// Update rewrites all mutable fields of the staff member.
func (r *StaffRepo) Update(ctx context.Context, s *model.Staff) error {
	const q = `UPDATE staff SET name = ?, email = ?, phone = ?, role = ?, specialty = ?,
                   hourly_rate_cents = ?, status = ?, rating = ?, total_events = ?
               WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, s.Name, s.Email, s.Phone, s.Role, s.Specialty,
		s.HourlyRateCents, s.Status, s.Rating, s.TotalEvents, s.ID)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var one int
		if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM staff WHERE id = ?`, s.ID).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrStaffNotFound
			}
			return err
		}
	}
	return scanStaff(r.db.QueryRowContext(ctx, `SELECT `+staffColumns+` FROM staff WHERE id = ?`, s.ID), s)
}

// Delete removes a staff member and their assignments in one transaction.
func (r *StaffRepo) Delete(ctx context.Context, id uint64) (err error) {
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
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM staff WHERE id = ?`, id).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrStaffNotFound
		}
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM staff_assignments WHERE staff_id = ?`, id); err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `DELETE FROM staff WHERE id = ?`, id)
	return err
}
