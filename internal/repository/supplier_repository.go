package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/banquetpro/banquetpro-api/internal/model"
)

// SupplierRepo manages persistence for suppliers.
type SupplierRepo struct {
	db *sql.DB
}

// NewSupplierRepo constructs a SupplierRepo with the given DB handle.
func NewSupplierRepo(db *sql.DB) *SupplierRepo {
	return &SupplierRepo{db: db}
}

const supplierColumns = `id, name, COALESCE(contact_person, ''), COALESCE(email, ''),
       COALESCE(phone, ''), COALESCE(address, ''), COALESCE(category, ''), rating, is_active, created_at`

func scanSupplier(row interface{ Scan(...any) error }, s *model.Supplier) error {
	return row.Scan(&s.ID, &s.Name, &s.ContactPerson, &s.Email, &s.Phone, &s.Address,
		&s.Category, &s.Rating, &s.IsActive, &s.CreatedAt)
}

// Create inserts a new supplier and assigns the generated ID back to s.
func (r *SupplierRepo) Create(ctx context.Context, s *model.Supplier) error {
	const q = `INSERT INTO suppliers (name, contact_person, email, phone, address, category, is_active)
               VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.Name, s.ContactPerson, s.Email, s.Phone, s.Address, s.Category, s.IsActive)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return scanSupplier(r.db.QueryRowContext(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE id = ?`, s.ID), s)
}

// GetByID retrieves a supplier by ID, returning ErrSupplierNotFound when absent.
func (r *SupplierRepo) GetByID(ctx context.Context, id uint64) (*model.Supplier, error) {
	var s model.Supplier
	err := scanSupplier(r.db.QueryRowContext(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE id = ?`, id), &s)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSupplierNotFound
		}
		return nil, err
	}
	return &s, nil
}

// List returns suppliers ordered by name. Category filters exactly when
// non-empty; activeOnly restricts the listing to active suppliers.
func (r *SupplierRepo) List(ctx context.Context, category string, activeOnly bool) ([]model.Supplier, error) {
	q := `SELECT ` + supplierColumns + ` FROM suppliers WHERE 1=1`
	args := []any{}
	if category != "" {
		q += ` AND category = ?`
		args = append(args, category)
	}
	if activeOnly {
		q += ` AND is_active = TRUE`
	}
	q += ` ORDER BY name ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := []model.Supplier{}
	for rows.Next() {
		var s model.Supplier
		if err := scanSupplier(rows, &s); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

// Update rewrites all mutable fields of the supplier.
func (r *SupplierRepo) Update(ctx context.Context, s *model.Supplier) error {
	const q = `UPDATE suppliers SET name = ?, contact_person = ?, email = ?, phone = ?, address = ?,
                   category = ?, rating = ?, is_active = ?
               WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, s.Name, s.ContactPerson, s.Email, s.Phone, s.Address,
		s.Category, s.Rating, s.IsActive, s.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var one int
		if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM suppliers WHERE id = ?`, s.ID).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrSupplierNotFound
			}
			return err
		}
	}
	return scanSupplier(r.db.QueryRowContext(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE id = ?`, s.ID), s)
}

// Delete removes a supplier, returning ErrSupplierNotFound when the row does
// not exist.
func (r *SupplierRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM suppliers WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrSupplierNotFound
	}
	return nil
}
