package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/banquetpro/banquetpro-api/internal/model"
)

// ClientRepo manages persistence for clients.
type ClientRepo struct {
	db *sql.DB
}

// NewClientRepo constructs a ClientRepo with the given DB handle.
func NewClientRepo(db *sql.DB) *ClientRepo {
	return &ClientRepo{db: db}
}

const clientColumns = `id, name, email, COALESCE(phone, ''), COALESCE(address, ''),
       COALESCE(company, ''), is_corporate, created_at`

func scanClient(row interface{ Scan(...any) error }, c *model.Client) error {
	return row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.Company, &c.IsCorporate, &c.CreatedAt)
}

// Create inserts a new client and assigns the generated ID back to c.
// A reused email address yields ErrDuplicateEmail.
func (r *ClientRepo) Create(ctx context.Context, c *model.Client) error {
	const q = `INSERT INTO clients (name, email, phone, address, company, is_corporate)
               VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, c.Name, c.Email, c.Phone, c.Address, c.Company, c.IsCorporate)
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
	c.ID = uint64(id)
	return scanClient(r.db.QueryRowContext(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = ?`, c.ID), c)
}

// GetByID retrieves a client by its ID, returning ErrClientNotFound when absent.
func (r *ClientRepo) GetByID(ctx context.Context, id uint64) (*model.Client, error) {
	var c model.Client
	err := scanClient(r.db.QueryRowContext(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = ?`, id), &c)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return &c, nil
}

// List returns all clients ordered by name ascending.
func (r *ClientRepo) List(ctx context.Context) ([]model.Client, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY name ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := []model.Client{}
	for rows.Next() {
		var c model.Client
		if err := scanClient(rows, &c); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

// Update rewrites all mutable fields of the client. Returns
// ErrClientNotFound when the row does not exist and ErrDuplicateEmail when
// the new email belongs to another client.
func (r *ClientRepo) Update(ctx context.Context, c *model.Client) error {
	const q = `UPDATE clients SET name = ?, email = ?, phone = ?, address = ?, company = ?, is_corporate = ?
               WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, c.Name, c.Email, c.Phone, c.Address, c.Company, c.IsCorporate, c.ID)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var one int
		if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM clients WHERE id = ?`, c.ID).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrClientNotFound
			}
			return err
		}
	}
	return scanClient(r.db.QueryRowContext(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = ?`, c.ID), c)
}

// Delete removes a client. Deletion is refused with ErrConflict while events
// still reference the client; ErrClientNotFound is returned when the row
// does not exist.
func (r *ClientRepo) Delete(ctx context.Context, id uint64) (err error) {
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
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM clients WHERE id = ?`, id).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrClientNotFound
		}
		return err
	}
	var events int
	if err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM events WHERE client_id = ?`, id).Scan(&events); err != nil {
		return err
	}
	if events > 0 {
		err = ErrConflict
		return err
	}
	_, err = tx.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id)
	return err
}
