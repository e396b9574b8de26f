package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/banquetpro/banquetpro-api/internal/model"
)

// InventoryRepo manages persistence for inventory items.
type InventoryRepo struct {
	db *sql.DB
}

// NewInventoryRepo constructs an InventoryRepo with the given DB handle.
func NewInventoryRepo(db *sql.DB) *InventoryRepo {
	return &InventoryRepo{db: db}
}

const itemColumns = `id, name, category, current_stock, minimum_stock, maximum_stock,
       unit_cost_cents, COALESCE(location, ''), COALESCE(supplier, ''),
       COALESCE(last_restocked, ''), created_at`

func scanItem(row interface{ Scan(...any) error }, it *model.InventoryItem) error {
	return row.Scan(&it.ID, &it.Name, &it.Category, &it.CurrentStock, &it.MinimumStock,
		&it.MaximumStock, &it.UnitCostCents, &it.Location, &it.Supplier, &it.LastRestocked, &it.CreatedAt)
}

// Create inserts a new inventory item and assigns the generated ID back.
func (r *InventoryRepo) Create(ctx context.Context, it *model.InventoryItem) error {
	const q = `INSERT INTO inventory_items
               (name, category, current_stock, minimum_stock, maximum_stock, unit_cost_cents, location, supplier)
               VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, it.Name, it.Category, it.CurrentStock, it.MinimumStock,
		it.MaximumStock, it.UnitCostCents, it.Location, it.Supplier)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	it.ID = uint64(id)
	return scanItem(r.db.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM inventory_items WHERE id = ?`, it.ID), it)
}

// GetByID retrieves an item by ID, returning ErrItemNotFound when absent.
func (r *InventoryRepo) GetByID(ctx context.Context, id uint64) (*model.InventoryItem, error) {
	var it model.InventoryItem
	err := scanItem(r.db.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM inventory_items WHERE id = ?`, id), &it)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &it, nil
}

// List returns items ordered by name, optionally filtered by category and/or
// restricted to items at or below their minimum stock.
func (r *InventoryRepo) List(ctx context.Context, category string, lowStockOnly bool) ([]model.InventoryItem, error) {
	q := `SELECT ` + itemColumns + ` FROM inventory_items WHERE 1=1`
	args := []any{}
	if category != "" {
		q += ` AND category = ?`
		args = append(args, category)
	}
	if lowStockOnly {
		q += ` AND current_stock <= minimum_stock`
	}
	q += ` ORDER BY name ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := []model.InventoryItem{}
	for rows.Next() {
		var it model.InventoryItem
		if err := scanItem(rows, &it); err != nil {
			return nil, err
		}
		result = append(result, it)
	}
	return result, rows.Err()
}

// Update rewrites all mutable fields of the item. When restocked is true the
// last_restocked timestamp is advanced to now.
func (r *InventoryRepo) Update(ctx context.Context, it *model.InventoryItem, restocked bool) error {
	q := `UPDATE inventory_items SET name = ?, category = ?, current_stock = ?, minimum_stock = ?,
              maximum_stock = ?, unit_cost_cents = ?, location = ?, supplier = ?`
	args := []any{it.Name, it.Category, it.CurrentStock, it.MinimumStock,
		it.MaximumStock, it.UnitCostCents, it.Location, it.Supplier}
	if restocked {
		q += `, last_restocked = CURRENT_TIMESTAMP`
	}
	q += ` WHERE id = ?`
	args = append(args, it.ID)

	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var one int
		if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM inventory_items WHERE id = ?`, it.ID).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrItemNotFound
			}
			return err
		}
	}
	return scanItem(r.db.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM inventory_items WHERE id = ?`, it.ID), it)
}

// Delete removes an item, returning ErrItemNotFound when the row does not exist.
func (r *InventoryRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM inventory_items WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrItemNotFound
	}
	return nil
}
