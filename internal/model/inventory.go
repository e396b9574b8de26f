package model

// InventoryItem is a stocked good (tableware, linens, decor, ...) tracked by
// the business. An item is considered low on stock when CurrentStock has
// fallen to or below MinimumStock.
type InventoryItem struct {
	ID            uint64 `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	CurrentStock  int    `json:"current_stock"`
	MinimumStock  int    `json:"minimum_stock"`
	MaximumStock  int    `json:"maximum_stock"`
	UnitCostCents int64  `json:"unit_cost_cents"`
	Location      string `json:"location,omitempty"`
	Supplier      string `json:"supplier,omitempty"`
	LastRestocked string `json:"last_restocked,omitempty"`
	CreatedAt     string `json:"created_at"`
}

// LowStock reports whether the item has fallen to or below its minimum stock.
func (i InventoryItem) LowStock() bool {
	return i.CurrentStock <= i.MinimumStock
}
