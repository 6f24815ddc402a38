package model

import "time"

type MovementType string

const (
	MovementIn  MovementType = "IN"
	MovementOut MovementType = "OUT"
)

func (t MovementType) Valid() bool {
	return t == MovementIn || t == MovementOut
}

// InventoryRecord is the authoritative on-hand quantity for one
// (tenant, product) pair. It is mutated only through the ledger.
type InventoryRecord struct {
	BaseModel
	TenantID  string `db:"tenant_id" json:"tenant_id"`
	ProductID string `db:"product_id" json:"product_id"`
	Quantity  int    `db:"quantity" json:"quantity"`

	// Joined on list/read queries, not a column of inventory_records.
	ProductName string `db:"product_name" json:"product_name,omitempty"`
}

// MovementRecord is one IN or OUT event. Append-only; quantity holds the
// requested magnitude and is always positive, the direction lives in Type.
type MovementRecord struct {
	ID        string       `db:"id" json:"id"`
	TenantID  string       `db:"tenant_id" json:"tenant_id"`
	ProductID string       `db:"product_id" json:"product_id"`
	Quantity  int          `db:"quantity" json:"quantity"`
	Type      MovementType `db:"type" json:"type"`
	Notes     *string      `db:"notes" json:"notes"`
	CreatedAt time.Time    `db:"created_at" json:"created_at"`

	ProductName string `db:"product_name" json:"product_name,omitempty"`
}
