package model

import "github.com/shopspring/decimal"

type Product struct {
	BaseModel
	TenantID     string          `db:"tenant_id" json:"tenant_id"`
	CategoryID   *string         `db:"category_id" json:"category_id"` // Nullable
	Name         string          `db:"name" json:"name"`
	SKU          string          `db:"sku" json:"sku"`
	Description  *string         `db:"description" json:"description"`
	Price        decimal.Decimal `db:"price" json:"price"`
	MinimumStock int             `db:"minimum_stock" json:"minimum_stock"`
	ImageURL     *string         `db:"image_url" json:"image_url"`
}
