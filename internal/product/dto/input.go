package dto

import "github.com/shopspring/decimal"

type CreateProductInput struct {
	TenantID     string
	CategoryID   string
	Name         string
	SKU          string
	Description  string
	Price        decimal.Decimal
	MinimumStock int
	ImageURL     string
}

type UpdateProductInput struct {
	ID           string
	TenantID     string
	CategoryID   string
	Name         string
	SKU          string
	Description  string
	Price        decimal.Decimal
	MinimumStock int
	ImageURL     string
}
