package dto

import "github.com/omnistock/inventory-service/internal/model"

type ApplyMovementInput struct {
	TenantID  string
	ProductID string
	Quantity  int
	Type      model.MovementType
	Notes     string
}

type ReportInput struct {
	TenantID  string
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
	ProductID string
	Type      string
}
