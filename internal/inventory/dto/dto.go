package dto

import (
	"time"

	"github.com/omnistock/inventory-service/internal/model"
)

type MovementFilters struct {
	TenantID  string
	ProductID string
	Type      string
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	PageSize  int
}

type ApplyMovementResult struct {
	Record   *model.InventoryRecord
	Movement *model.MovementRecord
}
