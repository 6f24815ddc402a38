package inventory

import (
	"context"

	"github.com/omnistock/inventory-service/internal/inventory/dto"
	"github.com/omnistock/inventory-service/internal/model"
)

type UseCase interface {
	GetInventory(ctx context.Context, tenantID, id string) (*model.InventoryRecord, error)
	ListInventory(ctx context.Context, tenantID string) ([]model.InventoryRecord, error)
	ListLowStock(ctx context.Context, tenantID string) ([]model.InventoryRecord, error)

	ApplyMovement(ctx context.Context, input *dto.ApplyMovementInput) (*dto.ApplyMovementResult, error)

	ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.MovementRecord, error)
	GetMovement(ctx context.Context, tenantID, id string) (*model.MovementRecord, error)
	DeleteMovement(ctx context.Context, tenantID, id string) error

	Report(ctx context.Context, input *dto.ReportInput) ([]model.MovementRecord, error)
}
