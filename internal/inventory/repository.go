package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/omnistock/inventory-service/internal/inventory/dto"
	"github.com/omnistock/inventory-service/internal/model"
)

// ErrConcurrentUpdate is returned when the guarded quantity update hits a
// record that changed after it was read. The per-key lock makes this a
// should-not-happen backstop, not a normal code path.
var ErrConcurrentUpdate = errors.New("inventory record changed concurrently")

type Repository interface {
	// Ledger state
	GetRecordByProduct(ctx context.Context, tenantID, productID string) (*model.InventoryRecord, error)
	FindRecordByID(ctx context.Context, tenantID, id string) (*model.InventoryRecord, error)
	FindAllRecords(ctx context.Context, tenantID string) ([]model.InventoryRecord, error)
	FindLowStock(ctx context.Context, tenantID string) ([]model.InventoryRecord, error)
	DeleteRecordByProduct(ctx context.Context, tenantID, productID string) error

	// ApplyMovement persists the new quantity and appends the movement in
	// one transaction: both land or neither does. prevQuantity guards the
	// write against lost updates.
	ApplyMovement(ctx context.Context, rec *model.InventoryRecord, prevQuantity int, movement *model.MovementRecord) error

	// Movement log
	ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.MovementRecord, error)
	GetMovement(ctx context.Context, tenantID, id string) (*model.MovementRecord, error)
	DeleteMovement(ctx context.Context, tenantID, id string) (bool, error)
	CountMovementsByProduct(ctx context.Context, tenantID, productID string) (int, error)
}

// Locker serializes ledger writes per (tenant, product) key.
type Locker interface {
	Obtain(ctx context.Context, key string, ttl time.Duration) (Lock, error)
}

type Lock interface {
	Release(ctx context.Context) error
}
