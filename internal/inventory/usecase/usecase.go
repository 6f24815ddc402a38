package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/omnistock/inventory-service/internal/apperr"
	"github.com/omnistock/inventory-service/internal/inventory"
	"github.com/omnistock/inventory-service/internal/inventory/dto"
	"github.com/omnistock/inventory-service/internal/model"
	"github.com/omnistock/inventory-service/internal/product"
	"go.uber.org/zap"
)

const (
	lockTTL    = 5 * time.Second
	dateLayout = "2006-01-02"
)

type inventoryUseCase struct {
	repo     inventory.Repository
	products product.Repository
	locker   inventory.Locker
	logger   *zap.Logger
}

func NewInventoryUseCase(repo inventory.Repository, products product.Repository, locker inventory.Locker, log *zap.Logger) inventory.UseCase {
	return &inventoryUseCase{
		repo:     repo,
		products: products,
		locker:   locker,
		logger:   log,
	}
}

func (uc *inventoryUseCase) GetInventory(ctx context.Context, tenantID, id string) (*model.InventoryRecord, error) {
	rec, err := uc.repo.FindRecordByID(ctx, tenantID, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "failed to fetch inventory record", err)
	}
	if rec == nil {
		return nil, apperr.New(apperr.NotFound, "inventory record not found")
	}
	return rec, nil
}

func (uc *inventoryUseCase) ListInventory(ctx context.Context, tenantID string) ([]model.InventoryRecord, error) {
	records, err := uc.repo.FindAllRecords(ctx, tenantID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "failed to list inventory", err)
	}
	return records, nil
}

func (uc *inventoryUseCase) ListLowStock(ctx context.Context, tenantID string) ([]model.InventoryRecord, error) {
	records, err := uc.repo.FindLowStock(ctx, tenantID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "failed to list low stock", err)
	}
	return records, nil
}

// ApplyMovement is the single mutation path for on-hand quantities. The
// read-compute-write sequence runs under a per-(tenant, product) lock, and
// the quantity update plus the movement append commit in one transaction,
// so the ledger either moves as a whole or not at all.
func (uc *inventoryUseCase) ApplyMovement(ctx context.Context, input *dto.ApplyMovementInput) (*dto.ApplyMovementResult, error) {
	if input.Quantity <= 0 {
		return nil, apperr.New(apperr.Validation, "quantity must be a positive integer")
	}
	if !input.Type.Valid() {
		return nil, apperr.New(apperr.Validation, "type must be IN or OUT")
	}

	p, err := uc.products.FindByID(ctx, input.TenantID, input.ProductID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "failed to fetch product", err)
	}
	if p == nil {
		return nil, apperr.New(apperr.NotFound, "product not found")
	}

	lockKey := fmt.Sprintf("lock:inventory:%s:%s", input.TenantID, input.ProductID)
	lock, err := uc.locker.Obtain(ctx, lockKey, lockTTL)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "failed to acquire inventory lock", err)
	}
	defer lock.Release(ctx)

	rec, err := uc.repo.GetRecordByProduct(ctx, input.TenantID, input.ProductID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "failed to fetch inventory record", err)
	}

	now := time.Now()
	if rec == nil {
		rec = &model.InventoryRecord{
			BaseModel: model.BaseModel{ID: uuid.New().String(), CreatedAt: now},
			TenantID:  input.TenantID,
			ProductID: input.ProductID,
			Quantity:  0,
		}
	}

	prevQuantity := rec.Quantity
	switch input.Type {
	case model.MovementIn:
		rec.Quantity = prevQuantity + input.Quantity
	case model.MovementOut:
		rec.Quantity = prevQuantity - input.Quantity
		if rec.Quantity < 0 {
			return nil, apperr.Newf(apperr.InsufficientStock,
				"insufficient stock: current quantity is %d, cannot remove %d", prevQuantity, input.Quantity)
		}
	}
	rec.UpdatedAt = now

	movement := &model.MovementRecord{
		ID:        uuid.New().String(),
		TenantID:  input.TenantID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		Type:      input.Type,
		Notes:     optional(input.Notes),
		CreatedAt: now,
	}

	if err := uc.repo.ApplyMovement(ctx, rec, prevQuantity, movement); err != nil {
		return nil, apperr.Wrap(apperr.Storage, "failed to apply movement", err)
	}

	uc.logger.Info("stock movement applied",
		zap.String("tenant_id", input.TenantID),
		zap.String("product_id", input.ProductID),
		zap.String("type", string(input.Type)),
		zap.Int("quantity", input.Quantity),
		zap.Int("new_quantity", rec.Quantity),
	)

	return &dto.ApplyMovementResult{Record: rec, Movement: movement}, nil
}

func (uc *inventoryUseCase) ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.MovementRecord, error) {
	movements, err := uc.repo.ListMovements(ctx, filters)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "failed to list movements", err)
	}
	return movements, nil
}

func (uc *inventoryUseCase) GetMovement(ctx context.Context, tenantID, id string) (*model.MovementRecord, error) {
	m, err := uc.repo.GetMovement(ctx, tenantID, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "failed to fetch movement", err)
	}
	if m == nil {
		return nil, apperr.New(apperr.NotFound, "stock movement not found")
	}
	return m, nil
}

// DeleteMovement removes a single audit row as an administrative
// correction. The on-hand quantity is intentionally left untouched.
func (uc *inventoryUseCase) DeleteMovement(ctx context.Context, tenantID, id string) error {
	deleted, err := uc.repo.DeleteMovement(ctx, tenantID, id)
	if err != nil {
		return apperr.Wrap(apperr.Storage, "failed to delete movement", err)
	}
	if !deleted {
		return apperr.New(apperr.NotFound, "stock movement not found")
	}
	return nil
}

func (uc *inventoryUseCase) Report(ctx context.Context, input *dto.ReportInput) ([]model.MovementRecord, error) {
	if input.StartDate == "" || input.EndDate == "" {
		return nil, apperr.New(apperr.Validation, "start date and end date are required")
	}

	start, err := time.ParseInLocation(dateLayout, input.StartDate, time.Local)
	if err != nil {
		return nil, apperr.New(apperr.Validation, "invalid start date format, expected YYYY-MM-DD")
	}
	end, err := time.ParseInLocation(dateLayout, input.EndDate, time.Local)
	if err != nil {
		return nil, apperr.New(apperr.Validation, "invalid end date format, expected YYYY-MM-DD")
	}
	if end.Before(start) {
		return nil, apperr.New(apperr.Validation, "end date cannot be before start date")
	}
	if input.Type != "" && !model.MovementType(input.Type).Valid() {
		return nil, apperr.New(apperr.Validation, "type must be IN or OUT")
	}

	// Inclusive range: start of the first day through the last second of
	// the final day.
	endOfDay := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, end.Location())

	movements, err := uc.repo.ListMovements(ctx, &dto.MovementFilters{
		TenantID:  input.TenantID,
		ProductID: input.ProductID,
		Type:      input.Type,
		StartDate: &start,
		EndDate:   &endOfDay,
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "failed to generate report", err)
	}
	return movements, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
