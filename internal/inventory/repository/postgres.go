package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/omnistock/inventory-service/internal/inventory"
	"github.com/omnistock/inventory-service/internal/inventory/dto"
	"github.com/omnistock/inventory-service/internal/model"
)

type PGRepository struct {
	DB      *sqlx.DB
	timeout time.Duration
}

func NewPGRepository(db *sqlx.DB, timeout time.Duration) *PGRepository {
	return &PGRepository{DB: db, timeout: timeout}
}

func (r *PGRepository) GetRecordByProduct(ctx context.Context, tenantID, productID string) (*model.InventoryRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var rec model.InventoryRecord
	query := `
        SELECT i.id, i.tenant_id, i.product_id, i.quantity, i.created_at, i.updated_at
        FROM inventory_records i
        WHERE i.tenant_id = $1 AND i.product_id = $2
        LIMIT 1
    `
	err := r.DB.GetContext(ctx, &rec, query, tenantID, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *PGRepository) FindRecordByID(ctx context.Context, tenantID, id string) (*model.InventoryRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var rec model.InventoryRecord
	query := `
        SELECT i.*, p.name AS product_name
        FROM inventory_records i
        JOIN products p ON p.id = i.product_id AND p.tenant_id = i.tenant_id
        WHERE i.id = $1 AND i.tenant_id = $2
        LIMIT 1
    `
	err := r.DB.GetContext(ctx, &rec, query, id, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *PGRepository) FindAllRecords(ctx context.Context, tenantID string) ([]model.InventoryRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var records []model.InventoryRecord
	query := `
        SELECT i.*, p.name AS product_name
        FROM inventory_records i
        JOIN products p ON p.id = i.product_id AND p.tenant_id = i.tenant_id
        WHERE i.tenant_id = $1
        ORDER BY i.updated_at DESC
    `
	err := r.DB.SelectContext(ctx, &records, query, tenantID)
	return records, err
}

func (r *PGRepository) FindLowStock(ctx context.Context, tenantID string) ([]model.InventoryRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var records []model.InventoryRecord
	query := `
        SELECT i.*, p.name AS product_name
        FROM inventory_records i
        JOIN products p ON p.id = i.product_id AND p.tenant_id = i.tenant_id
        WHERE i.tenant_id = $1 AND p.minimum_stock > 0 AND i.quantity <= p.minimum_stock
        ORDER BY i.quantity ASC
    `
	err := r.DB.SelectContext(ctx, &records, query, tenantID)
	return records, err
}

func (r *PGRepository) DeleteRecordByProduct(ctx context.Context, tenantID, productID string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.DB.ExecContext(ctx,
		"DELETE FROM inventory_records WHERE tenant_id = $1 AND product_id = $2",
		tenantID, productID,
	)
	return err
}

func (r *PGRepository) ApplyMovement(ctx context.Context, rec *model.InventoryRecord, prevQuantity int, movement *model.MovementRecord) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Upsert covers the lazy-create of a fresh record; the WHERE clause on
	// the update arm refuses to overwrite a quantity we did not read.
	upsertQuery := `
        INSERT INTO inventory_records (id, tenant_id, product_id, quantity, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (tenant_id, product_id) DO UPDATE
        SET quantity = EXCLUDED.quantity, updated_at = EXCLUDED.updated_at
        WHERE inventory_records.quantity = $7
    `
	res, err := tx.ExecContext(ctx, upsertQuery,
		rec.ID, rec.TenantID, rec.ProductID, rec.Quantity, rec.CreatedAt, rec.UpdatedAt, prevQuantity,
	)
	if err != nil {
		return fmt.Errorf("failed to update inventory record: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return inventory.ErrConcurrentUpdate
	}

	insertLogQuery := `
        INSERT INTO movement_records (id, tenant_id, product_id, quantity, type, notes, created_at)
        VALUES (:id, :tenant_id, :product_id, :quantity, :type, :notes, :created_at)
    `
	if _, err := tx.NamedExecContext(ctx, insertLogQuery, movement); err != nil {
		return fmt.Errorf("failed to append movement record: %w", err)
	}

	return tx.Commit()
}

func (r *PGRepository) ListMovements(ctx context.Context, f *dto.MovementFilters) ([]model.MovementRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	conditions := []string{"m.tenant_id = :tenant_id"}
	args := map[string]interface{}{"tenant_id": f.TenantID}

	if f.ProductID != "" {
		conditions = append(conditions, "m.product_id = :product_id")
		args["product_id"] = f.ProductID
	}
	if f.Type != "" {
		conditions = append(conditions, "m.type = :type")
		args["type"] = f.Type
	}
	if f.StartDate != nil {
		conditions = append(conditions, "m.created_at >= :start_date")
		args["start_date"] = *f.StartDate
	}
	if f.EndDate != nil {
		conditions = append(conditions, "m.created_at <= :end_date")
		args["end_date"] = *f.EndDate
	}

	query := `
        SELECT m.*, p.name AS product_name
        FROM movement_records m
        JOIN products p ON p.id = m.product_id AND p.tenant_id = m.tenant_id
        WHERE ` + strings.Join(conditions, " AND ") + `
        ORDER BY m.created_at DESC
    `
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer nstmt.Close()

	var movements []model.MovementRecord
	err = nstmt.SelectContext(ctx, &movements, args)
	return movements, err
}

func (r *PGRepository) GetMovement(ctx context.Context, tenantID, id string) (*model.MovementRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var m model.MovementRecord
	query := `
        SELECT m.*, p.name AS product_name
        FROM movement_records m
        JOIN products p ON p.id = m.product_id AND p.tenant_id = m.tenant_id
        WHERE m.id = $1 AND m.tenant_id = $2
        LIMIT 1
    `
	err := r.DB.GetContext(ctx, &m, query, id, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *PGRepository) DeleteMovement(ctx context.Context, tenantID, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.DB.ExecContext(ctx, "DELETE FROM movement_records WHERE id = $1 AND tenant_id = $2", id, tenantID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *PGRepository) CountMovementsByProduct(ctx context.Context, tenantID, productID string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var count int
	query := `SELECT count(*) FROM movement_records WHERE tenant_id = $1 AND product_id = $2`
	err := r.DB.GetContext(ctx, &count, query, tenantID, productID)
	return count, err
}
