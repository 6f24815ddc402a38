package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB      *sqlx.DB
	timeout time.Duration
}

func NewPGRepository(db *sqlx.DB, timeout time.Duration) *PGRepository {
	return &PGRepository{DB: db, timeout: timeout}
}

func (r *PGRepository) CountProducts(ctx context.Context, tenantID string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var count int
	err := r.DB.GetContext(ctx, &count, `SELECT count(*) FROM products WHERE tenant_id = $1`, tenantID)
	return count, err
}

func (r *PGRepository) CountCategories(ctx context.Context, tenantID string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var count int
	err := r.DB.GetContext(ctx, &count, `SELECT count(*) FROM categories WHERE tenant_id = $1`, tenantID)
	return count, err
}

func (r *PGRepository) SumInventory(ctx context.Context, tenantID string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var sum int
	err := r.DB.GetContext(ctx, &sum, `SELECT COALESCE(SUM(quantity), 0) FROM inventory_records WHERE tenant_id = $1`, tenantID)
	return sum, err
}
