package dashboard

import "context"

type Repository interface {
	CountProducts(ctx context.Context, tenantID string) (int, error)
	CountCategories(ctx context.Context, tenantID string) (int, error)
	SumInventory(ctx context.Context, tenantID string) (int, error)
}
