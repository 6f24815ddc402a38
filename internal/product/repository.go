package product

import (
	"context"

	"github.com/omnistock/inventory-service/internal/model"
	"github.com/omnistock/inventory-service/internal/product/dto"
)

type Repository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, tenantID, id string) (*model.Product, error)
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, tenantID, id string) (bool, error)
	IsSKUUnique(ctx context.Context, tenantID, sku, excludeID string) (bool, error)
	CountByCategory(ctx context.Context, tenantID, categoryID string) (int, error)
}
