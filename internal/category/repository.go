package category

import (
	"context"

	"github.com/omnistock/inventory-service/internal/category/dto"
	"github.com/omnistock/inventory-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, category *model.Category) error
	FindByID(ctx context.Context, tenantID, id string) (*model.Category, error)
	FindAll(ctx context.Context, filters *dto.CategoryFilters) ([]model.Category, int, error)
	Update(ctx context.Context, category *model.Category) error
	Delete(ctx context.Context, tenantID, id string) (bool, error)
}
