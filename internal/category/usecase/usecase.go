package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/omnistock/inventory-service/internal/apperr"
	"github.com/omnistock/inventory-service/internal/category"
	"github.com/omnistock/inventory-service/internal/category/dto"
	"github.com/omnistock/inventory-service/internal/model"
	"github.com/omnistock/inventory-service/internal/product"
	"go.uber.org/zap"
)

type categoryUseCase struct {
	repo     category.Repository
	products product.Repository
	logger   *zap.Logger
}

func NewCategoryUseCase(repo category.Repository, products product.Repository, log *zap.Logger) category.UseCase {
	return &categoryUseCase{
		repo:     repo,
		products: products,
		logger:   log,
	}
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperr.New(apperr.Validation, "name is required")
	}

	now := time.Now()
	cat := &model.Category{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		TenantID:    input.TenantID,
		Name:        input.Name,
		Description: optional(input.Description),
	}

	if err := uc.repo.Create(ctx, cat); err != nil {
		return nil, apperr.Wrap(apperr.Storage, "failed to create category", err)
	}

	return cat, nil
}

func (uc *categoryUseCase) GetCategory(ctx context.Context, tenantID, id string) (*model.Category, error) {
	cat, err := uc.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "failed to fetch category", err)
	}
	if cat == nil {
		return nil, apperr.New(apperr.NotFound, "category not found")
	}
	return cat, nil
}

func (uc *categoryUseCase) ListCategories(ctx context.Context, filters *dto.CategoryFilters) ([]model.Category, int, error) {
	categories, count, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, 0, apperr.Wrap(apperr.Storage, "failed to list categories", err)
	}
	return categories, count, nil
}

func (uc *categoryUseCase) UpdateCategory(ctx context.Context, input *dto.UpdateCategoryInput) (*model.Category, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperr.New(apperr.Validation, "name is required")
	}

	cat, err := uc.repo.FindByID(ctx, input.TenantID, input.ID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "failed to fetch category", err)
	}
	if cat == nil {
		return nil, apperr.New(apperr.NotFound, "category not found")
	}

	cat.Name = input.Name
	cat.Description = optional(input.Description)
	cat.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, cat); err != nil {
		return nil, apperr.Wrap(apperr.Storage, "failed to update category", err)
	}
	return cat, nil
}

// DeleteCategory denies the delete while products still reference the
// category, so catalog rows never end up pointing at a missing parent.
func (uc *categoryUseCase) DeleteCategory(ctx context.Context, tenantID, id string) error {
	inUse, err := uc.products.CountByCategory(ctx, tenantID, id)
	if err != nil {
		return apperr.Wrap(apperr.Storage, "failed to check category references", err)
	}
	if inUse > 0 {
		return apperr.Newf(apperr.Conflict, "category is referenced by %d product(s)", inUse)
	}

	deleted, err := uc.repo.Delete(ctx, tenantID, id)
	if err != nil {
		return apperr.Wrap(apperr.Storage, "failed to delete category", err)
	}
	if !deleted {
		return apperr.New(apperr.NotFound, "category not found")
	}
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
