package usecase

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/omnistock/inventory-service/internal/apperr"
	"github.com/omnistock/inventory-service/internal/cache"
	"github.com/omnistock/inventory-service/internal/category"
	"github.com/omnistock/inventory-service/internal/inventory"
	"github.com/omnistock/inventory-service/internal/model"
	"github.com/omnistock/inventory-service/internal/product"
	"github.com/omnistock/inventory-service/internal/product/dto"
	"go.uber.org/zap"
)

const listCacheTTL = 5 * time.Minute

type productUseCase struct {
	repo       product.Repository
	categories category.Repository
	ledger     inventory.Repository
	cache      *cache.RedisClient
	logger     *zap.Logger
}

func NewProductUseCase(repo product.Repository, categories category.Repository, ledger inventory.Repository, cache *cache.RedisClient, log *zap.Logger) product.UseCase {
	return &productUseCase{
		repo:       repo,
		categories: categories,
		ledger:     ledger,
		cache:      cache,
		logger:     log,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	if err := uc.validateInput(ctx, input.TenantID, input.Name, input.SKU, input.CategoryID); err != nil {
		return nil, err
	}

	unique, err := uc.repo.IsSKUUnique(ctx, input.TenantID, input.SKU, "")
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "failed to check sku", err)
	}
	if !unique {
		return nil, apperr.New(apperr.Conflict, "sku already exists")
	}

	now := time.Now()
	p := &model.Product{
		BaseModel:    model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		TenantID:     input.TenantID,
		CategoryID:   optional(input.CategoryID),
		Name:         input.Name,
		SKU:          input.SKU,
		Description:  optional(input.Description),
		Price:        input.Price,
		MinimumStock: input.MinimumStock,
		ImageURL:     optional(input.ImageURL),
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, apperr.Wrap(apperr.Storage, "failed to create product", err)
	}

	go uc.invalidateListCache(context.Background(), input.TenantID)

	return p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, tenantID, id string) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "failed to fetch product", err)
	}
	if p == nil {
		return nil, apperr.New(apperr.NotFound, "product not found")
	}
	return p, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error) {
	cacheKey := uc.listCacheKey(filters)

	if uc.cache != nil && cacheKey != "" {
		if val, err := uc.cache.Client.Get(ctx, cacheKey).Result(); err == nil {
			var cached struct {
				Products []model.Product
				Count    int
			}
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached.Products, cached.Count, nil
			}
		}
	}

	products, count, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, 0, apperr.Wrap(apperr.Storage, "failed to list products", err)
	}

	if uc.cache != nil && cacheKey != "" {
		data, err := json.Marshal(struct {
			Products []model.Product
			Count    int
		}{products, count})
		if err == nil {
			uc.cache.Client.Set(ctx, cacheKey, data, listCacheTTL)
		}
	}

	return products, count, nil
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	if err := uc.validateInput(ctx, input.TenantID, input.Name, input.SKU, input.CategoryID); err != nil {
		return nil, err
	}

	p, err := uc.repo.FindByID(ctx, input.TenantID, input.ID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "failed to fetch product", err)
	}
	if p == nil {
		return nil, apperr.New(apperr.NotFound, "product not found")
	}

	if p.SKU != input.SKU {
		unique, err := uc.repo.IsSKUUnique(ctx, input.TenantID, input.SKU, p.ID)
		if err != nil {
			return nil, apperr.Wrap(apperr.Storage, "failed to check sku", err)
		}
		if !unique {
			return nil, apperr.New(apperr.Conflict, "sku already exists")
		}
	}

	p.CategoryID = optional(input.CategoryID)
	p.Name = input.Name
	p.SKU = input.SKU
	p.Description = optional(input.Description)
	p.Price = input.Price
	p.MinimumStock = input.MinimumStock
	p.ImageURL = optional(input.ImageURL)
	p.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, apperr.Wrap(apperr.Storage, "failed to update product", err)
	}

	go uc.invalidateListCache(context.Background(), input.TenantID)

	return p, nil
}

// DeleteProduct refuses to remove a product that still has movement
// history, keeping the audit trail free of dangling references. A leftover
// zero-quantity inventory record is cleaned up with the product.
func (uc *productUseCase) DeleteProduct(ctx context.Context, tenantID, id string) error {
	movements, err := uc.ledger.CountMovementsByProduct(ctx, tenantID, id)
	if err != nil {
		return apperr.Wrap(apperr.Storage, "failed to check movement history", err)
	}
	if movements > 0 {
		return apperr.Newf(apperr.Conflict, "product has %d stock movement(s); delete is not allowed", movements)
	}

	if err := uc.ledger.DeleteRecordByProduct(ctx, tenantID, id); err != nil {
		return apperr.Wrap(apperr.Storage, "failed to remove inventory record", err)
	}

	deleted, err := uc.repo.Delete(ctx, tenantID, id)
	if err != nil {
		return apperr.Wrap(apperr.Storage, "failed to delete product", err)
	}
	if !deleted {
		return apperr.New(apperr.NotFound, "product not found")
	}

	go uc.invalidateListCache(context.Background(), tenantID)

	return nil
}

func (uc *productUseCase) validateInput(ctx context.Context, tenantID, name, sku, categoryID string) error {
	if strings.TrimSpace(name) == "" {
		return apperr.New(apperr.Validation, "name is required")
	}
	if strings.TrimSpace(sku) == "" {
		return apperr.New(apperr.Validation, "sku is required")
	}
	if categoryID != "" {
		cat, err := uc.categories.FindByID(ctx, tenantID, categoryID)
		if err != nil {
			return apperr.Wrap(apperr.Storage, "failed to fetch category", err)
		}
		if cat == nil {
			return apperr.New(apperr.Validation, "category does not belong to this account")
		}
	}
	return nil
}

func (uc *productUseCase) listCacheKey(filters *dto.ProductFilters) string {
	data, err := json.Marshal(filters)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("products:list:%s:%x", filters.TenantID, md5.Sum(data))
}

func (uc *productUseCase) invalidateListCache(ctx context.Context, tenantID string) {
	if uc.cache == nil {
		return
	}
	pattern := fmt.Sprintf("products:list:%s:*", tenantID)
	keys, err := uc.cache.Client.Keys(ctx, pattern).Result()
	if err == nil && len(keys) > 0 {
		uc.cache.Client.Del(ctx, keys...)
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
