package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/omnistock/inventory-service/internal/apperr"
	"github.com/omnistock/inventory-service/internal/category"
	"github.com/omnistock/inventory-service/internal/inventory"
	"github.com/omnistock/inventory-service/internal/model"
	"github.com/omnistock/inventory-service/internal/product/dto"
	"go.uber.org/zap"
)

type mockProductRepo struct {
	mu       sync.Mutex
	products map[string]*model.Product
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{products: make(map[string]*model.Product)}
}

func (m *mockProductRepo) Create(ctx context.Context, p *model.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	m.products[p.ID] = &cp
	return nil
}

func (m *mockProductRepo) FindByID(ctx context.Context, tenantID, id string) (*model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.products[id]; ok && p.TenantID == tenantID {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (m *mockProductRepo) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Product
	for _, p := range m.products {
		if p.TenantID != f.TenantID {
			continue
		}
		if f.CategoryID != "" && (p.CategoryID == nil || *p.CategoryID != f.CategoryID) {
			continue
		}
		out = append(out, *p)
	}
	return out, len(out), nil
}

func (m *mockProductRepo) Update(ctx context.Context, p *model.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	m.products[p.ID] = &cp
	return nil
}

func (m *mockProductRepo) Delete(ctx context.Context, tenantID, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.products[id]; ok && p.TenantID == tenantID {
		delete(m.products, id)
		return true, nil
	}
	return false, nil
}

func (m *mockProductRepo) IsSKUUnique(ctx context.Context, tenantID, sku, excludeID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.products {
		if p.TenantID == tenantID && p.SKU == sku && p.ID != excludeID {
			return false, nil
		}
	}
	return true, nil
}

func (m *mockProductRepo) CountByCategory(ctx context.Context, tenantID, categoryID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, p := range m.products {
		if p.TenantID == tenantID && p.CategoryID != nil && *p.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

type mockCategoryRepo struct {
	category.Repository
	owned map[string]string // categoryID -> tenantID
}

func (m *mockCategoryRepo) FindByID(ctx context.Context, tenantID, id string) (*model.Category, error) {
	if owner, ok := m.owned[id]; ok && owner == tenantID {
		return &model.Category{BaseModel: model.BaseModel{ID: id}, TenantID: tenantID, Name: "cat"}, nil
	}
	return nil, nil
}

type mockLedgerRepo struct {
	inventory.Repository
	movementCounts map[string]int // productID -> count
	deletedRecords []string
}

func (m *mockLedgerRepo) CountMovementsByProduct(ctx context.Context, tenantID, productID string) (int, error) {
	return m.movementCounts[productID], nil
}

func (m *mockLedgerRepo) DeleteRecordByProduct(ctx context.Context, tenantID, productID string) error {
	m.deletedRecords = append(m.deletedRecords, productID)
	return nil
}

func newTestUseCase(repo *mockProductRepo, categories *mockCategoryRepo, ledger *mockLedgerRepo) *productUseCase {
	// Cache is nil-guarded in the usecase, so tests run without redis.
	return NewProductUseCase(repo, categories, ledger, nil, zap.NewNop()).(*productUseCase)
}

func TestCreateProduct_SKUUniquePerTenant(t *testing.T) {
	repo := newMockProductRepo()
	uc := newTestUseCase(repo, &mockCategoryRepo{}, &mockLedgerRepo{})

	if _, err := uc.CreateProduct(context.Background(), &dto.CreateProductInput{
		TenantID: "t1", Name: "Widget", SKU: "W-1",
	}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := uc.CreateProduct(context.Background(), &dto.CreateProductInput{
		TenantID: "t1", Name: "Widget clone", SKU: "W-1",
	})
	if !apperr.Is(err, apperr.Conflict) {
		t.Errorf("expected Conflict for duplicate sku, got: %v", err)
	}

	// Same SKU under another tenant is fine.
	if _, err := uc.CreateProduct(context.Background(), &dto.CreateProductInput{
		TenantID: "t2", Name: "Widget", SKU: "W-1",
	}); err != nil {
		t.Errorf("same sku for another tenant should succeed, got: %v", err)
	}
}

func TestCreateProduct_RequiredFields(t *testing.T) {
	uc := newTestUseCase(newMockProductRepo(), &mockCategoryRepo{}, &mockLedgerRepo{})

	if _, err := uc.CreateProduct(context.Background(), &dto.CreateProductInput{
		TenantID: "t1", SKU: "W-1",
	}); !apperr.Is(err, apperr.Validation) {
		t.Errorf("expected Validation for missing name, got: %v", err)
	}

	if _, err := uc.CreateProduct(context.Background(), &dto.CreateProductInput{
		TenantID: "t1", Name: "Widget",
	}); !apperr.Is(err, apperr.Validation) {
		t.Errorf("expected Validation for missing sku, got: %v", err)
	}
}

func TestCreateProduct_CategoryMustBelongToTenant(t *testing.T) {
	categories := &mockCategoryRepo{owned: map[string]string{"c1": "t1"}}
	uc := newTestUseCase(newMockProductRepo(), categories, &mockLedgerRepo{})

	if _, err := uc.CreateProduct(context.Background(), &dto.CreateProductInput{
		TenantID: "t1", Name: "Widget", SKU: "W-1", CategoryID: "c1",
	}); err != nil {
		t.Fatalf("create with owned category failed: %v", err)
	}

	_, err := uc.CreateProduct(context.Background(), &dto.CreateProductInput{
		TenantID: "t2", Name: "Widget", SKU: "W-2", CategoryID: "c1",
	})
	if !apperr.Is(err, apperr.Validation) {
		t.Errorf("expected Validation for foreign category, got: %v", err)
	}
}

func TestDeleteProduct_DeniedWithMovementHistory(t *testing.T) {
	repo := newMockProductRepo()
	ledger := &mockLedgerRepo{movementCounts: map[string]int{}}
	uc := newTestUseCase(repo, &mockCategoryRepo{}, ledger)

	p, err := uc.CreateProduct(context.Background(), &dto.CreateProductInput{
		TenantID: "t1", Name: "Widget", SKU: "W-1",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	ledger.movementCounts[p.ID] = 2

	err = uc.DeleteProduct(context.Background(), "t1", p.ID)
	if !apperr.Is(err, apperr.Conflict) {
		t.Errorf("expected Conflict while movements exist, got: %v", err)
	}
	if _, err := uc.GetProduct(context.Background(), "t1", p.ID); err != nil {
		t.Errorf("product should still exist: %v", err)
	}
}

func TestDeleteProduct_RemovesZeroInventoryRecord(t *testing.T) {
	repo := newMockProductRepo()
	ledger := &mockLedgerRepo{movementCounts: map[string]int{}}
	uc := newTestUseCase(repo, &mockCategoryRepo{}, ledger)

	p, err := uc.CreateProduct(context.Background(), &dto.CreateProductInput{
		TenantID: "t1", Name: "Widget", SKU: "W-1",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := uc.DeleteProduct(context.Background(), "t1", p.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(ledger.deletedRecords) != 1 || ledger.deletedRecords[0] != p.ID {
		t.Errorf("expected inventory record cleanup for %s, got %v", p.ID, ledger.deletedRecords)
	}
}

func TestUpdateProduct_NotFoundForForeignTenant(t *testing.T) {
	repo := newMockProductRepo()
	uc := newTestUseCase(repo, &mockCategoryRepo{}, &mockLedgerRepo{})

	p, err := uc.CreateProduct(context.Background(), &dto.CreateProductInput{
		TenantID: "t1", Name: "Widget", SKU: "W-1",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = uc.UpdateProduct(context.Background(), &dto.UpdateProductInput{
		ID: p.ID, TenantID: "t2", Name: "Hijacked", SKU: "W-1",
	})
	if !apperr.Is(err, apperr.NotFound) {
		t.Errorf("expected NotFound for foreign tenant, got: %v", err)
	}
}
