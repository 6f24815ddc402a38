package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/omnistock/inventory-service/internal/apperr"
	"github.com/omnistock/inventory-service/internal/category/dto"
	"github.com/omnistock/inventory-service/internal/model"
	"github.com/omnistock/inventory-service/internal/product"
	"go.uber.org/zap"
)

type mockCategoryRepo struct {
	mu         sync.Mutex
	categories map[string]*model.Category
}

func newMockCategoryRepo() *mockCategoryRepo {
	return &mockCategoryRepo{categories: make(map[string]*model.Category)}
}

func (m *mockCategoryRepo) Create(ctx context.Context, c *model.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *c
	m.categories[c.ID] = &cp
	return nil
}

func (m *mockCategoryRepo) FindByID(ctx context.Context, tenantID, id string) (*model.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.categories[id]; ok && c.TenantID == tenantID {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (m *mockCategoryRepo) FindAll(ctx context.Context, f *dto.CategoryFilters) ([]model.Category, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Category
	for _, c := range m.categories {
		if c.TenantID == f.TenantID {
			out = append(out, *c)
		}
	}
	return out, len(out), nil
}

func (m *mockCategoryRepo) Update(ctx context.Context, c *model.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *c
	m.categories[c.ID] = &cp
	return nil
}

func (m *mockCategoryRepo) Delete(ctx context.Context, tenantID, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.categories[id]; ok && c.TenantID == tenantID {
		delete(m.categories, id)
		return true, nil
	}
	return false, nil
}

type mockProductCounter struct {
	product.Repository
	counts map[string]int // categoryID -> product count
}

func (m *mockProductCounter) CountByCategory(ctx context.Context, tenantID, categoryID string) (int, error) {
	return m.counts[categoryID], nil
}

func TestCreateCategory_NameRequired(t *testing.T) {
	uc := NewCategoryUseCase(newMockCategoryRepo(), &mockProductCounter{}, zap.NewNop())

	_, err := uc.CreateCategory(context.Background(), &dto.CreateCategoryInput{TenantID: "t1", Name: "  "})
	if !apperr.Is(err, apperr.Validation) {
		t.Errorf("expected Validation error, got: %v", err)
	}
}

func TestCategoryLifecycle(t *testing.T) {
	repo := newMockCategoryRepo()
	uc := NewCategoryUseCase(repo, &mockProductCounter{counts: map[string]int{}}, zap.NewNop())

	cat, err := uc.CreateCategory(context.Background(), &dto.CreateCategoryInput{
		TenantID: "t1", Name: "Beverages", Description: "drinks",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := uc.UpdateCategory(context.Background(), &dto.UpdateCategoryInput{
		ID: cat.ID, TenantID: "t1", Name: "Drinks",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Drinks" {
		t.Errorf("expected updated name, got %s", updated.Name)
	}

	if err := uc.DeleteCategory(context.Background(), "t1", cat.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := uc.GetCategory(context.Background(), "t1", cat.ID); !apperr.Is(err, apperr.NotFound) {
		t.Errorf("expected NotFound after delete, got: %v", err)
	}
}

func TestDeleteCategory_DeniedWhileReferenced(t *testing.T) {
	repo := newMockCategoryRepo()
	counter := &mockProductCounter{counts: map[string]int{}}
	uc := NewCategoryUseCase(repo, counter, zap.NewNop())

	cat, err := uc.CreateCategory(context.Background(), &dto.CreateCategoryInput{TenantID: "t1", Name: "Beverages"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	counter.counts[cat.ID] = 3

	err = uc.DeleteCategory(context.Background(), "t1", cat.ID)
	if !apperr.Is(err, apperr.Conflict) {
		t.Errorf("expected Conflict while products reference category, got: %v", err)
	}
	if _, err := uc.GetCategory(context.Background(), "t1", cat.ID); err != nil {
		t.Errorf("category should still exist: %v", err)
	}
}

func TestGetCategory_TenantIsolation(t *testing.T) {
	repo := newMockCategoryRepo()
	uc := NewCategoryUseCase(repo, &mockProductCounter{}, zap.NewNop())

	cat, err := uc.CreateCategory(context.Background(), &dto.CreateCategoryInput{TenantID: "t1", Name: "Beverages"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := uc.GetCategory(context.Background(), "t2", cat.ID); !apperr.Is(err, apperr.NotFound) {
		t.Errorf("expected NotFound for foreign tenant, got: %v", err)
	}
}
