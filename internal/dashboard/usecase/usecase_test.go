package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/omnistock/inventory-service/internal/apperr"
)

type mockStatsRepo struct {
	products   map[string]int
	categories map[string]int
	inventory  map[string]int
	failSum    bool
}

func (m *mockStatsRepo) CountProducts(ctx context.Context, tenantID string) (int, error) {
	return m.products[tenantID], nil
}

func (m *mockStatsRepo) CountCategories(ctx context.Context, tenantID string) (int, error) {
	return m.categories[tenantID], nil
}

func (m *mockStatsRepo) SumInventory(ctx context.Context, tenantID string) (int, error) {
	if m.failSum {
		return 0, errors.New("connection reset")
	}
	return m.inventory[tenantID], nil
}

func TestGetStats_PerTenant(t *testing.T) {
	repo := &mockStatsRepo{
		products:   map[string]int{"t1": 12, "t2": 3},
		categories: map[string]int{"t1": 4, "t2": 1},
		inventory:  map[string]int{"t1": 250, "t2": 9},
	}
	uc := NewDashboardUseCase(repo)

	stats, err := uc.GetStats(context.Background(), "t1")
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats.TotalProducts != 12 || stats.TotalCategories != 4 || stats.TotalInventory != 250 {
		t.Errorf("unexpected stats for t1: %+v", stats)
	}

	stats, err = uc.GetStats(context.Background(), "t2")
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats.TotalProducts != 3 || stats.TotalCategories != 1 || stats.TotalInventory != 9 {
		t.Errorf("unexpected stats for t2: %+v", stats)
	}
}

func TestGetStats_StorageError(t *testing.T) {
	uc := NewDashboardUseCase(&mockStatsRepo{failSum: true})

	_, err := uc.GetStats(context.Background(), "t1")
	if !apperr.Is(err, apperr.Storage) {
		t.Errorf("expected Storage error, got: %v", err)
	}
}
