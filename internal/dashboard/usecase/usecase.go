package usecase

import (
	"context"

	"github.com/omnistock/inventory-service/internal/apperr"
	"github.com/omnistock/inventory-service/internal/dashboard"
	"github.com/omnistock/inventory-service/internal/dashboard/dto"
)

type dashboardUseCase struct {
	repo dashboard.Repository
}

func NewDashboardUseCase(repo dashboard.Repository) dashboard.UseCase {
	return &dashboardUseCase{repo: repo}
}

func (uc *dashboardUseCase) GetStats(ctx context.Context, tenantID string) (*dto.Stats, error) {
	products, err := uc.repo.CountProducts(ctx, tenantID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "failed to count products", err)
	}
	categories, err := uc.repo.CountCategories(ctx, tenantID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "failed to count categories", err)
	}
	inventory, err := uc.repo.SumInventory(ctx, tenantID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "failed to sum inventory", err)
	}

	return &dto.Stats{
		TotalProducts:   products,
		TotalCategories: categories,
		TotalInventory:  inventory,
	}, nil
}
