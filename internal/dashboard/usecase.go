package dashboard

import (
	"context"

	"github.com/omnistock/inventory-service/internal/dashboard/dto"
)

type UseCase interface {
	GetStats(ctx context.Context, tenantID string) (*dto.Stats, error)
}
