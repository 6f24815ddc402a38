package user

import (
	"context"

	"github.com/omnistock/inventory-service/internal/model"
	"github.com/omnistock/inventory-service/internal/user/dto"
)

type UseCase interface {
	Register(ctx context.Context, input *dto.RegisterInput) (*dto.AuthResult, error)
	Login(ctx context.Context, input *dto.LoginInput) (*dto.AuthResult, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
}
