package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/omnistock/inventory-service/internal/apperr"
	"github.com/omnistock/inventory-service/internal/auth"
	"github.com/omnistock/inventory-service/internal/model"
	"github.com/omnistock/inventory-service/internal/user"
	"github.com/omnistock/inventory-service/internal/user/dto"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type userUseCase struct {
	repo   user.Repository
	tokens *auth.TokenManager
	logger *zap.Logger
}

func NewUserUseCase(repo user.Repository, tokens *auth.TokenManager, log *zap.Logger) user.UseCase {
	return &userUseCase{
		repo:   repo,
		tokens: tokens,
		logger: log,
	}
}

func (uc *userUseCase) Register(ctx context.Context, input *dto.RegisterInput) (*dto.AuthResult, error) {
	existing, err := uc.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "failed to look up email", err)
	}
	if existing != nil {
		return nil, apperr.New(apperr.Conflict, "email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "failed to hash password", err)
	}

	now := time.Now()
	u := &model.User{
		BaseModel:    model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
	}

	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, apperr.Wrap(apperr.Storage, "failed to create user", err)
	}

	token, err := uc.tokens.Generate(u.ID, u.Username)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "failed to sign token", err)
	}

	uc.logger.Info("user registered", zap.String("user_id", u.ID))
	return &dto.AuthResult{Token: token, UserID: u.ID}, nil
}

func (uc *userUseCase) Login(ctx context.Context, input *dto.LoginInput) (*dto.AuthResult, error) {
	u, err := uc.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "failed to look up email", err)
	}
	if u == nil {
		return nil, apperr.New(apperr.Auth, "invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password)); err != nil {
		return nil, apperr.New(apperr.Auth, "invalid email or password")
	}

	token, err := uc.tokens.Generate(u.ID, u.Username)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "failed to sign token", err)
	}

	return &dto.AuthResult{Token: token, UserID: u.ID}, nil
}

func (uc *userUseCase) GetUser(ctx context.Context, id string) (*model.User, error) {
	u, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "failed to fetch user", err)
	}
	if u == nil {
		return nil, apperr.New(apperr.NotFound, "user not found")
	}
	return u, nil
}
