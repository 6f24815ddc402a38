package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/omnistock/inventory-service/internal/apperr"
	"github.com/omnistock/inventory-service/internal/auth"
	"github.com/omnistock/inventory-service/internal/model"
	"github.com/omnistock/inventory-service/internal/user/dto"
	"go.uber.org/zap"
)

type mockUserRepo struct {
	mu    sync.Mutex
	users map[string]*model.User // keyed by email
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(ctx context.Context, u *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *u
	m.users[u.Email] = &cp
	return nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[email]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func newTestUseCase(repo *mockUserRepo) *userUseCase {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return NewUserUseCase(repo, tokens, zap.NewNop()).(*userUseCase)
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newMockUserRepo()
	uc := newTestUseCase(repo)

	reg, err := uc.Register(context.Background(), &dto.RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "s3cret!",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if reg.Token == "" || reg.UserID == "" {
		t.Fatal("expected token and user id")
	}

	// Password must never be stored in the clear.
	stored, _ := repo.FindByEmail(context.Background(), "alice@example.com")
	if stored.PasswordHash == "s3cret!" || stored.PasswordHash == "" {
		t.Error("password hash missing or stored in plaintext")
	}

	login, err := uc.Login(context.Background(), &dto.LoginInput{
		Email: "alice@example.com", Password: "s3cret!",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if login.UserID != reg.UserID {
		t.Errorf("login user id %s does not match registration %s", login.UserID, reg.UserID)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc := newTestUseCase(newMockUserRepo())

	input := &dto.RegisterInput{Username: "alice", Email: "alice@example.com", Password: "s3cret!"}
	if _, err := uc.Register(context.Background(), input); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	_, err := uc.Register(context.Background(), input)
	if !apperr.Is(err, apperr.Conflict) {
		t.Errorf("expected Conflict for duplicate email, got: %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	uc := newTestUseCase(newMockUserRepo())

	if _, err := uc.Register(context.Background(), &dto.RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "s3cret!",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, err := uc.Login(context.Background(), &dto.LoginInput{Email: "alice@example.com", Password: "wrong"})
	if !apperr.Is(err, apperr.Auth) {
		t.Errorf("expected Auth error, got: %v", err)
	}

	_, err = uc.Login(context.Background(), &dto.LoginInput{Email: "nobody@example.com", Password: "s3cret!"})
	if !apperr.Is(err, apperr.Auth) {
		t.Errorf("expected Auth error for unknown email, got: %v", err)
	}
}
