package usecase_test

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/iho/finrecords/internal/domain"
	"github.com/iho/finrecords/internal/usecase"
)

type stubUserRepo struct {
	createFn     func(ctx context.Context, user *domain.User) error
	getByIDFn    func(ctx context.Context, id string) (*domain.User, error)
	getByEmailFn func(ctx context.Context, email string) (*domain.User, error)
}

func (s *stubUserRepo) Create(ctx context.Context, user *domain.User) error {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	return nil
}

func (s *stubUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(ctx, email)
	}
	return nil, nil
}

type stubIDGen struct{ id string }

func (s stubIDGen) Generate() string { return s.id }

func TestUserUseCase_CreateUser_Success(t *testing.T) {
	t.Parallel()

	var stored *domain.User
	repo := &stubUserRepo{
		createFn: func(_ context.Context, user *domain.User) error {
			if user.HashedPassword == "" {
				t.Fatal("expected user to be persisted with hashed password")
			}
			copied := *user
			stored = &copied
			return nil
		},
	}

	uc := usecase.NewUserUseCase(repo, stubIDGen{id: "01ARZ3NDEKTSV4RRFFQ69G5FAV"})

	user, err := uc.CreateUser(context.Background(), usecase.CreateUserInput{
		Email:    "user@example.com",
		Name:     "Alice",
		Password: "StrongPass1",
		Role:     domain.RoleOperator,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stored == nil {
		t.Fatal("expected user to be stored")
	}
	if stored.ID != "01ARZ3NDEKTSV4RRFFQ69G5FAV" {
		t.Fatalf("expected generated ID to be used, got %s", stored.ID)
	}
	if user.HashedPassword != "" {
		t.Fatal("expected returned user to hide hashed password")
	}
}

func TestUserUseCase_CreateUser_ValidationErrors(t *testing.T) {
	t.Parallel()

	uc := usecase.NewUserUseCase(&stubUserRepo{}, stubIDGen{id: "id"})

	_, err := uc.CreateUser(context.Background(), usecase.CreateUserInput{
		Email:    "invalid-email",
		Name:     "Bob",
		Password: "StrongPass1",
		Role:     domain.RoleAdmin,
	})
	if !errors.Is(err, domain.ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}

	_, err = uc.CreateUser(context.Background(), usecase.CreateUserInput{
		Email:    "user@example.com",
		Name:     "Bob",
		Password: "weak",
		Role:     domain.RoleAdmin,
	})
	if !errors.Is(err, domain.ErrPasswordTooWeak) {
		t.Fatalf("expected ErrPasswordTooWeak, got %v", err)
	}

	_, err = uc.CreateUser(context.Background(), usecase.CreateUserInput{
		Email:    "user@example.com",
		Name:     "Bob",
		Password: "StrongPass1",
		Role:     "invalid",
	})
	if err == nil || err.Error() != "invalid role" {
		t.Fatalf("expected invalid role error, got %v", err)
	}
}

func TestUserUseCase_CreateUser_DuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := &stubUserRepo{
		getByEmailFn: func(context.Context, string) (*domain.User, error) {
			return &domain.User{ID: "existing"}, nil
		},
	}

	uc := usecase.NewUserUseCase(repo, stubIDGen{id: "id"})

	_, err := uc.CreateUser(context.Background(), usecase.CreateUserInput{
		Email:    "user@example.com",
		Name:     "Bob",
		Password: "StrongPass1",
		Role:     domain.RoleViewer,
	})
	if err == nil {
		t.Fatal("expected duplicate email to be rejected")
	}
}

func TestUserUseCase_Authenticate(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("StrongPass1"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	repo := &stubUserRepo{
		getByEmailFn: func(context.Context, string) (*domain.User, error) {
			return &domain.User{
				ID:             "user-1",
				Email:          "user@example.com",
				HashedPassword: string(hash),
				Role:           domain.RoleOperator,
				Active:         true,
			}, nil
		},
	}

	uc := usecase.NewUserUseCase(repo, stubIDGen{id: "id"})

	user, err := uc.Authenticate(context.Background(), usecase.AuthenticateInput{
		Email:    "user@example.com",
		Password: "StrongPass1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.HashedPassword != "" {
		t.Fatal("expected hashed password to be hidden")
	}

	_, err = uc.Authenticate(context.Background(), usecase.AuthenticateInput{
		Email:    "user@example.com",
		Password: "WrongPass1",
	})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestUserUseCase_Authenticate_InactiveUser(t *testing.T) {
	t.Parallel()

	repo := &stubUserRepo{
		getByEmailFn: func(context.Context, string) (*domain.User, error) {
			return &domain.User{ID: "user-1", Active: false}, nil
		},
	}

	uc := usecase.NewUserUseCase(repo, stubIDGen{id: "id"})

	if _, err := uc.Authenticate(context.Background(), usecase.AuthenticateInput{
		Email:    "user@example.com",
		Password: "StrongPass1",
	}); err == nil {
		t.Fatal("expected inactive account to be rejected")
	}
}
