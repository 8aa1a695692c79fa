package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/aniket-shopoholic/Nutriscan-sub001/internal/feature/auth/domain"
	"github.com/aniket-shopoholic/Nutriscan-sub001/internal/feature/auth/domain/entity"
	"github.com/aniket-shopoholic/Nutriscan-sub001/internal/feature/auth/usecase"
)

// mockUserRepository はUserRepositoryインターフェースのモック実装です。
type mockUserRepository struct {
	CreateFunc      func(ctx context.Context, user *entity.User) error
	FindByEmailFunc func(ctx context.Context, email string) (*entity.User, error)
	FindByIDFunc    func(ctx context.Context, id uint) (*entity.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return errors.New("CreateFunc is not implemented")
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, errors.New("FindByEmailFunc is not implemented")
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc is not implemented")
}

// mockJWTGenerator はJWTGeneratorインターフェースのモック実装です。
type mockJWTGenerator struct {
	GenerateTokenFunc func(userID uint, email string) (string, error)
}

func (m *mockJWTGenerator) GenerateToken(userID uint, email string) (string, error) {
	if m.GenerateTokenFunc != nil {
		return m.GenerateTokenFunc(userID, email)
	}
	return "", errors.New("GenerateTokenFunc is not implemented")
}

func TestAuthUsecase_Signup(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		email       string
		password    string
		createFunc  func(ctx context.Context, user *entity.User) error
		expectedErr string
	}{
		{
			name:     "success: user created with hashed password",
			email:    "user@example.com",
			password: "secure-password",
			createFunc: func(ctx context.Context, user *entity.User) error {
				if user.Password == "secure-password" {
					t.Error("password must be hashed before persisting")
				}
				if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secure-password")); err != nil {
					t.Errorf("stored hash does not match original password: %v", err)
				}
				return nil
			},
		},
		{
			name:        "error: password too short",
			email:       "user@example.com",
			password:    "short",
			expectedErr: "password must be at least",
		},
		{
			name:     "error: duplicate email propagates",
			email:    "user@example.com",
			password: "secure-password",
			createFunc: func(ctx context.Context, user *entity.User) error {
				return domain.ErrEmailAlreadyExists
			},
			expectedErr: domain.ErrEmailAlreadyExists.Error(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockUserRepository{CreateFunc: tc.createFunc}
			uc := usecase.NewAuthUsecase(repo, &mockJWTGenerator{})

			err := uc.Signup(ctx, tc.email, tc.password)

			if tc.expectedErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tc.expectedErr)
				}
				if !strings.Contains(err.Error(), tc.expectedErr) {
					t.Fatalf("expected error containing %q, got %q", tc.expectedErr, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestAuthUsecase_Login(t *testing.T) {
	ctx := context.Background()

	hashed, err := bcrypt.GenerateFromPassword([]byte("secure-password"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash fixture password: %v", err)
	}
	user := &entity.User{ID: 1, Email: "user@example.com", Password: string(hashed)}

	testCases := []struct {
		name          string
		email         string
		password      string
		findFunc      func(ctx context.Context, email string) (*entity.User, error)
		tokenFunc     func(userID uint, email string) (string, error)
		expectedToken string
		expectedErr   error
	}{
		{
			name:     "success: valid credentials return token",
			email:    "user@example.com",
			password: "secure-password",
			findFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return user, nil
			},
			tokenFunc: func(userID uint, email string) (string, error) {
				return "signed-token", nil
			},
			expectedToken: "signed-token",
		},
		{
			name:     "error: unknown user yields generic error",
			email:    "nobody@example.com",
			password: "secure-password",
			findFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return nil, domain.ErrUserNotFound
			},
			expectedErr: domain.ErrInvalidCredentials,
		},
		{
			name:     "error: wrong password yields generic error",
			email:    "user@example.com",
			password: "wrong-password",
			findFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return user, nil
			},
			expectedErr: domain.ErrInvalidCredentials,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockUserRepository{FindByEmailFunc: tc.findFunc}
			gen := &mockJWTGenerator{GenerateTokenFunc: tc.tokenFunc}
			uc := usecase.NewAuthUsecase(repo, gen)

			token, err := uc.Login(ctx, tc.email, tc.password)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if token != tc.expectedToken {
				t.Errorf("token = %q, want %q", token, tc.expectedToken)
			}
		})
	}
}
