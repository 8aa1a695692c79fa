package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/aniket-shopoholic/Nutriscan-sub001/internal/feature/auth/domain"
	"github.com/aniket-shopoholic/Nutriscan-sub001/internal/feature/auth/transport/handler"
)

// mockAuthUsecase はAuthUsecaseインターフェースのモック実装です。
type mockAuthUsecase struct {
	SignupFunc func(ctx context.Context, email, password string) error
	LoginFunc  func(ctx context.Context, email, password string) (string, error)
}

func (m *mockAuthUsecase) Signup(ctx context.Context, email, password string) error {
	return m.SignupFunc(ctx, email, password)
}

func (m *mockAuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	return m.LoginFunc(ctx, email, password)
}

func TestAuthHandler_Signup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    string
		mockFunc       func(ctx context.Context, email, password string) error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "success: user created",
			requestBody: `{"email":"user@example.com","password":"secure-password"}`,
			mockFunc: func(ctx context.Context, email, password string) error {
				return nil
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"message":"ok"}`,
		},
		{
			name:           "error: invalid email format",
			requestBody:    `{"email":"not-an-email","password":"secure-password"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request"}`,
		},
		{
			name:        "error: duplicate email hidden behind generic message",
			requestBody: `{"email":"user@example.com","password":"secure-password"}`,
			mockFunc: func(ctx context.Context, email, password string) error {
				return domain.ErrEmailAlreadyExists
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"error":"signup failed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{SignupFunc: tt.mockFunc}

			h := handler.NewAuthHandler(mockUC)

			router := gin.New()
			router.POST("/signup", h.Signup)

			req, err := http.NewRequest(http.MethodPost, "/signup", strings.NewReader(tt.requestBody))
			if err != nil {
				t.Fatalf("failed to create request: %v", err)
			}
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    string
		mockFunc       func(ctx context.Context, email, password string) (string, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "success: token returned",
			requestBody: `{"email":"user@example.com","password":"secure-password"}`,
			mockFunc: func(ctx context.Context, email, password string) (string, error) {
				return "signed-token", nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"token":"signed-token"}`,
		},
		{
			name:           "error: missing password",
			requestBody:    `{"email":"user@example.com"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request"}`,
		},
		{
			name:        "error: invalid credentials",
			requestBody: `{"email":"user@example.com","password":"wrong"}`,
			mockFunc: func(ctx context.Context, email, password string) (string, error) {
				return "", domain.ErrInvalidCredentials
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"invalid email or password"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{LoginFunc: tt.mockFunc}

			h := handler.NewAuthHandler(mockUC)

			router := gin.New()
			router.POST("/login", h.Login)

			req, err := http.NewRequest(http.MethodPost, "/login", strings.NewReader(tt.requestBody))
			if err != nil {
				t.Fatalf("failed to create request: %v", err)
			}
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
