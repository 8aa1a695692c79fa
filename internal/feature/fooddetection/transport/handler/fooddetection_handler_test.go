package handler_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/aniket-shopoholic/Nutriscan-sub001/internal/feature/fooddetection/domain"
	"github.com/aniket-shopoholic/Nutriscan-sub001/internal/feature/fooddetection/domain/entity"
	"github.com/aniket-shopoholic/Nutriscan-sub001/internal/feature/fooddetection/transport/handler"
)

// mockFoodDetectionUsecase はFoodDetectionUsecaseインターフェースのモック実装です。
type mockFoodDetectionUsecase struct {
	ScanImageFunc       func(ctx context.Context, imageData []byte) (*entity.FoodDetectionResult, error)
	AdviseNutritionFunc func(ctx context.Context, name, category string) (*entity.NutritionAdvice, error)
}

func (m *mockFoodDetectionUsecase) ScanImage(ctx context.Context, imageData []byte) (*entity.FoodDetectionResult, error) {
	return m.ScanImageFunc(ctx, imageData)
}

func (m *mockFoodDetectionUsecase) AdviseNutrition(ctx context.Context, name, category string) (*entity.NutritionAdvice, error) {
	return m.AdviseNutritionFunc(ctx, name, category)
}

// createMultipartRequest はテスト用のマルチパートリクエストを生成するヘルパー関数です。
func createMultipartRequest(t *testing.T, fieldName, fileName string, content []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile(fieldName, fileName)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}

	if _, err := io.Copy(part, bytes.NewReader(content)); err != nil {
		t.Fatalf("failed to copy content: %v", err)
	}

	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, "/food/detect", body)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return req
}

func TestFoodDetectionHandler_DetectFood(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		setupRequest   func(t *testing.T) *http.Request
		mockFunc       func(ctx context.Context, imageData []byte) (*entity.FoodDetectionResult, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: foods detected with bounding box",
			setupRequest: func(t *testing.T) *http.Request {
				return createMultipartRequest(t, "image", "meal.jpg", []byte("fake-image"))
			},
			mockFunc: func(ctx context.Context, imageData []byte) (*entity.FoodDetectionResult, error) {
				return &entity.FoodDetectionResult{
					DetectedFoods: []entity.DetectedFood{
						{
							Name:        "Apple",
							Confidence:  0.95,
							Category:    "Fruits",
							BoundingBox: &entity.BoundingBox{X: 0.1, Y: 0.2, Width: 0.3, Height: 0.4},
						},
					},
					ImageAnalysis: entity.ImageAnalysis{
						Quality:    entity.QualityExcellent,
						Confidence: 0.95,
						HasFood:    true,
					},
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"detected_foods":[{"name":"Apple","confidence":0.95,"category":"Fruits","bounding_box":{"x":0.1,"y":0.2,"width":0.3,"height":0.4}}],"image_analysis":{"quality":"excellent","confidence":0.95,"has_food":true}}`,
		},
		{
			name: "success: no foods detected",
			setupRequest: func(t *testing.T) *http.Request {
				return createMultipartRequest(t, "image", "street.jpg", []byte("fake-image"))
			},
			mockFunc: func(ctx context.Context, imageData []byte) (*entity.FoodDetectionResult, error) {
				return &entity.FoodDetectionResult{
					DetectedFoods: []entity.DetectedFood{},
					ImageAnalysis: entity.ImageAnalysis{
						Quality:    entity.QualityFair,
						Confidence: 0,
						HasFood:    false,
					},
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"detected_foods":[],"image_analysis":{"quality":"fair","confidence":0,"has_food":false}}`,
		},
		{
			name: "error: no image field",
			setupRequest: func(t *testing.T) *http.Request {
				req, _ := http.NewRequest(http.MethodPost, "/food/detect", io.NopCloser(bytes.NewReader(nil)))
				return req
			},
			mockFunc:       nil,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"画像ファイルが必要です"}`,
		},
		{
			name: "error: no labels in image",
			setupRequest: func(t *testing.T) *http.Request {
				return createMultipartRequest(t, "image", "blank.jpg", []byte("fake-image"))
			},
			mockFunc: func(ctx context.Context, imageData []byte) (*entity.FoodDetectionResult, error) {
				return nil, domain.ErrEmptyLabelBatch
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"error":"画像からラベルを検出できませんでした"}`,
		},
		{
			name: "error: usecase returns error",
			setupRequest: func(t *testing.T) *http.Request {
				return createMultipartRequest(t, "image", "meal.jpg", []byte("fake-image"))
			},
			mockFunc: func(ctx context.Context, imageData []byte) (*entity.FoodDetectionResult, error) {
				return nil, errors.New("vision API error")
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"食品検出に失敗しました"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockFoodDetectionUsecase{
				ScanImageFunc: tt.mockFunc,
			}

			h := handler.NewFoodDetectionHandler(mockUC)

			router := gin.New()
			router.POST("/food/detect", h.DetectFood)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, tt.setupRequest(t))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestFoodDetectionHandler_AdviseNutrition(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    string
		mockFunc       func(ctx context.Context, name, category string) (*entity.NutritionAdvice, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "success: advice generated",
			requestBody: `{"name":"Apple","category":"Fruits"}`,
			mockFunc: func(ctx context.Context, name, category string) (*entity.NutritionAdvice, error) {
				return &entity.NutritionAdvice{
					Name:     name,
					Category: category,
					Summary:  "りんごは食物繊維が豊富です。",
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"name":"Apple","category":"Fruits","summary":"りんごは食物繊維が豊富です。"}`,
		},
		{
			name:           "error: missing name",
			requestBody:    `{"category":"Fruits"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"食品名が必要です"}`,
		},
		{
			name:        "error: usecase returns error",
			requestBody: `{"name":"Apple"}`,
			mockFunc: func(ctx context.Context, name, category string) (*entity.NutritionAdvice, error) {
				return nil, errors.New("gemini API error")
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"栄養アドバイスの生成に失敗しました"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockFoodDetectionUsecase{
				AdviseNutritionFunc: tt.mockFunc,
			}

			h := handler.NewFoodDetectionHandler(mockUC)

			router := gin.New()
			router.POST("/food/advice", h.AdviseNutrition)

			req, err := http.NewRequest(http.MethodPost, "/food/advice", strings.NewReader(tt.requestBody))
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
