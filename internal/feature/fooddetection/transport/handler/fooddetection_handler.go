// Package handler はfooddetectionフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aniket-shopoholic/Nutriscan-sub001/internal/api"
	"github.com/aniket-shopoholic/Nutriscan-sub001/internal/feature/fooddetection/domain"
	"github.com/aniket-shopoholic/Nutriscan-sub001/internal/feature/fooddetection/domain/entity"
)

// FoodDetectionUsecase は食品検出・栄養アドバイスのユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type FoodDetectionUsecase interface {
	ScanImage(ctx context.Context, imageData []byte) (*entity.FoodDetectionResult, error)
	AdviseNutrition(ctx context.Context, name, category string) (*entity.NutritionAdvice, error)
}

// FoodDetectionHandler は食品検出・栄養アドバイスのHTTPリクエストを処理します。
type FoodDetectionHandler struct {
	uc FoodDetectionUsecase
}

// NewFoodDetectionHandler はFoodDetectionHandlerの新しいインスタンスを生成します。
func NewFoodDetectionHandler(uc FoodDetectionUsecase) *FoodDetectionHandler {
	return &FoodDetectionHandler{uc: uc}
}

// DetectFood は画像をアップロードして食品を検出します。
//
// エンドポイント: POST /v1/food/detect
// Content-Type: multipart/form-data
// フィールド: image（画像ファイル、最大10MB）
func (h *FoodDetectionHandler) DetectFood(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		slog.Warn("画像ファイルの取得に失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "画像ファイルが必要です"})
		return
	}

	f, err := file.Open()
	if err != nil {
		slog.Error("画像ファイルのオープンに失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "画像の読み込みに失敗しました"})
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("画像ファイルのクローズに失敗", "error", err)
		}
	}()

	imageData, err := io.ReadAll(f)
	if err != nil {
		slog.Error("画像データの読み取りに失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "画像の読み込みに失敗しました"})
		return
	}

	result, err := h.uc.ScanImage(c.Request.Context(), imageData)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyLabelBatch) {
			slog.Warn("ラベルが検出されなかった画像", "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: "画像からラベルを検出できませんでした"})
			return
		}
		slog.Error("食品検出に失敗", "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "食品検出に失敗しました"})
		return
	}

	c.JSON(http.StatusOK, toResponse(result))
}

// AdviseNutrition は食品名から栄養アドバイスを生成します。
//
// エンドポイント: POST /v1/food/advice
// Content-Type: application/json
func (h *FoodDetectionHandler) AdviseNutrition(c *gin.Context) {
	var req api.NutritionAdviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("栄養アドバイスリクエストのバリデーションに失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "食品名が必要です"})
		return
	}

	advice, err := h.uc.AdviseNutrition(c.Request.Context(), req.Name, req.Category)
	if err != nil {
		slog.Error("栄養アドバイスの生成に失敗", "error", err, "food", req.Name)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "栄養アドバイスの生成に失敗しました"})
		return
	}

	c.JSON(http.StatusOK, api.NutritionAdviceResponse{
		Name:     advice.Name,
		Category: advice.Category,
		Summary:  advice.Summary,
	})
}

// toResponse はドメインの検出結果をレスポンスDTOに変換します。
func toResponse(result *entity.FoodDetectionResult) api.FoodDetectionResponse {
	foods := make([]api.DetectedFoodResponse, 0, len(result.DetectedFoods))
	for _, f := range result.DetectedFoods {
		out := api.DetectedFoodResponse{
			Name:       f.Name,
			Confidence: f.Confidence,
			Category:   f.Category,
		}
		if f.BoundingBox != nil {
			out.BoundingBox = &api.BoundingBoxResponse{
				X:      f.BoundingBox.X,
				Y:      f.BoundingBox.Y,
				Width:  f.BoundingBox.Width,
				Height: f.BoundingBox.Height,
			}
		}
		foods = append(foods, out)
	}
	return api.FoodDetectionResponse{
		DetectedFoods: foods,
		ImageAnalysis: api.ImageAnalysisResponse{
			Quality:    string(result.ImageAnalysis.Quality),
			Confidence: result.ImageAnalysis.Confidence,
			HasFood:    result.ImageAnalysis.HasFood,
		},
	}
}
