// Package handler はnutritionフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aniket-shopoholic/Nutriscan-sub001/internal/api"
	"github.com/aniket-shopoholic/Nutriscan-sub001/internal/feature/nutrition/domain"
	"github.com/aniket-shopoholic/Nutriscan-sub001/internal/feature/nutrition/domain/entity"
)

// NutritionUsecase は栄養成分参照のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type NutritionUsecase interface {
	GetFact(ctx context.Context, name string) (*entity.NutritionFact, error)
}

// NutritionHandler は栄養成分参照のHTTPリクエストを処理します。
type NutritionHandler struct {
	uc NutritionUsecase
}

// NewNutritionHandler はNutritionHandlerの新しいインスタンスを生成します。
func NewNutritionHandler(uc NutritionUsecase) *NutritionHandler {
	return &NutritionHandler{uc: uc}
}

// GetFact は食品名で栄養成分を取得します。
//
// エンドポイント: GET /v1/nutrition/:name
func (h *NutritionHandler) GetFact(c *gin.Context) {
	name := c.Param("name")

	fact, err := h.uc.GetFact(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrFactNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "栄養成分が登録されていません"})
			return
		}
		slog.Error("栄養成分の取得に失敗", "error", err, "name", name)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "栄養成分の取得に失敗しました"})
		return
	}

	c.JSON(http.StatusOK, api.NutritionFactResponse{
		Name:     fact.Name,
		Category: fact.Category,
		Calories: fact.Calories,
		Protein:  fact.Protein,
		Carbs:    fact.Carbs,
		Fat:      fact.Fat,
	})
}
