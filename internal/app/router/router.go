// Package router はAPIルーティングを定義します。
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authhandler "github.com/aniket-shopoholic/Nutriscan-sub001/internal/feature/auth/transport/handler"
	foodhandler "github.com/aniket-shopoholic/Nutriscan-sub001/internal/feature/fooddetection/transport/handler"
	nutritionhandler "github.com/aniket-shopoholic/Nutriscan-sub001/internal/feature/nutrition/transport/handler"
	jwtmw "github.com/aniket-shopoholic/Nutriscan-sub001/internal/platform/jwt"
)

// NewRouter はすべてのエンドポイントを登録したginルーターを生成します。
//
// 公開エンドポイント:
//   - GET  /healthz
//   - POST /signup
//   - POST /login
//
// 認証必須エンドポイント（Bearerトークン）:
//   - POST /v1/food/detect
//   - POST /v1/food/advice
//   - GET  /v1/nutrition/:name
func NewRouter(
	authH *authhandler.AuthHandler,
	foodH *foodhandler.FoodDetectionHandler,
	nutritionH *nutritionhandler.NutritionHandler,
) *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/signup", authH.Signup)
	r.POST("/login", authH.Login)

	v1 := r.Group("/v1", jwtmw.AuthRequired())
	{
		v1.POST("/food/detect", foodH.DetectFood)
		v1.POST("/food/advice", foodH.AdviseNutrition)
		v1.GET("/nutrition/:name", nutritionH.GetFact)
	}

	return r
}
