// Package api はHTTPリクエスト/レスポンスのDTOを定義します。
package api

// ErrorResponse はエラー時の共通レスポンスです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse は成功時の簡易メッセージレスポンスです。
type MessageResponse struct {
	Message string `json:"message"`
}

// SignupRequest はユーザー登録リクエストです。
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest はログインリクエストです。
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse はログイン成功時のJWTトークンレスポンスです。
type TokenResponse struct {
	Token string `json:"token"`
}

// BoundingBoxResponse は検出領域の矩形です。座標は画像サイズに対する0〜1の比率です。
type BoundingBoxResponse struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DetectedFoodResponse は検出された食品1件のレスポンスです。
type DetectedFoodResponse struct {
	Name        string               `json:"name"`
	Confidence  float64              `json:"confidence"`
	Category    string               `json:"category"`
	BoundingBox *BoundingBoxResponse `json:"bounding_box,omitempty"`
}

// ImageAnalysisResponse は画像全体の分析結果のレスポンスです。
type ImageAnalysisResponse struct {
	Quality    string  `json:"quality"`
	Confidence float64 `json:"confidence"`
	HasFood    bool    `json:"has_food"`
}

// FoodDetectionResponse は食品検出APIのレスポンスです。
type FoodDetectionResponse struct {
	DetectedFoods []DetectedFoodResponse `json:"detected_foods"`
	ImageAnalysis ImageAnalysisResponse  `json:"image_analysis"`
}

// NutritionAdviceRequest は栄養アドバイスのリクエストです。
type NutritionAdviceRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
}

// NutritionAdviceResponse は栄養アドバイスのレスポンスです。
type NutritionAdviceResponse struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Summary  string `json:"summary"`
}

// NutritionFactResponse は食品100gあたりの栄養成分のレスポンスです。
type NutritionFactResponse struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}
