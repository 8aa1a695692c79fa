package entity

// Quality は検出バッチ全体の画質・信頼度の判定結果です。
type Quality string

const (
	QualityExcellent Quality = "excellent"
	QualityGood      Quality = "good"
	QualityFair      Quality = "fair"
	QualityPoor      Quality = "poor"
)

// DetectedFood は正規化済みの食品1件の検出結果を表します。
// Confidenceは0〜1にスケール済みです。
type DetectedFood struct {
	Name        string
	Confidence  float64 // 信頼度スコア（0.0 ~ 1.0）
	Category    string
	BoundingBox *BoundingBox
}

// BoundingBox は検出された食品の矩形領域です。座標は画像サイズに対する0〜1の比率です。
type BoundingBox struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// ImageAnalysis は検出バッチ全体に対する分析結果です。
type ImageAnalysis struct {
	Quality    Quality
	Confidence float64 // 検出食品の最大信頼度（0.0 ~ 1.0）。検出なしの場合は0
	HasFood    bool
}

// FoodDetectionResult は1枚の画像に対するパイプラインの最終結果です。
type FoodDetectionResult struct {
	DetectedFoods []DetectedFood
	ImageAnalysis ImageAnalysis
}

// NutritionAdvice は検出食品に対するAI生成の栄養アドバイスです。
type NutritionAdvice struct {
	Name     string // 対象の食品名（正規化済み）
	Category string
	Summary  string // AI生成のアドバイス本文
}
