package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aniket-shopoholic/Nutriscan-sub001/internal/api"
	"github.com/aniket-shopoholic/Nutriscan-sub001/internal/feature/fooddetection/adapters/gemini"
	"github.com/aniket-shopoholic/Nutriscan-sub001/internal/feature/fooddetection/adapters/vision"
	"github.com/aniket-shopoholic/Nutriscan-sub001/internal/feature/fooddetection/domain/entity"
	foodusecase "github.com/aniket-shopoholic/Nutriscan-sub001/internal/feature/fooddetection/usecase"
)

// batchResult は1画像分の検出結果の出力形式です。
type batchResult struct {
	File   string                     `json:"file"`
	Result *api.FoodDetectionResponse `json:"result,omitempty"`
	Error  string                     `json:"error,omitempty"`
}

func main() {
	dir := flag.String("dir", ".", "画像ディレクトリ（jpg/jpeg/pngを対象）")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	labelDetector, err := vision.NewVisionLabelDetector(ctx)
	if err != nil {
		log.Fatal("failed to create vision client:", err)
	}
	defer func() {
		if err := labelDetector.Close(); err != nil {
			log.Println("[ERROR] Failed to close vision client:", err)
		}
	}()

	advisor, err := gemini.NewGeminiAdvisor(ctx)
	if err != nil {
		log.Fatal("failed to create gemini client:", err)
	}

	uc := foodusecase.NewFoodDetectionUsecase(labelDetector, advisor)

	entries, err := os.ReadDir(*dir)
	if err != nil {
		log.Fatal("failed to read directory:", err)
	}

	enc := json.NewEncoder(os.Stdout)
	processed := 0
	for _, e := range entries {
		if e.IsDir() || !isImageFile(e.Name()) {
			continue
		}
		path := filepath.Join(*dir, e.Name())

		// 1画像の失敗はバッチ全体を止めず、記録して次へ進む
		data, err := os.ReadFile(path)
		if err != nil {
			log.Println("[WARN] failed to read image:", path, err)
			_ = enc.Encode(batchResult{File: e.Name(), Error: err.Error()})
			continue
		}

		result, err := uc.ScanImage(ctx, data)
		if err != nil {
			log.Println("[WARN] failed to scan image:", path, err)
			_ = enc.Encode(batchResult{File: e.Name(), Error: err.Error()})
			continue
		}

		out := toResponse(result)
		_ = enc.Encode(batchResult{File: e.Name(), Result: &out})
		processed++
	}

	log.Printf("batch done: %d images processed", processed)
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

// isImageFile は対象とする画像拡張子かどうかを判定します。
func isImageFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png":
		return true
	}
	return false
}
