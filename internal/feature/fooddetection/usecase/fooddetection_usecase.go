// Package usecase はfooddetectionフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"unicode/utf8"

	"github.com/aniket-shopoholic/Nutriscan-sub001/internal/feature/fooddetection/domain"
	"github.com/aniket-shopoholic/Nutriscan-sub001/internal/feature/fooddetection/domain/entity"
)

const (
	// MaxImageSize は画像アップロードの最大サイズ（10MB）です。
	MaxImageSize = 10 * 1024 * 1024
	// MinLabelConfidence はパイプラインが処理するラベルの信頼度下限です。
	MinLabelConfidence = 70.0
	// AdvicePromptTemplate は栄養アドバイスのプロンプトテンプレートです。
	AdvicePromptTemplate = "日本語で、%s（カテゴリ: %s）の100gあたりの主な栄養素と健康面のポイントを3つ挙げて。"
	// MaxFoodNameLength は食品名の最大文字数（rune数）です。
	MaxFoodNameLength = 100
)

// validFoodName は食品名に許可される文字パターンです（英数字・日本語・スペース・ハイフン等）。
var validFoodName = regexp.MustCompile(`^[\p{L}\p{N}\s・\-\.&,]+$`)

// LabelDetector は画像からラベルを検出するリポジトリインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type LabelDetector interface {
	// DetectLabels は画像バイト列からラベルバッチを検出して返します。
	// 信頼度は0〜100、バウンディングボックスは0〜1の比率で返されます。
	DetectLabels(ctx context.Context, imageData []byte) ([]entity.Label, error)
}

// NutritionAdvisor は栄養アドバイスを生成するリポジトリインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type NutritionAdvisor interface {
	// Advise はプロンプトからアドバイス本文を生成します。
	Advise(ctx context.Context, prompt string) (string, error)
}

// foodDetectionUsecase は食品検出・栄養アドバイスのビジネスロジックを提供します。
type foodDetectionUsecase struct {
	labelDetector    LabelDetector
	nutritionAdvisor NutritionAdvisor
}

// NewFoodDetectionUsecase はfoodDetectionUsecaseの新しいインスタンスを生成します。
func NewFoodDetectionUsecase(ld LabelDetector, na NutritionAdvisor) *foodDetectionUsecase {
	return &foodDetectionUsecase{labelDetector: ld, nutritionAdvisor: na}
}

// ScanImage は画像データからラベルを検出し、食品検出パイプラインを実行します。
func (u *foodDetectionUsecase) ScanImage(ctx context.Context, imageData []byte) (*entity.FoodDetectionResult, error) {
	if len(imageData) == 0 {
		return nil, fmt.Errorf("image data is empty")
	}
	if len(imageData) > MaxImageSize {
		return nil, fmt.Errorf("image size exceeds maximum of %d bytes", MaxImageSize)
	}
	labels, err := u.labelDetector.DetectLabels(ctx, imageData)
	if err != nil {
		return nil, fmt.Errorf("label detection failed: %w", err)
	}
	return u.DetectFood(labels)
}

// DetectFood は生のラベルバッチを解釈し、重複除去・カテゴリ付与済みの
// 食品リストと画像全体の分析結果を返します。
// ラベルバッチが空の場合、domain.ErrEmptyLabelBatchを返します。
func (u *foodDetectionUsecase) DetectFood(labels []entity.Label) (*entity.FoodDetectionResult, error) {
	// 信頼度と食品関連性の両方を満たすラベルのみが後段に進みます。
	filtered := make([]entity.Label, 0, len(labels))
	for _, l := range labels {
		if l.Confidence > MinLabelConfidence && IsFoodRelevant(l) {
			filtered = append(filtered, l)
		}
	}

	foods := assemble(filtered)

	// 品質判定はフィルタ前の全ラベルに対して行います。
	quality, err := AssessQuality(labels)
	if err != nil {
		return nil, err
	}

	overall := 0.0
	if len(foods) > 0 {
		// 信頼度降順ソート済みのため先頭が最大値
		overall = foods[0].Confidence
	}

	return &entity.FoodDetectionResult{
		DetectedFoods: foods,
		ImageAnalysis: entity.ImageAnalysis{
			Quality:    quality,
			Confidence: overall,
			HasFood:    len(foods) > 0,
		},
	}, nil
}

// assemble はフィルタ済みラベルをDetectedFoodの列に変換します。
// 入力順に正規化・重複除去・汎用ラベル抑制・カテゴリ付与を行い、
// 信頼度降順（同値は入力順維持）でソートして返します。
func assemble(filtered []entity.Label) []entity.DetectedFood {
	// 具体的な食品ラベルが1つでも存在する場合、汎用カテゴリラベルは抑制されます。
	specificCount := 0
	for _, l := range filtered {
		if !isGenericName(l.Name) {
			specificCount++
		}
	}

	seen := make(map[string]struct{}, len(filtered))
	foods := make([]entity.DetectedFood, 0, len(filtered))
	for _, l := range filtered {
		if l.Confidence <= MinLabelConfidence {
			continue
		}
		name := NormalizeName(l.Name)
		if _, ok := seen[name]; ok {
			// 最初の出現が優先。後続の重複は信頼度やボックスが異なっても破棄
			continue
		}
		if isGenericName(l.Name) && specificCount > 0 {
			continue
		}

		var box *entity.BoundingBox
		if len(l.Instances) > 0 {
			// 複数インスタンスがあっても先頭のみを採用（個数カウントは扱わない）
			inst := l.Instances[0]
			box = &entity.BoundingBox{
				X:      inst.Left,
				Y:      inst.Top,
				Width:  inst.Width,
				Height: inst.Height,
			}
		}

		seen[name] = struct{}{}
		foods = append(foods, entity.DetectedFood{
			Name:        name,
			Confidence:  l.Confidence / 100,
			Category:    CategoryFor(name),
			BoundingBox: box,
		})
	}

	sort.SliceStable(foods, func(i, j int) bool {
		return foods[i].Confidence > foods[j].Confidence
	})
	return foods
}

// AssessQuality は生のラベルバッチ全体から画質・信頼度の判定を導出します。
// バッチが空の場合、最大信頼度が定義できないためdomain.ErrEmptyLabelBatchを返します。
func AssessQuality(labels []entity.Label) (entity.Quality, error) {
	if len(labels) == 0 {
		return "", domain.ErrEmptyLabelBatch
	}

	maxConf := labels[0].Confidence
	foodCount := 0
	for _, l := range labels {
		if l.Confidence > maxConf {
			maxConf = l.Confidence
		}
		if IsFoodRelevant(l) {
			foodCount++
		}
	}

	switch {
	case maxConf > 90 && foodCount >= 2:
		return entity.QualityExcellent, nil
	case maxConf > 80 && foodCount >= 1:
		return entity.QualityGood, nil
	case maxConf > 70:
		return entity.QualityFair, nil
	default:
		return entity.QualityPoor, nil
	}
}

// AdviseNutrition は食品名とカテゴリから栄養アドバイスを生成します。
// カテゴリが空の場合、正規化名からカテゴリレジストリで解決します。
func (u *foodDetectionUsecase) AdviseNutrition(ctx context.Context, name, category string) (*entity.NutritionAdvice, error) {
	if name == "" {
		return nil, fmt.Errorf("food name is required")
	}
	if utf8.RuneCountInString(name) > MaxFoodNameLength {
		return nil, fmt.Errorf("food name exceeds maximum length of %d characters", MaxFoodNameLength)
	}
	if !validFoodName.MatchString(name) {
		return nil, fmt.Errorf("food name contains invalid characters")
	}

	canonical := NormalizeName(name)
	if category == "" {
		category = CategoryFor(canonical)
	}

	prompt := fmt.Sprintf(AdvicePromptTemplate, canonical, category)
	summary, err := u.nutritionAdvisor.Advise(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("nutrition advisor failed for %q: %w", canonical, err)
	}
	return &entity.NutritionAdvice{
		Name:     canonical,
		Category: category,
		Summary:  summary,
	}, nil
}
