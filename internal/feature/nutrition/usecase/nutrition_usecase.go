// Package usecase はnutritionフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/aniket-shopoholic/Nutriscan-sub001/internal/feature/nutrition/domain/entity"
)

// NutritionRepository は栄養成分エンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type NutritionRepository interface {
	// FindByName は食品名（正規化済み、完全一致）で栄養成分を取得します。
	// 未登録の場合、domain.ErrFactNotFoundを返します。
	FindByName(ctx context.Context, name string) (*entity.NutritionFact, error)

	// UpsertBatch は栄養成分をまとめて登録・更新します。
	UpsertBatch(ctx context.Context, facts []entity.NutritionFact) error
}

// nutritionUsecase は栄養成分参照のビジネスロジックを提供します。
type nutritionUsecase struct {
	facts NutritionRepository
}

// NewNutritionUsecase はnutritionUsecaseの新しいインスタンスを生成します。
func NewNutritionUsecase(facts NutritionRepository) *nutritionUsecase {
	return &nutritionUsecase{facts: facts}
}

// GetFact は食品名で栄養成分を取得します。
// 前後の空白は取り除きますが、名前の解決は完全一致のみです。
func (u *nutritionUsecase) GetFact(ctx context.Context, name string) (*entity.NutritionFact, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("food name is required")
	}
	return u.facts.FindByName(ctx, name)
}

// RegisterFacts は栄養成分をまとめて登録します。
func (u *nutritionUsecase) RegisterFacts(ctx context.Context, facts []entity.NutritionFact) error {
	for _, f := range facts {
		if strings.TrimSpace(f.Name) == "" {
			return fmt.Errorf("nutrition fact name is required")
		}
	}
	return u.facts.UpsertBatch(ctx, facts)
}
