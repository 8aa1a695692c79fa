// Package adapters はnutritionフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/aniket-shopoholic/Nutriscan-sub001/internal/feature/nutrition/domain"
	"github.com/aniket-shopoholic/Nutriscan-sub001/internal/feature/nutrition/domain/entity"
	"github.com/aniket-shopoholic/Nutriscan-sub001/internal/feature/nutrition/usecase"
)

// nutritionPostgres はNutritionRepositoryインターフェースのPostgreSQL実装です。
// GORMを使用してデータベース操作を行います。
type nutritionPostgres struct {
	db *gorm.DB
}

// nutritionPostgresがNutritionRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.NutritionRepository = (*nutritionPostgres)(nil)

// NewNutritionRepository は指定されたgorm.DB接続でnutritionPostgresの新しいインスタンスを生成します。
func NewNutritionRepository(db *gorm.DB) *nutritionPostgres {
	return &nutritionPostgres{db: db}
}

// FindByName は食品名で栄養成分を取得します。
// 未登録の場合、domain.ErrFactNotFoundを返します。
func (r *nutritionPostgres) FindByName(ctx context.Context, name string) (*entity.NutritionFact, error) {
	var fact entity.NutritionFact
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&fact).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFactNotFound
		}
		return nil, err
	}
	return &fact, nil
}

// UpsertBatch は栄養成分をまとめて登録・更新します。
// 同じ食品名の既存レコードは成分値が上書きされます。
func (r *nutritionPostgres) UpsertBatch(ctx context.Context, facts []entity.NutritionFact) error {
	if len(facts) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"category", "calories", "protein", "carbs", "fat"}),
		}).
		Create(&facts).Error
}

// DefaultFacts は初期投入用の栄養成分データです（100gあたり）。
// fooddetectionパイプラインのカテゴリレジストリに載る代表的な食品をカバーします。
func DefaultFacts() []entity.NutritionFact {
	return []entity.NutritionFact{
		{Name: "Apple", Category: "Fruits", Calories: 52, Protein: 0.3, Carbs: 13.8, Fat: 0.2},
		{Name: "Banana", Category: "Fruits", Calories: 89, Protein: 1.1, Carbs: 22.8, Fat: 0.3},
		{Name: "Orange", Category: "Fruits", Calories: 47, Protein: 0.9, Carbs: 11.8, Fat: 0.1},
		{Name: "Tomato", Category: "Vegetables", Calories: 18, Protein: 0.9, Carbs: 3.9, Fat: 0.2},
		{Name: "Carrot", Category: "Vegetables", Calories: 41, Protein: 0.9, Carbs: 9.6, Fat: 0.2},
		{Name: "Broccoli", Category: "Vegetables", Calories: 34, Protein: 2.8, Carbs: 6.6, Fat: 0.4},
		{Name: "Chicken", Category: "Protein", Calories: 239, Protein: 27.3, Carbs: 0, Fat: 13.6},
		{Name: "Salmon", Category: "Protein", Calories: 208, Protein: 20.4, Carbs: 0, Fat: 13.4},
		{Name: "Egg", Category: "Protein", Calories: 155, Protein: 13, Carbs: 1.1, Fat: 11},
		{Name: "Milk", Category: "Dairy", Calories: 61, Protein: 3.2, Carbs: 4.8, Fat: 3.3},
		{Name: "Cheese", Category: "Dairy", Calories: 402, Protein: 25, Carbs: 1.3, Fat: 33},
		{Name: "Bread", Category: "Grains", Calories: 265, Protein: 9, Carbs: 49, Fat: 3.2},
		{Name: "Rice", Category: "Grains", Calories: 130, Protein: 2.7, Carbs: 28.2, Fat: 0.3},
		{Name: "Pizza", Category: "Fast Food", Calories: 266, Protein: 11, Carbs: 33, Fat: 10},
		{Name: "Burger", Category: "Fast Food", Calories: 295, Protein: 17, Carbs: 24, Fat: 14},
		{Name: "Cake", Category: "Desserts", Calories: 367, Protein: 5.4, Carbs: 55, Fat: 14},
		{Name: "Chocolate", Category: "Desserts", Calories: 546, Protein: 4.9, Carbs: 61, Fat: 31},
	}
}
