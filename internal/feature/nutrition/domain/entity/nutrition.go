// Package entity はnutritionフィーチャーのドメインモデルを定義します。
package entity

// NutritionFact は食品100gあたりの栄養成分を表します。
// Nameはfooddetectionパイプラインが出力する正規化済みの食品名と対応します。
type NutritionFact struct {
	ID       uint    `gorm:"primaryKey"`
	Name     string  `gorm:"size:100;not null;uniqueIndex"`
	Category string  `gorm:"size:50;not null"`
	Calories float64 `gorm:"not null"` // kcal
	Protein  float64 `gorm:"not null"` // g
	Carbs    float64 `gorm:"not null"` // g
	Fat      float64 `gorm:"not null"` // g
}

// TableName はNutritionFactのテーブル名を指定します。
func (NutritionFact) TableName() string {
	return "nutrition_facts"
}
