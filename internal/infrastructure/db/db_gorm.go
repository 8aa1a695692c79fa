// Package db はGORMによるデータベース接続の初期化を提供します。
package db

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "github.com/aniket-shopoholic/Nutriscan-sub001/internal/feature/auth/domain/entity"
	nutritionentity "github.com/aniket-shopoholic/Nutriscan-sub001/internal/feature/nutrition/domain/entity"
)

// OpenDB は環境変数からDSNを組み立ててPostgreSQLに接続し、
// スキーマのマイグレーションを実行します。
func OpenDB() (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		envOr("DB_HOST", "localhost"),
		envOr("DB_PORT", "5432"),
		envOr("DB_USER", "nutriscan"),
		os.Getenv("DB_PASSWORD"),
		envOr("DB_NAME", "nutriscan"),
	)

	// TranslateErrorを有効化し、ドライバー固有のエラーをGORMの共通エラーへ変換する
	// （一意制約違反をgorm.ErrDuplicatedKeyとして扱うために必要）
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := gormDB.AutoMigrate(
		&authentity.User{},
		&nutritionentity.NutritionFact{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return gormDB, nil
}

// envOr は環境変数の値を返し、未設定ならフォールバック値を返します。
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
