package main

import (
	"context"
	"log"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"github.com/aniket-shopoholic/Nutriscan-sub001/internal/app/router"
	authadapters "github.com/aniket-shopoholic/Nutriscan-sub001/internal/feature/auth/adapters"
	authhandler "github.com/aniket-shopoholic/Nutriscan-sub001/internal/feature/auth/transport/handler"
	authusecase "github.com/aniket-shopoholic/Nutriscan-sub001/internal/feature/auth/usecase"
	"github.com/aniket-shopoholic/Nutriscan-sub001/internal/feature/fooddetection/adapters/gemini"
	"github.com/aniket-shopoholic/Nutriscan-sub001/internal/feature/fooddetection/adapters/vision"
	foodhandler "github.com/aniket-shopoholic/Nutriscan-sub001/internal/feature/fooddetection/transport/handler"
	foodusecase "github.com/aniket-shopoholic/Nutriscan-sub001/internal/feature/fooddetection/usecase"
	nutritionadapters "github.com/aniket-shopoholic/Nutriscan-sub001/internal/feature/nutrition/adapters"
	nutritionhandler "github.com/aniket-shopoholic/Nutriscan-sub001/internal/feature/nutrition/transport/handler"
	nutritionusecase "github.com/aniket-shopoholic/Nutriscan-sub001/internal/feature/nutrition/usecase"
	"github.com/aniket-shopoholic/Nutriscan-sub001/internal/infrastructure/cache"
	infradb "github.com/aniket-shopoholic/Nutriscan-sub001/internal/infrastructure/db"
	infraredis "github.com/aniket-shopoholic/Nutriscan-sub001/internal/infrastructure/redis"
	jwtmw "github.com/aniket-shopoholic/Nutriscan-sub001/internal/platform/jwt"
)

func main() {
	ctx := context.Background()

	// db
	db, err := infradb.OpenDB()
	if err != nil {
		log.Fatal(err)
	}

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(ctx); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// 外部API（Vision / Gemini）
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

	// JWT_SECRETチェック（開発中の注意喚起）
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}
	jwtGen := jwtmw.NewGenerator(secret, 24*time.Hour)

	// Repository
	userRepo := authadapters.NewUserRepository(db)
	nutritionRepo := nutritionadapters.NewNutritionRepository(db)

	// Redisキャッシュでラップ
	cachedNutritionRepo := cache.NewCachingNutritionRepository(rdb, 24*time.Hour, nutritionRepo, "nutrition")

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)
	foodUC := foodusecase.NewFoodDetectionUsecase(labelDetector, advisor)
	nutritionUC := nutritionusecase.NewNutritionUsecase(cachedNutritionRepo)

	// 初期データ投入（既存レコードは上書き）
	if err := nutritionUC.RegisterFacts(ctx, nutritionadapters.DefaultFacts()); err != nil {
		log.Println("[WARN] Failed to seed nutrition facts:", err)
	}

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	foodH := foodhandler.NewFoodDetectionHandler(foodUC)
	nutritionH := nutritionhandler.NewNutritionHandler(nutritionUC)

	// ルータ生成
	r := router.NewRouter(authH, foodH, nutritionH)

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
