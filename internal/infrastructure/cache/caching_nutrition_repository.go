// Package cache はリポジトリのRedisキャッシュデコレーターを提供します。
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aniket-shopoholic/Nutriscan-sub001/internal/feature/nutrition/domain/entity"
	"github.com/aniket-shopoholic/Nutriscan-sub001/internal/feature/nutrition/usecase"
)

// CachingNutritionRepository はNutritionRepositoryをRedisキャッシュでデコレートします。
// rdbがnilの場合はキャッシュを使わず内側のリポジトリに素通しします。
type CachingNutritionRepository struct {
	inner     usecase.NutritionRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.NutritionRepository = (*CachingNutritionRepository)(nil)

// NewCachingNutritionRepository は NutritionRepository を Redis キャッシュでデコレートします。
// ttl=0 の場合は 24時間にフォールバックします。namespace が空なら "nutrition" を使います。
func NewCachingNutritionRepository(rdb *redis.Client, ttl time.Duration, inner usecase.NutritionRepository, namespace string) *CachingNutritionRepository {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if namespace == "" {
		namespace = "nutrition"
	}
	return &CachingNutritionRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// FindByName はキャッシュ優先で栄養成分を取得します。
func (c *CachingNutritionRepository) FindByName(ctx context.Context, name string) (*entity.NutritionFact, error) {
	// Redis 未設定なら素通し
	if c.rdb == nil {
		return c.inner.FindByName(ctx, name)
	}

	key := c.cacheKey(name)

	// 1) キャッシュヒット確認
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var fact entity.NutritionFact
		if err := json.Unmarshal(b, &fact); err == nil {
			return &fact, nil
		}
		// 壊れていたら落とす
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) DB へフォールバック
	fact, err := c.inner.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}

	// 3) キャッシュ保存（ベストエフォート）
	if b, err := json.Marshal(fact); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return fact, nil
}

// UpsertBatch は本体に書き込んだ後、該当する食品名のキャッシュを無効化します。
func (c *CachingNutritionRepository) UpsertBatch(ctx context.Context, facts []entity.NutritionFact) error {
	// まず本体（DB）へ
	if err := c.inner.UpsertBatch(ctx, facts); err != nil {
		return err
	}
	if c.rdb == nil || len(facts) == 0 {
		return nil
	}

	// 更新された名前のキャッシュを無効化（失敗しても本処理は成功させる）
	keys := make([]string, 0, len(facts))
	for _, f := range facts {
		keys = append(keys, c.cacheKey(f.Name))
	}
	_ = c.rdb.Del(ctx, keys...).Err()
	return nil
}

func (c *CachingNutritionRepository) cacheKey(name string) string {
	return fmt.Sprintf("%s:%s", c.namespace, safe(name))
}

// safe はキャッシュキーの区切り文字と衝突する文字を置き換えます。
func safe(s string) string {
	return strings.ReplaceAll(s, ":", "_")
}
