// Package redis はRedisクライアントの初期化を提供します。
package redis

import (
	"context"
	"fmt"
	"os"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// NewRedisClient は環境変数REDIS_ADDRの接続先に対してクライアントを生成し、
// 疎通確認（PING）まで行います。到達できない場合はエラーを返します。
func NewRedisClient(ctx context.Context) (*goredis.Client, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect redis at %s: %w", addr, err)
	}

	return rdb, nil
}
