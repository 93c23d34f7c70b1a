// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"

	"stock_insight/internal/feature/quote/adapters/yahoo"
	quoteusecase "stock_insight/internal/feature/quote/usecase"
	"stock_insight/internal/platform/cache"
	infrahttp "stock_insight/internal/platform/http"
)

// infoCacheTTL はプロバイダ情報レコードのキャッシュ期間です。
// データはほぼリアルタイムのため短めに保ちます。
const infoCacheTTL = 5 * time.Minute

// NewMarket creates a fully configured Yahoo Finance client with HTTP client.
func NewMarket() *yahoo.Client {
	cfg := yahoo.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return yahoo.NewClient(cfg, httpClient)
}

// NewCachedMarket wraps the market client with a Redis cache when Redis is
// available; with a nil client the decorator is a transparent passthrough.
func NewCachedMarket(rdb *redis.Client) quoteusecase.MarketRepository {
	return cache.NewCachingMarketRepository(rdb, infoCacheTTL, NewMarket(), "info")
}
