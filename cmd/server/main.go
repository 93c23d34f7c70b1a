package main

import (
	"log"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"stock_insight/internal/app/di"
	"stock_insight/internal/app/router"
	authadapters "stock_insight/internal/feature/auth/adapters"
	authhandler "stock_insight/internal/feature/auth/transport/handler"
	authusecase "stock_insight/internal/feature/auth/usecase"
	historyadapters "stock_insight/internal/feature/history/adapters"
	historyhandler "stock_insight/internal/feature/history/transport/handler"
	historyusecase "stock_insight/internal/feature/history/usecase"
	quoteusecase "stock_insight/internal/feature/quote/usecase"
	searchhandler "stock_insight/internal/feature/search/transport/handler"
	searchusecase "stock_insight/internal/feature/search/usecase"
	infradb "stock_insight/internal/platform/db"
	jwtmw "stock_insight/internal/platform/jwt"
	infraredis "stock_insight/internal/platform/redis"
)

// tokenExpiration は発行するJWTアクセストークンの有効期間です。
const tokenExpiration = 24 * time.Hour

func main() {
	// db
	db := infradb.OpenDB()

	// Redis（セッション・プロバイダキャッシュ用。無くても起動する）
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Falling back to SQL sessions, no provider cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// JWT_SECRETチェック（開発中の注意喚起）
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// Repository
	userRepo := authadapters.NewUserRepository(db)
	historyRepo := historyadapters.NewHistoryRepository(db)
	marketRepo := di.NewCachedMarket(rdb)
	sessionRepo := di.NewSessionRepository(rdb, db)

	// Usecase
	jwtGen := jwtmw.NewGenerator(secret, tokenExpiration)
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)
	quoteUC := quoteusecase.NewQuoteUsecase(marketRepo)
	historyUC := historyusecase.NewHistoryUsecase(historyRepo)
	flowUC := searchusecase.NewSearchFlow(quoteUC, historyUC, sessionRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	searchH := searchhandler.NewSearchHandler(flowUC)
	historyH := historyhandler.NewHistoryHandler(historyUC)

	// ルータ生成
	router := router.NewRouter(authH, searchH, historyH)

	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
