package db

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "stock_insight/internal/feature/auth/domain/entity"
	historyentity "stock_insight/internal/feature/history/domain/entity"
	searchadapters "stock_insight/internal/feature/search/adapters"
)

// OpenDB はPostgresへのGORM接続を開きます。
//
// DATABASE_URL があればそれを使用し（Heroku系の "postgres://" プレフィックスは
// "postgresql://" に正規化）、なければ個別の DB_* 環境変数からDSNを組み立てます。
// 起動直後にDBがまだ立ち上がっていないケースに備え、60秒までリトライします。
func OpenDB() *gorm.DB {
	dsn := os.Getenv("DATABASE_URL")
	if dsn != "" {
		if strings.HasPrefix(dsn, "postgres://") {
			dsn = strings.Replace(dsn, "postgres://", "postgresql://", 1)
		}
	} else {
		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			os.Getenv("DB_HOST"), os.Getenv("DB_PORT"),
			os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"))
	}

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gpostgres.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		// マイグレーション（User, HistoryEntry, SearchSession フォールバック）
		if err := db.AutoMigrate(
			&authentity.User{},
			&historyentity.HistoryEntry{},
			&searchadapters.SearchSessionModel{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
