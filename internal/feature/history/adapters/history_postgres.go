// Package adapters はhistoryフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	"stock_insight/internal/feature/history/domain/entity"
	"stock_insight/internal/feature/history/usecase"
)

// historyPostgres はHistoryRepositoryインターフェースのPostgres実装です。
type historyPostgres struct {
	db *gorm.DB
}

// historyPostgresがHistoryRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.HistoryRepository = (*historyPostgres)(nil)

// NewHistoryRepository は指定されたDB接続でhistoryPostgresの新しいインスタンスを生成します。
func NewHistoryRepository(db *gorm.DB) *historyPostgres {
	return &historyPostgres{db: db}
}

// Replace は(user_id, long_name)の既存行を削除してから新しい行を挿入します。
// 両操作を1トランザクションにまとめることで、同時アクセス時にも行が
// 消えて見える瞬間が生じないようにしています。
func (r *historyPostgres) Replace(ctx context.Context, entry *entity.HistoryEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("user_id = ? AND long_name = ?", entry.UserID, entry.LongName).
			Delete(&entity.HistoryEntry{}).Error; err != nil {
			return err
		}
		return tx.Create(entry).Error
	})
}

// ListByUser は指定ユーザーの履歴を挿入順（id昇順）で返します。
func (r *historyPostgres) ListByUser(ctx context.Context, userID uint) ([]entity.HistoryEntry, error) {
	var entries []entity.HistoryEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
