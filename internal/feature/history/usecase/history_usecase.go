// Package usecase はhistoryフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"

	"stock_insight/internal/feature/history/domain/entity"
	quoteentity "stock_insight/internal/feature/quote/domain/entity"
)

// ErrMissingUser is returned when a history operation is attempted without
// an authenticated user ID.
var ErrMissingUser = errors.New("history requires an authenticated user")

// HistoryRepository は検索履歴エントリの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type HistoryRepository interface {
	// Replace は(userID, longName)の既存行を削除し、新しい行を挿入します。
	// 削除と挿入は1つのトランザクションで実行され、行が一時的に消えて見える
	// 隙間は生じません。
	Replace(ctx context.Context, entry *entity.HistoryEntry) error

	// ListByUser は指定ユーザーの履歴エントリを挿入順で返します。
	ListByUser(ctx context.Context, userID uint) ([]entity.HistoryEntry, error)
}

// HistoryUsecase は検索履歴の保存・取得のユースケースです。
type HistoryUsecase struct {
	repo HistoryRepository
}

// NewHistoryUsecase はHistoryUsecaseの新しいインスタンスを生成します。
func NewHistoryUsecase(repo HistoryRepository) *HistoryUsecase {
	return &HistoryUsecase{repo: repo}
}

// UpsertByName はスナップショットをユーザーの履歴として保存します。
// 同じ(ユーザー, 会社名)の既存エントリはマージではなく置換されます。
func (u *HistoryUsecase) UpsertByName(ctx context.Context, userID uint, snap *quoteentity.Snapshot) error {
	if userID == 0 {
		return ErrMissingUser
	}
	return u.repo.Replace(ctx, entity.FromSnapshot(userID, snap))
}

// ListByUser は指定ユーザーの履歴エントリを返します。
func (u *HistoryUsecase) ListByUser(ctx context.Context, userID uint) ([]entity.HistoryEntry, error) {
	if userID == 0 {
		return nil, ErrMissingUser
	}
	return u.repo.ListByUser(ctx, userID)
}
