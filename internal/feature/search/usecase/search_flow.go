package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	quoteentity "stock_insight/internal/feature/quote/domain/entity"
	"stock_insight/internal/feature/search/domain/entity"
)

// SessionTTL は検索セッションの有効期間です。
const SessionTTL = 7 * 24 * time.Hour

// QuoteLookup は銘柄情報の取得・正規化のユースケースを抽象化します。
// Goの慣例に従い、インターフェースは利用者（search usecase）側で定義します。
type QuoteLookup interface {
	Lookup(ctx context.Context, ticker string) (*quoteentity.Snapshot, error)
}

// HistoryWriter は履歴のupsert-by-name操作を抽象化します。
type HistoryWriter interface {
	UpsertByName(ctx context.Context, userID uint, snap *quoteentity.Snapshot) error
}

// SearchFlow は「検索 → 表示 → （認証済みなら）保存」の一連の流れを調停します。
// セッションは呼び出し側（ハンドラー）から明示的に渡され、リクエストスコープで扱われます。
type SearchFlow struct {
	quote    QuoteLookup
	history  HistoryWriter
	sessions SessionRepository
}

// NewSearchFlow はSearchFlowの新しいインスタンスを生成します。
func NewSearchFlow(quote QuoteLookup, history HistoryWriter, sessions SessionRepository) *SearchFlow {
	return &SearchFlow{quote: quote, history: history, sessions: sessions}
}

// ResumeOrStart は既存セッションを取得するか、存在しない・期限切れの場合は
// 新しいセッションを作成して保存します。
func (f *SearchFlow) ResumeOrStart(ctx context.Context, sessionID string, userID uint) (*entity.SearchSession, error) {
	if sessionID != "" {
		session, err := f.sessions.FindByID(ctx, sessionID)
		switch {
		case err == nil && !session.IsExpired():
			// ログイン後の最初のリクエストでセッションをユーザーに紐付ける
			if userID != 0 && session.UserID != userID {
				session.UserID = userID
				if err := f.sessions.Save(ctx, session); err != nil {
					return nil, err
				}
			}
			return session, nil
		case err != nil && !errors.Is(err, ErrSessionNotFound):
			return nil, err
		}
	}

	id, err := newSessionID()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	session := &entity.SearchSession{
		ID:        id,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(SessionTTL),
	}
	if err := f.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Lookup はティッカーを検索してSnapshotを返し、成功時にはセッションの
// 「最後に検索したティッカー」を更新します。ErrInvalidTickerの場合は
// 何も書き込みません。
func (f *SearchFlow) Lookup(ctx context.Context, session *entity.SearchSession, ticker string) (*quoteentity.Snapshot, error) {
	snap, err := f.quote.Lookup(ctx, ticker)
	if err != nil {
		return nil, err
	}

	session.LastTicker = snap.Ticker
	if err := f.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return snap, nil
}

// PersistLast はセッションに記憶されたティッカーを再取得し、認証済みユーザーの
// 履歴として保存します。初回表示と保存の間にデータが変わり得ることは
// 仕様上許容されています（ほぼリアルタイムのデータのため）。
// 未認証の場合はErrNotAuthenticatedを返し、ストアには触れません。
func (f *SearchFlow) PersistLast(ctx context.Context, session *entity.SearchSession, userID uint) (*quoteentity.Snapshot, error) {
	if userID == 0 {
		return nil, ErrNotAuthenticated
	}
	if session.LastTicker == "" {
		return nil, ErrNoLastTicker
	}

	snap, err := f.quote.Lookup(ctx, session.LastTicker)
	if err != nil {
		return nil, err
	}
	if err := f.history.UpsertByName(ctx, userID, snap); err != nil {
		return nil, fmt.Errorf("persist snapshot: %w", err)
	}
	return snap, nil
}

// Update は指定されたティッカーを1回のフェッチで検索し、セッションの
// 最終ティッカー更新と履歴保存をまとめて行います。lookup + persistLast を
// 1回の外部フェッチに畳み込んだ操作に相当します。
func (f *SearchFlow) Update(ctx context.Context, session *entity.SearchSession, userID uint, ticker string) (*quoteentity.Snapshot, error) {
	if userID == 0 {
		return nil, ErrNotAuthenticated
	}

	snap, err := f.quote.Lookup(ctx, ticker)
	if err != nil {
		return nil, err
	}

	session.LastTicker = snap.Ticker
	if err := f.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	if err := f.history.UpsertByName(ctx, userID, snap); err != nil {
		return nil, fmt.Errorf("persist snapshot: %w", err)
	}
	return snap, nil
}

// EndSession はセッションを破棄します（ログアウト）。
func (f *SearchFlow) EndSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return f.sessions.Delete(ctx, sessionID)
}

// newSessionID は暗号学的乱数から64文字の16進セッションIDを生成します。
func newSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}
	return hex.EncodeToString(b), nil
}
