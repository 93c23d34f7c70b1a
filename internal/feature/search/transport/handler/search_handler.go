// Package handler はsearchフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	quoteentity "stock_insight/internal/feature/quote/domain/entity"
	quoteusecase "stock_insight/internal/feature/quote/usecase"
	"stock_insight/internal/feature/search/domain/entity"
	"stock_insight/internal/feature/search/transport/http/dto"
	"stock_insight/internal/feature/search/usecase"
	jwtmw "stock_insight/internal/platform/jwt"
)

const (
	// sessionCookie はセッションIDを運ぶCookie名です。
	sessionCookie = "session_id"
	// sessionCookieMaxAge はCookieの有効期間（秒）で、セッションTTLと揃えています。
	sessionCookieMaxAge = int(usecase.SessionTTL / time.Second)
)

// tickerNotFoundMessage はシンボルが解決できなかった場合のユーザー向けメッセージです。
const tickerNotFoundMessage = "Could not find the ticker's data. Please make sure you enter a valid ticker!"

// SearchFlow は検索セッションフローのユースケースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type SearchFlow interface {
	ResumeOrStart(ctx context.Context, sessionID string, userID uint) (*entity.SearchSession, error)
	Lookup(ctx context.Context, session *entity.SearchSession, ticker string) (*quoteentity.Snapshot, error)
	PersistLast(ctx context.Context, session *entity.SearchSession, userID uint) (*quoteentity.Snapshot, error)
	Update(ctx context.Context, session *entity.SearchSession, userID uint, ticker string) (*quoteentity.Snapshot, error)
	EndSession(ctx context.Context, sessionID string) error
}

// SearchHandler は検索セッションフローのHTTPリクエストを処理します。
type SearchHandler struct {
	flow SearchFlow
}

// NewSearchHandler はSearchHandlerの新しいインスタンスを生成します。
func NewSearchHandler(flow SearchFlow) *SearchHandler {
	return &SearchHandler{flow: flow}
}

// session はCookieからセッションを再開（または新規作成）し、Cookieを更新します。
func (h *SearchHandler) session(c *gin.Context) (*entity.SearchSession, error) {
	sessionID, _ := c.Cookie(sessionCookie)
	userID, _ := jwtmw.UserID(c)

	session, err := h.flow.ResumeOrStart(c.Request.Context(), sessionID, userID)
	if err != nil {
		return nil, err
	}
	if session.ID != sessionID {
		c.SetCookie(sessionCookie, session.ID, sessionCookieMaxAge, "/", "", false, true)
	}
	return session, nil
}

// Lookup はティッカーを検索して正規化済みの財務指標を返します。
// 認証は不要です。成功時にはセッションに最終ティッカーが記憶されます。
//
// エンドポイント: POST /lookup
func (h *SearchHandler) Lookup(c *gin.Context) {
	var req dto.LookupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No ticker entered. Please enter a valid ticker!"})
		return
	}

	session, err := h.session(c)
	if err != nil {
		slog.Error("failed to resume session", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session unavailable"})
		return
	}

	snap, err := h.flow.Lookup(c.Request.Context(), session, req.Ticker)
	if err != nil {
		if errors.Is(err, quoteusecase.ErrInvalidTicker) {
			c.JSON(http.StatusNotFound, gin.H{"error": tickerNotFoundMessage})
			return
		}
		slog.Error("lookup failed", "ticker", req.Ticker, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to retrieve stock data"})
		return
	}

	c.JSON(http.StatusOK, dto.SnapshotResponseFromEntity(snap))
}

// PersistLast はセッションに記憶された最終ティッカーを再取得し、
// 認証済みユーザーの履歴として保存します。
//
// エンドポイント: POST /history
func (h *SearchHandler) PersistLast(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	session, err := h.session(c)
	if err != nil {
		slog.Error("failed to resume session", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session unavailable"})
		return
	}

	snap, err := h.flow.PersistLast(c.Request.Context(), session, userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotAuthenticated):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		case errors.Is(err, usecase.ErrNoLastTicker):
			c.JSON(http.StatusBadRequest, gin.H{"error": "no ticker to save"})
		case errors.Is(err, quoteusecase.ErrInvalidTicker):
			c.JSON(http.StatusNotFound, gin.H{"error": tickerNotFoundMessage})
		default:
			slog.Error("persist failed", "user_id", userID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save search"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.SnapshotResponseFromEntity(snap))
}

// Update は指定されたティッカーを再取得して保存済みエントリを置き換えます。
//
// エンドポイント: POST /update
func (h *SearchHandler) Update(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req dto.UpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Update failed. Please try again"})
		return
	}

	session, err := h.session(c)
	if err != nil {
		slog.Error("failed to resume session", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session unavailable"})
		return
	}

	snap, err := h.flow.Update(c.Request.Context(), session, userID, req.Ticker)
	if err != nil {
		switch {
		case errors.Is(err, quoteusecase.ErrInvalidTicker):
			c.JSON(http.StatusNotFound, gin.H{"error": tickerNotFoundMessage})
		default:
			slog.Error("update failed", "user_id", userID, "ticker", req.Ticker, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update search"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Data updated!", "snapshot": dto.SnapshotResponseFromEntity(snap)})
}

// Logout はセッションを破棄してCookieを無効化します。
//
// エンドポイント: POST /logout
func (h *SearchHandler) Logout(c *gin.Context) {
	sessionID, _ := c.Cookie(sessionCookie)
	if err := h.flow.EndSession(c.Request.Context(), sessionID); err != nil {
		slog.Warn("failed to end session", "error", err)
	}
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
