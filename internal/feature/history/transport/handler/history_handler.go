// Package handler はhistoryフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_insight/internal/feature/history/domain/entity"
	"stock_insight/internal/feature/history/format"
	"stock_insight/internal/feature/history/transport/http/dto"
	jwtmw "stock_insight/internal/platform/jwt"
)

// HistoryUsecase は履歴取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type HistoryUsecase interface {
	ListByUser(ctx context.Context, userID uint) ([]entity.HistoryEntry, error)
}

// HistoryHandler は検索履歴のHTTPリクエストを処理します。
type HistoryHandler struct {
	uc HistoryUsecase
}

// NewHistoryHandler は指定されたusecaseでHistoryHandlerの新しいインスタンスを生成します。
func NewHistoryHandler(uc HistoryUsecase) *HistoryHandler {
	return &HistoryHandler{uc: uc}
}

// List は認証済みユーザーの保存済み履歴を返します。
//
// エンドポイント: GET /history
func (h *HistoryHandler) List(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	entries, err := h.uc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		slog.Error("failed to list history", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
		return
	}

	out := make([]dto.HistoryItem, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.HistoryItem{
			Ticker:         e.Ticker,
			LongName:       e.LongName,
			Industry:       e.Industry,
			ForwardPE:      e.ForwardPE,
			EarningsGrowth: e.EarningsGrowth,
			ProfitMargins:  e.ProfitMargins,
			MarketCap:      e.MarketCap,
			BookValue:      e.BookValue,
			PriceToBook:    e.PriceToBook,
			QuickRatio:     e.QuickRatio,
			CurrentRatio:   e.CurrentRatio,
			FreeCashflow:   format.Currency(e.FreeCashflow),
		})
	}
	c.JSON(http.StatusOK, out)
}
