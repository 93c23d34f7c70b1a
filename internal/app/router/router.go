package router

import (
	authhandler "stock_insight/internal/feature/auth/transport/handler"
	historyhandler "stock_insight/internal/feature/history/transport/handler"
	searchhandler "stock_insight/internal/feature/search/transport/handler"
	"stock_insight/internal/platform/http/handler"
	jwtmw "stock_insight/internal/platform/jwt"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the route table for the API server.
func NewRouter(auth *authhandler.AuthHandler, search *searchhandler.SearchHandler,
	history *historyhandler.HistoryHandler) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/signup", auth.Signup)
	// ログイン（JWT 発行）
	r.POST("/login", auth.Login)
	// 銘柄検索（匿名でも可、セッションに最終ティッカーを記憶）
	r.POST("/lookup", search.Lookup)
	// ログアウト（セッション破棄）
	r.POST("/logout", search.Logout)

	// 認証必須のルート
	authRequired := r.Group("/")
	authRequired.Use(jwtmw.AuthRequired())
	{
		// 保存済み履歴の一覧
		authRequired.GET("/history", history.List)
		// 最終ティッカーを再取得して履歴に保存
		authRequired.POST("/history", search.PersistLast)
		// 指定ティッカーを再取得して保存済みエントリを置換
		authRequired.POST("/update", search.Update)
	}

	return r
}
