package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	quoteentity "stock_insight/internal/feature/quote/domain/entity"
	quoteusecase "stock_insight/internal/feature/quote/usecase"
	stmtentity "stock_insight/internal/feature/statements/domain/entity"
	stmtusecase "stock_insight/internal/feature/statements/usecase"

	"stock_insight/internal/feature/quote/adapters/yahoo/dto"
)

// infoModules は銘柄情報レコードの構築に使用するquoteSummaryモジュールです。
const infoModules = "price,summaryProfile,summaryDetail,defaultKeyStatistics,financialData"

// statementModules は財務諸表エクスポートに使用するquoteSummaryモジュールです。
const statementModules = "incomeStatementHistory,balanceSheetHistory,cashflowStatementHistory"

// Client はYahoo FinanceのquoteSummary APIから銘柄データを取得する
// MarketRepository / StatementsRepository 実装です。
type Client struct {
	cfg    Config
	client *http.Client
}

// ClientがMarketRepositoryとStatementsRepositoryを実装していることをコンパイル時に検証します。
var (
	_ quoteusecase.MarketRepository    = (*Client)(nil)
	_ stmtusecase.StatementsRepository = (*Client)(nil)
)

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// FetchInfo はquoteSummaryエンドポイントから銘柄情報を取得し、
// モジュール横断のフラットなキー・バリューレコードとして返します。
// シンボルが解決できない場合はusecase.ErrInvalidTickerを返します。
func (y *Client) FetchInfo(ctx context.Context, ticker string) (quoteentity.InfoRecord, error) {
	body, err := y.quoteSummary(ctx, ticker, infoModules)
	if err != nil {
		return nil, err
	}

	record := quoteentity.InfoRecord{}
	for _, module := range body.QuoteSummary.Result[0] {
		for key, value := range module {
			record[key] = unwrapRaw(value)
		}
	}
	return record, nil
}

// FetchStatements は損益計算書・貸借対照表・キャッシュフロー計算書の
// 年次データを取得します。
func (y *Client) FetchStatements(ctx context.Context, ticker string) (*stmtentity.Statements, error) {
	body, err := y.quoteSummary(ctx, ticker, statementModules)
	if err != nil {
		return nil, err
	}

	result := body.QuoteSummary.Result[0]
	return &stmtentity.Statements{
		Ticker:       ticker,
		Income:       parseStatement("Income Statement", result["incomeStatementHistory"], "incomeStatementHistory"),
		BalanceSheet: parseStatement("Balance Sheet", result["balanceSheetHistory"], "balanceSheetStatements"),
		CashFlow:     parseStatement("Cash Flow", result["cashflowStatementHistory"], "cashflowStatements"),
	}, nil
}

// quoteSummary は指定モジュールでquoteSummaryエンドポイントを呼び出し、
// デコード済みのレスポンスを返します。結果が空の場合はErrInvalidTickerを返します。
func (y *Client) quoteSummary(ctx context.Context, ticker, modules string) (*dto.QuoteSummaryResponse, error) {
	q := url.Values{}
	q.Set("modules", modules)

	u := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?%s", y.cfg.BaseURL, url.PathEscape(ticker), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", y.cfg.UserAgent)
	req.Header.Set("Accept", "application/json")

	res, err := y.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	// 未知のシンボルは404で返る
	if res.StatusCode == http.StatusNotFound {
		return nil, quoteusecase.ErrInvalidTicker
	}
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("yahoo http %d", res.StatusCode)
	}

	var body dto.QuoteSummaryResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("yahoo: %s", body.QuoteSummary.Error.Description)
	}
	if len(body.QuoteSummary.Result) == 0 {
		return nil, quoteusecase.ErrInvalidTicker
	}
	return &body, nil
}

// unwrapRaw は{"raw": ..., "fmt": ...}形式のフィールドからraw値を取り出します。
// スカラー値はそのまま返します。
func unwrapRaw(v any) any {
	m, ok := v.(map[string]any)
	if !ok {
		return v
	}
	if raw, ok := m["raw"]; ok {
		return raw
	}
	return v
}

// parseStatement はモジュールの年次エントリ一覧をStatementに変換します。
// 数値でない項目（maxAge等のメタデータ）は除外します。
func parseStatement(name string, module map[string]any, listKey string) stmtentity.Statement {
	st := stmtentity.Statement{Name: name}
	if module == nil {
		return st
	}
	entries, ok := module[listKey].([]any)
	if !ok {
		return st
	}

	for _, e := range entries {
		fields, ok := e.(map[string]any)
		if !ok {
			continue
		}
		period := stmtentity.Period{Items: map[string]float64{}}
		for key, value := range fields {
			if key == "maxAge" {
				continue
			}
			raw := unwrapRaw(value)
			if key == "endDate" {
				if m, ok := value.(map[string]any); ok {
					if f, ok := m["fmt"].(string); ok {
						period.EndDate = f
					}
				}
				continue
			}
			if n, ok := raw.(float64); ok {
				period.Items[key] = n
			}
		}
		st.Periods = append(st.Periods, period)
	}
	return st
}
