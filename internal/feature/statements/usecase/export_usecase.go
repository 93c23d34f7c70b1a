// Package usecase implements the business logic for the statements feature.
package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"stock_insight/internal/feature/statements/domain/entity"
	"stock_insight/internal/shared/ratelimiter"
)

// StatementsRepository は財務諸表データを外部プロバイダから取得するリポジトリを抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type StatementsRepository interface {
	FetchStatements(ctx context.Context, ticker string) (*entity.Statements, error)
}

// exportRow is one line of the export: a display label plus the statement
// and provider field it is read from.
type exportRow struct {
	label     string
	statement func(*entity.Statements) *entity.Statement
	key       string
}

// exportRows は出力対象の財務指標一覧です。
var exportRows = []exportRow{
	{"Total Revenue", income, "totalRevenue"},
	{"Operating Income", income, "operatingIncome"},
	{"Net Income", income, "netIncome"},
	{"Total Assets", balance, "totalAssets"},
	{"Goodwill", balance, "goodWill"},
	{"Total Liabilities", balance, "totalLiab"},
	{"Current Assets", balance, "totalCurrentAssets"},
	{"Current Liabilities", balance, "totalCurrentLiabilities"},
	{"Operating Cash Flow", cashflow, "totalCashFromOperatingActivities"},
	{"Capital Expenditure", cashflow, "capitalExpenditures"},
}

func income(s *entity.Statements) *entity.Statement   { return &s.Income }
func balance(s *entity.Statements) *entity.Statement  { return &s.BalanceSheet }
func cashflow(s *entity.Statements) *entity.Statement { return &s.CashFlow }

// ExportUsecase は財務諸表を取得してCSVに書き出すユースケースです。
type ExportUsecase struct {
	statements  StatementsRepository
	rateLimiter ratelimiter.RateLimiterInterface
}

// NewExportUsecase は新しいExportUsecaseを作成します。
func NewExportUsecase(statements StatementsRepository, rateLimiter ratelimiter.RateLimiterInterface) *ExportUsecase {
	return &ExportUsecase{statements: statements, rateLimiter: rateLimiter}
}

// Export は指定ティッカーの主要な財務諸表項目を期間ごとの表としてCSV出力します。
// 1行目はヘッダー（"Line Item" + 各期間の決算日）、以降は項目ごとの1行です。
// プロバイダが報告していない項目のセルは空になります。
func (eu *ExportUsecase) Export(ctx context.Context, ticker string, w io.Writer) error {
	eu.rateLimiter.WaitIfNeeded()

	sts, err := eu.statements.FetchStatements(ctx, ticker)
	if err != nil {
		return fmt.Errorf("fetch statements for %q: %w", ticker, err)
	}

	dates := periodDates(sts)
	cw := csv.NewWriter(w)

	header := append([]string{"Line Item"}, dates...)
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, row := range exportRows {
		st := row.statement(sts)
		record := []string{row.label}
		for _, date := range dates {
			record = append(record, cellValue(st, date, row.key))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// periodDates は3つの財務諸表に現れる決算日を初出順で返します。
func periodDates(sts *entity.Statements) []string {
	var dates []string
	seen := map[string]struct{}{}
	for _, st := range []*entity.Statement{&sts.Income, &sts.BalanceSheet, &sts.CashFlow} {
		for _, p := range st.Periods {
			if _, ok := seen[p.EndDate]; ok || p.EndDate == "" {
				continue
			}
			seen[p.EndDate] = struct{}{}
			dates = append(dates, p.EndDate)
		}
	}
	return dates
}

// cellValue は指定された決算日・項目の値を文字列で返します。未報告は空文字列です。
func cellValue(st *entity.Statement, date, key string) string {
	for _, p := range st.Periods {
		if p.EndDate != date {
			continue
		}
		if v, ok := p.Items[key]; ok {
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
		return ""
	}
	return ""
}
