package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"

	"stock_insight/internal/feature/quote/domain/entity"
)

// MarketRepository は銘柄情報を外部プロバイダから取得するリポジトリを抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type MarketRepository interface {
	// FetchInfo は指定されたティッカーのキー・バリュー形式の銘柄情報を取得します。
	// プロバイダがシンボルを解決できない場合、ErrInvalidTickerを返します。
	FetchInfo(ctx context.Context, ticker string) (entity.InfoRecord, error)
}

// QuoteUsecase は銘柄の財務指標を取得・正規化するユースケースです。
type QuoteUsecase struct {
	market MarketRepository
}

// NewQuoteUsecase はQuoteUsecaseの新しいインスタンスを生成します。
func NewQuoteUsecase(market MarketRepository) *QuoteUsecase {
	return &QuoteUsecase{market: market}
}

// Lookup は外部プロバイダへの1回のフェッチで銘柄情報を取得し、
// 正規化されたSnapshotを返します。シンボルが解決できない場合はErrInvalidTickerを返し、
// Snapshotは生成しません。
func (u *QuoteUsecase) Lookup(ctx context.Context, ticker string) (*entity.Snapshot, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return nil, ErrInvalidTicker
	}

	raw, err := u.market.FetchInfo(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("fetch info for %q: %w", ticker, err)
	}

	snap := Normalize(raw, ticker)
	return &snap, nil
}

// Normalize は疎なプロバイダレコードを固定フィールドのSnapshotに変換します。
//
// 変換ルール:
//   - キー欠落・nil・falsy値（0, 空文字列）はデフォルト値に置換（数値は0、文字列は"N/A"）。
//     正当なゼロ値と欠落値は区別しない（元実装の挙動をそのまま保持）。
//   - earningsGrowth と profitMargins はプロバイダが小数で返すため100倍してパーセントに変換。
//   - marketCap 以外の数値は小数第2位に丸める。marketCapは無加工で通す。
//   - longName が取得できない場合はティッカー文字列にフォールバックする。
func Normalize(raw entity.InfoRecord, ticker string) entity.Snapshot {
	longName := strField(raw, "longName")
	if longName == "" {
		longName = ticker
	}
	industry := strField(raw, "industry")
	if industry == "" {
		industry = "N/A"
	}

	return entity.Snapshot{
		Ticker:         ticker,
		LongName:       longName,
		Industry:       industry,
		ForwardPE:      round2(numField(raw, "forwardPE")),
		EarningsGrowth: round2(numField(raw, "earningsGrowth") * 100),
		ProfitMargins:  round2(numField(raw, "profitMargins") * 100),
		MarketCap:      numField(raw, "marketCap"),
		BookValue:      round2(numField(raw, "bookValue")),
		PriceToBook:    round2(numField(raw, "priceToBook")),
		QuickRatio:     round2(numField(raw, "quickRatio")),
		CurrentRatio:   round2(numField(raw, "currentRatio")),
		FreeCashflow:   round2(numField(raw, "freeCashflow")),
	}
}

// numField はレコードから数値を取り出します。欠落・nil・0はすべて0を返します。
func numField(raw entity.InfoRecord, key string) float64 {
	v, ok := raw[key]
	if !ok || v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}

// strField はレコードから文字列を取り出します。欠落・nil・空文字列は""を返します。
func strField(raw entity.InfoRecord, key string) string {
	v, ok := raw[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}

// round2 は小数第2位への丸めを行います。
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
