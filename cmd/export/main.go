// Command export writes a ticker's key financial-statement line items to CSV.
//
// Usage:
//
//	export TICKER [TICKER...]
//
// Each ticker produces a <TICKER>.csv in the working directory.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"stock_insight/internal/app/di"
	"stock_insight/internal/feature/statements/usecase"
	"stock_insight/internal/shared/ratelimiter"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: export TICKER [TICKER...]")
	}

	marketRepo := di.NewMarket()
	// プロバイダのレートリミットに合わせて1分あたりの呼び出しを制限
	rl := ratelimiter.NewRateLimiter(8, time.Minute)
	uc := usecase.NewExportUsecase(marketRepo, rl)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	for _, ticker := range os.Args[1:] {
		ticker = strings.ToUpper(ticker)
		if err := exportOne(ctx, uc, ticker); err != nil {
			// 1つの銘柄でエラーが発生しても処理を止めずにログに出力し、次の処理を続ける
			log.Printf("failed to export %s: %v", ticker, err)
			continue
		}
		log.Printf("exported %s.csv", ticker)
	}
}

func exportOne(ctx context.Context, uc *usecase.ExportUsecase, ticker string) (err error) {
	f, err := os.Create(fmt.Sprintf("%s.csv", ticker))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return uc.Export(ctx, ticker, f)
}
