package usecase

import (
	"context"
	"errors"
	"testing"

	"stock_insight/internal/feature/history/domain/entity"
	quoteentity "stock_insight/internal/feature/quote/domain/entity"
)

// mockHistoryRepository is a mock implementation of the HistoryRepository interface.
type mockHistoryRepository struct {
	ReplaceFunc    func(ctx context.Context, entry *entity.HistoryEntry) error
	ListByUserFunc func(ctx context.Context, userID uint) ([]entity.HistoryEntry, error)
	replaceCalls   int
}

func (m *mockHistoryRepository) Replace(ctx context.Context, entry *entity.HistoryEntry) error {
	m.replaceCalls++
	if m.ReplaceFunc != nil {
		return m.ReplaceFunc(ctx, entry)
	}
	return nil
}

func (m *mockHistoryRepository) ListByUser(ctx context.Context, userID uint) ([]entity.HistoryEntry, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func testSnapshot() *quoteentity.Snapshot {
	return &quoteentity.Snapshot{
		Ticker:         "ACME",
		LongName:       "Acme Corp",
		Industry:       "Widgets",
		ForwardPE:      12.35,
		EarningsGrowth: 25.7,
		MarketCap:      100,
		FreeCashflow:   1234.56,
	}
}

func TestHistoryUsecase_UpsertByName(t *testing.T) {
	t.Run("snapshot fields are carried into the stored entry", func(t *testing.T) {
		mockRepo := &mockHistoryRepository{
			ReplaceFunc: func(ctx context.Context, entry *entity.HistoryEntry) error {
				if entry.UserID != 7 {
					t.Errorf("expected user 7, got %d", entry.UserID)
				}
				if entry.LongName != "Acme Corp" || entry.Ticker != "ACME" {
					t.Errorf("unexpected entry: %+v", entry)
				}
				if entry.FreeCashflow == nil || *entry.FreeCashflow != 1234.56 {
					t.Errorf("unexpected free cashflow: %v", entry.FreeCashflow)
				}
				return nil
			},
		}

		uc := NewHistoryUsecase(mockRepo)
		if err := uc.UpsertByName(context.Background(), 7, testSnapshot()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if mockRepo.replaceCalls != 1 {
			t.Errorf("expected 1 replace, got %d", mockRepo.replaceCalls)
		}
	})

	t.Run("missing user is rejected without touching the store", func(t *testing.T) {
		mockRepo := &mockHistoryRepository{}
		uc := NewHistoryUsecase(mockRepo)

		err := uc.UpsertByName(context.Background(), 0, testSnapshot())

		if !errors.Is(err, ErrMissingUser) {
			t.Errorf("expected ErrMissingUser, got: %v", err)
		}
		if mockRepo.replaceCalls != 0 {
			t.Errorf("store was touched %d times", mockRepo.replaceCalls)
		}
	})

	t.Run("repository failure is propagated", func(t *testing.T) {
		expectedErr := errors.New("store unavailable")
		mockRepo := &mockHistoryRepository{
			ReplaceFunc: func(ctx context.Context, entry *entity.HistoryEntry) error {
				return expectedErr
			},
		}

		uc := NewHistoryUsecase(mockRepo)
		err := uc.UpsertByName(context.Background(), 7, testSnapshot())

		if !errors.Is(err, expectedErr) {
			t.Errorf("expected error '%v', got: %v", expectedErr, err)
		}
	})
}

func TestHistoryUsecase_ListByUser(t *testing.T) {
	t.Run("entries are returned as stored", func(t *testing.T) {
		mockRepo := &mockHistoryRepository{
			ListByUserFunc: func(ctx context.Context, userID uint) ([]entity.HistoryEntry, error) {
				return []entity.HistoryEntry{{UserID: userID, LongName: "Acme Corp"}}, nil
			},
		}

		uc := NewHistoryUsecase(mockRepo)
		entries, err := uc.ListByUser(context.Background(), 7)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 1 || entries[0].LongName != "Acme Corp" {
			t.Errorf("unexpected entries: %+v", entries)
		}
	})

	t.Run("missing user is rejected", func(t *testing.T) {
		uc := NewHistoryUsecase(&mockHistoryRepository{})
		if _, err := uc.ListByUser(context.Background(), 0); !errors.Is(err, ErrMissingUser) {
			t.Errorf("expected ErrMissingUser, got: %v", err)
		}
	})
}
