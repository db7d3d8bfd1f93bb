package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/gstmate/gstmate/internal/domain"
	"github.com/gstmate/gstmate/internal/usecase"
	"github.com/gstmate/gstmate/internal/usecase/mocks"
)

func TestCalculationUseCase_FetchHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now().UTC()
	calcRepo := mocks.NewMockCalculationRepository(ctrl)
	calcRepo.EXPECT().ListRecent(gomock.Any(), "user-1", 5).Return([]*domain.Calculation{
		{ID: "c3", UserID: "user-1", CreatedAt: now},
		{ID: "c2", UserID: "user-1", CreatedAt: now.Add(-time.Minute)},
		{ID: "c1", UserID: "user-1", CreatedAt: now.Add(-2 * time.Minute)},
	}, nil)

	uc := usecase.NewCalculationUseCase(calcRepo, 5, zerolog.Nop())

	history, err := uc.FetchHistory(context.Background(), "user-1", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(history) != 3 {
		t.Fatalf("expected 3 records, got %d", len(history))
	}
	for i := 1; i < len(history); i++ {
		if history[i].CreatedAt.After(history[i-1].CreatedAt) {
			t.Errorf("history not ordered newest first at index %d", i)
		}
	}
}

func TestCalculationUseCase_FetchHistory_MissingUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	calcRepo := mocks.NewMockCalculationRepository(ctrl)

	uc := usecase.NewCalculationUseCase(calcRepo, 5, zerolog.Nop())

	_, err := uc.FetchHistory(context.Background(), "", 5)
	if !errors.Is(err, domain.ErrUserNotAuthenticated) {
		t.Fatalf("expected ErrUserNotAuthenticated, got %v", err)
	}
}

func TestCalculationUseCase_FetchHistory_ClampsLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	calcRepo := mocks.NewMockCalculationRepository(ctrl)
	calcRepo.EXPECT().ListRecent(gomock.Any(), "user-1", 5).Return(nil, nil)

	uc := usecase.NewCalculationUseCase(calcRepo, 5, zerolog.Nop())

	// Asking for more than the recency window falls back to the window.
	if _, err := uc.FetchHistory(context.Background(), "user-1", 50); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCalculationUseCase_FetchHistory_BackendFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	calcRepo := mocks.NewMockCalculationRepository(ctrl)
	calcRepo.EXPECT().ListRecent(gomock.Any(), "user-1", 5).Return(nil, errors.New("connection refused"))

	uc := usecase.NewCalculationUseCase(calcRepo, 5, zerolog.Nop())

	_, err := uc.FetchHistory(context.Background(), "user-1", 5)
	if !errors.Is(err, domain.ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}
}

func TestSummaryUseCase_SummarizeHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	history := []*domain.Calculation{
		{
			ID:          "c1",
			UserID:      "user-1",
			Amount:      decimal.RequireFromString("1000"),
			GSTRate:     decimal.RequireFromString("5"),
			GSTAmount:   decimal.RequireFromString("50"),
			TotalAmount: decimal.RequireFromString("1050"),
			CreatedAt:   created,
		},
	}

	summarizer := mocks.NewMockSummarizer(ctrl)
	summarizer.EXPECT().Summarize(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, rows []domain.HistoryRow) (string, error) {
			if len(rows) != 1 {
				t.Fatalf("expected 1 row, got %d", len(rows))
			}
			if rows[0].Timestamp != "2025-06-01T12:00:00Z" {
				t.Errorf("timestamp = %s, want RFC 3339 text", rows[0].Timestamp)
			}
			return "steady spending at a 5% rate", nil
		})

	uc := usecase.NewSummaryUseCase(summarizer)

	summary, err := uc.SummarizeHistory(context.Background(), history)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != "steady spending at a 5% rate" {
		t.Errorf("summary = %q", summary)
	}
}

func TestSummaryUseCase_SummarizeHistory_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No Summarize expectation: an empty history must not trigger a call.
	summarizer := mocks.NewMockSummarizer(ctrl)

	uc := usecase.NewSummaryUseCase(summarizer)

	_, err := uc.SummarizeHistory(context.Background(), nil)
	if !errors.Is(err, domain.ErrEmptyHistory) {
		t.Fatalf("expected ErrEmptyHistory, got %v", err)
	}
}

func TestSummaryUseCase_SummarizeHistory_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	summarizer := mocks.NewMockSummarizer(ctrl)
	summarizer.EXPECT().Summarize(gomock.Any(), gomock.Any()).Return("", domain.ErrSummarization)

	uc := usecase.NewSummaryUseCase(summarizer)

	_, err := uc.SummarizeHistory(context.Background(), []*domain.Calculation{{ID: "c1"}})
	if !errors.Is(err, domain.ErrSummarization) {
		t.Fatalf("expected ErrSummarization, got %v", err)
	}
}
