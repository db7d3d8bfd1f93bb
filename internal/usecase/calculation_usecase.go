package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gstmate/gstmate/internal/domain"
	"github.com/gstmate/gstmate/internal/infrastructure/metrics"
)

// CalculationUseCase handles GST calculation business logic: validation,
// computation, best-effort history persistence and history retrieval.
type CalculationUseCase struct {
	calcRepo     CalculationRepository
	historyLimit int
	logger       zerolog.Logger
}

// NewCalculationUseCase creates a new CalculationUseCase. historyLimit <= 0
// falls back to DefaultHistoryLimit.
func NewCalculationUseCase(calcRepo CalculationRepository, historyLimit int, logger zerolog.Logger) *CalculationUseCase {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}

	return &CalculationUseCase{
		calcRepo:     calcRepo,
		historyLimit: historyLimit,
		logger:       logger,
	}
}

// ComputeInput represents input for a GST computation. Amount and GSTRate
// arrive as untrusted strings; UserID is empty for anonymous callers.
type ComputeInput struct {
	Amount  string
	GSTRate string
	UserID  string
}

// ComputeAndRecord validates the input, computes GST and, for authenticated
// callers, records the calculation in the background. A history write failure
// is logged and swallowed: the computed result is returned regardless.
func (uc *CalculationUseCase) ComputeAndRecord(ctx context.Context, input ComputeInput) (domain.CalculationResult, error) {
	amount, err := domain.ParseAmount(input.Amount)
	if err != nil {
		return domain.CalculationResult{}, err
	}

	rate, err := domain.ParseRate(input.GSTRate)
	if err != nil {
		return domain.CalculationResult{}, err
	}

	result := domain.ComputeGST(amount, rate)
	metrics.CalculationsComputed.Inc()

	if input.UserID != "" {
		calc := &domain.Calculation{
			UserID:      input.UserID,
			Amount:      amount,
			GSTRate:     rate,
			GSTAmount:   result.GSTAmount,
			TotalAmount: result.TotalAmount,
		}

		// Fire and forget: the caller's result must not wait on history
		// bookkeeping. WithoutCancel detaches the write from the request
		// lifetime.
		go uc.appendHistory(context.WithoutCancel(ctx), calc)
	}

	return result, nil
}

func (uc *CalculationUseCase) appendHistory(ctx context.Context, calc *domain.Calculation) {
	ctx, cancel := context.WithTimeout(ctx, appendTimeout)
	defer cancel()

	if err := uc.calcRepo.Append(ctx, calc); err != nil {
		metrics.HistoryAppendFailures.Inc()
		uc.logger.Error().
			Err(err).
			Str("user_id", calc.UserID).
			Msg("failed to record calculation history")
	}
}

// FetchHistory returns the user's most recent calculations, newest first.
// limit <= 0 or limit above the recency window falls back to the window size.
func (uc *CalculationUseCase) FetchHistory(ctx context.Context, userID string, limit int) ([]*domain.Calculation, error) {
	if userID == "" {
		return nil, domain.ErrUserNotAuthenticated
	}

	if limit <= 0 || limit > uc.historyLimit {
		limit = uc.historyLimit
	}

	history, err := uc.calcRepo.ListRecent(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}

	metrics.HistoryFetches.Inc()

	return history, nil
}

// SummaryUseCase turns a calculation history into a natural-language summary
// of GST trends and spending habits.
type SummaryUseCase struct {
	summarizer Summarizer
}

// NewSummaryUseCase creates a new SummaryUseCase.
func NewSummaryUseCase(summarizer Summarizer) *SummaryUseCase {
	return &SummaryUseCase{summarizer: summarizer}
}

// SummarizeHistory projects the history for the summarizer and returns its
// prose unchanged. An empty history is an error and triggers no external call.
func (uc *SummaryUseCase) SummarizeHistory(ctx context.Context, history []*domain.Calculation) (string, error) {
	if len(history) == 0 {
		return "", domain.ErrEmptyHistory
	}

	rows := make([]domain.HistoryRow, 0, len(history))
	for _, calc := range history {
		rows = append(rows, calc.ToHistoryRow())
	}

	metrics.SummariesRequested.Inc()

	summary, err := uc.summarizer.Summarize(ctx, rows)
	if err != nil {
		metrics.SummaryFailures.Inc()
		return "", err
	}

	return summary, nil
}
