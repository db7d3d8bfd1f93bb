package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gstmate/gstmate/internal/adapter/http/dto"
	"github.com/gstmate/gstmate/internal/adapter/http/middleware"
	"github.com/gstmate/gstmate/internal/domain"
	"github.com/gstmate/gstmate/internal/usecase"
)

// CalculationService defines the behavior needed by CalculationHandler.
type CalculationService interface {
	ComputeAndRecord(ctx context.Context, input usecase.ComputeInput) (domain.CalculationResult, error)
	FetchHistory(ctx context.Context, userID string, limit int) ([]*domain.Calculation, error)
}

// SummaryService defines the summarization behavior needed by CalculationHandler.
type SummaryService interface {
	SummarizeHistory(ctx context.Context, history []*domain.Calculation) (string, error)
}

// CalculationHandler handles GST calculation HTTP requests.
type CalculationHandler struct {
	calcUC    CalculationService
	summaryUC SummaryService
}

// NewCalculationHandler creates a new CalculationHandler.
func NewCalculationHandler(calcUC CalculationService, summaryUC SummaryService) *CalculationHandler {
	return &CalculationHandler{
		calcUC:    calcUC,
		summaryUC: summaryUC,
	}
}

// Compute computes GST for an amount. Anonymous callers get the result only;
// authenticated callers also get the calculation recorded in their history.
func (h *CalculationHandler) Compute(w http.ResponseWriter, r *http.Request) {
	var req dto.ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	var userID string
	if identity, ok := middleware.GetIdentityFromContext(r.Context()); ok {
		userID = identity.UserID
	}

	result, err := h.calcUC.ComputeAndRecord(r.Context(), req.ToUseCaseInput(userID))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute gst", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ComputeResponseFromResult(result))
}

// History returns the caller's most recent calculations, newest first.
func (h *CalculationHandler) History(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "user not authenticated", "")
		return
	}

	limit := parseIntQuery(r, "limit", 0)

	history, err := h.calcUC.FetchHistory(r.Context(), identity.UserID, limit)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to fetch calculation history", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.HistoryResponse{
		Calculations: dto.CalculationsFromDomain(history),
		Total:        int64(len(history)),
	})
}

// Summarize fetches the caller's recency window and returns an AI-generated
// summary of it. An empty history is a client error, not a summarizer call.
func (h *CalculationHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "user not authenticated", "")
		return
	}

	history, err := h.calcUC.FetchHistory(r.Context(), identity.UserID, 0)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to fetch calculation history", err.Error())
		return
	}

	summary, err := h.summaryUC.SummarizeHistory(r.Context(), history)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to summarize history", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SummaryResponse{Summary: summary})
}
