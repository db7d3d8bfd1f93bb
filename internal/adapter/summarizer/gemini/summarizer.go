package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/gstmate/gstmate/internal/domain"
	"github.com/gstmate/gstmate/internal/infrastructure/metrics"
)

// Summarizer implements usecase.Summarizer against the Gemini API. Each call
// is stateless: one prompt in, one summary out, no retry.
type Summarizer struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// New creates a Summarizer. Credentials come from the environment
// (GEMINI_API_KEY or application default credentials).
func New(ctx context.Context, model string, timeout time.Duration) (*Summarizer, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Summarizer{
		client:  client,
		model:   model,
		timeout: timeout,
	}, nil
}

// Summarize sends the history to the model and returns the summary string
// from its fixed {"summary": ...} response contract, unmodified.
func (s *Summarizer) Summarize(ctx context.Context, rows []domain.HistoryRow) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: buildPrompt(rows)},
			},
		},
	}

	resp, err := s.client.Models.GenerateContent(ctx, s.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("%w: generate content: %w", domain.ErrSummarization, err)
	}

	metrics.SummaryDuration.Observe(time.Since(start).Seconds())

	summary, err := parseSummary(resp.Text())
	if err != nil {
		return "", err
	}

	return summary, nil
}

// parseSummary extracts the summary field from the model output, tolerating
// the Markdown fences models sometimes emit despite instructions.
func parseSummary(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", fmt.Errorf("%w: empty response from model", domain.ErrSummarization)
	}

	clean := cleanModelJSON(raw)

	var out struct {
		Summary string `json:"summary"`
	}
	if err := json.Unmarshal([]byte(clean), &out); err != nil {
		return "", fmt.Errorf("%w: unmarshal model output: %w", domain.ErrSummarization, err)
	}

	if out.Summary == "" {
		return "", fmt.Errorf("%w: model output missing summary field", domain.ErrSummarization)
	}

	return out.Summary, nil
}

func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	// Handle ```json ... ``` or ``` ... ``` wrappers.
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}

	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	s = strings.TrimSpace(s)

	// If there is still junk around the JSON object, keep only the first
	// '{' through the last '}'.
	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end != -1 && end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}

	return s
}
