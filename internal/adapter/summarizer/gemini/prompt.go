package gemini

import (
	"strings"

	"github.com/gstmate/gstmate/internal/domain"
)

const promptHeader = `You are an expert financial analyst.

You will receive a calculation history containing the original amount, GST rate, GST amount, total amount, and timestamp for each calculation.

Your task is to analyze this history and provide a summary of the user's GST trends and spending habits.

Output STRICT JSON only (no comments, no extra text): an object with a single string field "summary".
Do NOT wrap the response in code fences.
Do NOT use ` + "```json" + ` or any Markdown.

Calculation History:
`

// buildPrompt renders the summarization prompt. The rendering is
// deterministic: one line per history row, in the order given.
func buildPrompt(rows []domain.HistoryRow) string {
	var b strings.Builder
	b.WriteString(promptHeader)

	for _, row := range rows {
		b.WriteString("- Amount: ")
		b.WriteString(row.Amount.String())
		b.WriteString(", GST Rate: ")
		b.WriteString(row.GSTRate.String())
		b.WriteString(", GST Amount: ")
		b.WriteString(row.GSTAmount.String())
		b.WriteString(", Total Amount: ")
		b.WriteString(row.TotalAmount.String())
		b.WriteString(", Timestamp: ")
		b.WriteString(row.Timestamp)
		b.WriteString("\n")
	}

	b.WriteString("\nSummary:")

	return b.String()
}
