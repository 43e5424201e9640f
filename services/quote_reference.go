package services

import (
	"fmt"
	"time"

	"github.com/pocketbase/pocketbase"
)

func formatQuoteRequestReference(day string, sequence int) string {
	return fmt.Sprintf("IAQ-%s-%03d", day, sequence)
}

// NextQuoteRequestReference returns the reference for the next stored quote
// request: IAQ-{yyyymmdd}-{sequence}, with a 3-digit sequence per day.
func NextQuoteRequestReference(app *pocketbase.PocketBase, now time.Time) (string, error) {
	day := now.Format("20060102")
	prefix := formatQuoteRequestReference(day, 0)
	prefix = prefix[:len(prefix)-3]

	existing, err := app.FindRecordsByFilter(
		"quote_requests",
		"reference ~ {:prefix}",
		"",
		0,
		0,
		map[string]any{"prefix": prefix + "%"},
	)
	if err != nil {
		return "", fmt.Errorf("count quote requests: %w", err)
	}

	return formatQuoteRequestReference(day, len(existing)+1), nil
}
