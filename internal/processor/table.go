package processor

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/ntbanh2504/theme-coder/internal/coder"
)

// writeTable writes one output table, a header row plus one row per
// coded quote.
func writeTable(path string, quotes []coder.CodedQuote) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	records := [][]string{{"quote", "theme", "explanation"}}
	for _, q := range quotes {
		records = append(records, []string{q.Quote, q.Theme, q.Explanation})
	}

	if err := w.WriteAll(records); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	return f.Close()
}
