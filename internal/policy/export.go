package policy

import (
	"fmt"
	"io"
	"time"
)

// ExportFilename names the downloadable report with an ISO date stamp.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("stockpile-report-%s.csv", now.Format("2006-01-02"))
}

// WriteReportCSV renders the category and stock-level aggregates as two
// labeled CSV sections. String fields are double-quoted; currency is
// rendered with two decimals and percentages with one.
func WriteReportCSV(w io.Writer, r Report) error {
	if _, err := fmt.Fprintf(w, "%q\n%q,%q,%q\n", "Category Breakdown", "Category", "Count", "Value"); err != nil {
		return err
	}
	for _, c := range r.CategoryBreakdown {
		if _, err := fmt.Fprintf(w, "%q,%d,%s\n", c.Category, c.Count, c.Value.StringFixed(2)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\n%q\n%q,%q,%q\n", "Stock Level Distribution", "Status", "Count", "Percentage"); err != nil {
		return err
	}
	rows := []struct {
		label  string
		bucket StockBucket
	}{
		{"In Stock", r.StockLevels.Good},
		{"Low Stock", r.StockLevels.Low},
		{"Out of Stock", r.StockLevels.Out},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%q,%d,%.1f\n", row.label, row.bucket.Count, row.bucket.Percentage); err != nil {
			return err
		}
	}
	return nil
}
