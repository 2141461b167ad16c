package policy

import (
	"strings"
	"testing"
	"time"

	"github.com/stockpile-io/stockpile/internal/models"
)

func TestExportFilename(t *testing.T) {
	now := time.Date(2025, 7, 3, 17, 44, 3, 0, time.UTC)
	if got := ExportFilename(now); got != "stockpile-report-2025-07-03.csv" {
		t.Errorf("unexpected filename %q", got)
	}
}

func TestWriteReportCSV(t *testing.T) {
	catalog := []models.Product{
		withCategory(product(25, 10, 50, "12.50"), "Electronics"),
		withCategory(product(5, 15, 40, "8.00"), "Electronics"),
		withCategory(product(0, 20, 100, "3.50"), "Office"),
	}
	r := Summarize(catalog)

	var sb strings.Builder
	if err := WriteReportCSV(&sb, r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := sb.String()

	for _, want := range []string{
		"\"Category Breakdown\"\n\"Category\",\"Count\",\"Value\"\n",
		"\"Electronics\",2,352.50\n",
		"\"Office\",1,0.00\n",
		"\"Stock Level Distribution\"\n\"Status\",\"Count\",\"Percentage\"\n",
		"\"In Stock\",1,33.3\n",
		"\"Low Stock\",1,33.3\n",
		"\"Out of Stock\",1,33.3\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
