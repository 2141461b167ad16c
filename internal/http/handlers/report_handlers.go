package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/stockpile-io/stockpile/internal/policy"
)

const (
	dashboardCacheKey = "stockpile:dashboard"
	dashboardCacheTTL = 30 * time.Second
)

func invalidateDashboardCache() {
	if rdb == nil {
		return
	}
	if err := rdb.Del(ctx, dashboardCacheKey).Err(); err != nil {
		log.Printf("failed to invalidate dashboard cache: %v", err)
	}
}

// GetDashboardMetricsHandler godoc
// @Summary Dashboard statistics
// @Description Aggregate stock-health view of the catalog, cached briefly in Redis when available.
// @Tags metrics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} policy.Report
// @Failure 500 {string} string "Internal error"
// @Router /metrics/dashboard [get]
func GetDashboardMetricsHandler(w http.ResponseWriter, r *http.Request) {
	if rdb != nil {
		if cached, err := rdb.Get(ctx, dashboardCacheKey).Result(); err == nil {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, cached)
			return
		}
	}

	products, err := productRepo.GetAll()
	if err != nil {
		http.Error(w, "failed to fetch metrics", http.StatusInternalServerError)
		return
	}
	report := policy.Summarize(products)

	data, err := json.Marshal(report)
	if err != nil {
		http.Error(w, "failed to encode metrics", http.StatusInternalServerError)
		return
	}
	if rdb != nil {
		if err := rdb.Set(ctx, dashboardCacheKey, data, dashboardCacheTTL).Err(); err != nil {
			log.Printf("failed to cache dashboard metrics: %v", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// GetReportHandler godoc
// @Summary Full inventory report
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} policy.Report
// @Failure 500 {string} string "Internal error"
// @Router /reports [get]
func GetReportHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, policy.Summarize(products)); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// ExportReportHandler godoc
// @Summary Download the inventory report as CSV
// @Description Category breakdown and stock-level distribution as two labeled CSV sections.
// @Tags reports
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {file} file
// @Failure 500 {string} string "Internal error"
// @Router /reports/export [get]
func ExportReportHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}
	report := policy.Summarize(products)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", policy.ExportFilename(time.Now())))

	if err := policy.WriteReportCSV(w, report); err != nil {
		log.Printf("failed to write report CSV: %v", err)
	}
}
