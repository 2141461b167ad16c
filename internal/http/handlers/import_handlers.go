package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	models "github.com/stockpile-io/stockpile/internal/models"
	repo "github.com/stockpile-io/stockpile/internal/repo"
)

type csvRow struct {
	Name          string
	Description   string
	Category      string
	Brand         string
	SKU           string
	Barcode       string
	Supplier      string
	Location      string
	CurrentStock  int
	MinStockLevel int
	MaxStockLevel int
	CostPrice     decimal.Decimal
	SellingPrice  decimal.Decimal
}

func parseCSV(file multipart.File) ([]csvRow, error) {
	reader := csv.NewReader(file)
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}

	field := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var rows []csvRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}

		rows = append(rows, csvRow{
			Name:          field(record, "name"),
			Description:   field(record, "description"),
			Category:      field(record, "category"),
			Brand:         field(record, "brand"),
			SKU:           field(record, "sku"),
			Barcode:       field(record, "barcode"),
			Supplier:      field(record, "supplier"),
			Location:      field(record, "location"),
			CurrentStock:  parseInt(field(record, "current_stock")),
			MinStockLevel: parseInt(field(record, "min_stock_level")),
			MaxStockLevel: parseInt(field(record, "max_stock_level")),
			CostPrice:     parseDecimal(field(record, "cost_price")),
			SellingPrice:  parseDecimal(field(record, "selling_price")),
		})
	}
	return rows, nil
}

func validateRow(r csvRow) error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("missing name")
	}
	if strings.TrimSpace(r.SKU) == "" {
		return errors.New("missing sku")
	}
	if r.CostPrice.IsNegative() || r.SellingPrice.IsNegative() {
		return errors.New("invalid price")
	}
	if r.CurrentStock < 0 || r.MinStockLevel < 0 || r.MaxStockLevel < 0 {
		return errors.New("invalid stock level")
	}
	return nil
}

func parseDecimal(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

func parseInt(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

func rowToProduct(rec csvRow) models.Product {
	return models.Product{
		Name:          rec.Name,
		Description:   rec.Description,
		Category:      rec.Category,
		Brand:         rec.Brand,
		SKU:           rec.SKU,
		Barcode:       rec.Barcode,
		Supplier:      rec.Supplier,
		Location:      rec.Location,
		CurrentStock:  rec.CurrentStock,
		MinStockLevel: rec.MinStockLevel,
		MaxStockLevel: rec.MaxStockLevel,
		CostPrice:     rec.CostPrice,
		SellingPrice:  rec.SellingPrice,
	}
}

// ImportProductsHandler godoc
// @Summary Import products via CSV
// @Description Rows are matched on SKU. Mode "skip" leaves existing products alone, "update" overwrites them.
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "CSV file"
// @Param mode query string false "Import mode (skip|update)"
// @Success 200 {object} ImportProductsResult
// @Failure 400 {string} string "Invalid file"
// @Failure 500 {string} string "Internal error"
// @Router /products/import [post]
func ImportProductsHandler(w http.ResponseWriter, r *http.Request) {
	mode := strings.ToLower(r.URL.Query().Get("mode"))
	if mode != "update" {
		mode = "skip" // default
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	records, err := parseCSV(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var imported int
	var errorsList []ProductValidationError

	for i, rec := range records {
		rowNum := i + 2 // header is row 1

		if err := validateRow(rec); err != nil {
			errorsList = append(errorsList, ProductValidationError{Description: fmt.Sprintf("row %d: %v", rowNum, err)})
			continue
		}

		existing, err := productRepo.GetBySKU(rec.SKU)
		if err == nil {
			if mode == "skip" {
				errorsList = append(errorsList, ProductValidationError{Description: fmt.Sprintf("row %d: product with SKU '%s' already exists", rowNum, rec.SKU)})
				continue
			}
			updated := rowToProduct(rec)
			updated.ID = existing.ID
			if _, err := productRepo.Update(updated); err != nil {
				errorsList = append(errorsList, ProductValidationError{Description: fmt.Sprintf("row %d: failed to update '%s'", rowNum, rec.SKU)})
				continue
			}
			imported++
			continue
		}
		if !errors.Is(err, repo.ErrProductNotFound) {
			errorsList = append(errorsList, ProductValidationError{Description: fmt.Sprintf("row %d: %v", rowNum, err)})
			continue
		}

		if _, err := productRepo.Create(rowToProduct(rec)); err != nil {
			errorsList = append(errorsList, ProductValidationError{Description: fmt.Sprintf("row %d: %v", rowNum, err)})
			continue
		}
		imported++
	}
	invalidateDashboardCache()

	err = writeJSON(w, http.StatusOK, ImportProductsResult{
		ImportedProductsCount: imported,
		Errors:                errorsList,
	})
	if err != nil {
		http.Error(w, "", http.StatusInternalServerError)
	}
}
