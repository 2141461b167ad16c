package handlers

import (
	"strings"
)

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProduct(p ProductRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ProductValidationError{Field: "Name", Description: "Name is required"})
	}
	if strings.TrimSpace(p.SKU) == "" {
		errs = append(errs, ProductValidationError{Field: "SKU", Description: "SKU is required"})
	}
	if p.CostPrice.IsNegative() {
		errs = append(errs, ProductValidationError{Field: "CostPrice", Description: "Cost price cannot be negative"})
	}
	if p.SellingPrice.IsNegative() {
		errs = append(errs, ProductValidationError{Field: "SellingPrice", Description: "Selling price cannot be negative"})
	}
	if p.CurrentStock < 0 {
		errs = append(errs, ProductValidationError{Field: "CurrentStock", Description: "Stock cannot be negative"})
	}
	if p.MinStockLevel < 0 || p.MaxStockLevel < 0 {
		errs = append(errs, ProductValidationError{Field: "StockLevels", Description: "Stock levels cannot be negative"})
	}
	return errs
}
