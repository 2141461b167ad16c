package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stockpile-io/stockpile/internal/alert"
	"github.com/stockpile-io/stockpile/internal/models"
	"github.com/stockpile-io/stockpile/internal/policy"
	repo "github.com/stockpile-io/stockpile/internal/repo"
)

func checkLowStock(p models.Product) {
	alert.CheckProduct(p)
}

// RestockHandler godoc
// @Summary Restock a product
// @Description Increases current stock by an operator-chosen quantity. Open to any authenticated role.
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param restock body RestockRequest true "Quantity to add"
// @Success 200 {object} ProductResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Not found"
// @Failure 409 {string} string "Negative quantity"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id}/restock [post]
func RestockHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req RestockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	product, err := productRepo.Restock(id, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrInvalidQuantity):
			http.Error(w, "quantity cannot be negative", http.StatusConflict)
		case errors.Is(err, repo.ErrProductNotFound):
			http.Error(w, "product not found", http.StatusNotFound)
		default:
			http.Error(w, "could not restock product", http.StatusInternalServerError)
		}
		return
	}
	_ = movementRepo.Log(id, req.Quantity)
	invalidateDashboardCache()
	checkLowStock(product)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toProductResponse(product))
}

// RestockSuggestionsHandler godoc
// @Summary Products needing restock with suggested quantities
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Success 200 {array} RestockSuggestion
// @Failure 500 {string} string "Internal error"
// @Router /restock/suggestions [get]
func RestockSuggestionsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}

	suggestions := []RestockSuggestion{}
	for _, p := range products {
		if !policy.NeedsRestock(p) {
			continue
		}
		suggestions = append(suggestions, RestockSuggestion{
			Product:           toProductResponse(p),
			SuggestedQuantity: policy.SuggestedQuantity(p),
			Urgency:           policy.UrgencyOf(p),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(suggestions)
}

// GetMovementsHandler godoc
// @Summary Get stock movement history for a product
// @Tags movements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param since query string false "Filter movements from this timestamp (RFC3339)"
// @Param until query string false "Filter movements until this timestamp (RFC3339)"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} MovementsSearchResult
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Product not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id}/movements [get]
func GetMovementsHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, err := productRepo.GetByID(id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	var mf repo.MovementFilter
	if sinceStr := r.URL.Query().Get("since"); sinceStr != "" {
		ts, err := time.Parse(time.RFC3339, sinceStr)
		if err != nil {
			http.Error(w, "invalid since date format", http.StatusBadRequest)
			return
		}
		mf.Since = &ts
	}
	if untilStr := r.URL.Query().Get("until"); untilStr != "" {
		ts, err := time.Parse(time.RFC3339, untilStr)
		if err != nil {
			http.Error(w, "invalid until date format", http.StatusBadRequest)
			return
		}
		mf.Until = &ts
	}

	mf.Offset = parseIntPtr(r.URL.Query().Get("offset"))
	mf.Limit = parseIntPtr(r.URL.Query().Get("limit"))
	if mf.Limit != nil && *mf.Limit <= 0 {
		http.Error(w, "limit must be greater than zero", http.StatusBadRequest)
		return
	}
	if mf.Offset != nil && *mf.Offset < 0 {
		http.Error(w, "offset must be zero or positive", http.StatusBadRequest)
		return
	}

	movements, total, err := movementRepo.GetByProductID(id, mf)
	if err != nil {
		http.Error(w, "could not retrieve movements", http.StatusInternalServerError)
		return
	}

	response := MovementsSearchResult{
		Data: make([]MovementResponse, len(movements)),
		Meta: Meta{TotalCount: total},
	}
	for i, m := range movements {
		response.Data[i] = MovementResponse{
			ID:        m.ID,
			ProductID: m.ProductID,
			Delta:     m.Delta,
			CreatedAt: m.CreatedAt.Format(time.RFC3339),
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
