package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/nupl21/dieta-app/internal/planner"
)

// GetCartHandler godoc
// @Summary Get the session cart
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} CartResult
// @Failure 404 {string} string "Session not found"
// @Failure 502 {string} string "Store failure"
// @Router /sessions/{id}/cart [get]
func GetCartHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	cart, err := cartRepo.Load(r.Context(), id)
	if err != nil {
		storeError(w, err, "could not load session")
		return
	}
	respond(w, http.StatusOK, CartResult{SessionID: id, Cart: cart, Total: cart.Total()})
}

// UpdateCartLineHandler godoc
// @Summary Include a product or override its quantity
// @Description Overrides survive later recomputes as long as the product is still planned
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param product path string true "Product name"
// @Param update body planner.LineUpdate true "Changes"
// @Success 200 {object} CartResult
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Session or product not found"
// @Failure 502 {string} string "Store failure"
// @Router /sessions/{id}/cart/{product} [patch]
func UpdateCartLineHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	product, err := url.PathUnescape(chi.URLParam(r, "product"))
	if err != nil {
		http.Error(w, "invalid product", http.StatusBadRequest)
		return
	}

	var update planner.LineUpdate
	if err := readJSON(w, r, &update); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	cart, err := cartRepo.Load(r.Context(), id)
	if err != nil {
		storeError(w, err, "could not load session")
		return
	}

	cart, err = cart.Apply(product, update)
	switch {
	case errors.Is(err, planner.ErrUnknownProduct):
		http.Error(w, "product not in cart", http.StatusNotFound)
		return
	case errors.Is(err, planner.ErrInvalidQuantity):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		http.Error(w, "could not update cart", http.StatusInternalServerError)
		return
	}

	if err := cartRepo.Save(r.Context(), id, cart); err != nil {
		storeError(w, err, "could not save cart")
		return
	}
	respond(w, http.StatusOK, CartResult{SessionID: id, Cart: cart, Total: cart.Total()})
}
