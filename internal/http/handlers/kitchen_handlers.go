package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/nupl21/dieta-app/internal/planner"
	"github.com/nupl21/dieta-app/internal/sheet"
)

// KitchenHandler godoc
// @Summary What to cook on a weekday
// @Tags kitchen
// @Produce json
// @Param day query int false "Weekday 1 (Monday) to 7 (Sunday); defaults to today"
// @Success 200 {object} planner.KitchenDay
// @Failure 400 {string} string "Invalid day"
// @Failure 502 {string} string "Store failure"
// @Router /kitchen [get]
func KitchenHandler(w http.ResponseWriter, r *http.Request) {
	day := planner.WeekdayOf(time.Now().Weekday())
	if s := r.URL.Query().Get("day"); s != "" {
		d, err := strconv.Atoi(s)
		if err != nil || d < 1 || d > 7 {
			http.Error(w, "day must be between 1 and 7", http.StatusBadRequest)
			return
		}
		day = d
	}

	menuRows, err := sheetRepo.Read(r.Context(), sheet.Menu)
	if err != nil {
		storeError(w, err, "could not fetch menu")
		return
	}
	recipeRows, err := sheetRepo.Read(r.Context(), sheet.Recipes)
	if err != nil {
		storeError(w, err, "could not fetch recipes")
		return
	}

	respond(w, http.StatusOK, planner.Kitchen(planner.NormalizeMenu(menuRows), planner.NormalizeRecipes(recipeRows), day))
}
