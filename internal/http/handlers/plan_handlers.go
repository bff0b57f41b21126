package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/nupl21/dieta-app/internal/planner"
	"github.com/nupl21/dieta-app/internal/sheet"
)

// CreateSessionHandler godoc
// @Summary Start a planning session with an empty cart
// @Tags sessions
// @Produce json
// @Success 201 {object} SessionResult
// @Failure 502 {string} string "Store failure"
// @Router /sessions [post]
func CreateSessionHandler(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	if err := cartRepo.Save(r.Context(), id, planner.Cart{Lines: []planner.CartLine{}}); err != nil {
		storeError(w, err, "could not create session")
		return
	}
	respond(w, http.StatusCreated, SessionResult{SessionID: id})
}

// PlanHandler godoc
// @Summary Recompute the shopping list from the day-based menu
// @Description Expands the horizon over the weekly menu, resolves packages and merges the result into the session cart
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param schedule body PlanRequest false "Horizon; zero values use the configured defaults"
// @Success 200 {object} PlanResult
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Session not found"
// @Failure 502 {string} string "Store failure"
// @Router /sessions/{id}/plan [post]
func PlanHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req PlanRequest
	if r.ContentLength != 0 {
		if err := readJSON(w, r, &req); err != nil {
			http.Error(w, "invalid input", http.StatusBadRequest)
			return
		}
	}
	if req.Days < 0 || req.StartWeekday < 0 || req.StartWeekday > 7 {
		http.Error(w, "days must be positive and start_weekday between 1 and 7", http.StatusBadRequest)
		return
	}
	cfg := defaultSchedule
	if req.Days > 0 {
		cfg.Days = req.Days
	}
	if req.StartWeekday > 0 {
		cfg.StartWeekday = req.StartWeekday
	}

	cart, err := cartRepo.Load(r.Context(), id)
	if err != nil {
		storeError(w, err, "could not load session")
		return
	}

	productRows, err := sheetRepo.Read(r.Context(), sheet.Products)
	if err != nil {
		storeError(w, err, "could not fetch products")
		return
	}
	menuRows, err := sheetRepo.Read(r.Context(), sheet.Menu)
	if err != nil {
		storeError(w, err, "could not fetch menu")
		return
	}

	plan, err := plans.Recompute(planner.NormalizeProducts(productRows), planner.NormalizeMenu(menuRows), cfg, cart)
	finishPlan(w, r, id, plan, err)
}

// WeeklyPlanHandler godoc
// @Summary Recompute the shopping list from the flat weekly list
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param period body WeeklyPlanRequest false "Period label (\"1 Semana\", \"2 Semanas\", \"3 Semanas\", \"1 Mes (4 Semanas)\") or weeks"
// @Success 200 {object} PlanResult
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Session not found"
// @Failure 502 {string} string "Store failure"
// @Router /sessions/{id}/plan/weekly [post]
func WeeklyPlanHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req WeeklyPlanRequest
	if r.ContentLength != 0 {
		if err := readJSON(w, r, &req); err != nil {
			http.Error(w, "invalid input", http.StatusBadRequest)
			return
		}
	}

	period := planner.PeriodFromDays(defaultSchedule.Days)
	switch {
	case req.Period != "":
		p, err := planner.ParsePeriod(req.Period)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		period = p
	case req.Weeks != 0:
		if req.Weeks < int(planner.OneWeek) || req.Weeks > int(planner.OneMonth) {
			http.Error(w, "weeks must be between 1 and 4", http.StatusBadRequest)
			return
		}
		period = planner.Period(req.Weeks)
	}

	cart, err := cartRepo.Load(r.Context(), id)
	if err != nil {
		storeError(w, err, "could not load session")
		return
	}

	rows, err := sheetRepo.Read(r.Context(), sheet.List)
	if err != nil {
		storeError(w, err, "could not fetch list")
		return
	}

	plan, err := plans.RecomputeList(planner.NormalizeList(rows), period, cart)
	finishPlan(w, r, id, plan, err)
}

func finishPlan(w http.ResponseWriter, r *http.Request, id string, plan planner.Plan, err error) {
	if errors.Is(err, planner.ErrNoData) {
		respond(w, http.StatusOK, PlanResult{SessionID: id, NoData: true, Message: err.Error()})
		return
	}
	if err != nil {
		http.Error(w, "could not compute plan", http.StatusInternalServerError)
		return
	}

	if err := cartRepo.Save(r.Context(), id, plan.Cart); err != nil {
		storeError(w, err, "could not save cart")
		return
	}
	respond(w, http.StatusOK, PlanResult{SessionID: id, Plan: &plan})
}
