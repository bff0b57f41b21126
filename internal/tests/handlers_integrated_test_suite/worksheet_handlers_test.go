package handlers_integrated_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	handler "github.com/nupl21/dieta-app/internal/http/handlers"
	"github.com/nupl21/dieta-app/internal/http/router"
	"github.com/nupl21/dieta-app/internal/sheet"
	"github.com/shopspring/decimal"
)

func TestWorksheetsRoundTrip(t *testing.T) {
	t.Cleanup(clearAllWorksheets)
	r := router.NewRouter(nil)

	w := doJSON(r, http.MethodPut, "/products", []handler.ProductRequest{
		{Name: "Avena", Price: 3, Yield: 500, Unit: "g", Tier: "Mensual"},
		{Name: "Leche", Price: 2.5, Yield: 1, Unit: "L"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	rows, err := sheetRepo.Read(t.Context(), sheet.Products)
	if err != nil {
		t.Fatalf("unexpected error reading worksheet: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 stored rows, got %d", len(rows))
	}
	if rows[0][sheet.ColProduct] != "Avena" || rows[1][sheet.ColProduct] != "Leche" {
		t.Errorf("expected rows in saved order, got %v", rows)
	}

	w = doJSON(r, http.MethodPut, "/products", []handler.ProductRequest{{Name: "Leche", Price: 2.5, Yield: 1}})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	rows, _ = sheetRepo.Read(t.Context(), sheet.Products)
	if len(rows) != 1 {
		t.Errorf("expected update to replace the worksheet, got %d rows", len(rows))
	}
}

func TestPlanAgainstPostgres(t *testing.T) {
	t.Cleanup(clearAllWorksheets)
	r := router.NewRouter(nil)

	doJSON(r, http.MethodPut, "/products", []handler.ProductRequest{
		{Name: "Avena", Price: 3, Yield: 500, Unit: "g", Tier: "Mensual"},
	})
	var menu []handler.MenuEntryRequest
	for day := 1; day <= 7; day++ {
		menu = append(menu, handler.MenuEntryRequest{Product: "Avena", Weekday: day, Slot: "Desayuno", Quantity: 80})
	}
	doJSON(r, http.MethodPut, "/menu", menu)

	w := doJSON(r, http.MethodPost, "/sessions", nil)
	var session handler.SessionResult
	json.NewDecoder(w.Body).Decode(&session)

	w = doJSON(r, http.MethodPost, "/sessions/"+session.SessionID+"/plan", handler.PlanRequest{Days: 14, StartWeekday: 1})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.PlanResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Plan == nil || len(resp.Plan.Lines) != 1 {
		t.Fatalf("expected one line, got %+v", resp.Plan)
	}
	if resp.Plan.Lines[0].Packages != 3 {
		t.Errorf("expected 3 packages, got %d", resp.Plan.Lines[0].Packages)
	}
	if !resp.Plan.Metrics.TotalCost.Equal(decimal.NewFromInt(9)) {
		t.Errorf("expected total cost 9, got %s", resp.Plan.Metrics.TotalCost)
	}
}
