package handlers_test_suite

import (
	"net/http"
	"testing"

	handler "github.com/nupl21/dieta-app/internal/http/handlers"
	"github.com/nupl21/dieta-app/internal/http/router"
	"github.com/nupl21/dieta-app/internal/planner"
	"github.com/shopspring/decimal"
)

func TestPlanHandler_ComputesShoppingList(t *testing.T) {
	t.Cleanup(clearAll)
	r := router.NewRouter(nil)

	if err := seedHousehold(r); err != nil {
		t.Fatal(err)
	}
	session, err := createSession(r)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name         string
		req          handler.PlanRequest
		oatPackages  int64
		milkPackages int64
		totalCost    string
	}{
		{name: "Default horizon", req: handler.PlanRequest{}, oatPackages: 2, milkPackages: 1, totalCost: "8.5"},
		{name: "Two weeks", req: handler.PlanRequest{Days: 14, StartWeekday: 1}, oatPackages: 3, milkPackages: 2, totalCost: "14"},
		{name: "Monday to Wednesday", req: handler.PlanRequest{Days: 3, StartWeekday: 1}, oatPackages: 1, milkPackages: 1, totalCost: "5.5"},
		{name: "Weekend only", req: handler.PlanRequest{Days: 2, StartWeekday: 6}, oatPackages: 1, milkPackages: 0, totalCost: "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, code := plan(r, session, tt.req)
			if code != http.StatusOK {
				t.Fatalf("expected 200 OK, got %d", code)
			}
			if resp.NoData || resp.Plan == nil {
				t.Fatalf("expected a plan, got no data")
			}

			oats, ok := findLine(resp.Plan.Lines, "Avena")
			if !ok {
				t.Fatalf("expected a line for Avena")
			}
			if oats.Packages != tt.oatPackages {
				t.Errorf("expected %d packages of Avena, got %d", tt.oatPackages, oats.Packages)
			}

			milk, ok := findLine(resp.Plan.Lines, "Leche")
			if !ok {
				t.Fatalf("expected a line for Leche")
			}
			if milk.Packages != tt.milkPackages {
				t.Errorf("expected %d packages of Leche, got %d", tt.milkPackages, milk.Packages)
			}
			if milk.Location != "Super" {
				t.Errorf("expected location Super, got %q", milk.Location)
			}

			want := decimal.RequireFromString(tt.totalCost)
			if !resp.Plan.Metrics.TotalCost.Equal(want) {
				t.Errorf("expected total cost %s, got %s", want, resp.Plan.Metrics.TotalCost)
			}
		})
	}
}

func TestPlanHandler_BucketsByTier(t *testing.T) {
	t.Cleanup(clearAll)
	r := router.NewRouter(nil)

	if err := seedHousehold(r); err != nil {
		t.Fatal(err)
	}
	session, _ := createSession(r)

	t.Run("One week has no buckets", func(t *testing.T) {
		resp, _ := plan(r, session, handler.PlanRequest{Days: 7})
		if resp.Plan.Buckets != nil {
			t.Errorf("expected no buckets for one week, got %+v", resp.Plan.Buckets)
		}
	})

	t.Run("Two weeks stock monthly products", func(t *testing.T) {
		resp, _ := plan(r, session, handler.PlanRequest{Days: 14})
		if resp.Plan.Buckets == nil {
			t.Fatal("expected buckets for two weeks")
		}
		if len(resp.Plan.Buckets.Stock) != 1 || resp.Plan.Buckets.Stock[0].Product != "Avena" {
			t.Errorf("expected Avena in stock, got %+v", resp.Plan.Buckets.Stock)
		}
		if len(resp.Plan.Buckets.Replenish) != 1 || resp.Plan.Buckets.Replenish[0].Product != "Leche" {
			t.Errorf("expected Leche to replenish, got %+v", resp.Plan.Buckets.Replenish)
		}
	})
}

func TestPlanHandler_DanglingProduct(t *testing.T) {
	t.Cleanup(clearAll)
	r := router.NewRouter(nil)

	putProducts(r, []handler.ProductRequest{{Name: "Leche", Price: 2.5, Yield: 1}})
	putMenu(r, []handler.MenuEntryRequest{{Product: "Tomate", Weekday: 1, Slot: "Almuerzo", Quantity: 2}})
	session, _ := createSession(r)

	resp, code := plan(r, session, handler.PlanRequest{Days: 7})
	if code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", code)
	}

	line, ok := findLine(resp.Plan.Lines, "Tomate")
	if !ok {
		t.Fatal("expected unknown product to stay in the list")
	}
	if line.Packages != 2 {
		t.Errorf("expected 2 packages with yield 1, got %d", line.Packages)
	}
	if !line.Subtotal.IsZero() {
		t.Errorf("expected zero subtotal, got %s", line.Subtotal)
	}
}

func TestPlanHandler_NoData(t *testing.T) {
	t.Cleanup(clearAll)
	r := router.NewRouter(nil)

	session, _ := createSession(r)
	resp, code := plan(r, session, handler.PlanRequest{Days: 7})
	if code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", code)
	}
	if !resp.NoData {
		t.Error("expected no_data to be true")
	}
	if resp.Plan != nil {
		t.Errorf("expected no plan, got %+v", resp.Plan)
	}
}

func TestPlanHandler_Errors(t *testing.T) {
	t.Cleanup(clearAll)
	r := router.NewRouter(nil)

	t.Run("Unknown session", func(t *testing.T) {
		_, code := plan(r, "does-not-exist", handler.PlanRequest{Days: 7})
		if code != http.StatusNotFound {
			t.Errorf("expected 404 Not Found, got %d", code)
		}
	})

	t.Run("Invalid start weekday", func(t *testing.T) {
		session, _ := createSession(r)
		_, code := plan(r, session, handler.PlanRequest{Days: 7, StartWeekday: 9})
		if code != http.StatusBadRequest {
			t.Errorf("expected 400 Bad Request, got %d", code)
		}
	})
}

func TestWeeklyPlanHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := router.NewRouter(nil)

	inactive := false
	w := doJSON(r, http.MethodPut, "/list", []handler.ListItemRequest{
		{Product: "Arroz", Category: "Despensa", WeeklyQuantity: 700, Tier: "Quincenal", PackagePrice: 4, PackageYield: 1000},
		{Product: "Aceite", Category: "Despensa", WeeklyQuantity: 0.2, Tier: "Mensual", PackagePrice: 10, PackageYield: 1},
		{Product: "Fruta", Category: "Frescos", WeeklyQuantity: 2, Tier: "Semanal", PackagePrice: 1.5, PackageYield: 1},
		{Product: "Pan", WeeklyQuantity: 3, PackagePrice: 1, PackageYield: 1, Active: &inactive},
	}, true)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	session, _ := createSession(r)

	t.Run("Two weeks", func(t *testing.T) {
		resp := weeklyPlan(t, r, session, handler.WeeklyPlanRequest{Period: "2 Semanas"})

		if len(resp.Plan.Lines) != 3 {
			t.Fatalf("expected 3 lines without the inactive item, got %d", len(resp.Plan.Lines))
		}
		if resp.Plan.Period != planner.TwoWeeks {
			t.Errorf("expected period %d, got %d", planner.TwoWeeks, resp.Plan.Period)
		}
		if !resp.Plan.Metrics.TotalCost.Equal(decimal.NewFromInt(24)) {
			t.Errorf("expected total cost 24, got %s", resp.Plan.Metrics.TotalCost)
		}
		if len(resp.Plan.Buckets.Stock) != 2 {
			t.Errorf("expected 2 products to stock, got %d", len(resp.Plan.Buckets.Stock))
		}
		if len(resp.Plan.Buckets.Replenish) != 1 || resp.Plan.Buckets.Replenish[0].Product != "Fruta" {
			t.Errorf("expected Fruta to replenish, got %+v", resp.Plan.Buckets.Replenish)
		}
	})

	t.Run("One month stocks only monthly items", func(t *testing.T) {
		resp := weeklyPlan(t, r, session, handler.WeeklyPlanRequest{Period: "1 Mes (4 Semanas)"})

		if len(resp.Plan.Buckets.Stock) != 1 || resp.Plan.Buckets.Stock[0].Product != "Aceite" {
			t.Errorf("expected only Aceite to stock, got %+v", resp.Plan.Buckets.Stock)
		}
		rice, _ := findLine(resp.Plan.Lines, "Arroz")
		if rice.Packages != 3 {
			t.Errorf("expected 3 packages of Arroz, got %d", rice.Packages)
		}
	})

	t.Run("Unknown period label", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/sessions/"+session+"/plan/weekly", handler.WeeklyPlanRequest{Period: "5 Semanas"}, false)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 Bad Request, got %d", w.Code)
		}
	})
}

func weeklyPlan(t *testing.T, r http.Handler, session string, req handler.WeeklyPlanRequest) handler.PlanResult {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/sessions/"+session+"/plan/weekly", req, false)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var resp handler.PlanResult
	if err := decode(w.Body, &resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Plan == nil {
		t.Fatal("expected a plan")
	}
	return resp
}
