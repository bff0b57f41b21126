package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	handler "github.com/nupl21/dieta-app/internal/http/handlers"
	"github.com/nupl21/dieta-app/internal/http/router"
	"github.com/nupl21/dieta-app/internal/models"
	"github.com/nupl21/dieta-app/internal/sheet"
)

func TestPutProductsHandler_Valid(t *testing.T) {
	t.Cleanup(clearAll)
	r := router.NewRouter(nil)

	w := putProducts(r, []handler.ProductRequest{
		{Name: " Arroz ", Price: 4, Yield: 1000, Unit: "g", Tier: "QUINCENAL"},
		{Name: "Sal"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.ProductsResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Meta.TotalCount != 2 {
		t.Fatalf("expected 2 products, got %d", resp.Meta.TotalCount)
	}

	rice := resp.Data[0]
	if rice.Name != "Arroz" {
		t.Errorf("expected trimmed name 'Arroz', got %q", rice.Name)
	}
	if rice.Tier != models.TierBiweekly {
		t.Errorf("expected tier %s, got %s", models.TierBiweekly, rice.Tier)
	}

	salt := resp.Data[1]
	if salt.Yield != 1 {
		t.Errorf("expected default yield 1, got %v", salt.Yield)
	}
	if salt.Unit != models.DefaultUnit {
		t.Errorf("expected default unit %s, got %s", models.DefaultUnit, salt.Unit)
	}
	if salt.Tier != models.TierWeekly {
		t.Errorf("expected default tier %s, got %s", models.TierWeekly, salt.Tier)
	}
}

func TestPutProductsHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAll)
	r := router.NewRouter(nil)

	tests := []struct {
		name           string
		payload        []handler.ProductRequest
		expectedErrors []string
	}{
		{
			name:           "Empty name",
			payload:        []handler.ProductRequest{{Name: "", Price: 1}},
			expectedErrors: []string{"Name"},
		},
		{
			name:           "Negative price and yield",
			payload:        []handler.ProductRequest{{Name: "Pan", Price: -1, Yield: -2}},
			expectedErrors: []string{"Price", "Yield"},
		},
		{
			name:           "Duplicated name",
			payload:        []handler.ProductRequest{{Name: "Pan"}, {Name: "Pan"}},
			expectedErrors: []string{"Name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := putProducts(r, tt.payload)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 Bad Request, got %d", w.Code)
			}

			var errs []handler.ValidationError
			if err := json.NewDecoder(w.Body).Decode(&errs); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}
			if len(errs) != len(tt.expectedErrors) {
				t.Fatalf("expected %d errors, got %d: %v", len(tt.expectedErrors), len(errs), errs)
			}
			for i, field := range tt.expectedErrors {
				if errs[i].Field != field {
					t.Errorf("expected error on %s, got %s", field, errs[i].Field)
				}
			}
		})
	}
}

func TestGetProductsHandler_NormalizesStoredRows(t *testing.T) {
	t.Cleanup(clearAll)
	r := router.NewRouter(nil)

	sheetRepo.Update(t.Context(), sheet.Products, []sheet.Record{
		{sheet.ColProduct: "Queso", sheet.ColPrice: "$1.234,5", sheet.ColYield: "abc", sheet.ColTier: "Mensual"},
		{sheet.ColProduct: "Huevos", sheet.ColPrice: "n/a", sheet.ColYield: "-3"},
	})

	w := doJSON(r, http.MethodGet, "/products", nil, false)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.ProductsResult
	json.NewDecoder(w.Body).Decode(&resp)
	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 products, got %d", len(resp.Data))
	}
	if resp.Data[0].Price != 1234.5 {
		t.Errorf("expected price 1234.5 from grouped decimal-comma value, got %v", resp.Data[0].Price)
	}
	if resp.Data[0].Yield != 1 {
		t.Errorf("expected yield 1 for unparseable value, got %v", resp.Data[0].Yield)
	}
	if resp.Data[0].Tier != models.TierMonthly {
		t.Errorf("expected tier %s, got %s", models.TierMonthly, resp.Data[0].Tier)
	}
	if resp.Data[1].Price != 0 {
		t.Errorf("expected price 0 for unparseable value, got %v", resp.Data[1].Price)
	}
	if resp.Data[1].Yield != 1 {
		t.Errorf("expected yield 1 for negative value, got %v", resp.Data[1].Yield)
	}
}

func TestPutMenuHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := router.NewRouter(nil)

	t.Run("Valid menu is stored with canonical slots", func(t *testing.T) {
		w := putMenu(r, []handler.MenuEntryRequest{
			{Product: "Avena", Weekday: 1, Slot: "breakfast", Quantity: 80},
			{Product: "Pollo", Weekday: 2, Slot: "almuerzo", Quantity: 200},
		})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}

		get := doJSON(r, http.MethodGet, "/menu", nil, false)
		var resp handler.MenuResult
		json.NewDecoder(get.Body).Decode(&resp)

		if resp.Meta.TotalCount != 2 {
			t.Fatalf("expected 2 entries, got %d", resp.Meta.TotalCount)
		}
		if resp.Data[0].Slot != models.SlotBreakfast {
			t.Errorf("expected slot %s, got %s", models.SlotBreakfast, resp.Data[0].Slot)
		}
		if resp.Data[1].Slot != models.SlotLunch {
			t.Errorf("expected slot %s, got %s", models.SlotLunch, resp.Data[1].Slot)
		}
	})

	t.Run("Weekday out of range is rejected", func(t *testing.T) {
		w := putMenu(r, []handler.MenuEntryRequest{{Product: "Avena", Weekday: 8, Slot: "Desayuno", Quantity: 1}})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 Bad Request, got %d", w.Code)
		}
	})
}

func TestPutListHandler_DefaultsToActive(t *testing.T) {
	t.Cleanup(clearAll)
	r := router.NewRouter(nil)

	inactive := false
	w := doJSON(r, http.MethodPut, "/list", []handler.ListItemRequest{
		{Product: "Arroz", WeeklyQuantity: 700, PackagePrice: 4, PackageYield: 1000, Tier: "quincenal"},
		{Product: "Pan", WeeklyQuantity: 2, Active: &inactive},
	}, true)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.ListResult
	json.NewDecoder(w.Body).Decode(&resp)
	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 items, got %d", len(resp.Data))
	}
	if !resp.Data[0].Active {
		t.Errorf("expected item without flag to be active")
	}
	if resp.Data[1].Active {
		t.Errorf("expected Pan to be inactive")
	}
	if resp.Data[0].Tier != models.TierBiweekly {
		t.Errorf("expected tier %s, got %s", models.TierBiweekly, resp.Data[0].Tier)
	}
}

func TestWorksheetWrites_RequireToken(t *testing.T) {
	t.Cleanup(clearAll)
	r := router.NewRouter(nil)

	paths := []string{"/products", "/menu", "/list", "/recipes"}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			w := doJSON(r, http.MethodPut, path, []any{}, false)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected 401 Unauthorized, got %d", w.Code)
			}
		})
	}
}
