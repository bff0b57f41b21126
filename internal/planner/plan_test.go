package planner

import (
	"errors"
	"testing"

	"github.com/nupl21/dieta-app/internal/models"
)

func sampleProducts() []models.Product {
	return []models.Product{
		{Name: "Avena", Price: 800, Yield: 500, Tier: models.TierMonthly},
		{Name: "Pollo", Price: 4500, Yield: 1000, Tier: models.TierWeekly},
		{Name: "Yogur", Price: 600, Yield: 1, Tier: "quincenal"},
		{Name: "Fruta", Price: 300, Yield: 1},
	}
}

func TestRecompute_NoData(t *testing.T) {
	p := New(nil)

	if _, err := p.Recompute(nil, sampleMenu(), ScheduleConfig{Days: 7, StartWeekday: 1}, Cart{}); !errors.Is(err, ErrNoData) {
		t.Errorf("expected ErrNoData for empty catalog, got %v", err)
	}
	if _, err := p.Recompute(sampleProducts(), nil, ScheduleConfig{Days: 7, StartWeekday: 1}, Cart{}); !errors.Is(err, ErrNoData) {
		t.Errorf("expected ErrNoData for empty menu, got %v", err)
	}
	if _, err := p.RecomputeList(nil, OneWeek, Cart{}); !errors.Is(err, ErrNoData) {
		t.Errorf("expected ErrNoData for empty list, got %v", err)
	}
}

func TestRecompute_BlankRowsAreNoData(t *testing.T) {
	p := New(nil)
	menu := []models.MenuEntry{{Product: " ", Weekday: 1, Slot: models.SlotLunch, Quantity: 2}}

	if _, err := p.Recompute(sampleProducts(), menu, ScheduleConfig{Days: 7, StartWeekday: 1}, Cart{}); !errors.Is(err, ErrNoData) {
		t.Errorf("expected ErrNoData for a menu of blank rows, got %v", err)
	}
	if _, err := p.RecomputeList([]models.ListItem{{WeeklyQuantity: 3, Active: true}}, OneWeek, Cart{}); !errors.Is(err, ErrNoData) {
		t.Errorf("expected ErrNoData for a list of blank rows, got %v", err)
	}
}

func TestRecompute_Monotonic(t *testing.T) {
	p := New(nil)
	menu := sampleMenu()

	for start := 1; start <= 7; start++ {
		prev := map[string]Line{}
		for days := 1; days <= 35; days++ {
			plan, err := p.Recompute(sampleProducts(), menu, ScheduleConfig{Days: days, StartWeekday: start}, Cart{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, l := range plan.Lines {
				before, ok := prev[l.Product]
				if ok && (l.TotalNeeded < before.TotalNeeded || l.Packages < before.Packages) {
					t.Fatalf("start=%d days=%d: %s decreased from %v/%d to %v/%d",
						start, days, l.Product, before.TotalNeeded, before.Packages, l.TotalNeeded, l.Packages)
				}
				prev[l.Product] = l
			}
		}
	}
}

func TestRecompute_Plan(t *testing.T) {
	p := New(nil)
	cfg := ScheduleConfig{Days: 14, StartWeekday: 1}

	plan, err := p.Recompute(sampleProducts(), sampleMenu(), cfg, Cart{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.Period != TwoWeeks {
		t.Errorf("expected two week period, got %v", plan.Period)
	}
	if plan.Counts == nil || plan.Counts.Total() != 14 {
		t.Errorf("expected weekday counts for 14 days, got %v", plan.Counts)
	}
	if plan.Buckets == nil {
		t.Fatal("expected buckets for a two week plan")
	}
	if got := len(plan.Buckets.Stock) + len(plan.Buckets.Replenish); got != len(plan.Lines) {
		t.Errorf("expected buckets to cover %d lines, got %d", len(plan.Lines), got)
	}
	if plan.Metrics.ItemCount != 4 {
		t.Errorf("expected 4 items, got %d", plan.Metrics.ItemCount)
	}
	if len(plan.Cart.Lines) != len(plan.Lines) {
		t.Errorf("expected a cart line per shopping line")
	}
	if !plan.CartTotal.IsZero() {
		t.Errorf("expected empty cart total on first compute, got %v", plan.CartTotal)
	}

	// Avena: 50g on two weekdays, twice each → 200g in 500g bags.
	for _, l := range plan.Lines {
		if l.Product == "Avena" && (l.TotalNeeded != 200 || l.Packages != 1) {
			t.Errorf("unexpected Avena line: %+v", l)
		}
	}
}

func TestRecomputeList_SingleWeekHasNoBuckets(t *testing.T) {
	p := New(nil)
	items := []models.ListItem{
		{Product: "Rice", WeeklyQuantity: 10, Active: true, PackageYield: 1, PackagePrice: 1, Tier: models.TierMonthly},
	}

	plan, err := p.RecomputeList(items, OneWeek, Cart{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Buckets != nil {
		t.Errorf("expected no buckets for a single week")
	}
	if plan.Metrics.TotalPackages != 10 {
		t.Errorf("expected 10 packages, got %d", plan.Metrics.TotalPackages)
	}
}
