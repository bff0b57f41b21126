package planner

import (
	"math"
	"sort"
	"strings"

	"github.com/nupl21/dieta-app/internal/models"
	"github.com/shopspring/decimal"
)

// Consumption is the total quantity of a product needed over a horizon.
type Consumption struct {
	Product  string
	Quantity decimal.Decimal
}

// SlotConsumption is the consumption of a product within one meal slot.
type SlotConsumption struct {
	Slot     models.MealSlot `json:"slot"`
	Product  string          `json:"product"`
	Quantity float64         `json:"quantity"`
}

// AggregateMenu multiplies every entry by the recurrences of its weekday
// and sums per product. Entries without a product name are leftover
// blank rows and are skipped. The result is sorted by product name.
func AggregateMenu(entries []models.MenuEntry, counts WeekdayCounts) []Consumption {
	totals := map[string]decimal.Decimal{}
	for _, e := range entries {
		if blank(e.Product) {
			continue
		}
		totals[e.Product] = totals[e.Product].Add(entryTotal(e, counts))
	}
	return sortedConsumption(totals)
}

// AggregateBySlot is AggregateMenu split by meal slot, ordered by slot
// then product.
func AggregateBySlot(entries []models.MenuEntry, counts WeekdayCounts) []SlotConsumption {
	type key struct {
		slot    models.MealSlot
		product string
	}
	totals := map[key]decimal.Decimal{}
	for _, e := range entries {
		if blank(e.Product) {
			continue
		}
		k := key{e.Slot, e.Product}
		totals[k] = totals[k].Add(entryTotal(e, counts))
	}

	out := make([]SlotConsumption, 0, len(totals))
	for k, q := range totals {
		out = append(out, SlotConsumption{Slot: k.slot, Product: k.product, Quantity: q.InexactFloat64()})
	}
	sort.Slice(out, func(i, j int) bool {
		si, sj := slotOrder(out[i].Slot), slotOrder(out[j].Slot)
		if si != sj {
			return si < sj
		}
		if out[i].Slot != out[j].Slot {
			return out[i].Slot < out[j].Slot
		}
		return out[i].Product < out[j].Product
	})
	return out
}

// AggregateList multiplies the weekly quantity of every active item by the
// period and sums per product. Inactive items are excluded from the list.
func AggregateList(items []models.ListItem, period Period) []Consumption {
	weeks := decimal.NewFromInt(int64(period))
	totals := map[string]decimal.Decimal{}
	for _, it := range items {
		if !it.Active || blank(it.Product) {
			continue
		}
		totals[it.Product] = totals[it.Product].Add(quantity(it.WeeklyQuantity).Mul(weeks))
	}
	return sortedConsumption(totals)
}

func blank(product string) bool {
	return strings.TrimSpace(product) == ""
}

func entryTotal(e models.MenuEntry, counts WeekdayCounts) decimal.Decimal {
	return quantity(e.Quantity).Mul(decimal.NewFromInt(int64(counts.Of(e.Weekday))))
}

// quantity guards decimal conversion against NaN and negative values.
func quantity(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

func sortedConsumption(totals map[string]decimal.Decimal) []Consumption {
	out := make([]Consumption, 0, len(totals))
	for product, q := range totals {
		out = append(out, Consumption{Product: product, Quantity: q})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Product < out[j].Product })
	return out
}

func slotOrder(s models.MealSlot) int {
	for i, known := range models.MealSlots {
		if s == known {
			return i
		}
	}
	return len(models.MealSlots)
}
