package planner

import (
	"math"
	"strconv"
	"strings"

	"github.com/nupl21/dieta-app/internal/models"
	"github.com/nupl21/dieta-app/internal/sheet"
)

// NormalizeProducts turns raw catalog rows into canonical products.
// Rows are never dropped; malformed cells fall back to defaults.
func NormalizeProducts(rows []sheet.Record) []models.Product {
	products := make([]models.Product, len(rows))
	for i, row := range rows {
		p := models.Product{}
		p.Name, _ = row.Get(sheet.ColProduct)
		p.Price, _ = row.Float(sheet.ColPrice)
		p.Yield, _ = row.Float(sheet.ColYield)
		p.Unit, _ = row.Get(sheet.ColUnit)
		tier, _ := row.Get(sheet.ColTier)
		p.Tier = models.Tier(tier)
		p.Location, _ = row.Get(sheet.ColLocation)
		p.Category, _ = row.Get(sheet.ColCategory)
		products[i] = p
	}
	return NormalizeCatalog(products)
}

// NormalizeCatalog applies the catalog rules to already typed products.
// It is idempotent.
func NormalizeCatalog(products []models.Product) []models.Product {
	out := make([]models.Product, len(products))
	for i, p := range products {
		p.Name = strings.TrimSpace(p.Name)
		p.Price = nonNegative(p.Price)
		p.Yield = positiveYield(p.Yield)
		p.Unit = orDefault(p.Unit, models.DefaultUnit)
		p.Tier = NormalizeTier(string(p.Tier))
		p.Location = strings.TrimSpace(p.Location)
		p.Category = orDefault(p.Category, models.DefaultCategory)
		out[i] = p
	}
	return out
}

// NormalizeTier maps a free-text tier into the fixed vocabulary.
// Anything unrecognised is treated as weekly.
func NormalizeTier(s string) models.Tier {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "quincenal", "biweekly", "bi-weekly", "fortnightly", "2 semanas":
		return models.TierBiweekly
	case "mensual", "monthly", "mes", "month":
		return models.TierMonthly
	default:
		return models.TierWeekly
	}
}

// NormalizeMenu parses day-based menu rows.
func NormalizeMenu(rows []sheet.Record) []models.MenuEntry {
	entries := make([]models.MenuEntry, len(rows))
	for i, row := range rows {
		e := models.MenuEntry{}
		e.Product, _ = row.Get(sheet.ColProduct)
		day, _ := row.Get(sheet.ColDay)
		e.Weekday = ParseWeekday(day)
		slot, _ := row.Get(sheet.ColSlot)
		e.Slot = NormalizeSlot(slot)
		q, _ := row.Float(sheet.ColQuantity)
		e.Quantity = nonNegative(q)
		entries[i] = e
	}
	return entries
}

// NormalizeList parses the rows of the flat weekly list.
func NormalizeList(rows []sheet.Record) []models.ListItem {
	items := make([]models.ListItem, len(rows))
	for i, row := range rows {
		it := models.ListItem{}
		it.Product, _ = row.Get(sheet.ColProduct)
		category, _ := row.Get(sheet.ColCategory)
		it.Category = orDefault(category, models.DefaultCategory)
		q, _ := row.Float(sheet.ColWeeklyQuantity)
		it.WeeklyQuantity = nonNegative(q)
		active, ok := row.Bool(sheet.ColActive)
		it.Active = active || !ok
		tier, _ := row.Get(sheet.ColTier)
		it.Tier = NormalizeTier(tier)
		price, _ := row.Float(sheet.ColPackagePrice)
		it.PackagePrice = nonNegative(price)
		yield, _ := row.Float(sheet.ColPackageYield)
		it.PackageYield = positiveYield(yield)
		unit, _ := row.Get(sheet.ColPurchaseUnit)
		it.Unit = orDefault(unit, models.DefaultUnit)
		items[i] = it
	}
	return items
}

// NormalizeRecipes parses the recipe worksheet.
func NormalizeRecipes(rows []sheet.Record) []models.Recipe {
	recipes := make([]models.Recipe, len(rows))
	for i, row := range rows {
		day, _ := row.Get(sheet.ColDay)
		slot, _ := row.Get(sheet.ColSlot)
		text, _ := row.Get(sheet.ColRecipe)
		recipes[i] = models.Recipe{
			Weekday:      ParseWeekday(day),
			Slot:         NormalizeSlot(slot),
			Instructions: text,
		}
	}
	return recipes
}

var weekdayNames = map[string]int{
	"lunes": 1, "lun": 1, "monday": 1, "mon": 1,
	"martes": 2, "mar": 2, "tuesday": 2, "tue": 2,
	"miércoles": 3, "miercoles": 3, "mié": 3, "mie": 3, "wednesday": 3, "wed": 3,
	"jueves": 4, "jue": 4, "thursday": 4, "thu": 4,
	"viernes": 5, "vie": 5, "friday": 5, "fri": 5,
	"sábado": 6, "sabado": 6, "sáb": 6, "sab": 6, "saturday": 6, "sat": 6,
	"domingo": 7, "dom": 7, "sunday": 7, "sun": 7,
}

// ParseWeekday accepts 1..7 (also "3.0" as spreadsheets export it) or a
// Spanish or English day name. It returns 0 when s is not a weekday.
func ParseWeekday(s string) int {
	s = strings.ToLower(strings.TrimSpace(s))
	if d, ok := weekdayNames[s]; ok {
		return d
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v != math.Trunc(v) || v < 1 || v > 7 {
		return 0
	}
	return int(v)
}

// NormalizeSlot maps Spanish and English slot names onto the canonical
// slots. Unknown names are kept as written.
func NormalizeSlot(s string) models.MealSlot {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "desayuno", "breakfast":
		return models.SlotBreakfast
	case "almuerzo", "comida", "lunch":
		return models.SlotLunch
	case "snack", "colación", "colacion", "media mañana":
		return models.SlotSnack
	case "merienda":
		return models.SlotMerienda
	case "cena", "dinner":
		return models.SlotDinner
	}
	return models.MealSlot(s)
}

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func positiveYield(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 1
	}
	return v
}

func orDefault(s, def string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	return s
}
