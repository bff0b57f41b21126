package planner

import (
	"strconv"

	"github.com/nupl21/dieta-app/internal/models"
	"github.com/nupl21/dieta-app/internal/sheet"
)

// ProductRecords renders products back into worksheet rows.
func ProductRecords(products []models.Product) []sheet.Record {
	rows := make([]sheet.Record, len(products))
	for i, p := range products {
		rows[i] = sheet.Record{
			sheet.ColProduct:  p.Name,
			sheet.ColPrice:    sheet.FormatNumber(p.Price),
			sheet.ColYield:    sheet.FormatNumber(p.Yield),
			sheet.ColUnit:     p.Unit,
			sheet.ColTier:     string(p.Tier),
			sheet.ColLocation: p.Location,
			sheet.ColCategory: p.Category,
		}
	}
	return rows
}

func MenuRecords(entries []models.MenuEntry) []sheet.Record {
	rows := make([]sheet.Record, len(entries))
	for i, e := range entries {
		rows[i] = sheet.Record{
			sheet.ColProduct:  e.Product,
			sheet.ColDay:      strconv.Itoa(e.Weekday),
			sheet.ColSlot:     string(e.Slot),
			sheet.ColQuantity: sheet.FormatNumber(e.Quantity),
		}
	}
	return rows
}

func ListRecords(items []models.ListItem) []sheet.Record {
	rows := make([]sheet.Record, len(items))
	for i, it := range items {
		rows[i] = sheet.Record{
			sheet.ColProduct:        it.Product,
			sheet.ColCategory:       it.Category,
			sheet.ColWeeklyQuantity: sheet.FormatNumber(it.WeeklyQuantity),
			sheet.ColActive:         strconv.FormatBool(it.Active),
			sheet.ColTier:           string(it.Tier),
			sheet.ColPackagePrice:   sheet.FormatNumber(it.PackagePrice),
			sheet.ColPackageYield:   sheet.FormatNumber(it.PackageYield),
			sheet.ColPurchaseUnit:   it.Unit,
		}
	}
	return rows
}

func RecipeRecords(recipes []models.Recipe) []sheet.Record {
	rows := make([]sheet.Record, len(recipes))
	for i, r := range recipes {
		rows[i] = sheet.Record{
			sheet.ColDay:    strconv.Itoa(r.Weekday),
			sheet.ColSlot:   string(r.Slot),
			sheet.ColRecipe: r.Instructions,
		}
	}
	return rows
}
