package planner

import (
	"strings"

	"github.com/nupl21/dieta-app/internal/models"
	"github.com/shopspring/decimal"
)

// Line is one row of the shopping list.
type Line struct {
	Category    string          `json:"category"`
	Product     string          `json:"product"`
	TotalNeeded float64         `json:"total_needed"`
	Packages    int64           `json:"packages"`
	Unit        string          `json:"unit"`
	Location    string          `json:"location,omitempty"`
	Tier        models.Tier     `json:"tier"`
	Price       decimal.Decimal `json:"price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// Catalog joins consumption to products by name.
type Catalog map[string]models.Product

// NewCatalog indexes products by trimmed name. When a name repeats, the
// first row wins.
func NewCatalog(products []models.Product) Catalog {
	c := make(Catalog, len(products))
	for _, p := range products {
		name := strings.TrimSpace(p.Name)
		if _, ok := c[name]; !ok {
			c[name] = p
		}
	}
	return c
}

// Lookup returns the product with the given name. Unknown names resolve
// to a zero-priced product with a yield of 1.
func (c Catalog) Lookup(name string) models.Product {
	if p, ok := c[strings.TrimSpace(name)]; ok {
		return p
	}
	return models.Product{
		Name:     name,
		Yield:    1,
		Unit:     models.DefaultUnit,
		Tier:     models.TierWeekly,
		Category: models.DefaultCategory,
	}
}

// Packages returns ceil(consumption / yield), never below zero.
func Packages(consumption decimal.Decimal, yield float64) int64 {
	y := decimal.NewFromFloat(positiveYield(yield))
	if !consumption.IsPositive() {
		return 0
	}
	return consumption.Div(y).Ceil().IntPart()
}

// Resolve turns aggregated consumption into shopping lines.
func Resolve(consumption []Consumption, catalog Catalog) []Line {
	lines := make([]Line, len(consumption))
	for i, c := range consumption {
		p := catalog.Lookup(c.Product)
		packages := Packages(c.Quantity, p.Yield)
		price := decimal.NewFromFloat(nonNegative(p.Price))
		lines[i] = Line{
			Category:    p.Category,
			Product:     c.Product,
			TotalNeeded: c.Quantity.InexactFloat64(),
			Packages:    packages,
			Unit:        p.Unit,
			Location:    p.Location,
			Tier:        p.Tier,
			Price:       price,
			Subtotal:    price.Mul(decimal.NewFromInt(packages)),
		}
	}
	return lines
}

// ListCatalog builds a catalog from the package data carried by the flat
// list. Only active items contribute.
func ListCatalog(items []models.ListItem) Catalog {
	products := make([]models.Product, 0, len(items))
	for _, it := range items {
		if !it.Active {
			continue
		}
		products = append(products, models.Product{
			Name:     it.Product,
			Price:    it.PackagePrice,
			Yield:    it.PackageYield,
			Unit:     it.Unit,
			Tier:     it.Tier,
			Category: it.Category,
		})
	}
	return NewCatalog(NormalizeCatalog(products))
}

// Buckets splits a multi-week list into what to stock now and what to
// replenish during the period.
type Buckets struct {
	Stock     []Line `json:"stock"`
	Replenish []Line `json:"replenish"`
}

// Partition buckets lines by purchase tier. A single week is not
// partitioned and ok is false.
func Partition(lines []Line, period Period) (b Buckets, ok bool) {
	if period <= OneWeek {
		return Buckets{}, false
	}
	b = Buckets{Stock: []Line{}, Replenish: []Line{}}
	for _, l := range lines {
		if stocked(l.Tier, period) {
			b.Stock = append(b.Stock, l)
		} else {
			b.Replenish = append(b.Replenish, l)
		}
	}
	return b, true
}

func stocked(tier models.Tier, period Period) bool {
	if period >= OneMonth {
		return tier == models.TierMonthly
	}
	return tier == models.TierMonthly || tier == models.TierBiweekly
}

// Metrics aggregates a shopping list.
type Metrics struct {
	TotalCost     decimal.Decimal `json:"total_cost"`
	TotalPackages int64           `json:"total_packages"`
	ItemCount     int             `json:"item_count"`
}

func Summarize(lines []Line) Metrics {
	m := Metrics{TotalCost: decimal.Zero, ItemCount: len(lines)}
	for _, l := range lines {
		m.TotalCost = m.TotalCost.Add(l.Subtotal)
		m.TotalPackages += l.Packages
	}
	return m
}
