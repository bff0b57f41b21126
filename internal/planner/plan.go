// Package planner computes shopping lists from a meal plan and a product
// catalog. Every stage is a pure function; the cart is passed in and
// returned explicitly by the caller.
package planner

import (
	"errors"

	"github.com/nupl21/dieta-app/internal/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrNoData is returned when the menu or the catalog is empty. Rows
// without a product name do not count.
var ErrNoData = errors.New("no data: menu or product catalog is empty")

// Plan is the result of one recompute.
type Plan struct {
	Schedule  *ScheduleConfig   `json:"schedule,omitempty"`
	Counts    *WeekdayCounts    `json:"weekday_counts,omitempty"`
	Period    Period            `json:"period"`
	Lines     []Line            `json:"lines"`
	Buckets   *Buckets          `json:"buckets,omitempty"`
	Slots     []SlotConsumption `json:"slots,omitempty"`
	Metrics   Metrics           `json:"metrics"`
	Cart      Cart              `json:"cart"`
	CartTotal decimal.Decimal   `json:"cart_total"`
}

type Planner struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) *Planner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Planner{logger: logger}
}

// Recompute runs the day-based pipeline and merges the result into prev.
func (p *Planner) Recompute(products []models.Product, menu []models.MenuEntry, cfg ScheduleConfig, prev Cart) (Plan, error) {
	if len(products) == 0 || !anyMenuProduct(menu) {
		return Plan{}, ErrNoData
	}

	catalog := NewCatalog(NormalizeCatalog(products))
	counts := ExpandSchedule(cfg)
	lines := Resolve(AggregateMenu(menu, counts), catalog)

	plan := p.finish(lines, cfg.Period(), prev)
	plan.Schedule = &cfg
	plan.Counts = &counts
	plan.Slots = AggregateBySlot(menu, counts)

	p.logger.Debug("recomputed menu plan",
		zap.Int("days", cfg.Days),
		zap.Int("start_weekday", cfg.StartWeekday),
		zap.Int("lines", len(lines)),
		zap.String("total_cost", plan.Metrics.TotalCost.String()),
		zap.Int64("cart_version", plan.Cart.Version),
	)
	return plan, nil
}

// RecomputeList runs the flat weekly list pipeline for period.
func (p *Planner) RecomputeList(items []models.ListItem, period Period, prev Cart) (Plan, error) {
	if !anyListProduct(items) {
		return Plan{}, ErrNoData
	}

	lines := Resolve(AggregateList(items, period), ListCatalog(items))
	plan := p.finish(lines, period, prev)

	p.logger.Debug("recomputed weekly list",
		zap.String("period", period.Label()),
		zap.Int("lines", len(lines)),
		zap.String("total_cost", plan.Metrics.TotalCost.String()),
		zap.Int64("cart_version", plan.Cart.Version),
	)
	return plan, nil
}

func (p *Planner) finish(lines []Line, period Period, prev Cart) Plan {
	plan := Plan{
		Period:  period,
		Lines:   lines,
		Metrics: Summarize(lines),
		Cart:    Merge(lines, prev),
	}
	if b, ok := Partition(lines, period); ok {
		plan.Buckets = &b
	}
	plan.CartTotal = plan.Cart.Total()
	return plan
}

func anyMenuProduct(menu []models.MenuEntry) bool {
	for _, e := range menu {
		if !blank(e.Product) {
			return true
		}
	}
	return false
}

func anyListProduct(items []models.ListItem) bool {
	for _, it := range items {
		if !blank(it.Product) {
			return true
		}
	}
	return false
}
