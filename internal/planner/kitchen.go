package planner

import (
	"strings"
	"time"

	"github.com/nupl21/dieta-app/internal/models"
)

// KitchenSlot is what gets cooked in one meal slot of a day.
type KitchenSlot struct {
	Slot   models.MealSlot    `json:"slot"`
	Items  []models.MenuEntry `json:"items"`
	Recipe string             `json:"recipe,omitempty"`
}

// KitchenDay is the cooking view of a single weekday.
type KitchenDay struct {
	Weekday int           `json:"weekday"`
	Slots   []KitchenSlot `json:"slots"`
}

// Kitchen groups the entries of weekday by meal slot and attaches the
// matching recipes. Canonical slots come first in day order, then any
// other slot in order of appearance.
func Kitchen(menu []models.MenuEntry, recipes []models.Recipe, weekday int) KitchenDay {
	day := KitchenDay{Weekday: weekday, Slots: []KitchenSlot{}}

	bySlot := map[models.MealSlot][]models.MenuEntry{}
	var order []models.MealSlot
	for _, e := range menu {
		if e.Weekday != weekday {
			continue
		}
		if _, ok := bySlot[e.Slot]; !ok {
			order = append(order, e.Slot)
		}
		bySlot[e.Slot] = append(bySlot[e.Slot], e)
	}

	texts := map[models.MealSlot][]string{}
	for _, r := range recipes {
		if r.Weekday == weekday && strings.TrimSpace(r.Instructions) != "" {
			texts[r.Slot] = append(texts[r.Slot], r.Instructions)
		}
	}

	add := func(slot models.MealSlot) {
		items, hasItems := bySlot[slot]
		recipe := strings.Join(texts[slot], "\n")
		if !hasItems && recipe == "" {
			return
		}
		if items == nil {
			items = []models.MenuEntry{}
		}
		day.Slots = append(day.Slots, KitchenSlot{Slot: slot, Items: items, Recipe: recipe})
	}

	for _, slot := range models.MealSlots {
		add(slot)
	}
	for _, slot := range order {
		if slotOrder(slot) == len(models.MealSlots) {
			add(slot)
		}
	}
	return day
}

// WeekdayOf converts a time.Weekday into 1 (Monday) .. 7 (Sunday).
func WeekdayOf(d time.Weekday) int {
	if d == time.Sunday {
		return 7
	}
	return int(d)
}
