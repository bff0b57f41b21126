package models

// MealSlot is the moment of the day a menu entry is eaten.
type MealSlot string

const (
	SlotBreakfast MealSlot = "Desayuno"
	SlotLunch     MealSlot = "Almuerzo"
	SlotSnack     MealSlot = "Snack"
	SlotMerienda  MealSlot = "Merienda"
	SlotDinner    MealSlot = "Cena"
)

// MealSlots lists the slots in the order they happen during a day.
var MealSlots = []MealSlot{SlotBreakfast, SlotLunch, SlotSnack, SlotMerienda, SlotDinner}

// MenuEntry is one product consumed on a recurring weekday and meal slot.
// Weekday is 1 (Monday) to 7 (Sunday); 0 means the stored value was not a weekday.
type MenuEntry struct {
	Product  string   `json:"product"`
	Weekday  int      `json:"weekday"`
	Slot     MealSlot `json:"slot"`
	Quantity float64  `json:"quantity"`
}

// ListItem is an entry of the flat weekly list. It carries its own
// package data instead of referencing the product catalog.
type ListItem struct {
	Product        string  `json:"product"`
	Category       string  `json:"category"`
	WeeklyQuantity float64 `json:"weekly_quantity"`
	Active         bool    `json:"active"`
	Tier           Tier    `json:"tier"`
	PackagePrice   float64 `json:"package_price"`
	PackageYield   float64 `json:"package_yield"`
	Unit           string  `json:"unit"`
}

// Recipe holds the free-text instructions for one weekday and slot.
type Recipe struct {
	Weekday      int      `json:"weekday"`
	Slot         MealSlot `json:"slot"`
	Instructions string   `json:"instructions"`
}
