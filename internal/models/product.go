package models

// Tier is the purchase-frequency classification of a product.
type Tier string

const (
	TierWeekly   Tier = "Semanal"
	TierBiweekly Tier = "Quincenal"
	TierMonthly  Tier = "Mensual"
)

const (
	DefaultUnit     = "Unidad"
	DefaultCategory = "General"
)

// Product represents a catalog entry of the household's product list.
type Product struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Yield    float64 `json:"yield"`
	Unit     string  `json:"unit"`
	Tier     Tier    `json:"tier"`
	Location string  `json:"location,omitempty"`
	Category string  `json:"category"`
}
