package handlers

import (
	"github.com/nupl21/dieta-app/internal/models"
	"github.com/nupl21/dieta-app/internal/planner"
	"github.com/shopspring/decimal"
)

type ProductRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Yield    float64 `json:"yield"`
	Unit     string  `json:"unit"`
	Tier     string  `json:"tier"`
	Location string  `json:"location"`
	Category string  `json:"category"`
}

type MenuEntryRequest struct {
	Product  string  `json:"product"`
	Weekday  int     `json:"weekday"`
	Slot     string  `json:"slot"`
	Quantity float64 `json:"quantity"`
}

type ListItemRequest struct {
	Product        string  `json:"product"`
	Category       string  `json:"category"`
	WeeklyQuantity float64 `json:"weekly_quantity"`
	Active         *bool   `json:"active,omitempty"`
	Tier           string  `json:"tier"`
	PackagePrice   float64 `json:"package_price"`
	PackageYield   float64 `json:"package_yield"`
	Unit           string  `json:"unit"`
}

type RecipeRequest struct {
	Weekday      int    `json:"weekday"`
	Slot         string `json:"slot"`
	Instructions string `json:"instructions"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type ProductsResult struct {
	Data []models.Product `json:"data"`
	Meta Meta             `json:"meta"`
}

type MenuResult struct {
	Data []models.MenuEntry `json:"data"`
	Meta Meta               `json:"meta"`
}

type ListResult struct {
	Data []models.ListItem `json:"data"`
	Meta Meta              `json:"meta"`
}

type RecipesResult struct {
	Data []models.Recipe `json:"data"`
	Meta Meta            `json:"meta"`
}

type PlanRequest struct {
	Days         int `json:"days"`
	StartWeekday int `json:"start_weekday"`
}

type WeeklyPlanRequest struct {
	Period string `json:"period"`
	Weeks  int    `json:"weeks"`
}

type PlanResult struct {
	SessionID string        `json:"session_id"`
	NoData    bool          `json:"no_data"`
	Message   string        `json:"message,omitempty"`
	Plan      *planner.Plan `json:"plan,omitempty"`
}

type SessionResult struct {
	SessionID string `json:"session_id"`
}

type CartResult struct {
	SessionID string          `json:"session_id"`
	Cart      planner.Cart    `json:"cart"`
	Total     decimal.Decimal `json:"total"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type ImportResult struct {
	Worksheet string `json:"worksheet"`
	Imported  int    `json:"imported"`
	Total     int    `json:"total"`
}
