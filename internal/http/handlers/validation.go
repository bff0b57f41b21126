package handlers

import (
	"fmt"
	"strings"
)

type ValidationError struct {
	Row         int    `json:"row"`
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProducts(req []ProductRequest) []ValidationError {
	errs := []ValidationError{}
	seen := map[string]int{}
	for i, p := range req {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			errs = append(errs, ValidationError{Row: i, Field: "Name", Description: "Name is required"})
		} else if first, ok := seen[name]; ok {
			errs = append(errs, ValidationError{Row: i, Field: "Name", Description: fmt.Sprintf("Name duplicates row %d", first)})
		} else {
			seen[name] = i
		}
		if p.Price < 0 {
			errs = append(errs, ValidationError{Row: i, Field: "Price", Description: "Price cannot be negative"})
		}
		if p.Yield < 0 {
			errs = append(errs, ValidationError{Row: i, Field: "Yield", Description: "Yield cannot be negative"})
		}
	}
	return errs
}

func validateMenu(req []MenuEntryRequest) []ValidationError {
	errs := []ValidationError{}
	for i, e := range req {
		if strings.TrimSpace(e.Product) == "" {
			errs = append(errs, ValidationError{Row: i, Field: "Product", Description: "Product is required"})
		}
		if e.Weekday < 1 || e.Weekday > 7 {
			errs = append(errs, ValidationError{Row: i, Field: "Weekday", Description: "Weekday must be between 1 and 7"})
		}
		if strings.TrimSpace(e.Slot) == "" {
			errs = append(errs, ValidationError{Row: i, Field: "Slot", Description: "Slot is required"})
		}
		if e.Quantity < 0 {
			errs = append(errs, ValidationError{Row: i, Field: "Quantity", Description: "Quantity cannot be negative"})
		}
	}
	return errs
}

func validateList(req []ListItemRequest) []ValidationError {
	errs := []ValidationError{}
	for i, it := range req {
		if strings.TrimSpace(it.Product) == "" {
			errs = append(errs, ValidationError{Row: i, Field: "Product", Description: "Product is required"})
		}
		if it.WeeklyQuantity < 0 {
			errs = append(errs, ValidationError{Row: i, Field: "WeeklyQuantity", Description: "Weekly quantity cannot be negative"})
		}
		if it.PackagePrice < 0 {
			errs = append(errs, ValidationError{Row: i, Field: "PackagePrice", Description: "Package price cannot be negative"})
		}
		if it.PackageYield < 0 {
			errs = append(errs, ValidationError{Row: i, Field: "PackageYield", Description: "Package yield cannot be negative"})
		}
	}
	return errs
}

func validateRecipes(req []RecipeRequest) []ValidationError {
	errs := []ValidationError{}
	for i, r := range req {
		if r.Weekday < 1 || r.Weekday > 7 {
			errs = append(errs, ValidationError{Row: i, Field: "Weekday", Description: "Weekday must be between 1 and 7"})
		}
		if strings.TrimSpace(r.Slot) == "" {
			errs = append(errs, ValidationError{Row: i, Field: "Slot", Description: "Slot is required"})
		}
	}
	return errs
}
