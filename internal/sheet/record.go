// Package sheet models the tabular rows exchanged with the worksheet store.
package sheet

import (
	"math"
	"strconv"
	"strings"
)

// Worksheet names of the store.
const (
	Products = "productos"
	Menu     = "menu"
	List     = "lista"
	Recipes  = "recetas"
)

// Column headers.
const (
	ColProduct  = "Producto"
	ColPrice    = "Precio"
	ColYield    = "Rendimiento"
	ColUnit     = "Unidad"
	ColTier     = "Tipo_Compra"
	ColLocation = "Lugar_Compra"
	ColCategory = "Categoria"

	ColDay      = "Dia"
	ColSlot     = "Momento"
	ColQuantity = "Cantidad_Estimada"

	ColWeeklyQuantity = "Cantidad_Semanal"
	ColActive         = "Activo"
	ColPackagePrice   = "Precio_Paquete"
	ColPackageYield   = "Rendimiento_Paquete"
	ColPurchaseUnit   = "Unidad_Compra"

	ColRecipe = "Receta"
)

// Columns lists the headers written for each worksheet, in order.
var Columns = map[string][]string{
	Products: {ColProduct, ColPrice, ColYield, ColUnit, ColTier, ColLocation, ColCategory},
	Menu:     {ColProduct, ColDay, ColSlot, ColQuantity},
	List:     {ColProduct, ColCategory, ColWeeklyQuantity, ColActive, ColTier, ColPackagePrice, ColPackageYield, ColPurchaseUnit},
	Recipes:  {ColDay, ColSlot, ColRecipe},
}

// Known reports whether name is one of the store's worksheets.
func Known(name string) bool {
	_, ok := Columns[name]
	return ok
}

// Record is one worksheet row keyed by column header.
type Record map[string]string

// Get returns the trimmed cell value and whether the column was present and non-empty.
func (r Record) Get(col string) (string, bool) {
	v, ok := r[col]
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

// Float parses a numeric cell. Currency signs, thousands separators and a
// decimal comma are tolerated. NaN and infinities are rejected.
func (r Record) Float(col string) (float64, bool) {
	v, ok := r.Get(col)
	if !ok {
		return 0, false
	}
	return ParseNumber(v)
}

// Bool parses a checkbox-like cell.
func (r Record) Bool(col string) (bool, bool) {
	v, ok := r.Get(col)
	if !ok {
		return false, false
	}
	switch strings.ToLower(v) {
	case "true", "verdadero", "si", "sí", "yes", "x", "1", "1.0":
		return true, true
	case "false", "falso", "no", "0", "0.0":
		return false, true
	}
	return false, false
}

// ParseNumber reads a numeric cell in either notation. When both
// separators appear the last one is the decimal mark ("1.234,56",
// "1,234.56"). A lone comma is a decimal mark; a lone dot followed by
// exactly three digits groups thousands ("$1.200"). Anything else that
// does not parse is rejected.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, " ", "")

	comma, dot := strings.LastIndex(s, ","), strings.LastIndex(s, ".")
	switch {
	case comma >= 0 && dot >= 0:
		if comma > dot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case comma >= 0:
		s = ungroup(s, ",", false)
	case dot >= 0:
		s = ungroup(s, ".", true)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ungroup rewrites s, which holds only sep as separator, into plain
// notation. Repeated separators must delimit groups of three digits.
// A single separator is the decimal mark unless loneGroups is set and
// it is followed by exactly three digits after a non-zero integer part.
func ungroup(s, sep string, loneGroups bool) string {
	parts := strings.Split(s, sep)
	if len(parts) > 2 || loneGroups && thousands(parts) {
		for _, p := range parts[1:] {
			if len(p) != 3 || !digits(p) {
				return s
			}
		}
		return strings.Join(parts, "")
	}
	return strings.Replace(s, sep, ".", 1)
}

func thousands(parts []string) bool {
	if len(parts) != 2 || len(parts[1]) != 3 || !digits(parts[1]) {
		return false
	}
	whole := strings.TrimLeft(parts[0], "-+")
	return whole != "" && strings.Trim(whole, "0") != ""
}

func digits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// FormatNumber renders a number the way it is stored back in a worksheet:
// no grouping and a decimal comma, so ParseNumber reads it back unchanged.
func FormatNumber(v float64) string {
	return strings.Replace(strconv.FormatFloat(v, 'f', -1, 64), ".", ",", 1)
}
