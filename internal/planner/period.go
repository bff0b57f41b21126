package planner

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Period is the number of weeks a flat weekly list is multiplied by.
type Period int

const (
	OneWeek    Period = 1
	TwoWeeks   Period = 2
	ThreeWeeks Period = 3
	OneMonth   Period = 4
)

// Periods lists the selectable periods.
var Periods = []Period{OneWeek, TwoWeeks, ThreeWeeks, OneMonth}

// PeriodFromDays rounds a horizon in days to the nearest selectable period.
func PeriodFromDays(days int) Period {
	weeks := int(math.Round(float64(days) / 7))
	switch {
	case weeks < int(OneWeek):
		return OneWeek
	case weeks > int(OneMonth):
		return OneMonth
	}
	return Period(weeks)
}

// ParsePeriod accepts the selector labels ("1 Semana", "2 Semanas",
// "3 Semanas", "1 Mes (4 Semanas)") as well as a plain week count.
func ParsePeriod(s string) (Period, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, p := range Periods {
		if s == strings.ToLower(p.Label()) {
			return p, nil
		}
	}
	if strings.Contains(s, "mes") || strings.Contains(s, "month") {
		return OneMonth, nil
	}
	fields := strings.Fields(s)
	if len(fields) > 0 {
		if n, err := strconv.Atoi(fields[0]); err == nil && n >= int(OneWeek) && n <= int(OneMonth) {
			return Period(n), nil
		}
	}
	return 0, fmt.Errorf("unknown period %q", s)
}

func (p Period) Label() string {
	switch p {
	case OneWeek:
		return "1 Semana"
	case OneMonth:
		return "1 Mes (4 Semanas)"
	}
	return fmt.Sprintf("%d Semanas", int(p))
}

func (p Period) Days() int {
	return int(p) * 7
}
