package planner

// ScheduleConfig is the horizon a shopping list has to cover.
type ScheduleConfig struct {
	Days         int `json:"days"`
	StartWeekday int `json:"start_weekday"`
}

// Period returns the week multiplier closest to the horizon.
func (c ScheduleConfig) Period() Period {
	return PeriodFromDays(c.Days)
}

// WeekdayCounts holds how many times each weekday falls inside a horizon.
// Index 0 is weekday 1.
type WeekdayCounts [7]int

// Of returns the count for weekday 1..7 and 0 for anything else.
func (c WeekdayCounts) Of(weekday int) int {
	if weekday < 1 || weekday > 7 {
		return 0
	}
	return c[weekday-1]
}

func (c WeekdayCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// ExpandSchedule walks cfg.Days days forward from cfg.StartWeekday,
// wrapping from 7 back to 1, and counts the visits of every weekday.
// A start outside 1..7 is wrapped into range; a horizon below 1 yields
// all zero counts.
func ExpandSchedule(cfg ScheduleConfig) WeekdayCounts {
	var counts WeekdayCounts
	if cfg.Days < 1 {
		return counts
	}

	start := wrapWeekday(cfg.StartWeekday)
	full, rest := cfg.Days/7, cfg.Days%7
	for i := range counts {
		counts[i] = full
	}
	// The partial week starts at the start weekday.
	day := start
	for range rest {
		counts[day-1]++
		day = day%7 + 1
	}
	return counts
}

func wrapWeekday(w int) int {
	return ((w-1)%7+7)%7 + 1
}
