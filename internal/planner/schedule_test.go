package planner

import "testing"

func TestExpandSchedule_ConservesDays(t *testing.T) {
	for days := 1; days <= 120; days++ {
		for start := 1; start <= 7; start++ {
			counts := ExpandSchedule(ScheduleConfig{Days: days, StartWeekday: start})
			if counts.Total() != days {
				t.Fatalf("days=%d start=%d: expected total %d, got %d", days, start, days, counts.Total())
			}

			low := days / 7
			for w := 1; w <= 7; w++ {
				c := counts.Of(w)
				if c != low && c != low+1 {
					t.Fatalf("days=%d start=%d: weekday %d count %d not in {%d,%d}", days, start, w, c, low, low+1)
				}
				if counts.Of(start) < c {
					t.Fatalf("days=%d start=%d: start weekday count %d below weekday %d count %d", days, start, counts.Of(start), w, c)
				}
			}
		}
	}
}

func TestExpandSchedule_MatchesSimulation(t *testing.T) {
	for days := 1; days <= 40; days++ {
		for start := 1; start <= 7; start++ {
			var want WeekdayCounts
			day := start
			for range days {
				want[day-1]++
				day++
				if day > 7 {
					day = 1
				}
			}

			got := ExpandSchedule(ScheduleConfig{Days: days, StartWeekday: start})
			if got != want {
				t.Fatalf("days=%d start=%d: expected %v, got %v", days, start, want, got)
			}
		}
	}
}

func TestExpandSchedule_WednesdayTenDays(t *testing.T) {
	counts := ExpandSchedule(ScheduleConfig{Days: 10, StartWeekday: 3})

	want := map[int]int{3: 2, 4: 2, 5: 2, 6: 1, 7: 1, 1: 1, 2: 1}
	for w, n := range want {
		if counts.Of(w) != n {
			t.Errorf("expected weekday %d to recur %d times, got %d", w, n, counts.Of(w))
		}
	}
	if counts.Total() != 10 {
		t.Errorf("expected 10 days, got %d", counts.Total())
	}
}

func TestExpandSchedule_EdgeCases(t *testing.T) {
	tests := []struct {
		name string
		cfg  ScheduleConfig
		want WeekdayCounts
	}{
		{"zero days", ScheduleConfig{Days: 0, StartWeekday: 1}, WeekdayCounts{}},
		{"negative days", ScheduleConfig{Days: -3, StartWeekday: 5}, WeekdayCounts{}},
		{"single day on sunday", ScheduleConfig{Days: 1, StartWeekday: 7}, WeekdayCounts{0, 0, 0, 0, 0, 0, 1}},
		{"start wraps past sunday", ScheduleConfig{Days: 2, StartWeekday: 8}, WeekdayCounts{1, 1, 0, 0, 0, 0, 0}},
		{"start zero is sunday", ScheduleConfig{Days: 2, StartWeekday: 0}, WeekdayCounts{1, 0, 0, 0, 0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandSchedule(tt.cfg)
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestWeekdayCounts_OfOutOfRange(t *testing.T) {
	counts := ExpandSchedule(ScheduleConfig{Days: 14, StartWeekday: 1})
	for _, w := range []int{0, -1, 8, 100} {
		if counts.Of(w) != 0 {
			t.Errorf("expected 0 for weekday %d, got %d", w, counts.Of(w))
		}
	}
}

func TestPeriodFromDays(t *testing.T) {
	tests := []struct {
		days int
		want Period
	}{
		{0, OneWeek},
		{1, OneWeek},
		{7, OneWeek},
		{10, OneWeek},
		{11, TwoWeeks},
		{14, TwoWeeks},
		{21, ThreeWeeks},
		{28, OneMonth},
		{31, OneMonth},
		{90, OneMonth},
	}
	for _, tt := range tests {
		if got := PeriodFromDays(tt.days); got != tt.want {
			t.Errorf("days=%d: expected %v, got %v", tt.days, tt.want, got)
		}
	}
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		in      string
		want    Period
		wantErr bool
	}{
		{"1 Semana", OneWeek, false},
		{"2 Semanas", TwoWeeks, false},
		{"3 semanas", ThreeWeeks, false},
		{"1 Mes (4 Semanas)", OneMonth, false},
		{"month", OneMonth, false},
		{"4", OneMonth, false},
		{"5 Semanas", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParsePeriod(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("%q: unexpected error state: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: expected %v, got %v", tt.in, tt.want, got)
		}
	}
}
