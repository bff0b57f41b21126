package sheet

import "sort"

func withExtraColumns(headers []string, rows []Record) []string {
	seen := make(map[string]bool, len(headers))
	for _, h := range headers {
		seen[h] = true
	}

	var extra []string
	for _, row := range rows {
		for col := range row {
			if !seen[col] {
				seen[col] = true
				extra = append(extra, col)
			}
		}
	}
	sort.Strings(extra)

	out := make([]string, 0, len(headers)+len(extra))
	out = append(out, headers...)
	return append(out, extra...)
}
