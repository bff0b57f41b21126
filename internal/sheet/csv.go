package sheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ReadCSV parses a worksheet export. The first line holds the headers.
func ReadCSV(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header")
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	var rows []Record
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}

		row := Record{}
		empty := true
		for i, h := range headers {
			if h == "" || i >= len(fields) {
				continue
			}
			row[h] = fields[i]
			if strings.TrimSpace(fields[i]) != "" {
				empty = false
			}
		}
		if empty {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// WriteCSV writes rows using the given headers. Columns found in the rows
// but missing from headers are appended in sorted order.
func WriteCSV(w io.Writer, headers []string, rows []Record) error {
	headers = withExtraColumns(headers, rows)

	writer := csv.NewWriter(w)
	if err := writer.Write(headers); err != nil {
		return err
	}
	line := make([]string, len(headers))
	for _, row := range rows {
		for i, h := range headers {
			line[i] = row[h]
		}
		if err := writer.Write(line); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
