package repo

import (
	"context"
	"sync"

	"github.com/nupl21/dieta-app/internal/sheet"
)

// InMemorySheetRepository is an in-memory implementation of SheetRepository.
type InMemorySheetRepository struct {
	mu     sync.RWMutex
	sheets map[string][]sheet.Record
}

// NewInMemorySheetRepository creates a new instance of InMemorySheetRepository.
func NewInMemorySheetRepository() *InMemorySheetRepository {
	return &InMemorySheetRepository{
		sheets: map[string][]sheet.Record{},
	}
}

// Read returns a copy of the worksheet rows.
func (r *InMemorySheetRepository) Read(_ context.Context, worksheet string) ([]sheet.Record, error) {
	if !sheet.Known(worksheet) {
		return nil, ErrUnknownWorksheet
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyRecords(r.sheets[worksheet]), nil
}

// Update replaces the worksheet rows.
func (r *InMemorySheetRepository) Update(_ context.Context, worksheet string, rows []sheet.Record) error {
	if !sheet.Known(worksheet) {
		return ErrUnknownWorksheet
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sheets[worksheet] = copyRecords(rows)
	return nil
}

// Clear drops every worksheet.
func (r *InMemorySheetRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sheets = map[string][]sheet.Record{}
}

func copyRecords(rows []sheet.Record) []sheet.Record {
	out := make([]sheet.Record, len(rows))
	for i, row := range rows {
		c := make(sheet.Record, len(row))
		for k, v := range row {
			c[k] = v
		}
		out[i] = c
	}
	return out
}
