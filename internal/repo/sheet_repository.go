package repo

import (
	"context"

	"github.com/nupl21/dieta-app/internal/sheet"
)

// SheetRepository is the worksheet store, addressed by worksheet name.
type SheetRepository interface {
	// Read returns the rows of a worksheet in stored order.
	Read(ctx context.Context, worksheet string) ([]sheet.Record, error)
	// Update replaces every row of a worksheet.
	Update(ctx context.Context, worksheet string, rows []sheet.Record) error
}
