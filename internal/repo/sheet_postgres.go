package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nupl21/dieta-app/internal/sheet"
)

type PostgresSheetRepository struct {
	db *sql.DB
}

func NewPostgresSheetRepository(db *sql.DB) *PostgresSheetRepository {
	return &PostgresSheetRepository{db: db}
}

func (r *PostgresSheetRepository) Read(ctx context.Context, worksheet string) ([]sheet.Record, error) {
	if !sheet.Known(worksheet) {
		return nil, ErrUnknownWorksheet
	}
	query := `SELECT data FROM worksheet_rows WHERE worksheet = $1 ORDER BY position`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, worksheet)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrStoreFailure, worksheet, err)
	}
	defer rows.Close()

	records := []sheet.Record{}
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("%w: scanning %s: %v", ErrStoreFailure, worksheet, err)
		}
		var rec sheet.Record
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("%w: decoding %s row: %v", ErrStoreFailure, worksheet, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrStoreFailure, worksheet, err)
	}
	return records, nil
}

// Update replaces the worksheet inside a single transaction.
func (r *PostgresSheetRepository) Update(ctx context.Context, worksheet string, records []sheet.Record) error {
	if !sheet.Known(worksheet) {
		return ErrUnknownWorksheet
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM worksheet_rows WHERE worksheet = $1`, worksheet); err != nil {
		return fmt.Errorf("%w: clearing %s: %v", ErrStoreFailure, worksheet, err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO worksheet_rows (worksheet, position, data, updated_at) VALUES ($1, $2, $3, $4)`)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for i, rec := range records {
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("%w: encoding %s row %d: %v", ErrStoreFailure, worksheet, i, err)
		}
		if _, err := stmt.ExecContext(ctx, worksheet, i, data, now); err != nil {
			return fmt.Errorf("%w: writing %s row %d: %v", ErrStoreFailure, worksheet, i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	return nil
}

// Clear removes every worksheet row.
func (r *PostgresSheetRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM worksheet_rows`)
	return err
}
