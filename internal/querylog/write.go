package querylog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Append stores rec and returns it with ID and Seq filled in. A text already
// in the log is not stored again; the existing record is returned with
// inserted false.
func (s *Store) Append(ctx context.Context, rec Record) (Record, bool, error) {
	rec.ID = QueryID(rec.Text)

	existing, err := s.Get(ctx, rec.ID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Record{}, false, fmt.Errorf("append query: %w", err)
	}

	rec.Seq = s.clock.Next()
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO queries (id, seq, output_id, name, text)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, rec.ID, rec.Seq, rec.OutputID, rec.Name, rec.Text)
	if err != nil {
		return Record{}, false, fmt.Errorf("append query: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return Record{}, false, fmt.Errorf("append query: %w", err)
	}
	return rec, n == 1, nil
}

// ErrNotFound is returned by Get for an unknown ID.
var ErrNotFound = errors.New("query not found")

// Get returns the record stored under id.
func (s *Store) Get(ctx context.Context, id string) (Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, seq, output_id, name, text FROM queries WHERE id = ?
	`, id)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("get query %s: %w", id, err)
	}
	return rec, nil
}
