package querylog

import (
	"context"
	"fmt"
	"strings"
)

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (Record, error) {
	var rec Record
	err := sc.Scan(&rec.ID, &rec.Seq, &rec.OutputID, &rec.Name, &rec.Text)
	return rec, err
}

// List returns stored records ordered by seq ASC, id ASC COLLATE BINARY.
// Returns an empty slice (not nil) when nothing matches.
func (s *Store) List(ctx context.Context, opts ListOptions) ([]Record, error) {
	var (
		query strings.Builder
		args  []any
	)
	query.WriteString(`SELECT id, seq, output_id, name, text FROM queries`)
	if opts.OutputID != "" {
		query.WriteString(` WHERE output_id = ?`)
		args = append(args, opts.OutputID)
	}
	query.WriteString(` ORDER BY seq ASC, id COLLATE BINARY ASC`)
	if opts.Limit > 0 {
		query.WriteString(` LIMIT ?`)
		args = append(args, opts.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}
