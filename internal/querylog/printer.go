package querylog

import (
	"context"
	"strings"

	"github.com/roach88/bytescript/internal/sink"
)

var _ sink.Printer = (*Printer)(nil)

// Printer appends each record it receives to a Store. Records are tagged
// with the printer's output ID and the name set by SetName.
type Printer struct {
	ctx      context.Context
	store    *Store
	outputID string
	name     string
	text     strings.Builder

	// Inserted counts records that were new to the log.
	Inserted int
}

// NewPrinter returns a printer writing to store. outputID tags every record.
func NewPrinter(ctx context.Context, store *Store, outputID string) *Printer {
	return &Printer{ctx: ctx, store: store, outputID: outputID}
}

// SetName sets the query name attached to subsequent records.
func (p *Printer) SetName(name string) {
	p.name = name
}

func (p *Printer) PrintStartRow() error {
	p.text.Reset()
	return nil
}

func (p *Printer) PrintQuery(text string) error {
	p.text.WriteString(text)
	return nil
}

func (p *Printer) PrintEndRow() error {
	_, inserted, err := p.store.Append(p.ctx, Record{
		OutputID: p.outputID,
		Name:     p.name,
		Text:     p.text.String(),
	})
	if err != nil {
		return err
	}
	if inserted {
		p.Inserted++
	}
	return nil
}

// Close leaves the store open; its owner closes it.
func (p *Printer) Close() error {
	return nil
}

// OutputID returns the database path.
func (p *Printer) OutputID() string {
	return p.store.Path()
}
