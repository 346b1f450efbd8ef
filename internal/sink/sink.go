package sink

// Printer is a downstream sink for query records.
type Printer interface {
	PrintStartRow() error
	PrintQuery(text string) error
	PrintEndRow() error
	Close() error
	OutputID() string
}

// QueryWriter writes each translated query as one record.
type QueryWriter struct {
	printer Printer
}

// NewQueryWriter returns a writer delivering records to p.
func NewQueryWriter(p Printer) *QueryWriter {
	return &QueryWriter{printer: p}
}

// Handle emits text as a single record.
func (w *QueryWriter) Handle(text string) error {
	if err := w.printer.PrintStartRow(); err != nil {
		return err
	}
	if err := w.printer.PrintQuery(text); err != nil {
		return err
	}
	return w.printer.PrintEndRow()
}

// Close closes the underlying printer.
func (w *QueryWriter) Close() error {
	return w.printer.Close()
}

// OutputID names the destination of the underlying printer.
func (w *QueryWriter) OutputID() string {
	return w.printer.OutputID()
}

// Multi fans records out to several printers in order. The first error stops
// the fan-out.
type Multi []Printer

func (m Multi) PrintStartRow() error {
	for _, p := range m {
		if err := p.PrintStartRow(); err != nil {
			return err
		}
	}
	return nil
}

func (m Multi) PrintQuery(text string) error {
	for _, p := range m {
		if err := p.PrintQuery(text); err != nil {
			return err
		}
	}
	return nil
}

func (m Multi) PrintEndRow() error {
	for _, p := range m {
		if err := p.PrintEndRow(); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every printer and returns the first error.
func (m Multi) Close() error {
	var first error
	for _, p := range m {
		if err := p.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// OutputID returns the first printer's id.
func (m Multi) OutputID() string {
	if len(m) == 0 {
		return ""
	}
	return m[0].OutputID()
}
