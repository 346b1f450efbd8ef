package sink

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Output formats.
const (
	FormatText  = "text"
	FormatJSONL = "jsonl"
)

// StdoutID is the OutputID of printers writing to standard output.
const StdoutID = "stdout"

// ParseEncoding maps an encoding name to a text encoding. utf-8 (or an empty
// name) returns nil, meaning bytes are written unchanged.
func ParseEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), nil
	case "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q (want utf-8, utf-16le or utf-16be)", name)
	}
}

// output is the shared destination handling of the printers: an optional
// encoder in front of the writer, and an optional closer behind it.
type output struct {
	id     string
	w      io.Writer
	flush  io.Closer
	closer io.Closer
}

func newOutput(w io.Writer, id string, enc encoding.Encoding) *output {
	o := &output{id: id, w: w}
	if c, ok := w.(io.Closer); ok && id != StdoutID {
		o.closer = c
	}
	if enc != nil {
		tw := transform.NewWriter(w, enc.NewEncoder())
		o.w = tw
		o.flush = tw
	}
	return o
}

func (o *output) Close() error {
	if o.flush != nil {
		if err := o.flush.Close(); err != nil {
			return fmt.Errorf("flush %s: %w", o.id, err)
		}
		o.flush = nil
	}
	if o.closer != nil {
		err := o.closer.Close()
		o.closer = nil
		return err
	}
	return nil
}

func (o *output) OutputID() string {
	return o.id
}

// TextPrinter writes one query per line.
type TextPrinter struct {
	*output
}

// NewTextPrinter returns a printer writing to w. A nil enc writes UTF-8.
func NewTextPrinter(w io.Writer, id string, enc encoding.Encoding) *TextPrinter {
	return &TextPrinter{output: newOutput(w, id, enc)}
}

func (p *TextPrinter) PrintStartRow() error { return nil }

func (p *TextPrinter) PrintQuery(text string) error {
	_, err := io.WriteString(p.w, text)
	return err
}

func (p *TextPrinter) PrintEndRow() error {
	_, err := io.WriteString(p.w, "\n")
	return err
}

// jsonRecord is one line of JSONLinesPrinter output.
type jsonRecord struct {
	Seq   int    `json:"seq"`
	Query string `json:"query"`
}

// JSONLinesPrinter writes {"seq":n,"query":"..."} per record, numbering
// records from 1.
type JSONLinesPrinter struct {
	*output
	seq  int
	text strings.Builder
}

// NewJSONLinesPrinter returns a printer writing to w. A nil enc writes UTF-8.
func NewJSONLinesPrinter(w io.Writer, id string, enc encoding.Encoding) *JSONLinesPrinter {
	return &JSONLinesPrinter{output: newOutput(w, id, enc)}
}

func (p *JSONLinesPrinter) PrintStartRow() error {
	p.text.Reset()
	return nil
}

func (p *JSONLinesPrinter) PrintQuery(text string) error {
	p.text.WriteString(text)
	return nil
}

func (p *JSONLinesPrinter) PrintEndRow() error {
	p.seq++
	line, err := json.Marshal(jsonRecord{Seq: p.seq, Query: p.text.String()})
	if err != nil {
		return fmt.Errorf("encode record %d: %w", p.seq, err)
	}
	line = append(line, '\n')
	_, err = p.w.Write(line)
	return err
}

// NewPrinter returns a printer of the given format writing to w.
func NewPrinter(w io.Writer, id, format string, enc encoding.Encoding) (Printer, error) {
	switch format {
	case "", FormatText:
		return NewTextPrinter(w, id, enc), nil
	case FormatJSONL:
		return NewJSONLinesPrinter(w, id, enc), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q (want %s or %s)", format, FormatText, FormatJSONL)
	}
}

// NewFilePrinter opens a printer writing to path, creating or truncating
// the file. An empty path or "-" selects standard output, which Close leaves
// open.
func NewFilePrinter(path, format, encodingName string) (Printer, error) {
	enc, err := ParseEncoding(encodingName)
	if err != nil {
		return nil, err
	}

	if path == "" || path == "-" {
		return NewPrinter(os.Stdout, StdoutID, format, enc)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output file: %w", err)
	}
	p, err := NewPrinter(f, path, format, enc)
	if err != nil {
		f.Close()
		return nil, err
	}
	return p, nil
}
