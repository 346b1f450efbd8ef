package sink

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder captures the calls a QueryWriter makes.
type recorder struct {
	calls  []string
	failOn string
	closed bool
}

func (r *recorder) call(name string) error {
	r.calls = append(r.calls, name)
	if name == r.failOn {
		return errors.New(name + " failed")
	}
	return nil
}

func (r *recorder) PrintStartRow() error         { return r.call("start") }
func (r *recorder) PrintQuery(text string) error { return r.call("query:" + text) }
func (r *recorder) PrintEndRow() error           { return r.call("end") }
func (r *recorder) Close() error                 { r.closed = true; return nil }
func (r *recorder) OutputID() string             { return "rec" }

func TestQueryWriter_Handle(t *testing.T) {
	rec := &recorder{}
	w := NewQueryWriter(rec)

	require.NoError(t, w.Handle("g.V()"))
	require.NoError(t, w.Handle("g.E()"))

	assert.Equal(t, []string{"start", "query:g.V()", "end", "start", "query:g.E()", "end"}, rec.calls)
	assert.Equal(t, "rec", w.OutputID())

	require.NoError(t, w.Close())
	assert.True(t, rec.closed)
}

func TestQueryWriter_StopsOnError(t *testing.T) {
	rec := &recorder{failOn: "start"}
	err := NewQueryWriter(rec).Handle("g.V()")

	require.Error(t, err)
	assert.Equal(t, []string{"start"}, rec.calls)
}

func TestTextPrinter(t *testing.T) {
	var buf bytes.Buffer
	w := NewQueryWriter(NewTextPrinter(&buf, "buf", nil))

	require.NoError(t, w.Handle(`g.V().has("name","marko")`))
	require.NoError(t, w.Handle("g.E()"))
	require.NoError(t, w.Close())

	assert.Equal(t, "g.V().has(\"name\",\"marko\")\ng.E()\n", buf.String())
	assert.Equal(t, "buf", w.OutputID())
}

func TestTextPrinter_UTF16(t *testing.T) {
	enc, err := ParseEncoding("utf-16le")
	require.NoError(t, err)

	var buf bytes.Buffer
	w := NewQueryWriter(NewTextPrinter(&buf, "buf", enc))
	require.NoError(t, w.Handle("g"))
	require.NoError(t, w.Close())

	assert.Equal(t, []byte{'g', 0, '\n', 0}, buf.Bytes())
}

func TestJSONLinesPrinter(t *testing.T) {
	var buf bytes.Buffer
	w := NewQueryWriter(NewJSONLinesPrinter(&buf, "buf", nil))

	require.NoError(t, w.Handle(`g.V().values("name")`))
	require.NoError(t, w.Handle("g.E()"))
	require.NoError(t, w.Close())

	want := `{"seq":1,"query":"g.V().values(\"name\")"}` + "\n" + `{"seq":2,"query":"g.E()"}` + "\n"
	assert.Equal(t, want, buf.String())
}

func TestParseEncoding(t *testing.T) {
	for _, name := range []string{"", "utf-8", "UTF8"} {
		enc, err := ParseEncoding(name)
		require.NoError(t, err)
		assert.Nil(t, enc, name)
	}

	_, err := ParseEncoding("latin1")
	assert.Error(t, err)
}

func TestNewPrinter_UnknownFormat(t *testing.T) {
	_, err := NewPrinter(&bytes.Buffer{}, "buf", "csv", nil)
	assert.Error(t, err)
}

func TestNewFilePrinter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	p, err := NewFilePrinter(path, FormatText, "utf-8")
	require.NoError(t, err)
	assert.Equal(t, path, p.OutputID())

	w := NewQueryWriter(p)
	require.NoError(t, w.Handle("g.V()"))
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "g.V()\n", string(data))
}

func TestNewFilePrinter_Stdout(t *testing.T) {
	p, err := NewFilePrinter("-", FormatJSONL, "")
	require.NoError(t, err)
	assert.Equal(t, StdoutID, p.OutputID())
	require.NoError(t, p.Close())
}

func TestMulti(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	w := NewQueryWriter(Multi{a, b})

	require.NoError(t, w.Handle("g.V()"))
	require.NoError(t, w.Close())

	assert.Equal(t, a.calls, b.calls)
	assert.True(t, a.closed)
	assert.True(t, b.closed)
	assert.Equal(t, "rec", w.OutputID())
}
