package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/roach88/bytescript/internal/loader"
	"github.com/roach88/bytescript/internal/querylog"
	"github.com/roach88/bytescript/internal/sink"
	"github.com/roach88/bytescript/internal/translate"
)

// TranslateOptions holds flags for the translate command.
type TranslateOptions struct {
	*RootOptions
	Output   string // output file; empty or "-" for stdout
	DB       string // query log database; empty disables logging
	Root     string // traversal source marker
	Jobs     int    // files translated concurrently
	Encoding string // output text encoding
	JSONL    bool   // one JSON record per query
}

// TranslatedQuery is one rendered script.
type TranslatedQuery struct {
	File string `json:"file"`
	Name string `json:"name"`
	Text string `json:"text"`
}

// TranslateSummary is reported after the queries are written.
type TranslateSummary struct {
	Files   int    `json:"files"`
	Queries int    `json:"queries"`
	Output  string `json:"output"`
	Stored  int    `json:"stored,omitempty"`
}

func (s TranslateSummary) String() string {
	msg := fmt.Sprintf("Translated %d queries from %d file(s) to %s", s.Queries, s.Files, s.Output)
	if s.Stored > 0 {
		msg += fmt.Sprintf(" (%d new in query log)", s.Stored)
	}
	return msg
}

// NewTranslateCommand creates the translate command.
func NewTranslateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TranslateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "translate [file...]",
		Short: "Translate bytecode documents into query scripts",
		Long: `Translate bytecode documents into Groovy-syntax query scripts.

Documents may be JSON, YAML or CUE (chosen by extension). With no files,
a JSON document is read from standard input. Files are loaded and translated
concurrently; scripts are written in input order, one per line.

Exit codes:
  0 - All queries translated
  1 - A query could not be translated
  2 - Command error (unreadable document, bad flags, database errors)

Examples:
  bytescript translate queries.json
  bytescript translate a.yaml b.cue -o scripts.groovy --db queries.db
  bytescript translate queries.json --jsonl --encoding utf-16le -o out.jsonl`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(opts, args, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&opts.DB, "db", "", "append translated queries to this query log")
	cmd.Flags().StringVar(&opts.Root, "root", translate.RootSource, "traversal source marker")
	cmd.Flags().IntVar(&opts.Jobs, "jobs", 4, "files to translate concurrently")
	cmd.Flags().StringVar(&opts.Encoding, "encoding", "utf-8", "output encoding (utf-8|utf-16le|utf-16be)")
	cmd.Flags().BoolVar(&opts.JSONL, "jsonl", false, "write one JSON record per query")

	return cmd
}

func runTranslate(opts *TranslateOptions, args []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	logger := opts.logger()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if opts.Jobs < 1 {
		return formatter.fail(ExitCommandError, ErrCodeGeneric, fmt.Errorf("--jobs must be at least 1, got %d", opts.Jobs))
	}
	if opts.Root == "" {
		return formatter.fail(ExitCommandError, ErrCodeGeneric, errors.New("--root must not be empty"))
	}
	if _, err := sink.ParseEncoding(opts.Encoding); err != nil {
		return formatter.fail(ExitCommandError, ErrCodeGeneric, err)
	}

	var (
		queries []TranslatedQuery
		err     error
	)
	if len(args) == 0 {
		queries, err = translateStdin(cmd.InOrStdin(), opts.Root)
	} else {
		queries, err = TranslateFiles(ctx, args, opts.Root, opts.Jobs)
	}
	if err != nil {
		return failTranslate(formatter, err)
	}
	logger.Debug("translated documents", "files", len(args), "queries", len(queries))

	summary, err := writeQueries(ctx, opts, formatter, queries)
	if err != nil {
		return err
	}
	summary.Files = len(args)

	if summary.Output == sink.StdoutID {
		logger.Info("translation finished", "files", summary.Files, "queries", summary.Queries, "stored", summary.Stored)
		return nil
	}
	return formatter.Success(summary)
}

// TranslateFiles loads and translates paths with at most jobs files in
// flight. Results keep input order: every query of paths[0], then paths[1].
func TranslateFiles(ctx context.Context, paths []string, root string, jobs int) ([]TranslatedQuery, error) {
	perFile := make([][]TranslatedQuery, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := loader.LoadFile(path)
			if err != nil {
				return err
			}
			out, err := translateDocument(doc, root)
			if err != nil {
				return err
			}
			perFile[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []TranslatedQuery
	for _, qs := range perFile {
		all = append(all, qs...)
	}
	return all, nil
}

func translateStdin(stdin io.Reader, root string) ([]TranslatedQuery, error) {
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read standard input: %w", err)
	}
	doc, err := loader.Parse("stdin", data)
	if err != nil {
		return nil, err
	}
	return translateDocument(doc, root)
}

// QueryError reports a query that failed to translate.
type QueryError struct {
	File  string
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s: query %q: %v", e.File, e.Query, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

func translateDocument(doc *loader.Document, root string) ([]TranslatedQuery, error) {
	out := make([]TranslatedQuery, 0, len(doc.Queries))
	for _, q := range doc.Queries {
		text, err := translate.Assemble(q.Bytecode, root)
		if err != nil {
			return nil, &QueryError{File: doc.Path, Query: q.Name, Err: err}
		}
		out = append(out, TranslatedQuery{File: doc.Path, Name: q.Name, Text: text})
	}
	return out, nil
}

// failTranslate maps loader errors to their own codes and exit code 2, and
// translation failures to exit code 1.
func failTranslate(formatter *OutputFormatter, err error) error {
	var le *loader.LoadError
	if errors.As(err, &le) {
		return formatter.fail(ExitCommandError, le.Code, err)
	}
	var qe *QueryError
	if errors.As(err, &qe) {
		return formatter.fail(ExitFailure, ErrCodeTranslate, err)
	}
	return formatter.fail(ExitCommandError, ErrCodeGeneric, err)
}

// writeQueries sends every query through a QueryWriter, fanning out to the
// query log when --db is set.
func writeQueries(ctx context.Context, opts *TranslateOptions, formatter *OutputFormatter, queries []TranslatedQuery) (TranslateSummary, error) {
	format := sink.FormatText
	if opts.JSONL {
		format = sink.FormatJSONL
	}

	out, err := sink.NewFilePrinter(opts.Output, format, opts.Encoding)
	if err != nil {
		return TranslateSummary{}, formatter.fail(ExitCommandError, ErrCodeWriteFailed, err)
	}

	var (
		printer sink.Printer = out
		logged  *querylog.Printer
		store   *querylog.Store
	)
	if opts.DB != "" {
		store, err = querylog.Open(opts.DB)
		if err != nil {
			out.Close()
			return TranslateSummary{}, formatter.fail(ExitCommandError, ErrCodeStore, err)
		}
		defer store.Close()

		logged = querylog.NewPrinter(ctx, store, out.OutputID())
		printer = sink.Multi{out, logged}
	}

	writer := sink.NewQueryWriter(printer)
	for _, q := range queries {
		if logged != nil {
			logged.SetName(q.Name)
		}
		if err := writer.Handle(q.Text); err != nil {
			writer.Close()
			return TranslateSummary{}, formatter.fail(ExitCommandError, ErrCodeWriteFailed, err)
		}
	}
	if err := writer.Close(); err != nil {
		return TranslateSummary{}, formatter.fail(ExitCommandError, ErrCodeWriteFailed, err)
	}

	summary := TranslateSummary{Queries: len(queries), Output: writer.OutputID()}
	if logged != nil {
		summary.Stored = logged.Inserted
	}
	return summary, nil
}
