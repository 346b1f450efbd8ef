package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/bytescript/internal/querylog"
)

// LogOptions holds flags for the log command.
type LogOptions struct {
	*RootOptions
	DB       string
	Limit    int
	OutputID string
}

// LogEntry is one stored query in command output.
type LogEntry struct {
	Seq      int64  `json:"seq"`
	ID       string `json:"id"`
	Name     string `json:"name"`
	OutputID string `json:"output_id"`
	Text     string `json:"text"`
}

// LogResult is the payload of the log command.
type LogResult struct {
	Total   int        `json:"total"`
	Entries []LogEntry `json:"entries"`
}

// NewLogCommand creates the log command.
func NewLogCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LogOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "log",
		Short: "List queries recorded by translate --db",
		Long: `List the query log in sequence order.

Examples:
  bytescript log --db queries.db
  bytescript log --db queries.db --limit 10 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLog(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "query log database")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "show at most n queries (0 for all)")
	cmd.Flags().StringVar(&opts.OutputID, "output-id", "", "only queries written to this output")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runLog(opts *LogOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if opts.Limit < 0 {
		return formatter.fail(ExitCommandError, ErrCodeGeneric, fmt.Errorf("--limit must not be negative, got %d", opts.Limit))
	}
	if _, err := os.Stat(opts.DB); os.IsNotExist(err) {
		return formatter.fail(ExitCommandError, ErrCodeStore, fmt.Errorf("database not found: %s", opts.DB))
	}

	store, err := querylog.Open(opts.DB)
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeStore, err)
	}
	defer store.Close()

	total, err := store.Count(ctx)
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeStore, err)
	}
	records, err := store.List(ctx, querylog.ListOptions{OutputID: opts.OutputID, Limit: opts.Limit})
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeStore, err)
	}
	opts.logger().Debug("read query log", "db", opts.DB, "total", total, "listed", len(records))

	result := LogResult{Total: total, Entries: make([]LogEntry, 0, len(records))}
	for _, rec := range records {
		result.Entries = append(result.Entries, LogEntry{
			Seq:      rec.Seq,
			ID:       rec.ID,
			Name:     rec.Name,
			OutputID: rec.OutputID,
			Text:     rec.Text,
		})
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}
	return formatter.Success(formatLogText(result))
}

func formatLogText(result LogResult) string {
	if len(result.Entries) == 0 {
		return "Query log is empty."
	}

	var b strings.Builder
	for i, e := range result.Entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		name := e.Name
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(&b, "%d\t%s\t%s\t%s", e.Seq, e.ID[:12], name, e.Text)
	}
	return b.String()
}
