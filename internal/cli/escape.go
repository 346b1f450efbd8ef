package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/bytescript/internal/escape"
)

// EscapeOptions holds flags for the escape command.
type EscapeOptions struct {
	*RootOptions
	Strict bool // also escape ' and /
}

// EscapeResult is the JSON payload of escape and unescape.
type EscapeResult struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// NewEscapeCommand creates the escape command.
func NewEscapeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EscapeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "escape [text]",
		Short: "Escape text for a double-quoted script literal",
		Long: `Escape text the way translated scripts quote strings: control
characters and non-ASCII code units become \uXXXX, quotes and backslashes
are backslash-escaped. Reads standard input when no argument is given.

Examples:
  bytescript escape 'say "hi"'
  echo 'café' | bytescript escape
  bytescript escape --strict "it's a/b"`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEscape(opts, args, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "also escape single quotes and forward slashes")

	return cmd
}

// NewUnescapeCommand creates the unescape command.
func NewUnescapeCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unescape [text]",
		Short: "Decode backslash escapes",
		Long: `Decode backslash escapes produced by escape. Reads standard input
when no argument is given.

Exit codes:
  0 - Decoded
  1 - Malformed \u escape
  2 - Command error`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnescape(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runEscape(opts *EscapeOptions, args []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	input, err := readInput(args, cmd.InOrStdin())
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeGeneric, err)
	}

	var output string
	if opts.Strict {
		output = escape.EncodeJavaScript(input)
	} else {
		output = escape.Encode(input)
	}
	opts.logger().Debug("escaped text", "input_len", len(input), "output_len", len(output), "strict", opts.Strict)

	return writeEscapeResult(formatter, EscapeResult{Input: input, Output: output})
}

func runUnescape(opts *RootOptions, args []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	input, err := readInput(args, cmd.InOrStdin())
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeGeneric, err)
	}

	output, err := escape.Decode(input)
	if err != nil {
		return formatter.fail(ExitFailure, ErrCodeDecode, err)
	}
	opts.logger().Debug("unescaped text", "input_len", len(input), "output_len", len(output))

	return writeEscapeResult(formatter, EscapeResult{Input: input, Output: output})
}

func writeEscapeResult(formatter *OutputFormatter, result EscapeResult) error {
	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	return formatter.Success(result.Output)
}

// readInput returns the single argument, or standard input without its
// final line break.
func readInput(args []string, stdin io.Reader) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read standard input: %w", err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}
