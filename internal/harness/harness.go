package harness

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/roach88/bytescript/internal/translate"
)

// Run translates every case of scenario and compares it to its
// expectation. Logs are discarded.
func Run(scenario *Scenario) (*Result, error) {
	return RunWithLogger(scenario, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// RunWithLogger is Run with an explicit logger.
func RunWithLogger(scenario *Scenario, logger *slog.Logger) (*Result, error) {
	if err := validateScenario(scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	result := NewResult()
	for i := range scenario.Cases {
		c := &scenario.Cases[i]
		outcome := runCase(c)
		result.Outcomes = append(result.Outcomes, outcome)

		if msg := mismatch(c, outcome); msg != "" {
			logger.Debug("case failed", "scenario", scenario.Name, "case", c.Name, "reason", msg)
			result.AddError(fmt.Sprintf("%s: %s", c.Name, msg))
			continue
		}
		logger.Debug("case passed", "scenario", scenario.Name, "case", c.Name)
	}

	logger.Info("scenario finished",
		"scenario", scenario.Name,
		"cases", len(scenario.Cases),
		"failures", len(result.Errors),
	)
	return result, nil
}

func runCase(c *Case) Outcome {
	script, err := translate.Assemble(c.decoded, c.Root)
	if err != nil {
		return Outcome{Case: c.Name, Error: err.Error()}
	}
	return Outcome{Case: c.Name, Script: script}
}

// mismatch returns a description of how outcome differs from c's
// expectation, or "" if it matches.
func mismatch(c *Case, o Outcome) string {
	if c.Error != "" {
		if o.Error == "" {
			return fmt.Sprintf("expected error containing %q, got script %s", c.Error, o.Script)
		}
		if !strings.Contains(o.Error, c.Error) {
			return fmt.Sprintf("expected error containing %q, got %q", c.Error, o.Error)
		}
		return ""
	}

	if o.Error != "" {
		return fmt.Sprintf("unexpected error: %s", o.Error)
	}
	if o.Script != c.Expect {
		return fmt.Sprintf("script mismatch\n  want: %s\n   got: %s", c.Expect, o.Script)
	}
	return ""
}
