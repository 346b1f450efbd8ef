package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/bytescript/internal/bytecode"
	"github.com/roach88/bytescript/internal/loader"
	"github.com/roach88/bytescript/internal/translate"
)

// Scenario is a named list of translation cases.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Cases are translated in order.
	Cases []Case `yaml:"cases"`
}

// Case is one bytecode program and its expected outcome.
type Case struct {
	Name string `yaml:"name"`

	// Root is the traversal source marker; defaults to "g".
	Root string `yaml:"root,omitempty"`

	// Bytecode holds the raw YAML; it is decoded by validateScenario.
	Bytecode yaml.Node `yaml:"bytecode"`

	// Expect is the exact expected script.
	Expect string `yaml:"expect,omitempty"`

	// Error is a substring the translation error must contain.
	Error string `yaml:"error,omitempty"`

	decoded *bytecode.Bytecode
}

// Program returns the decoded bytecode. It is nil until the scenario has
// been validated.
func (c *Case) Program() *bytecode.Bytecode {
	return c.decoded
}

// NewCase builds a case from already decoded bytecode.
func NewCase(name string, bc *bytecode.Bytecode, expect string) Case {
	return Case{Name: name, Expect: expect, decoded: bc}
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML held in memory.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks required fields and decodes each case's bytecode.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}

	seen := make(map[string]bool, len(s.Cases))
	for i := range s.Cases {
		c := &s.Cases[i]
		if c.Name == "" {
			return fmt.Errorf("cases[%d]: name is required", i)
		}
		if seen[c.Name] {
			return fmt.Errorf("cases[%d]: duplicate case name %q", i, c.Name)
		}
		seen[c.Name] = true

		if c.Expect == "" && c.Error == "" {
			return fmt.Errorf("cases[%d] (%s): expect or error is required", i, c.Name)
		}
		if c.Expect != "" && c.Error != "" {
			return fmt.Errorf("cases[%d] (%s): expect and error are mutually exclusive", i, c.Name)
		}
		if c.Root == "" {
			c.Root = translate.RootSource
		}

		if c.decoded != nil {
			continue
		}
		if c.Bytecode.Kind == 0 {
			return fmt.Errorf("cases[%d] (%s): bytecode is required", i, c.Name)
		}
		bc, err := loader.DecodeBytecodeNode(&c.Bytecode)
		if err != nil {
			return fmt.Errorf("cases[%d] (%s): %w", i, c.Name, err)
		}
		c.decoded = bc
	}

	return nil
}
