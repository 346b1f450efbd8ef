package harness

// Outcome is what translating one case produced.
type Outcome struct {
	Case   string `json:"case"`
	Script string `json:"script,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true if every case matched its expectation.
	Pass bool `json:"pass"`

	// Outcomes holds one entry per case, in case order.
	Outcomes []Outcome `json:"outcomes"`

	// Errors contains mismatch messages. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:     true,
		Outcomes: []Outcome{},
		Errors:   []string{},
	}
}

// AddError adds a mismatch message and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
