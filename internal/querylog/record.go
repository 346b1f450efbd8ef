package querylog

// Record is one stored query.
type Record struct {
	ID       string
	Seq      int64
	OutputID string
	Name     string
	Text     string
}

// ListOptions filters and bounds List.
type ListOptions struct {
	// OutputID restricts results to one output when non-empty.
	OutputID string

	// Limit caps the number of records; zero means no limit.
	Limit int
}
