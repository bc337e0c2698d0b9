package resolver

// Candidate is one potential source of a value in a fallback chain.
type Candidate interface {
	// Resolve attempts to produce the value from this source.
	Resolve() (string, error)
	// Describe identifies the source for diagnostics, e.g. `file "VERSION"`.
	Describe() string
}

// Resolution is the outcome of evaluating a fallback chain.
// Skipped lists the candidates that failed before Source succeeded, so
// callers can surface each fallback step.
type Resolution struct {
	Value   string
	Source  string
	Skipped []SkippedCandidate
}

// SkippedCandidate records a candidate that failed during resolution.
type SkippedCandidate struct {
	Source string
	Err    error
}
