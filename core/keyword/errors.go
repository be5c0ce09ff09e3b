package keyword

import "fmt"

// ExtractionError reports a failed keyword extraction. It covers worker
// spawn failures, non-zero exits and unparseable output alike; the caller
// is expected to fail the whole analysis, not retry.
type ExtractionError struct {
	Op     string // operation that failed, e.g. "run worker"
	Stderr string // captured worker stderr, diagnostic only
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("keyword extraction failed to %s: %v (stderr: %s)", e.Op, e.Err, e.Stderr)
	}
	return fmt.Sprintf("keyword extraction failed to %s: %v", e.Op, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
