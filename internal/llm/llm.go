// Package llm abstracts hosted text-generation providers behind a small
// client interface.
package llm

import (
	"context"
	"fmt"
)

// Client sends a single instruction to a hosted model and returns the trimmed
// text of the top completion. Implementations must honor ctx cancellation and
// return a *UpstreamError for any provider failure.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// UpstreamError reports a failed call to the text-generation service:
// transport error, non-success status, malformed response, or timeout.
// Callers surface it directly; nothing is retried and no fallback text is
// substituted.
type UpstreamError struct {
	Provider string
	Status   int
	Err      error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s upstream error (status %d): %v", e.Provider, e.Status, e.Err)
	}
	return fmt.Sprintf("%s upstream error: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
