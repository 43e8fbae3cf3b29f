package judge

import "fmt"

// ErrTransport indicates the provider call failed at the HTTP layer:
// a non-200 status or a network failure. Never retried by this package.
type ErrTransport struct {
	Provider string
	Status   int
	Err      error
}

func (e *ErrTransport) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: request failed with status %d", e.Provider, e.Status)
	}
	return fmt.Sprintf("%s: request failed: %v", e.Provider, e.Err)
}

func (e *ErrTransport) Unwrap() error { return e.Err }

// ErrBadVerdict indicates the provider answered but the content could not be
// coerced into a Verdict: malformed JSON, missing fields, or an unexpected
// response shape. The raw content is kept for diagnosis; a score is never
// fabricated from it.
type ErrBadVerdict struct {
	Provider string
	Content  []byte
	Err      error
}

func (e *ErrBadVerdict) Error() string {
	return fmt.Sprintf("%s: unusable verdict: %v", e.Provider, e.Err)
}

func (e *ErrBadVerdict) Unwrap() error { return e.Err }
