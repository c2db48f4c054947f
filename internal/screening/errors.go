package screening

import "fmt"

// ProviderError wraps a semantic similarity provider failure. It is always
// recovered locally: the comparison scores 0 and the run continues.
type ProviderError struct {
	Keyword string
	Cause   error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("similarity provider failed for keyword %q: %v", e.Keyword, e.Cause)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}
