package analysis

import "fmt"

// InputError reports an empty or malformed batch or criteria. It is fatal:
// the run aborts and nothing partial is returned.
type InputError struct {
	Message string
	Cause   error
}

func (e *InputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid input: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid input: %s", e.Message)
}

func (e *InputError) Unwrap() error {
	return e.Cause
}
