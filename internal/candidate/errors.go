package candidate

import "fmt"

// ValidationError is returned when a mutation is refused because of bad
// input. The store is left unchanged and nothing is written.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
