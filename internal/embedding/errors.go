package embedding

import "fmt"

// APICallError represents an error from the embedding provider.
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("embedding call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("embedding call failed: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// DimensionMismatchError indicates two vectors of different lengths were
// compared.
type DimensionMismatchError struct {
	LenA int
	LenB int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("vector dimension mismatch: %d vs %d", e.LenA, e.LenB)
}
