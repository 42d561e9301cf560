package astrom

import "fmt"

// RangeError reports an input that falls outside its valid domain. It
// is returned before any computation runs, so a failed call has no
// partial results.
type RangeError struct {
	Field    string
	Value    float64
	Min, Max float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s = %g out of range %g to %g", e.Field, e.Value, e.Min, e.Max)
}
