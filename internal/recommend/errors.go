package recommend

import "fmt"

// DataError reports malformed or missing input that prevents a
// recommendation from being computed for a client. Degenerate numeric
// conditions (zero vectors, empty matrices) are not data errors; they
// resolve to empty results.
type DataError struct {
	Field  string
	Reason string
}

func (e *DataError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func dataErr(field, format string, args ...interface{}) *DataError {
	return &DataError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
