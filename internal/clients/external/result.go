package external

// Status describes how a lookup resolved
type Status int

const (
	// StatusPresent means the record was found
	StatusPresent Status = iota
	// StatusEmpty means the source answered but has no such record
	StatusEmpty
	// StatusUnavailable means the source could not be reached or answered badly
	StatusUnavailable
)

// String returns the status name used in logs
func (s Status) String() string {
	switch s {
	case StatusPresent:
		return "present"
	case StatusEmpty:
		return "empty"
	case StatusUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Result is the outcome of a reference-data lookup. Value is only
// meaningful when Status is StatusPresent; Err is only set when the
// source was unavailable.
type Result[T any] struct {
	Status Status
	Value  T
	Err    error
}

// Present wraps a found value
func Present[T any](v T) Result[T] {
	return Result[T]{Status: StatusPresent, Value: v}
}

// Empty reports a record the source does not know
func Empty[T any]() Result[T] {
	return Result[T]{Status: StatusEmpty}
}

// Unavailable reports a failed lookup
func Unavailable[T any](err error) Result[T] {
	return Result[T]{Status: StatusUnavailable, Err: err}
}

// OK reports whether the value is present
func (r Result[T]) OK() bool {
	return r.Status == StatusPresent
}

// ValueOr returns the value when present and def otherwise
func (r Result[T]) ValueOr(def T) T {
	if r.Status != StatusPresent {
		return def
	}
	return r.Value
}
