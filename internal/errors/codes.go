package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK              Code = "OK"
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeInternal        Code = "INTERNAL"
	CodeUnavailable     Code = "UNAVAILABLE"
	CodeDataLoss        Code = "DATA_LOSS"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// ExitCode returns the process exit status the CLI uses for the code.
// Values follow the sysexits.h conventions.
func (c Code) ExitCode() int {
	switch c {
	case CodeOK:
		return 0
	case CodeInvalidArgument:
		return 64 // EX_USAGE
	case CodeNotFound:
		return 66 // EX_NOINPUT
	case CodeDataLoss:
		return 65 // EX_DATAERR
	case CodeUnavailable:
		return 69 // EX_UNAVAILABLE
	case CodeInternal:
		return 70 // EX_SOFTWARE
	default:
		return 1
	}
}
