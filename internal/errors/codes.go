package errors

// Code represents an error code
type Code string

// General error codes
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

// Engine error codes. These are the resolver's externally visible
// failure taxonomy; callers branch on them, so they stay distinct from
// the general codes.
const (
	CodeInvalidNotation  Code = "INVALID_NOTATION"
	CodeEmptyTable       Code = "EMPTY_TABLE"
	CodeTableNotFound    Code = "TABLE_NOT_FOUND"
	CodeCreatureNotFound Code = "CREATURE_NOT_FOUND"
	CodeCyclicReference  Code = "CYCLIC_REFERENCE"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}
