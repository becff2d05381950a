// pkg/claims/errors.go
package claims

import "fmt"

// UnsupportedDatatypeError is returned when no rule exists for a datatype.
type UnsupportedDatatypeError struct {
	Datatype string
	ClaimID  string
}

func (e *UnsupportedDatatypeError) Error() string {
	return fmt.Sprintf("%s claim parser isn't implemented (claim id: %s)", e.Datatype, e.ClaimID)
}

// InvalidTimeConverterError is returned for an unknown time converter key.
type InvalidTimeConverterError struct {
	Key string
}

func (e *InvalidTimeConverterError) Error() string {
	return fmt.Sprintf("invalid time converter key: %q", e.Key)
}

// MalformedValueError is returned when a datavalue does not have the shape
// its datatype requires.
type MalformedValueError struct {
	Datatype string
	ClaimID  string
	Err      error
}

func (e *MalformedValueError) Error() string {
	return fmt.Sprintf("malformed %s value (claim id: %s): %v", e.Datatype, e.ClaimID, e.Err)
}

func (e *MalformedValueError) Unwrap() error { return e.Err }
