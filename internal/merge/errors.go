package merge

import "strings"

// SchemaErrorMessage is the user-facing text of every SchemaError.
const SchemaErrorMessage = "Fieldnames error: One or more of the provided CSV files contain incorrect data. Check the headers and try again."

// SchemaError is returned when a source header does not match its required
// field names exactly. The message is the same for every mismatch; the
// fields are kept for logging.
type SchemaError struct {
	// Source is "persons" or "visits".
	Source string

	// Got is the header that was found. It is nil for an empty input.
	Got []string

	// Want is the header that was required.
	Want []string
}

// Error returns SchemaErrorMessage.
func (e *SchemaError) Error() string {
	return SchemaErrorMessage
}

// Detail describes the mismatch for diagnostics.
func (e *SchemaError) Detail() string {
	return e.Source + " header [" + strings.Join(e.Got, ",") + "] does not match [" + strings.Join(e.Want, ",") + "]"
}
