package errors

import (
	"fmt"
)

// SchemaError occurs when a referenced column name is absent from a Table,
// when two Tables which must share a column set do not, or when a new
// column name collides with an existing one
type SchemaError struct{ Message string }

// Error returns a textual representation of this SchemaError
func (e SchemaError) Error() string {
	return fmt.Sprintf("Schema error: %s", e.Message)
}

// ConfigurationError occurs when caller-supplied parameters are
// structurally inconsistent with the Table being operated on
type ConfigurationError struct{ Message string }

// Error returns a textual representation of this ConfigurationError
func (e ConfigurationError) Error() string {
	return fmt.Sprintf("Configuration error: %s", e.Message)
}

// IncompatibleRowError occurs when an appended row's width does not match a Table's Schema
type IncompatibleRowError struct {
	Expected int
	Actual   int
}

// Error returns a textual representation of this IncompatibleRowError
func (e IncompatibleRowError) Error() string {
	return fmt.Sprintf("Row width %d is not compatible with Schema width %d", e.Actual, e.Expected)
}

// MissingLabelError occurs when a row label cannot be found in a Table's index
type MissingLabelError struct{ Label string }

// Error returns a textual representation of this MissingLabelError
func (e MissingLabelError) Error() string {
	return fmt.Sprintf("Label %s does not exist in table index", e.Label)
}
