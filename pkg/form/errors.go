package form

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFieldType reports a field type outside the closed set.
	ErrUnknownFieldType = errors.New("form: unknown field type")
)

// RequiredError reports a required field left empty. Its message is surfaced
// verbatim next to the field in filler UIs.
type RequiredError struct {
	Label string
}

func (e *RequiredError) Error() string {
	return fmt.Sprintf("%s is required", e.Label)
}

// FormatError reports a present value that does not match the shape its field
// type demands (email or phone).
type FormatError struct {
	Type    FieldType
	Message string
}

func (e *FormatError) Error() string {
	return e.Message
}
