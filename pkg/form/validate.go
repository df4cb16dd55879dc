package form

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[1-9][0-9]{0,15}$`)
	phoneStrip   = strings.NewReplacer(" ", "", "\t", "", "-", "", "(", "", ")", "")
)

// Validate checks a single value against its field definition. Rules run in
// order and short-circuit on the first failure: required presence, then the
// type-specific shape for email and phone. A nil return means the value is
// acceptable. Validation is synchronous and side-effect-free so batch submit
// checks and incremental per-keystroke checks share identical semantics.
func Validate(field Field, value Value) error {
	if _, err := Lookup(field.Type); err != nil {
		return err
	}

	if field.Required && value.IsEmpty() {
		return &RequiredError{Label: field.Label}
	}
	if value.IsEmpty() {
		return nil
	}

	switch field.Type {
	case FieldTypeEmail:
		if !emailPattern.MatchString(value.String()) {
			return &FormatError{Type: FieldTypeEmail, Message: "Please enter a valid email address"}
		}
	case FieldTypePhone:
		if !phonePattern.MatchString(phoneStrip.Replace(value.String())) {
			return &FormatError{Type: FieldTypePhone, Message: "Please enter a valid phone number"}
		}
	}
	return nil
}

// ValidateAll runs Validate over every field of a form against a response
// map, collecting failures keyed by field id. Missing map entries count as
// empty values. An empty result means the submission is acceptable.
func ValidateAll(f Form, responses map[string]Value) map[string]error {
	errs := make(map[string]error)
	for _, field := range f.Fields {
		if err := Validate(field, responses[field.ID]); err != nil {
			errs[field.ID] = err
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// CheckInvariants verifies the structural invariants a well-formed document
// upholds: unique non-empty field ids, non-empty labels, options present
// exactly on option-carrying kinds, and step references resolving to
// existing fields.
func CheckInvariants(f Form) error {
	seen := make(map[string]struct{}, len(f.Fields))
	for _, field := range f.Fields {
		if field.ID == "" {
			return fmt.Errorf("form: field with empty id")
		}
		if _, dup := seen[field.ID]; dup {
			return fmt.Errorf("form: duplicate field id %q", field.ID)
		}
		seen[field.ID] = struct{}{}
		if strings.TrimSpace(field.Label) == "" {
			return fmt.Errorf("form: field %q has empty label", field.ID)
		}
		if _, err := Lookup(field.Type); err != nil {
			return err
		}
		if HasOptions(field.Type) && field.Options == nil {
			return fmt.Errorf("form: field %q of type %s requires options", field.ID, field.Type)
		}
		if !HasOptions(field.Type) && field.Options != nil {
			return fmt.Errorf("form: field %q of type %s must not carry options", field.ID, field.Type)
		}
	}
	for _, step := range f.Steps {
		for _, ref := range step.Fields {
			if _, ok := seen[ref]; !ok {
				return fmt.Errorf("form: step %q references missing field %q", step.ID, ref)
			}
		}
	}
	return nil
}
