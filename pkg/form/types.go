package form

import "time"

// FieldType is the closed enumeration of input kinds the builder supports.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeSelect   FieldType = "select"
	FieldTypeCheckbox FieldType = "checkbox"
	FieldTypeRadio    FieldType = "radio"
	FieldTypeDate     FieldType = "date"
	FieldTypeEmail    FieldType = "email"
	FieldTypePhone    FieldType = "phone"
	FieldTypeNumber   FieldType = "number"
)

// Field models a single input definition inside a form. Options is populated
// only for select, checkbox and radio fields.
type Field struct {
	ID          string    `json:"id"`
	Type        FieldType `json:"type"`
	Label       string    `json:"label"`
	Required    bool      `json:"required"`
	Placeholder string    `json:"placeholder,omitempty"`
	HelpText    string    `json:"helpText,omitempty"`
	Options     []string  `json:"options,omitempty"`
}

// Clone returns a deep copy of the field.
func (f Field) Clone() Field {
	out := f
	if f.Options != nil {
		out.Options = append([]string(nil), f.Options...)
	}
	return out
}

// Step groups fields for multi-page forms. Fields holds field ids that must
// reference fields present on the owning form.
type Step struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Fields []string `json:"fields"`
}

// Clone returns a deep copy of the step.
func (s Step) Clone() Step {
	out := s
	if s.Fields != nil {
		out.Fields = append([]string(nil), s.Fields...)
	}
	return out
}

// Form is the editable document the builder assembles. Field ids are unique
// within Fields; insertion order is preserved.
type Form struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Fields      []Field `json:"fields"`
	Steps       []Step  `json:"steps"`
}

// Clone returns a deep copy of the form.
func (f Form) Clone() Form {
	out := f
	if f.Fields != nil {
		out.Fields = make([]Field, len(f.Fields))
		for i, field := range f.Fields {
			out.Fields[i] = field.Clone()
		}
	}
	if f.Steps != nil {
		out.Steps = make([]Step, len(f.Steps))
		for i, step := range f.Steps {
			out.Steps[i] = step.Clone()
		}
	}
	return out
}

// FieldByID returns the field with the given id, if present.
func (f Form) FieldByID(id string) (Field, bool) {
	for _, field := range f.Fields {
		if field.ID == id {
			return field, true
		}
	}
	return Field{}, false
}

// Published is a form snapshot made reachable through a share id. Further
// draft edits do not affect it; re-publishing creates a new snapshot.
type Published struct {
	Form
	ShareID string `json:"shareId"`
}

// ResponseStatus enumerates the lifecycle states of a stored response.
// Completed is the only state a persisted record can carry.
type ResponseStatus string

const ResponseStatusCompleted ResponseStatus = "completed"

// ResponseRecord is one respondent's submitted answers to a published form.
// Records are append-only: once stored they are never mutated or removed.
type ResponseRecord struct {
	ID        string           `json:"id"`
	Timestamp time.Time        `json:"timestamp"`
	FormTitle string           `json:"formTitle"`
	Responses map[string]Value `json:"responses"`
	Status    ResponseStatus   `json:"status"`
}
