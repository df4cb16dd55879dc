package form

import "fmt"

// TypeInfo describes how a field kind presents in the builder palette:
// a display label, the default label stamped on a freshly dropped field, and
// the default option set for option-carrying kinds.
type TypeInfo struct {
	Label          string
	DefaultLabel   string
	DefaultOptions []string
}

// defaultOptions seeds select, checkbox and radio fields so a dropped field
// is immediately fillable.
func defaultOptions() []string {
	return []string{"Option 1", "Option 2", "Option 3"}
}

// Lookup resolves a field type tag against the closed catalog. Adding a kind
// means extending this switch, the Validate switch, and the FieldTypes list;
// the compiler and tests keep the three in step. Unknown tags fail with
// ErrUnknownFieldType rather than rendering nothing.
func Lookup(t FieldType) (TypeInfo, error) {
	switch t {
	case FieldTypeText:
		return TypeInfo{Label: "Text Input", DefaultLabel: "Text Field"}, nil
	case FieldTypeTextarea:
		return TypeInfo{Label: "Text Area", DefaultLabel: "Text Area"}, nil
	case FieldTypeSelect:
		return TypeInfo{Label: "Select", DefaultLabel: "Select Field", DefaultOptions: defaultOptions()}, nil
	case FieldTypeCheckbox:
		return TypeInfo{Label: "Checkbox", DefaultLabel: "Checkbox Group", DefaultOptions: defaultOptions()}, nil
	case FieldTypeRadio:
		return TypeInfo{Label: "Radio Button", DefaultLabel: "Radio Group", DefaultOptions: defaultOptions()}, nil
	case FieldTypeDate:
		return TypeInfo{Label: "Date Picker", DefaultLabel: "Date Field"}, nil
	case FieldTypeEmail:
		return TypeInfo{Label: "Email", DefaultLabel: "Email Field"}, nil
	case FieldTypePhone:
		return TypeInfo{Label: "Phone", DefaultLabel: "Phone Field"}, nil
	case FieldTypeNumber:
		return TypeInfo{Label: "Number", DefaultLabel: "Number Field"}, nil
	default:
		return TypeInfo{}, fmt.Errorf("%w: %q", ErrUnknownFieldType, t)
	}
}

// FieldTypes returns the catalog in palette order.
func FieldTypes() []FieldType {
	return []FieldType{
		FieldTypeText,
		FieldTypeTextarea,
		FieldTypeSelect,
		FieldTypeCheckbox,
		FieldTypeRadio,
		FieldTypeDate,
		FieldTypeEmail,
		FieldTypePhone,
		FieldTypeNumber,
	}
}

// HasOptions reports whether the field kind carries an option list.
func HasOptions(t FieldType) bool {
	switch t {
	case FieldTypeSelect, FieldTypeCheckbox, FieldTypeRadio:
		return true
	default:
		return false
	}
}

// NewField builds a palette-default field of the given type: default label,
// not required, empty placeholder, and the catalog's default options for
// option-carrying kinds.
func NewField(id string, t FieldType) (Field, error) {
	info, err := Lookup(t)
	if err != nil {
		return Field{}, err
	}
	return Field{
		ID:      id,
		Type:    t,
		Label:   info.DefaultLabel,
		Options: info.DefaultOptions,
	}, nil
}
