// Package openapi seeds builder fields from OpenAPI documents: a component
// schema's properties become a flat field list ready for the document
// reducer or the template store.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formbuilder/pkg/form"
	"github.com/goliatone/go-formbuilder/pkg/template"
)

var (
	// ErrSchemaNotFound reports a component schema name absent from the
	// document.
	ErrSchemaNotFound = errors.New("openapi: schema not found")
	// ErrSchemaAmbiguous reports an omitted schema name against a document
	// with more than one component schema.
	ErrSchemaAmbiguous = errors.New("openapi: schema name required when the document defines several")
)

// Importer converts OpenAPI component schemas into builder fields.
type Importer struct {
	validate bool
}

// Option customises an Importer.
type Option func(*Importer)

// WithValidation validates the document before conversion.
func WithValidation() Option {
	return func(i *Importer) {
		i.validate = true
	}
}

// New constructs an Importer.
func New(options ...Option) *Importer {
	i := &Importer{}
	for _, opt := range options {
		if opt != nil {
			opt(i)
		}
	}
	return i
}

// Fields converts the named component schema of the document into a field
// list: one field per property in sorted property order, required flags
// taken from the schema's required list. When name is empty the document
// must define exactly one component schema.
func (i *Importer) Fields(ctx context.Context, data []byte, name string) ([]form.Field, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if i.validate {
		if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi: validate: %w", err)
		}
	}

	schema, err := pickSchema(doc, name)
	if err != nil {
		return nil, err
	}
	return convertProperties(schema)
}

// Template converts the named component schema into a template seed whose
// name is the humanized schema name.
func (i *Importer) Template(ctx context.Context, data []byte, name string) (template.Template, error) {
	fields, err := i.Fields(ctx, data, name)
	if err != nil {
		return template.Template{}, err
	}
	display := humanize(name)
	return template.Template{
		Key:    template.Slugify(display),
		Name:   display,
		Fields: fields,
	}, nil
}

func pickSchema(doc *openapi3.T, name string) (*openapi3.Schema, error) {
	if doc.Components == nil || len(doc.Components.Schemas) == 0 {
		return nil, fmt.Errorf("%w: document has no component schemas", ErrSchemaNotFound)
	}
	schemas := doc.Components.Schemas

	if name == "" {
		if len(schemas) > 1 {
			return nil, ErrSchemaAmbiguous
		}
		for _, ref := range schemas {
			if ref == nil || ref.Value == nil {
				return nil, fmt.Errorf("%w: unresolved schema reference", ErrSchemaNotFound)
			}
			return ref.Value, nil
		}
	}

	ref, ok := schemas[name]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("%w: %q", ErrSchemaNotFound, name)
	}
	return ref.Value, nil
}

func convertProperties(schema *openapi3.Schema) ([]form.Field, error) {
	if len(schema.Properties) == 0 {
		return nil, errors.New("openapi: schema has no properties")
	}

	required := make(map[string]struct{}, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = struct{}{}
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]form.Field, 0, len(names))
	for _, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		field := convertProperty(name, ref.Value)
		if _, ok := required[name]; ok {
			field.Required = true
		}
		fields = append(fields, field)
	}
	return fields, nil
}

// convertProperty maps one schema property onto the closest field kind:
// enums become selects, arrays of enums become checkbox groups, booleans
// become yes/no radios, numeric types become number inputs, and string
// formats pick email, phone or date inputs where they apply.
func convertProperty(name string, schema *openapi3.Schema) form.Field {
	field := form.Field{
		ID:       name,
		Label:    humanize(name),
		HelpText: strings.TrimSpace(schema.Description),
	}

	switch {
	case schemaType(schema) == "array":
		field.Type = form.FieldTypeCheckbox
		field.Options = itemOptions(schema)
	case len(schema.Enum) > 0:
		field.Type = form.FieldTypeSelect
		field.Options = enumOptions(schema.Enum)
	case schemaType(schema) == "boolean":
		field.Type = form.FieldTypeRadio
		field.Options = []string{"Yes", "No"}
	case schemaType(schema) == "integer", schemaType(schema) == "number":
		field.Type = form.FieldTypeNumber
	default:
		field.Type = stringFieldType(schema.Format)
	}

	if form.HasOptions(field.Type) && field.Options == nil {
		field.Options = []string{}
	}
	return field
}

func stringFieldType(format string) form.FieldType {
	switch format {
	case "email":
		return form.FieldTypeEmail
	case "phone", "tel":
		return form.FieldTypePhone
	case "date", "date-time":
		return form.FieldTypeDate
	case "textarea":
		return form.FieldTypeTextarea
	default:
		return form.FieldTypeText
	}
}

func schemaType(schema *openapi3.Schema) string {
	if schema.Type == nil {
		return ""
	}
	values := schema.Type.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func itemOptions(schema *openapi3.Schema) []string {
	if schema.Items == nil || schema.Items.Value == nil {
		return nil
	}
	return enumOptions(schema.Items.Value.Enum)
}

func enumOptions(enum []any) []string {
	if len(enum) == 0 {
		return nil
	}
	out := make([]string, 0, len(enum))
	for _, v := range enum {
		out = append(out, fmt.Sprint(v))
	}
	return out
}

// humanize renders a camelCase or snake_case property name as a label,
// e.g. "favoriteFoods" -> "Favorite Foods", "first_name" -> "First Name".
func humanize(name string) string {
	if name == "" {
		return name
	}

	var words []string
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	for _, r := range name {
		switch {
		case r == '_' || r == '-' || r == ' ':
			flush()
		case unicode.IsUpper(r):
			flush()
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	flush()

	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
