package template

import "github.com/goliatone/go-formbuilder/pkg/form"

// builtinTemplates returns the seed catalog every store starts with.
func builtinTemplates() map[string]Template {
	return map[string]Template{
		"contact": {
			Key:  "contact",
			Name: "Contact Us",
			Fields: []form.Field{
				{ID: "1", Type: form.FieldTypeText, Label: "Full Name", Required: true, Placeholder: "Enter your name"},
				{ID: "2", Type: form.FieldTypeEmail, Label: "Email", Required: true, Placeholder: "your@email.com"},
				{ID: "3", Type: form.FieldTypePhone, Label: "Phone", Placeholder: "+1 (555) 123-4567"},
				{ID: "4", Type: form.FieldTypeTextarea, Label: "Message", Required: true, Placeholder: "Your message here..."},
			},
		},
		"survey": {
			Key:  "survey",
			Name: "Customer Survey",
			Fields: []form.Field{
				{ID: "1", Type: form.FieldTypeText, Label: "Name", Required: true},
				{ID: "2", Type: form.FieldTypeSelect, Label: "Satisfaction", Required: true, Options: []string{"Excellent", "Good", "Fair", "Poor"}},
				{ID: "3", Type: form.FieldTypeRadio, Label: "Recommend?", Required: true, Options: []string{"Yes", "No", "Maybe"}},
				{ID: "4", Type: form.FieldTypeTextarea, Label: "Comments"},
			},
		},
	}
}
