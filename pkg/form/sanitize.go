package form

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

func plainTextPolicy() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}

func sanitizeText(raw string) string {
	return strings.TrimSpace(plainTextPolicy().Sanitize(raw))
}

// Sanitize strips HTML markup from every piece of authored text on the form:
// title, description, field labels, placeholders, help text and option
// labels. Published snapshots pass through here so a shared form never
// carries markup into a filler surface.
func Sanitize(f Form) Form {
	out := f.Clone()
	out.Title = sanitizeText(out.Title)
	out.Description = sanitizeText(out.Description)
	for i := range out.Fields {
		out.Fields[i].Label = sanitizeText(out.Fields[i].Label)
		out.Fields[i].Placeholder = sanitizeText(out.Fields[i].Placeholder)
		out.Fields[i].HelpText = sanitizeText(out.Fields[i].HelpText)
		for j, option := range out.Fields[i].Options {
			out.Fields[i].Options[j] = sanitizeText(option)
		}
	}
	for i := range out.Steps {
		out.Steps[i].Name = sanitizeText(out.Steps[i].Name)
	}
	return out
}
