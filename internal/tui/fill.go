package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-formbuilder/pkg/collect"
	"github.com/goliatone/go-formbuilder/pkg/form"
)

// Filler walks a fill session through the terminal: one prompt per field,
// then submit, re-prompting any fields that fail validation.
type Filler struct {
	driver PromptDriver
}

// NewFiller builds a Filler over the given prompt driver.
func NewFiller(driver PromptDriver) *Filler {
	return &Filler{driver: driver}
}

// Run prompts for every field of the session's form and submits. Fields that
// fail validation are prompted again until the submission passes or the user
// aborts.
func (f *Filler) Run(ctx context.Context, session *collect.Session) (form.ResponseRecord, error) {
	published := session.Form()

	if published.Description != "" {
		if err := f.driver.Info(ctx, published.Description); err != nil {
			return form.ResponseRecord{}, err
		}
	}

	for _, field := range published.Fields {
		if err := f.promptField(ctx, session, field); err != nil {
			return form.ResponseRecord{}, err
		}
	}

	for {
		rec, err := session.Submit(ctx)
		if err == nil {
			return rec, nil
		}

		var verr *collect.ValidationError
		if !errors.As(err, &verr) {
			return form.ResponseRecord{}, err
		}
		for _, field := range published.Fields {
			fieldErr, failed := verr.Fields[field.ID]
			if !failed {
				continue
			}
			if err := f.driver.Info(ctx, fmt.Sprintf("✗ %s", fieldErr)); err != nil {
				return form.ResponseRecord{}, err
			}
			if err := f.promptField(ctx, session, field); err != nil {
				return form.ResponseRecord{}, err
			}
		}
	}
}

func (f *Filler) promptField(ctx context.Context, session *collect.Session, field form.Field) error {
	message := field.Label
	if field.Required {
		message += " *"
	}

	current := session.Values()[field.ID]

	var (
		value form.Value
		err   error
	)
	switch field.Type {
	case form.FieldTypeTextarea:
		var text string
		text, err = f.driver.TextArea(ctx, TextAreaConfig{
			Message: message,
			Default: current.String(),
			Help:    field.HelpText,
		})
		value = form.Text(text)
	case form.FieldTypeSelect, form.FieldTypeRadio:
		var choice string
		choice, err = f.driver.Select(ctx, SelectConfig{
			Message:  message,
			Options:  field.Options,
			Defaults: defaultChoice(current),
			Help:     field.HelpText,
		})
		value = form.Text(choice)
	case form.FieldTypeCheckbox:
		var choices []string
		choices, err = f.driver.MultiSelect(ctx, SelectConfig{
			Message:  message,
			Options:  field.Options,
			Defaults: current.List(),
			Help:     field.HelpText,
		})
		value = form.Choices(choices...)
	default:
		var text string
		text, err = f.driver.Input(ctx, InputConfig{
			Message:     message,
			Default:     current.String(),
			Help:        field.HelpText,
			Placeholder: field.Placeholder,
			Validator: func(s string) error {
				return form.Validate(field, form.Text(s))
			},
		})
		value = form.Text(text)
	}
	if err != nil {
		return err
	}
	return session.SetValue(ctx, field.ID, value)
}

func defaultChoice(v form.Value) []string {
	if v.IsEmpty() {
		return nil
	}
	return []string{v.String()}
}
