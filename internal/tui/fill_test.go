package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-formbuilder/pkg/collect"
	"github.com/goliatone/go-formbuilder/pkg/form"
	"github.com/goliatone/go-formbuilder/pkg/storage"
)

// scriptedDriver replays canned answers, recording every prompt it serves.
type scriptedDriver struct {
	inputs   []string
	selects  []string
	multis   [][]string
	texts    []string
	messages []string
}

func (d *scriptedDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	d.messages = append(d.messages, cfg.Message)
	out := d.inputs[0]
	d.inputs = d.inputs[1:]
	return out, nil
}

func (d *scriptedDriver) Select(_ context.Context, cfg SelectConfig) (string, error) {
	d.messages = append(d.messages, cfg.Message)
	out := d.selects[0]
	d.selects = d.selects[1:]
	return out, nil
}

func (d *scriptedDriver) MultiSelect(_ context.Context, cfg SelectConfig) ([]string, error) {
	d.messages = append(d.messages, cfg.Message)
	out := d.multis[0]
	d.multis = d.multis[1:]
	return out, nil
}

func (d *scriptedDriver) Confirm(context.Context, ConfirmConfig) (bool, error) {
	return true, nil
}

func (d *scriptedDriver) TextArea(_ context.Context, cfg TextAreaConfig) (string, error) {
	d.messages = append(d.messages, cfg.Message)
	out := d.texts[0]
	d.texts = d.texts[1:]
	return out, nil
}

func (d *scriptedDriver) Info(_ context.Context, msg string) error {
	d.messages = append(d.messages, msg)
	return nil
}

func testPublished() form.Published {
	return form.Published{
		ShareID: "form_fill12345",
		Form: form.Form{
			ID:          "f1",
			Title:       "Order",
			Description: "Tell us what you want",
			Fields: []form.Field{
				{ID: "1", Type: form.FieldTypeText, Label: "Name", Required: true},
				{ID: "2", Type: form.FieldTypeSelect, Label: "Size", Required: true, Options: []string{"S", "M", "L"}},
				{ID: "3", Type: form.FieldTypeCheckbox, Label: "Extras", Options: []string{"Bag", "Receipt"}},
				{ID: "4", Type: form.FieldTypeTextarea, Label: "Notes"},
			},
		},
	}
}

func TestFiller_Run(t *testing.T) {
	ctx := context.Background()
	store := storage.NewStore(storage.NewMemory())
	session := collect.NewSession(store, testPublished())
	defer session.Close()

	driver := &scriptedDriver{
		inputs:  []string{"Alice"},
		selects: []string{"M"},
		multis:  [][]string{{"Bag", "Receipt"}},
		texts:   []string{"ring twice"},
	}

	rec, err := NewFiller(driver).Run(ctx, session)
	require.NoError(t, err)

	assert.True(t, rec.Responses["1"].Equal(form.Text("Alice")))
	assert.True(t, rec.Responses["2"].Equal(form.Text("M")))
	assert.True(t, rec.Responses["3"].Equal(form.Choices("Bag", "Receipt")))
	assert.True(t, rec.Responses["4"].Equal(form.Text("ring twice")))
	assert.Equal(t, collect.PhaseSubmitted, session.Phase())

	// Description prints first; required fields carry the marker.
	require.NotEmpty(t, driver.messages)
	assert.Equal(t, "Tell us what you want", driver.messages[0])
	assert.Contains(t, driver.messages, "Name *")
	assert.Contains(t, driver.messages, "Notes")
}

func TestFiller_RepromptsFailedFields(t *testing.T) {
	ctx := context.Background()
	store := storage.NewStore(storage.NewMemory())
	session := collect.NewSession(store, testPublished())
	defer session.Close()

	// The first pass leaves the required select empty, so submit fails and
	// only that field is prompted again.
	driver := &scriptedDriver{
		inputs:  []string{"Alice"},
		selects: []string{"", "L"},
		multis:  [][]string{nil},
		texts:   []string{""},
	}

	rec, err := NewFiller(driver).Run(ctx, session)
	require.NoError(t, err)
	assert.True(t, rec.Responses["2"].Equal(form.Text("L")))

	records, err := store.Responses(ctx, "form_fill12345")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
