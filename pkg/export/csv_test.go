package export_test

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/export"
	"github.com/goliatone/go-formbuilder/pkg/form"
)

func TestWriteCSV(t *testing.T) {
	f := form.Form{
		ID:    "f1",
		Title: "Survey",
		Fields: []form.Field{
			{ID: "1", Type: form.FieldTypeText, Label: "Name"},
			{ID: "2", Type: form.FieldTypeCheckbox, Label: "Toppings", Options: []string{"Cheese", "Olives", "Ham"}},
			{ID: "3", Type: form.FieldTypeTextarea, Label: "Comments"},
		},
	}
	ts := time.Date(2026, 8, 28, 9, 15, 30, 0, time.Local)
	records := []form.ResponseRecord{
		{
			ID: "resp_1", Timestamp: ts, FormTitle: "Survey",
			Responses: map[string]form.Value{
				"1": form.Text("Alice"),
				"2": form.Choices("Cheese", "Olives"),
				"3": form.Text("line one, with a comma"),
			},
			Status: form.ResponseStatusCompleted,
		},
		{
			// A sparse record renders empty cells for unanswered fields.
			ID: "resp_2", Timestamp: ts, FormTitle: "Survey",
			Responses: map[string]form.Value{"1": form.Text("Bob")},
			Status:    form.ResponseStatusCompleted,
		},
	}

	var buf strings.Builder
	if err := export.WriteCSV(&buf, f, records); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}

	want := [][]string{
		{"Timestamp", "Name", "Toppings", "Comments"},
		{"2026-08-28 09:15:30", "Alice", "Cheese, Olives", "line one, with a comma"},
		{"2026-08-28 09:15:30", "Bob", "", ""},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Fatalf("csv mismatch (-want +got):\n%s", diff)
	}

	// The joined multi-value cell contains a comma, so the raw output must
	// quote it.
	if !strings.Contains(buf.String(), `"Cheese, Olives"`) {
		t.Fatalf("multi-value cell not quoted:\n%s", buf.String())
	}
}

func TestWriteCSV_NoRecords(t *testing.T) {
	f := form.Form{
		ID:     "f1",
		Fields: []form.Field{{ID: "1", Type: form.FieldTypeText, Label: "Name"}},
	}

	var buf strings.Builder
	if err := export.WriteCSV(&buf, f, nil); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if got, want := strings.TrimSpace(buf.String()), "Timestamp,Name"; got != want {
		t.Fatalf("header only expected, got %q", got)
	}
}
