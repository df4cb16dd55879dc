// Package export renders collected responses for download: CSV with a
// Timestamp column followed by one column per field in form order.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/goliatone/go-formbuilder/pkg/form"
)

// timestampLayout is the human-readable local-time format used for the
// first CSV column.
const timestampLayout = "2006-01-02 15:04:05"

// WriteCSV writes the response records for a form as CSV: header row of
// "Timestamp" plus the field labels in form order, then one row per record.
// Multi-value responses are joined with ", "; missing answers render as
// empty cells. Quoting follows RFC 4180 (cells containing commas, such as
// joined multi-value answers, come out quoted).
func WriteCSV(w io.Writer, f form.Form, records []form.ResponseRecord) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(f.Fields)+1)
	header = append(header, "Timestamp")
	for _, field := range f.Fields {
		header = append(header, field.Label)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}

	for _, rec := range records {
		row := make([]string, 0, len(header))
		row = append(row, rec.Timestamp.Local().Format(timestampLayout))
		for _, field := range f.Fields {
			row = append(row, rec.Responses[field.ID].String())
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export: write record %s: %w", rec.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: flush: %w", err)
	}
	return nil
}
