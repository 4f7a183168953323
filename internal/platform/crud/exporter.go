package crud

import (
	"fmt"
	"io"

	"github.com/shareregistry/backoffice/internal/platform/sheet"
)

// Exporter writes records as a spreadsheet with a fixed column map.
type Exporter[T Record] struct {
	columns []Column
	sheets  sheet.Codec
}

// NewExporter builds an Exporter.
func NewExporter[T Record](columns []Column, sheets sheet.Codec) *Exporter[T] {
	return &Exporter[T]{columns: columns, sheets: sheets}
}

// Write renders items in order, one row each, below a header row.
func (e *Exporter[T]) Write(w io.Writer, items []T) error {
	rows := make([][]any, 0, len(items))
	for _, it := range items {
		row, err := encodeRow(e.columns, it)
		if err != nil {
			return fmt.Errorf("export: record %d: %w", it.RecordID(), err)
		}
		rows = append(rows, row)
	}
	return e.sheets.Write(w, Headers(e.columns), rows)
}
