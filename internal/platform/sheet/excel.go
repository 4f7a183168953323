// Package sheet reads and writes xlsx workbooks.
package sheet

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ContentType is the MIME type of xlsx workbooks.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ErrEmptyWorkbook is returned when a workbook has no sheets.
var ErrEmptyWorkbook = errors.New("workbook has no sheets")

// Codec reads the first sheet of a workbook and writes single-sheet
// workbooks with a header row.
type Codec interface {
	Read(r io.Reader) ([][]string, error)
	Write(w io.Writer, headers []string, rows [][]any) error
}

// Excel is the excelize-backed Codec.
type Excel struct {
	SheetName string
	ColWidth  float64
}

// NewExcel returns an Excel codec writing sheets with the given name.
func NewExcel(sheetName string) *Excel {
	if sheetName == "" {
		sheetName = "Sheet1"
	}
	return &Excel{SheetName: sheetName, ColWidth: 22}
}

// Read returns the raw cell values of the first sheet. Dates come back as
// Excel serial numbers unless the cell holds text.
func (e *Excel) Read(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("sheet: open: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyWorkbook
	}
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("sheet: rows: %w", err)
	}
	return rows, nil
}

// Write streams headers and rows into a new workbook.
func (e *Excel) Write(w io.Writer, headers []string, rows [][]any) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()
	name := e.SheetName
	if name == "" {
		name = "Sheet1"
	}
	if name != "Sheet1" {
		if err := f.SetSheetName("Sheet1", name); err != nil {
			return fmt.Errorf("sheet: rename: %w", err)
		}
	}
	sw, err := f.NewStreamWriter(name)
	if err != nil {
		return fmt.Errorf("sheet: stream writer: %w", err)
	}
	if len(headers) > 0 && e.ColWidth > 0 {
		if err := sw.SetColWidth(1, len(headers), e.ColWidth); err != nil {
			return fmt.Errorf("sheet: col width: %w", err)
		}
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"1F4E78"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("sheet: header style: %w", err)
	}
	headerRow := make([]any, len(headers))
	for i, h := range headers {
		headerRow[i] = excelize.Cell{StyleID: headerStyle, Value: h}
	}
	if err := sw.SetRow("A1", headerRow); err != nil {
		return fmt.Errorf("sheet: header: %w", err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("sheet: row %d: %w", i+2, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("sheet: flush: %w", err)
	}
	return f.Write(w)
}
