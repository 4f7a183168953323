package crud

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/shareregistry/backoffice/internal/platform/sheet"
	"github.com/shareregistry/backoffice/internal/platform/storage"
)

// Import outcomes reported to the ImportObserver.
const (
	OutcomeImported = "imported"
	OutcomeFailed   = "failed"
)

// ErrorHeader is the extra column of a failure report.
const ErrorHeader = "Error"

// ImportObserver receives one call per processed row.
type ImportObserver interface {
	ObserveImportRow(module, outcome string)
}

// ImportResult summarises one import run.
type ImportResult struct {
	SuccessCount int    `json:"successCount"`
	ErrorCount   int    `json:"errorCount"`
	FileName     string `json:"fileName,omitempty"`
}

// Importer creates records from spreadsheet rows, one row at a time.
type Importer[T Record, P any] struct {
	module   string
	service  *Service[T, P]
	columns  []Column
	sheets   sheet.Codec
	files    storage.Store
	logger   *slog.Logger
	observer ImportObserver
}

// NewImporter builds an Importer. observer may be nil.
func NewImporter[T Record, P any](module string, service *Service[T, P], columns []Column, sheets sheet.Codec, files storage.Store, logger *slog.Logger, observer ImportObserver) *Importer[T, P] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer[T, P]{
		module:   module,
		service:  service,
		columns:  columns,
		sheets:   sheets,
		files:    files,
		logger:   logger,
		observer: observer,
	}
}

type failedRow struct {
	cells []string
	err   string
}

// Import reads the workbook, skips the header row and creates one record
// per non-blank row. A failing row never stops the rows after it. When any
// row fails, a report of the failed rows and their errors is saved and its
// name returned in the result.
func (im *Importer[T, P]) Import(ctx context.Context, r io.Reader) (ImportResult, error) {
	rows, err := im.sheets.Read(r)
	if err != nil {
		return ImportResult{}, fmt.Errorf("%s import: %w", im.module, err)
	}
	var result ImportResult
	if len(rows) == 0 {
		return result, nil
	}
	index := im.headerIndex(rows[0])
	var failed []failedRow

	for _, cells := range rows[1:] {
		if blank(cells) {
			continue
		}
		if err := im.importRow(ctx, index, cells); err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			result.ErrorCount++
			failed = append(failed, failedRow{cells: im.ordered(index, cells), err: err.Error()})
			im.observe(OutcomeFailed)
			continue
		}
		result.SuccessCount++
		im.observe(OutcomeImported)
	}

	if len(failed) > 0 {
		name, err := im.saveReport(failed)
		if err != nil {
			return result, err
		}
		result.FileName = name
	}
	im.logger.Info("import finished",
		slog.String("module", im.module),
		slog.Int("success", result.SuccessCount),
		slog.Int("errors", result.ErrorCount),
		slog.String("report", result.FileName),
	)
	return result, nil
}

func (im *Importer[T, P]) importRow(ctx context.Context, index map[string]int, cells []string) error {
	payload, err := decodeRow[P](im.columns, index, cells)
	if err != nil {
		return err
	}
	_, err = im.service.Create(ctx, payload)
	return err
}

// headerIndex matches header cells to columns by header text, ignoring case
// and surrounding space, so sheets may reorder or omit columns.
func (im *Importer[T, P]) headerIndex(header []string) map[string]int {
	byHeader := make(map[string]string, len(im.columns))
	for _, c := range im.columns {
		byHeader[normalizeHeader(c.Header)] = c.Key
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		if key, ok := byHeader[normalizeHeader(h)]; ok {
			if _, dup := index[key]; !dup {
				index[key] = i
			}
		}
	}
	return index
}

// ordered lays the row out in column order so the failure report lines up
// with its own header.
func (im *Importer[T, P]) ordered(index map[string]int, cells []string) []string {
	out := make([]string, len(im.columns))
	for i, c := range im.columns {
		if pos, ok := index[c.Key]; ok && pos < len(cells) {
			out[i] = cells[pos]
		}
	}
	return out
}

func (im *Importer[T, P]) saveReport(failed []failedRow) (string, error) {
	if im.files == nil {
		return "", errors.New("import: no file storage configured for failure report")
	}
	headers := append(Headers(im.columns), ErrorHeader)
	rows := make([][]any, len(failed))
	for i, f := range failed {
		row := make([]any, 0, len(f.cells)+1)
		for _, c := range f.cells {
			row = append(row, c)
		}
		rows[i] = append(row, f.err)
	}
	var buf bytes.Buffer
	if err := im.sheets.Write(&buf, headers, rows); err != nil {
		return "", fmt.Errorf("import: write failure report: %w", err)
	}
	name := storage.NewName(im.module+"-import-errors", ".xlsx")
	if err := im.files.Save(name, &buf); err != nil {
		return "", fmt.Errorf("import: save failure report: %w", err)
	}
	return name, nil
}

func (im *Importer[T, P]) observe(outcome string) {
	if im.observer != nil {
		im.observer.ObserveImportRow(im.module, outcome)
	}
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.Join(strings.Fields(h), " "))
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
