package crud

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/shareregistry/backoffice/internal/platform/httpx"
)

// Kind controls how a spreadsheet cell is coerced on import and formatted
// on export.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindDate
	KindIDList
)

// Column maps a JSON field of the payload/record onto a spreadsheet header.
type Column struct {
	Key    string
	Header string
	Kind   Kind
}

// Headers returns the header row for columns.
func Headers(columns []Column) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = c.Header
	}
	return out
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"02-01-2006",
	"02/01/2006",
	"2006/01/02",
	"02-Jan-2006",
}

// coerce converts a raw cell into the JSON value the payload expects.
func coerce(kind Kind, raw string) (any, error) {
	raw = strings.TrimSpace(raw)
	switch kind {
	case KindInt:
		if f, err := strconv.ParseFloat(raw, 64); err == nil && f == math.Trunc(f) {
			return int64(f), nil
		}
		return nil, fmt.Errorf("must be an integer")
	case KindFloat:
		f, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
		if err != nil {
			return nil, fmt.Errorf("must be a number")
		}
		return f, nil
	case KindBool:
		switch strings.ToLower(raw) {
		case "true", "yes", "y", "1":
			return true, nil
		case "false", "no", "n", "0":
			return false, nil
		}
		return nil, fmt.Errorf("must be yes or no")
	case KindDate:
		t, err := parseDate(raw)
		if err != nil {
			return nil, err
		}
		return t.Format(time.RFC3339), nil
	case KindIDList:
		return ParseIDList(raw), nil
	default:
		return raw, nil
	}
}

func parseDate(raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	if serial, err := strconv.ParseFloat(raw, 64); err == nil && serial > 0 {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("must be a date (YYYY-MM-DD)")
}

// decodeRow turns one spreadsheet row into a payload. index maps a column
// key to its cell position; keys absent from the sheet stay unset.
func decodeRow[P any](columns []Column, index map[string]int, cells []string) (P, error) {
	var payload P
	values := make(map[string]any, len(columns))
	verr := &httpx.ValidationError{}
	for _, col := range columns {
		pos, ok := index[col.Key]
		if !ok || pos >= len(cells) || strings.TrimSpace(cells[pos]) == "" {
			continue
		}
		v, err := coerce(col.Kind, cells[pos])
		if err != nil {
			verr.Fields = append(verr.Fields, httpx.FieldError{Field: col.Key, Message: err.Error()})
			continue
		}
		values[col.Key] = v
	}
	if len(verr.Fields) > 0 {
		return payload, verr
	}
	data, err := json.Marshal(values)
	if err != nil {
		return payload, err
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return payload, fmt.Errorf("%w: %v", httpx.ErrValidation, err)
	}
	return payload, nil
}

// encodeRow renders a record as one spreadsheet row using its JSON form.
func encodeRow(columns []Column, rec any) ([]any, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return nil, err
	}
	row := make([]any, len(columns))
	for i, col := range columns {
		row[i] = formatCell(col.Kind, fields[col.Key])
	}
	return row, nil
}

func formatCell(kind Kind, v any) any {
	switch val := v.(type) {
	case nil:
		return ""
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case bool:
		if val {
			return "Yes"
		}
		return "No"
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, IDListSeparator)
	case string:
		if kind == KindDate {
			if t, err := time.Parse(time.RFC3339, val); err == nil {
				return t.Format("2006-01-02")
			}
		}
		return val
	default:
		return fmt.Sprint(val)
	}
}
