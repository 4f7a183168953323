package crud

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shareregistry/backoffice/internal/platform/httpx"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		raw  string
		want any
	}{
		{"string kept", KindString, "  INE001A01036 ", "INE001A01036"},
		{"int", KindInt, "42", int64(42)},
		{"int from whole float", KindInt, "42.0", int64(42)},
		{"float with commas", KindFloat, "1,25,000.50", 125000.5},
		{"bool yes", KindBool, "Yes", true},
		{"bool zero", KindBool, "0", false},
		{"iso date", KindDate, "2024-03-31", "2024-03-31T00:00:00Z"},
		{"indian date", KindDate, "31/03/2024", "2024-03-31T00:00:00Z"},
		{"month name date", KindDate, "31-Mar-2024", "2024-03-31T00:00:00Z"},
		{"excel serial date", KindDate, "45382", "2024-03-31T00:00:00Z"},
		{"id list", KindIDList, "12_x_7_12", []int64{12, 7}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := coerce(tc.kind, tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCoerceRejects(t *testing.T) {
	for kind, raw := range map[Kind]string{
		KindInt:   "4.5",
		KindFloat: "abc",
		KindBool:  "maybe",
		KindDate:  "31st March",
	} {
		_, err := coerce(kind, raw)
		assert.Error(t, err, raw)
	}
}

type rowPayload struct {
	Name     string     `json:"name"`
	Shares   int64      `json:"shares"`
	Price    float64    `json:"price"`
	Active   bool       `json:"active"`
	Date     *time.Time `json:"date"`
	FolioIDs []int64    `json:"folioIDs"`
}

var rowColumns = []Column{
	{Key: "name", Header: "Name"},
	{Key: "shares", Header: "Shares", Kind: KindInt},
	{Key: "price", Header: "Price", Kind: KindFloat},
	{Key: "active", Header: "Active", Kind: KindBool},
	{Key: "date", Header: "Date", Kind: KindDate},
	{Key: "folioIDs", Header: "Folio IDs", Kind: KindIDList},
}

func TestDecodeRow(t *testing.T) {
	index := map[string]int{"name": 5, "shares": 4, "price": 3, "active": 2, "date": 1, "folioIDs": 0}
	p, err := decodeRow[rowPayload](rowColumns, index, []string{"3_5", "2024-01-15", "y", "10.5", "100", "Asha"})
	require.NoError(t, err)
	assert.Equal(t, "Asha", p.Name)
	assert.Equal(t, int64(100), p.Shares)
	assert.Equal(t, 10.5, p.Price)
	assert.True(t, p.Active)
	require.NotNil(t, p.Date)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), p.Date.UTC())
	assert.Equal(t, []int64{3, 5}, p.FolioIDs)
}

func TestDecodeRowMissingCellsStayUnset(t *testing.T) {
	p, err := decodeRow[rowPayload](rowColumns, map[string]int{"name": 0, "shares": 1}, []string{"Asha"})
	require.NoError(t, err)
	assert.Equal(t, "Asha", p.Name)
	assert.Zero(t, p.Shares)
	assert.Nil(t, p.Date)
}

func TestDecodeRowCollectsCoercionErrors(t *testing.T) {
	_, err := decodeRow[rowPayload](rowColumns, map[string]int{"shares": 0, "date": 1}, []string{"many", "someday"})
	require.Error(t, err)
	var verr *httpx.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 2)
	assert.Equal(t, "shares", verr.Fields[0].Field)
	assert.Equal(t, "date", verr.Fields[1].Field)
}

type rowRecord struct {
	ID int64 `json:"id"`
	rowPayload
}

func (r rowRecord) RecordID() int64 { return r.ID }

func TestEncodeRow(t *testing.T) {
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	rec := rowRecord{ID: 1, rowPayload: rowPayload{Name: "Asha", Shares: 100, Price: 10.5, Active: true, Date: &date, FolioIDs: []int64{3, 5}}}
	got, err := encodeRow(rowColumns, rec)
	require.NoError(t, err)
	assert.Equal(t, []any{"Asha", int64(100), 10.5, "Yes", "2024-01-15", "3_5"}, got)

	got, err = encodeRow(rowColumns, rowRecord{ID: 2})
	require.NoError(t, err)
	assert.Equal(t, []any{"", int64(0), int64(0), "No", "", ""}, got)
}
