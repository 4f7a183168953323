package registry_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shareregistry/backoffice/internal/masterdata/folios"
	"github.com/shareregistry/backoffice/internal/platform/crud"
	"github.com/shareregistry/backoffice/internal/platform/sheet"
	"github.com/shareregistry/backoffice/internal/registry"
	"github.com/shareregistry/backoffice/internal/registry/registrytest"
	"github.com/shareregistry/backoffice/internal/tracker/communication"
)

type envelope struct {
	Code    int             `json:"code"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newServer(t *testing.T) (*registry.Registry, http.Handler) {
	t.Helper()
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	reg := registry.New(registrytest.Stores(), crud.HandlerDeps{Sheets: sheet.NewExcel("")}, registry.Options{
		Now: func() time.Time { return now },
	})
	r := chi.NewRouter()
	for _, m := range reg.Routes() {
		r.Route(m.Prefix(), m.MountRoutes)
	}
	return reg, r
}

func call(t *testing.T, h http.Handler, method, path string, body any) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func TestShareCertificateScenario(t *testing.T) {
	_, srv := newServer(t)

	code, _ := call(t, srv, http.MethodPost, "/project/create", map[string]any{"name": "Estate of R. Mehta"})
	require.Equal(t, http.StatusCreated, code)
	code, _ = call(t, srv, http.MethodPost, "/company-master/create", map[string]any{"name": "Acme Industries Ltd", "isin": "INE001A01036"})
	require.Equal(t, http.StatusCreated, code)

	code, env := call(t, srv, http.MethodPost, "/share-certificate-master/create/1", map[string]any{
		"companyID":      1,
		"instrumentType": "EQUITY",
		"faceValue":      10,
	})
	require.Equal(t, http.StatusCreated, code)
	var created struct {
		ID             int64  `json:"id"`
		InstrumentType string `json:"instrumentType"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "EQUITY", created.InstrumentType)

	type detail struct {
		InstrumentType string `json:"instrumentType"`
		CompanyMaster  struct {
			Name                     string `json:"name"`
			CurrentNameChangeMasters *struct {
				NewName string `json:"newName"`
			} `json:"currentNameChangeMasters"`
		} `json:"companyMaster"`
	}

	code, env = call(t, srv, http.MethodGet, "/share-certificate-master/1", nil)
	require.Equal(t, http.StatusOK, code)
	var got detail
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "EQUITY", got.InstrumentType)
	assert.Equal(t, "Acme Industries Ltd", got.CompanyMaster.Name)
	assert.Nil(t, got.CompanyMaster.CurrentNameChangeMasters)

	for _, change := range []map[string]any{
		{"previousName": "Acme Mills", "newName": "Acme Textiles", "effectiveDate": "2010-04-01T00:00:00Z"},
		{"previousName": "Acme Textiles", "newName": "Acme Industries Ltd", "effectiveDate": "2018-09-15T00:00:00Z"},
	} {
		code, _ = call(t, srv, http.MethodPost, "/company-name-change/create/1", change)
		require.Equal(t, http.StatusCreated, code)
	}
	code, env = call(t, srv, http.MethodGet, "/share-certificate-master/1", nil)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.NotNil(t, got.CompanyMaster.CurrentNameChangeMasters)
	assert.Equal(t, "Acme Industries Ltd", got.CompanyMaster.CurrentNameChangeMasters.NewName)

	code, _ = call(t, srv, http.MethodPost, "/share-certificate-master/create/1", map[string]any{
		"companyID":      9,
		"instrumentType": "EQUITY",
	})
	assert.Equal(t, http.StatusNotFound, code)
}

func TestCertificateListValuation(t *testing.T) {
	_, srv := newServer(t)
	steps := []struct {
		path string
		body map[string]any
	}{
		{"/project/create", map[string]any{"name": "P"}},
		{"/company-master/create", map[string]any{"name": "Acme"}},
		{"/share-certificate-master/create/1", map[string]any{"companyID": 1, "instrumentType": "EQUITY"}},
		{"/folio/create/1", map[string]any{"folioNumber": "F-1", "holderName": "Asha", "shares": 100}},
		{"/folio/create/1", map[string]any{"folioNumber": "F-2", "holderName": "Ravi", "shares": 50, "holdingDate": "2021-01-01T00:00:00Z"}},
		{"/corporate-master/create/1", map[string]any{"actionType": "BONUS", "actionDate": "2020-06-01T00:00:00Z", "numerator": 1, "denominator": 1}},
		{"/corporate-master/create/1", map[string]any{"actionType": "SPLIT", "actionDate": "2022-06-01T00:00:00Z", "numerator": 2, "denominator": 1}},
		{"/corporate-master/create/1", map[string]any{"actionType": "BONUS", "actionDate": "2030-01-01T00:00:00Z", "numerator": 1, "denominator": 1}},
		{"/company-price/create/1", map[string]any{"priceDate": "2025-05-30T00:00:00Z", "nseClose": 10.5}},
		{"/company-price/create/1", map[string]any{"priceDate": "2024-01-01T00:00:00Z", "nseClose": 99, "bseClose": 99}},
	}
	for _, s := range steps {
		code, env := call(t, srv, http.MethodPost, s.path, s.body)
		require.Equal(t, http.StatusCreated, code, "%s: %s", s.path, env.Message)
	}

	code, env := call(t, srv, http.MethodGet, "/share-certificate-master/list/1", nil)
	require.Equal(t, http.StatusOK, code)
	var page struct {
		Items []struct {
			TotalShares       int64   `json:"totalShares"`
			TotalValuationNse float64 `json:"totalValuationNse"`
			TotalValuationBse float64 `json:"totalValuationBse"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.Len(t, page.Items, 1)
	// F-1: 100 -> bonus 200 -> split 400; F-2 predates only the split: 100
	assert.Equal(t, int64(500), page.Items[0].TotalShares)
	assert.Equal(t, 5250.0, page.Items[0].TotalValuationNse)
	assert.Equal(t, 0.0, page.Items[0].TotalValuationBse)
}

func TestCommunicationFolioHydration(t *testing.T) {
	reg, srv := newServer(t)
	ctx := context.Background()
	code, _ := call(t, srv, http.MethodPost, "/project/create", map[string]any{"name": "P"})
	require.Equal(t, http.StatusCreated, code)
	for i := 0; i < 3; i++ {
		_, err := reg.Stores.Folios.Store(ctx, folios.Folio{ShareCertificateMasterID: 1, FolioNumber: "F", HolderName: "H"})
		require.NoError(t, err)
	}
	// stored as parsed from a "3_x_5" spreadsheet cell; folio 5 does not exist
	_, err := reg.Stores.Communications.Store(ctx, communication.CommunicationTracker{
		ProjectID: 1,
		Stage:     "Reminder",
		FolioIDs:  crud.ParseIDList("3_x_5"),
	})
	require.NoError(t, err)

	code, env := call(t, srv, http.MethodGet, "/communication-tracker/1", nil)
	require.Equal(t, http.StatusOK, code)
	var got communication.CommunicationTracker
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, []int64{3, 5}, got.FolioIDs)
	require.Len(t, got.Folios, 1)
	assert.Equal(t, int64(3), got.Folios[0].ID)

	code, env = call(t, srv, http.MethodPost, "/communication-tracker/create/1", map[string]any{
		"stage":    "Intimation",
		"folioIDs": []int64{1, 7},
	})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "folioIDs: folio 7 not found", env.Message)
}

func TestTransfers(t *testing.T) {
	reg, _ := newServer(t)
	slugs := reg.Slugs()
	assert.Len(t, slugs, 14)
	assert.Contains(t, slugs, "corporate-master")
	assert.True(t, reg.Transfers()["dividend-master"].Scoped())
	assert.False(t, reg.Transfers()["project"].Scoped())

	_, err := reg.Transfers()["payment-tracker"].Import(context.Background(), bytes.NewReader(nil))
	assert.ErrorIs(t, err, crud.ErrImportDisabled)
}
