package crud_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shareregistry/backoffice/internal/platform/crud"
	"github.com/shareregistry/backoffice/internal/platform/sheet"
	"github.com/shareregistry/backoffice/internal/platform/storage"
)

type envelope struct {
	Code    int             `json:"code"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

type handlerFixture struct {
	*fixture
	router  chi.Router
	project project
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	fx := newFixture()
	p, err := fx.projects.Store(context.Background(), project{Name: "Alpha"})
	require.NoError(t, err)
	files, err := storage.NewLocal(t.TempDir())
	require.NoError(t, err)

	h := crud.NewHandler(fx.service, crud.HandlerConfig{
		Slug:    "notes",
		Columns: noteColumns,
		ListAll: true,
		Import:  true,
	}, crud.HandlerDeps{Sheets: sheet.NewExcel("Notes"), Files: files})
	r := chi.NewRouter()
	r.Route(h.Prefix(), h.MountRoutes)
	return &handlerFixture{fixture: fx, router: r, project: p}
}

func (hf *handlerFixture) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	hf.router.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestHandlerCreateAndShow(t *testing.T) {
	hf := newHandlerFixture(t)

	rec, env := hf.do(t, http.MethodPost, "/notes/create/1", map[string]any{"title": "call holder", "amount": 2})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.True(t, env.Success)
	assert.Equal(t, http.StatusCreated, env.Code)
	assert.Equal(t, "Note created successfully", env.Message)

	var created note
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, hf.project.ID, created.ProjectID, "scope comes from the path")

	rec, env = hf.do(t, http.MethodGet, "/notes/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got note
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, created, got)
}

func TestHandlerErrors(t *testing.T) {
	hf := newHandlerFixture(t)

	rec, env := hf.do(t, http.MethodGet, "/notes/77", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "note 77 not found", env.Message)

	rec, _ = hf.do(t, http.MethodGet, "/notes/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, env = hf.do(t, http.MethodPost, "/notes/create/1", map[string]any{"amount": -4})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation failed", env.Message)
	require.Len(t, env.Errors, 2)

	rec, env = hf.do(t, http.MethodPost, "/notes/create/1", map[string]any{"title": "x", "amount": "lots"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.Len(t, env.Errors, 1)
	assert.Equal(t, "amount", env.Errors[0].Field)

	rec, env = hf.do(t, http.MethodPost, "/notes/create/42", map[string]any{"title": "orphan"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "projectID: project 42 not found", env.Message)
}

func TestHandlerListUpdateDelete(t *testing.T) {
	hf := newHandlerFixture(t)
	for _, title := range []string{"one", "two", "three"} {
		rec, _ := hf.do(t, http.MethodPost, "/notes/create/1", map[string]any{"title": title})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec, env := hf.do(t, http.MethodGet, "/notes/list/1?page=1&limit=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var page crud.Page[note]
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Len(t, page.Items, 2)
	assert.Equal(t, crud.Pagination{Page: 1, Limit: 2, Total: 3, TotalPages: 2}, page.Pagination)

	rec, env = hf.do(t, http.MethodGet, "/notes/list-all?search=TW", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, "two", page.Items[0].Title)

	rec, env = hf.do(t, http.MethodPut, "/notes/2", map[string]any{"title": "two (edited)", "projectID": 55})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated note
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "two (edited)", updated.Title)
	assert.Equal(t, hf.project.ID, updated.ProjectID)

	rec, _ = hf.do(t, http.MethodDelete, "/notes/2", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec, _ = hf.do(t, http.MethodGet, "/notes/2", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, env = hf.do(t, http.MethodPost, "/notes/delete-multiple", map[string]any{"id": []int64{1, 3}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Zero(t, hf.notes.Len())

	rec, _ = hf.do(t, http.MethodPost, "/notes/delete-multiple", map[string]any{"id": []int64{}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerExport(t *testing.T) {
	hf := newHandlerFixture(t)
	rec, _ := hf.do(t, http.MethodPost, "/notes/create/1", map[string]any{"title": "exported", "folioIDs": []int64{8, 9}})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, _ = hf.do(t, http.MethodGet, "/notes/export/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, sheet.ContentType, rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="notes.xlsx"`, rec.Header().Get("Content-Disposition"))

	rows, err := sheet.NewExcel("").Read(rec.Body)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, crud.Headers(noteColumns), rows[0])
	assert.Equal(t, "exported", rows[1][1])
	assert.Equal(t, "8_9", rows[1][5])
}

func TestHandlerExportStoreErrorIsEnvelope(t *testing.T) {
	hf := newHandlerFixture(t)
	hf.notes.Err = errors.New("connection reset")

	rec, env := hf.do(t, http.MethodGet, "/notes/export/1", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Disposition"))
	assert.False(t, env.Success)
}

// writeCounter records how the response body arrives.
type writeCounter struct {
	*httptest.ResponseRecorder
	writes      int
	codeAtFirst int
}

func (f *writeCounter) Write(p []byte) (int, error) {
	if f.writes == 0 {
		f.codeAtFirst = f.Code
	}
	f.writes++
	return f.ResponseRecorder.Write(p)
}

func TestHandlerExportWritesStraightToResponse(t *testing.T) {
	hf := newHandlerFixture(t)
	for i := 0; i < 50; i++ {
		_, err := hf.service.Create(context.Background(), notePayload{ProjectID: hf.project.ID, Title: fmt.Sprintf("note %d", i)})
		require.NoError(t, err)
	}

	out := &writeCounter{ResponseRecorder: httptest.NewRecorder()}
	hf.router.ServeHTTP(out, httptest.NewRequest(http.MethodGet, "/notes/export/1", nil))

	require.Equal(t, http.StatusOK, out.Code)
	assert.Equal(t, http.StatusOK, out.codeAtFirst)
	assert.Positive(t, out.writes)
	assert.Equal(t, `attachment; filename="notes.xlsx"`, out.Header().Get("Content-Disposition"))
	rows, err := sheet.NewExcel("").Read(out.Body)
	require.NoError(t, err)
	assert.Len(t, rows, 51)
}

func TestHandlerImport(t *testing.T) {
	hf := newHandlerFixture(t)
	var wb bytes.Buffer
	require.NoError(t, sheet.NewExcel("").Write(&wb, crud.Headers(noteColumns), [][]any{
		{1, "imported", 3, "", "yes", ""},
		{1, "", 3, "", "", ""},
	}))

	body, contentType := multipartFile(t, "notes.xlsx", wb.Bytes())
	req := httptest.NewRequest(http.MethodPost, "/notes/import", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	hf.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	var res crud.ImportResult
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, 1, res.SuccessCount)
	assert.Equal(t, 1, res.ErrorCount)
	assert.NotEmpty(t, res.FileName)

	body, contentType = multipartFile(t, "notes.csv", []byte("a,b"))
	req = httptest.NewRequest(http.MethodPost, "/notes/import", body)
	req.Header.Set("Content-Type", contentType)
	rec = httptest.NewRecorder()
	hf.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func multipartFile(t *testing.T, name string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}
