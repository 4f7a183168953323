package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/shareregistry/backoffice/internal/auth"
	"github.com/shareregistry/backoffice/internal/observability"
	"github.com/shareregistry/backoffice/internal/platform/crud"
	"github.com/shareregistry/backoffice/internal/platform/httpx"
	"github.com/shareregistry/backoffice/internal/platform/sheet"
	"github.com/shareregistry/backoffice/internal/platform/storage"
	"github.com/shareregistry/backoffice/internal/registry"
	"github.com/shareregistry/backoffice/internal/registry/registrytest"
)

type oneUser struct {
	user *auth.User
}

func (o oneUser) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	if strings.EqualFold(email, o.user.Email) {
		return o.user, nil
	}
	return nil, httpx.ErrNotFound
}

func (o oneUser) CreateUser(context.Context, string, string) (*auth.User, error) {
	return nil, httpx.ErrDuplicate
}

type server struct {
	handler http.Handler
	files   *storage.Local
}

func newServer(t *testing.T) *server {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("registry-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := auth.NewService(
		oneUser{user: &auth.User{ID: 1, Email: "ops@registry.test", PasswordHash: string(hash), IsActive: true}},
		auth.NewTokenIssuer("router-test-key", "share-registry", time.Hour),
		auth.NewRedisRevocations(client),
	)
	files, err := storage.NewLocal(t.TempDir())
	require.NoError(t, err)
	metrics := observability.NewMetrics()
	reg := registry.New(registrytest.Stores(), crud.HandlerDeps{Logger: logger, Sheets: sheet.NewExcel(""), Files: files, Observer: metrics}, registry.Options{})

	cfg := &Config{AppEnv: "test", RateLimitPerMinute: 1000, AppRequestTimeout: 5 * time.Second}
	h := NewRouter(RouterParams{
		Logger:      logger,
		Config:      cfg,
		AuthService: svc,
		AuthHandler: auth.NewHandler(logger, svc),
		Modules:     reg.Routes(),
		Files:       files,
		Metrics:     metrics,
	})
	return &server{handler: h, files: files}
}

func (s *server) do(method, path, token string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *server) login(t *testing.T) string {
	t.Helper()
	rec := s.do(http.MethodPost, "/api/v1/auth/login", "", strings.NewReader(`{"email":"ops@registry.test","password":"registry-pass"}`))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var env struct {
		Data auth.Token `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env.Data.AccessToken
}

func TestHealthAndMetricsAreOpen(t *testing.T) {
	s := newServer(t)
	rec := s.do(http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))

	rec = s.do(http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "registry_http_requests_total")
}

func TestModulesRequireToken(t *testing.T) {
	s := newServer(t)
	rec := s.do(http.MethodGet, "/api/v1/project/list-all", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token := s.login(t)
	rec = s.do(http.MethodPost, "/api/v1/project/create", token, strings.NewReader(`{"name":"Acme Recovery"}`))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/v1/project/list-all", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Acme Recovery")

	rec = s.do(http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = s.do(http.MethodGet, "/api/v1/project/list-all", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestFileDownload(t *testing.T) {
	s := newServer(t)
	require.NoError(t, s.files.Save("folio-import-errors-1.xlsx", bytes.NewReader([]byte("xlsx-bytes"))))
	token := s.login(t)

	rec := s.do(http.MethodGet, "/api/v1/files/folio-import-errors-1.xlsx", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, sheet.ContentType, rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="folio-import-errors-1.xlsx"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "xlsx-bytes", rec.Body.String())

	rec = s.do(http.MethodGet, "/api/v1/files/missing.xlsx", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/files/.hidden", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnknownRouteUsesEnvelope(t *testing.T) {
	s := newServer(t)
	rec := s.do(http.MethodGet, "/nowhere", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	var env httpx.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.False(t, env.Success)
}
