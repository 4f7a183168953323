package documents_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shareregistry/backoffice/internal/documents"
	"github.com/shareregistry/backoffice/internal/masterdata/legalheirs"
	"github.com/shareregistry/backoffice/internal/masterdata/projects"
	"github.com/shareregistry/backoffice/internal/masterdata/shareholders"
	"github.com/shareregistry/backoffice/internal/platform/crud"
	"github.com/shareregistry/backoffice/internal/platform/httpx"
	"github.com/shareregistry/backoffice/internal/platform/storage"
	"github.com/shareregistry/backoffice/internal/registry"
	"github.com/shareregistry/backoffice/internal/registry/registrytest"
	"github.com/shareregistry/backoffice/internal/tracker/iepf"
	"github.com/shareregistry/backoffice/internal/tracker/payment"
	"github.com/shareregistry/backoffice/internal/tracker/paymentstage"
)

type fakePDF struct {
	mu   sync.Mutex
	html []string
}

func (f *fakePDF) RenderHTML(_ context.Context, html string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.html = append(f.html, html)
	return []byte("%PDF-fake"), nil
}

func (f *fakePDF) last() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.html[len(f.html)-1]
}

type counter struct {
	mu   sync.Mutex
	seen map[string]int
}

func (c *counter) ObserveDocument(kind, outcome string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seen[kind+"/"+outcome]++
}

type fixture struct {
	reg     *registry.Registry
	pdf     *fakePDF
	obs     *counter
	service *documents.Service
	files   *storage.Local
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	reg := registry.New(registrytest.Stores(), crud.HandlerDeps{}, registry.Options{})

	_, err := reg.Projects.Service.Create(ctx, projects.Payload{Name: "Acme Recovery"})
	require.NoError(t, err)
	_, err = reg.ShareHolders.Service.Create(ctx, shareholders.Payload{ProjectID: 1, Name: "R. Mehta", FolioNumber: "F-0042"})
	require.NoError(t, err)
	_, err = reg.LegalHeirs.Service.Create(ctx, legalheirs.Payload{
		ProjectID: 1, ClaimantName: "Asha Mehta", Relationship: "Daughter",
		IsMinor: true, GuardianName: "Kiran Mehta", GuardianRelationship: "Mother",
	})
	require.NoError(t, err)
	_, err = reg.Iepf.Service.Create(ctx, iepf.Payload{ProjectID: 1, ShareHolderDetailIDs: []int64{1}, LegalHeirDetailIDs: []int64{1}, SrnNumber: "T12345"})
	require.NoError(t, err)
	_, err = reg.Payments.Service.Create(ctx, payment.Payload{
		ProjectID: 1, Valuation: 100000, FeePercentage: 2,
		GstFlag: true, GstPercentage: 18, TdsFlag: true, TdsPercentage: 10,
	})
	require.NoError(t, err)
	_, err = reg.PaymentStages.Service.Create(ctx, paymentstage.Payload{PaymentTrackerID: 1, StageName: "Advance", Percentage: 50, Amount: 1080, InvoiceNumber: "INV-7"})
	require.NoError(t, err)

	pdf := &fakePDF{}
	renderer, err := documents.NewRenderer(pdf)
	require.NoError(t, err)
	files, err := storage.NewLocal(t.TempDir())
	require.NoError(t, err)
	obs := &counter{seen: map[string]int{}}
	svc := documents.NewService(documents.Config{
		Sources:  reg.DocumentSources(),
		Renderer: renderer,
		Files:    files,
		Observer: obs,
		Now:      func() time.Time { return time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC) },
	})
	return &fixture{reg: reg, pdf: pdf, obs: obs, service: svc, files: files}
}

func TestRenderLegalHeirClaim(t *testing.T) {
	f := newFixture(t)
	doc, err := f.service.Render(context.Background(), documents.KindLegalHeirClaim, 1)
	require.NoError(t, err)
	assert.Equal(t, "legal-heir-claim-1.pdf", doc.FileName)
	assert.Equal(t, "%PDF-fake", string(doc.PDF))

	html := f.pdf.last()
	assert.Contains(t, html, "Asha Mehta")
	assert.Contains(t, html, "Kiran Mehta (Mother)")
	assert.Contains(t, html, "Acme Recovery")
	assert.Contains(t, html, "04 Mar 2025")
	assert.Equal(t, 1, f.obs.seen["legal-heir-claim/rendered"])
}

func TestRenderIepfCoverUsesHydratedDetails(t *testing.T) {
	f := newFixture(t)
	_, err := f.service.Render(context.Background(), documents.KindIepfCover, 1)
	require.NoError(t, err)
	html := f.pdf.last()
	assert.Contains(t, html, "SRN T12345")
	assert.Contains(t, html, "F-0042")
	assert.Contains(t, html, "Daughter")
	assert.Contains(t, html, iepf.StatusDraft)
}

func TestRenderStageInvoiceShowsFees(t *testing.T) {
	f := newFixture(t)
	_, err := f.service.Render(context.Background(), documents.KindStageInvoice, 1)
	require.NoError(t, err)
	html := f.pdf.last()
	assert.Contains(t, html, "INV-7")
	assert.Contains(t, html, "2000.00")
	assert.Contains(t, html, "360.00")
	assert.Contains(t, html, "-200.00")
	assert.Contains(t, html, "2160.00")
	assert.Contains(t, html, paymentstage.StatusToBePaid)
}

func TestRenderMissingRecord(t *testing.T) {
	f := newFixture(t)
	_, err := f.service.Render(context.Background(), documents.KindStageInvoice, 99)
	require.ErrorIs(t, err, httpx.ErrNotFound)
	assert.Empty(t, f.pdf.html)
}

func TestRenderAndStore(t *testing.T) {
	f := newFixture(t)
	name, err := f.service.RenderAndStore(context.Background(), documents.KindIepfCover, 1)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(name, "iepf-cover-1-"))

	rc, err := f.files.Open(name)
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(data))
}

type fakeQueue struct {
	kind string
	id   int64
}

func (q *fakeQueue) EnqueueRender(_ context.Context, kind string, id int64) (string, error) {
	q.kind, q.id = kind, id
	return "task-1", nil
}

func TestHandlerRoutes(t *testing.T) {
	f := newFixture(t)
	queue := &fakeQueue{}
	r := chi.NewRouter()
	r.Route("/documents", documents.NewHandler(f.service, queue, nil).MountRoutes)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/documents/legal-heir-claim/1", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `inline; filename="legal-heir-claim-1.pdf"`, rec.Header().Get("Content-Disposition"))

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/documents/share-transfer/1", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/documents/iepf-cover/1/queue", nil))
	require.Equal(t, http.StatusAccepted, rec.Code)
	var env struct {
		Data struct {
			TaskID string `json:"taskID"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "task-1", env.Data.TaskID)
	assert.Equal(t, "iepf-cover", queue.kind)
	assert.Equal(t, int64(1), queue.id)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/documents/iepf-cover/5/queue", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
