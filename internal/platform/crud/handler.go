package crud

import (
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/shareregistry/backoffice/internal/platform/httpx"
	"github.com/shareregistry/backoffice/internal/platform/sheet"
	"github.com/shareregistry/backoffice/internal/platform/storage"
)

// DefaultMaxUploadBytes bounds import uploads when the config leaves it unset.
const DefaultMaxUploadBytes int64 = 10 << 20

// HandlerConfig selects the optional routes of a module.
type HandlerConfig struct {
	// Slug is the route prefix and file-name stem, e.g. "dividend-master".
	Slug    string
	Columns []Column
	// ListAll enables the unscoped listing and export. Unscoped modules
	// always have it.
	ListAll        bool
	Import         bool
	MaxUploadBytes int64
}

// Handler serves the fixed route template of one module.
type Handler[T Record, P any] struct {
	logger   *slog.Logger
	service  *Service[T, P]
	importer *Importer[T, P]
	exporter *Exporter[T]
	cfg      HandlerConfig
}

// HandlerDeps are the collaborators shared by every module handler.
type HandlerDeps struct {
	Logger   *slog.Logger
	Sheets   sheet.Codec
	Files    storage.Store
	Observer ImportObserver
	// MaxUploadBytes applies to modules whose config leaves it unset.
	MaxUploadBytes int64
}

// NewHandler builds the handler, importer and exporter of a module.
func NewHandler[T Record, P any](service *Service[T, P], cfg HandlerConfig, deps HandlerDeps) *Handler[T, P] {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if !service.Definition().Scoped() {
		cfg.ListAll = true
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = deps.MaxUploadBytes
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = DefaultMaxUploadBytes
	}
	h := &Handler[T, P]{
		logger:   logger.With(slog.String("module", cfg.Slug)),
		service:  service,
		exporter: NewExporter[T](cfg.Columns, deps.Sheets),
		cfg:      cfg,
	}
	if cfg.Import {
		h.importer = NewImporter(cfg.Slug, service, cfg.Columns, deps.Sheets, deps.Files, h.logger, deps.Observer)
	}
	return h
}

// Prefix is the mount point of the module.
func (h *Handler[T, P]) Prefix() string {
	return "/" + h.cfg.Slug
}

// MountRoutes registers the module routes.
func (h *Handler[T, P]) MountRoutes(r chi.Router) {
	scoped := h.service.Definition().Scoped()
	if scoped {
		r.Get("/list/{parentId}", h.list)
		r.Get("/export/{parentId}", h.export)
		r.Post("/create/{parentId}", h.create)
	} else {
		r.Post("/create", h.create)
	}
	if h.cfg.ListAll {
		r.Get("/list-all", h.list)
		r.Get("/export", h.export)
	}
	if h.importer != nil {
		r.Post("/import", h.importFile)
	}
	r.Post("/delete-multiple", h.deleteMany)
	r.Get("/{id}", h.show)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

func (h *Handler[T, P]) list(w http.ResponseWriter, r *http.Request) {
	filter, err := h.filter(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	result, err := h.service.List(r.Context(), page, limit, filter)
	if err != nil {
		h.fail(w, "list failed", err)
		return
	}
	httpx.Success(w, http.StatusOK, h.resource()+" list fetched successfully", result)
}

func (h *Handler[T, P]) show(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	rec, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.fail(w, "get failed", err, slog.Int64("id", id))
		return
	}
	httpx.Success(w, http.StatusOK, h.resource()+" fetched successfully", rec)
}

func (h *Handler[T, P]) create(w http.ResponseWriter, r *http.Request) {
	var payload P
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.RespondError(w, err)
		return
	}
	def := h.service.Definition()
	if def.Scoped() {
		parentID, err := pathID(r, "parentId")
		if err != nil {
			httpx.RespondError(w, err)
			return
		}
		def.SetScope(&payload, parentID)
	}
	rec, err := h.service.Create(r.Context(), payload)
	if err != nil {
		h.fail(w, "create failed", err)
		return
	}
	httpx.Success(w, http.StatusCreated, h.resource()+" created successfully", rec)
}

func (h *Handler[T, P]) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	var payload P
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.RespondError(w, err)
		return
	}
	rec, err := h.service.Update(r.Context(), id, payload)
	if err != nil {
		h.fail(w, "update failed", err, slog.Int64("id", id))
		return
	}
	httpx.Success(w, http.StatusOK, h.resource()+" updated successfully", rec)
}

func (h *Handler[T, P]) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	rec, err := h.service.Delete(r.Context(), id)
	if err != nil {
		h.fail(w, "delete failed", err, slog.Int64("id", id))
		return
	}
	httpx.Success(w, http.StatusOK, h.resource()+" deleted successfully", rec)
}

type deleteManyRequest struct {
	ID []int64 `json:"id"`
}

func (h *Handler[T, P]) deleteMany(w http.ResponseWriter, r *http.Request) {
	var req deleteManyRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.service.DeleteMany(r.Context(), req.ID); err != nil {
		h.fail(w, "delete many failed", err)
		return
	}
	httpx.Success(w, http.StatusOK, h.resource()+" records deleted successfully", nil)
}

func (h *Handler[T, P]) export(w http.ResponseWriter, r *http.Request) {
	filter, err := h.filter(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	out := &attachmentWriter{w: w, filename: h.cfg.Slug + ".xlsx"}
	if _, err := h.Export(r.Context(), out, filter); err != nil {
		if !out.started {
			h.fail(w, "export failed", err)
			return
		}
		h.logger.Error("export interrupted", slog.String("module", h.cfg.Slug), slog.Any("error", err))
	}
}

// attachmentWriter sends the workbook headers on the first write. Until
// then a failure can still be answered with an error envelope.
type attachmentWriter struct {
	w        http.ResponseWriter
	filename string
	started  bool
}

func (a *attachmentWriter) Write(p []byte) (int, error) {
	if !a.started {
		a.started = true
		httpx.Attachment(a.w, sheet.ContentType, a.filename)
		a.w.WriteHeader(http.StatusOK)
	}
	return a.w.Write(p)
}

func (h *Handler[T, P]) importFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(h.cfg.MaxUploadBytes); err != nil {
		httpx.RespondError(w, httpx.NewValidationError("file", "upload could not be read"))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		httpx.RespondError(w, httpx.NewValidationError("file", "is required"))
		return
	}
	defer file.Close()
	if !strings.EqualFold(filepath.Ext(header.Filename), ".xlsx") {
		httpx.RespondError(w, httpx.NewValidationError("file", "must be an .xlsx workbook"))
		return
	}
	result, err := h.Import(r.Context(), file)
	if err != nil {
		h.fail(w, "import failed", err)
		return
	}
	httpx.Success(w, http.StatusOK, h.resource()+" import completed", result)
}

// filter reads the optional parent scope and search query.
func (h *Handler[T, P]) filter(r *http.Request) (Filter, error) {
	filter := Filter{Search: r.URL.Query().Get("search")}
	if chi.URLParam(r, "parentId") == "" {
		return filter, nil
	}
	parentID, err := pathID(r, "parentId")
	if err != nil {
		return filter, err
	}
	filter.ScopeID = &parentID
	return filter, nil
}

func (h *Handler[T, P]) resource() string {
	res := h.service.Definition().Resource
	if res == "" {
		return "Record"
	}
	return strings.ToUpper(res[:1]) + res[1:]
}

func (h *Handler[T, P]) fail(w http.ResponseWriter, msg string, err error, attrs ...any) {
	if httpx.StatusFor(err) >= http.StatusInternalServerError {
		h.logger.Error(msg, append(attrs, slog.Any("error", err))...)
	} else {
		h.logger.Warn(msg, append(attrs, slog.Any("error", err))...)
	}
	httpx.RespondError(w, err)
}

func pathID(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		return 0, httpx.NewValidationError(param, "must be a positive integer")
	}
	return id, nil
}
