package documents

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shareregistry/backoffice/internal/masterdata/legalheirs"
	"github.com/shareregistry/backoffice/internal/masterdata/projects"
	"github.com/shareregistry/backoffice/internal/platform/storage"
	"github.com/shareregistry/backoffice/internal/tracker/iepf"
	"github.com/shareregistry/backoffice/internal/tracker/payment"
	"github.com/shareregistry/backoffice/internal/tracker/paymentstage"
)

// Getter returns one hydrated record; crud services satisfy it.
type Getter[T any] interface {
	Get(ctx context.Context, id int64) (T, error)
}

// Sources are the records documents are built from.
type Sources struct {
	Projects   Getter[projects.Project]
	LegalHeirs Getter[legalheirs.LegalHeirDetail]
	Iepf       Getter[iepf.IepfTracker]
	Payments   Getter[payment.PaymentTracker]
	Stages     Getter[paymentstage.PaymentTrackerStage]
}

// Observer counts render outcomes.
type Observer interface {
	ObserveDocument(kind, outcome string)
}

// Document is one rendered PDF.
type Document struct {
	Kind     Kind
	FileName string
	PDF      []byte
}

// Service builds document views and renders them.
type Service struct {
	src      Sources
	renderer *Renderer
	files    storage.Store
	observer Observer
	logger   *slog.Logger
	now      func() time.Time
}

// Config wires a Service. Files, Observer and Now are optional.
type Config struct {
	Sources  Sources
	Renderer *Renderer
	Files    storage.Store
	Observer Observer
	Logger   *slog.Logger
	Now      func() time.Time
}

// NewService constructs a Service.
func NewService(cfg Config) *Service {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Service{
		src:      cfg.Sources,
		renderer: cfg.Renderer,
		files:    cfg.Files,
		observer: cfg.Observer,
		logger:   cfg.Logger,
		now:      cfg.Now,
	}
}

// View loads the records behind document kind/id.
func (s *Service) View(ctx context.Context, kind Kind, id int64) (View, error) {
	info, ok := kinds[kind]
	if !ok {
		return View{}, unknownKind(kind)
	}
	view := View{Title: info.title, GeneratedAt: s.now()}
	var projectID int64
	switch kind {
	case KindLegalHeirClaim:
		heir, err := s.src.LegalHeirs.Get(ctx, id)
		if err != nil {
			return View{}, err
		}
		view.Heir, projectID = &heir, heir.ProjectID
	case KindIepfCover:
		tracker, err := s.src.Iepf.Get(ctx, id)
		if err != nil {
			return View{}, err
		}
		view.Iepf, projectID = &tracker, tracker.ProjectID
	case KindStageInvoice:
		stage, err := s.src.Stages.Get(ctx, id)
		if err != nil {
			return View{}, err
		}
		tracker, err := s.src.Payments.Get(ctx, stage.PaymentTrackerID)
		if err != nil {
			return View{}, err
		}
		view.Stage, view.Payment, projectID = &stage, &tracker, tracker.ProjectID
	}
	project, err := s.src.Projects.Get(ctx, projectID)
	if err != nil {
		return View{}, err
	}
	view.Project = project
	return view, nil
}

// Render builds and renders one document.
func (s *Service) Render(ctx context.Context, kind Kind, id int64) (Document, error) {
	view, err := s.View(ctx, kind, id)
	if err != nil {
		return Document{}, err
	}
	pdf, err := s.renderer.Render(ctx, kind, view)
	if err != nil {
		s.observe(kind, "failed")
		return Document{}, err
	}
	s.observe(kind, "rendered")
	return Document{Kind: kind, FileName: fmt.Sprintf("%s-%d.pdf", kind, id), PDF: pdf}, nil
}

// RenderAndStore renders a document and saves it under a unique name.
func (s *Service) RenderAndStore(ctx context.Context, kind Kind, id int64) (string, error) {
	if s.files == nil {
		return "", fmt.Errorf("documents: no file storage configured")
	}
	doc, err := s.Render(ctx, kind, id)
	if err != nil {
		return "", err
	}
	name := storage.NewName(fmt.Sprintf("%s-%d", kind, id), ".pdf")
	if err := s.files.Save(name, bytes.NewReader(doc.PDF)); err != nil {
		return "", fmt.Errorf("documents: save %s: %w", name, err)
	}
	s.logger.Info("document stored", slog.String("kind", string(kind)), slog.Int64("id", id), slog.String("file", name))
	return name, nil
}

func (s *Service) observe(kind Kind, outcome string) {
	if s.observer != nil {
		s.observer.ObserveDocument(string(kind), outcome)
	}
}
