package communication

import (
	"context"

	"github.com/shareregistry/backoffice/internal/masterdata/folios"
	"github.com/shareregistry/backoffice/internal/platform/crud"
	"github.com/shareregistry/backoffice/internal/platform/db"
)

const Slug = "communication-tracker"

type Module = crud.Module[CommunicationTracker, Payload]

func NewRepository(conn db.DBTX) *crud.PGRepository[CommunicationTracker] {
	return crud.NewPGRepository(conn, Schema)
}

func Definition(projects crud.LookupFunc, folioStore crud.Store[folios.Folio]) crud.Definition[CommunicationTracker, Payload] {
	hydrate := func(ctx context.Context, items []CommunicationTracker) error {
		lists := make([][]int64, len(items))
		for i, it := range items {
			lists[i] = it.FolioIDs
		}
		found, err := folioStore.FindByIDs(ctx, crud.UniqueIDs(lists...))
		if err != nil {
			return err
		}
		for i := range items {
			items[i].Folios = crud.Resolve(found, items[i].FolioIDs)
		}
		return nil
	}
	return crud.Definition[CommunicationTracker, Payload]{
		Resource: "communication tracker",
		Build:    build,
		SetScope: func(p *Payload, id int64) { p.ProjectID = id },
		ScopeOf:  func(c CommunicationTracker) int64 { return c.ProjectID },
		References: []crud.Reference[Payload]{
			{
				Field:    "projectID",
				Resource: "project",
				Scope:    true,
				IDs:      func(p Payload) []int64 { return []int64{p.ProjectID} },
				Missing:  projects,
			},
			{
				Field:    "folioIDs",
				Resource: "folio",
				IDs:      func(p Payload) []int64 { return p.FolioIDs },
				Missing:  crud.MissingIn[folios.Folio](folioStore),
			},
		},
		ListHook:   hydrate,
		DetailHook: crud.Single(hydrate),
	}
}

func New(store crud.Store[CommunicationTracker], projects crud.LookupFunc, folioStore crud.Store[folios.Folio], deps crud.HandlerDeps) *Module {
	return crud.NewModule(store, Definition(projects, folioStore), crud.HandlerConfig{
		Slug:    Slug,
		Columns: Columns,
	}, deps)
}
