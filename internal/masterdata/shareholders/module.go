package shareholders

import (
	"github.com/shareregistry/backoffice/internal/platform/crud"
	"github.com/shareregistry/backoffice/internal/platform/db"
)

const Slug = "share-holder-detail"

type Module = crud.Module[ShareHolderDetail, Payload]

func NewRepository(conn db.DBTX) *crud.PGRepository[ShareHolderDetail] {
	return crud.NewPGRepository(conn, Schema)
}

func Definition(projects crud.LookupFunc) crud.Definition[ShareHolderDetail, Payload] {
	return crud.Definition[ShareHolderDetail, Payload]{
		Resource:  "share holder detail",
		Normalize: normalize,
		Build:     build,
		SetScope:  func(p *Payload, id int64) { p.ProjectID = id },
		ScopeOf:   func(s ShareHolderDetail) int64 { return s.ProjectID },
		References: []crud.Reference[Payload]{{
			Field:    "projectID",
			Resource: "project",
			Scope:    true,
			IDs:      func(p Payload) []int64 { return []int64{p.ProjectID} },
			Missing:  projects,
		}},
	}
}

func New(store crud.Store[ShareHolderDetail], projects crud.LookupFunc, deps crud.HandlerDeps) *Module {
	return crud.NewModule(store, Definition(projects), crud.HandlerConfig{
		Slug:    Slug,
		Columns: Columns,
		Import:  true,
	}, deps)
}
