package legalheirs

import (
	"github.com/shareregistry/backoffice/internal/platform/crud"
	"github.com/shareregistry/backoffice/internal/platform/db"
)

const Slug = "legal-heir-detail"

type Module = crud.Module[LegalHeirDetail, Payload]

func NewRepository(conn db.DBTX) *crud.PGRepository[LegalHeirDetail] {
	return crud.NewPGRepository(conn, Schema)
}

func Definition(projects crud.LookupFunc) crud.Definition[LegalHeirDetail, Payload] {
	return crud.Definition[LegalHeirDetail, Payload]{
		Resource:  "legal heir detail",
		Normalize: normalize,
		Build:     build,
		SetScope:  func(p *Payload, id int64) { p.ProjectID = id },
		ScopeOf:   func(l LegalHeirDetail) int64 { return l.ProjectID },
		References: []crud.Reference[Payload]{{
			Field:    "projectID",
			Resource: "project",
			Scope:    true,
			IDs:      func(p Payload) []int64 { return []int64{p.ProjectID} },
			Missing:  projects,
		}},
	}
}

func New(store crud.Store[LegalHeirDetail], projects crud.LookupFunc, deps crud.HandlerDeps) *Module {
	return crud.NewModule(store, Definition(projects), crud.HandlerConfig{
		Slug:    Slug,
		Columns: Columns,
		Import:  true,
	}, deps)
}
