package folios

import (
	"github.com/shareregistry/backoffice/internal/platform/crud"
	"github.com/shareregistry/backoffice/internal/platform/db"
)

const Slug = "folio"

type Module = crud.Module[Folio, Payload]

func NewRepository(conn db.DBTX) *crud.PGRepository[Folio] {
	return crud.NewPGRepository(conn, Schema)
}

func Definition(certificates crud.LookupFunc) crud.Definition[Folio, Payload] {
	return crud.Definition[Folio, Payload]{
		Resource:  "folio",
		Normalize: normalize,
		Build:     build,
		SetScope:  func(p *Payload, id int64) { p.ShareCertificateMasterID = id },
		ScopeOf:   func(f Folio) int64 { return f.ShareCertificateMasterID },
		References: []crud.Reference[Payload]{{
			Field:    "shareCertificateMasterID",
			Resource: "share certificate master",
			Scope:    true,
			IDs:      func(p Payload) []int64 { return []int64{p.ShareCertificateMasterID} },
			Missing:  certificates,
		}},
	}
}

func New(store crud.Store[Folio], certificates crud.LookupFunc, deps crud.HandlerDeps) *Module {
	return crud.NewModule(store, Definition(certificates), crud.HandlerConfig{
		Slug:    Slug,
		Columns: Columns,
		Import:  true,
	}, deps)
}
