package corporateactions

import (
	"github.com/shareregistry/backoffice/internal/platform/crud"
	"github.com/shareregistry/backoffice/internal/platform/db"
)

const Slug = "corporate-master"

type Module = crud.Module[CorporateMaster, Payload]

func NewRepository(conn db.DBTX) *crud.PGRepository[CorporateMaster] {
	return crud.NewPGRepository(conn, Schema)
}

func Definition(companies crud.LookupFunc) crud.Definition[CorporateMaster, Payload] {
	return crud.Definition[CorporateMaster, Payload]{
		Resource:  "corporate action",
		Normalize: normalize,
		Build:     build,
		SetScope:  func(p *Payload, id int64) { p.CompanyID = id },
		ScopeOf:   func(c CorporateMaster) int64 { return c.CompanyID },
		References: []crud.Reference[Payload]{{
			Field:    "companyID",
			Resource: "company",
			Scope:    true,
			IDs:      func(p Payload) []int64 { return []int64{p.CompanyID} },
			Missing:  companies,
		}},
	}
}

func New(store crud.Store[CorporateMaster], companies crud.LookupFunc, deps crud.HandlerDeps) *Module {
	return crud.NewModule(store, Definition(companies), crud.HandlerConfig{
		Slug:    Slug,
		Columns: Columns,
		ListAll: true,
		Import:  true,
	}, deps)
}
