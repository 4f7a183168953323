package dividends

import (
	"github.com/shareregistry/backoffice/internal/platform/crud"
	"github.com/shareregistry/backoffice/internal/platform/db"
)

const Slug = "dividend-master"

type Module = crud.Module[DividendMaster, Payload]

func NewRepository(conn db.DBTX) *crud.PGRepository[DividendMaster] {
	return crud.NewPGRepository(conn, Schema)
}

func Definition(companies crud.LookupFunc) crud.Definition[DividendMaster, Payload] {
	return crud.Definition[DividendMaster, Payload]{
		Resource:  "dividend",
		Normalize: normalize,
		Build:     build,
		SetScope:  func(p *Payload, id int64) { p.CompanyID = id },
		ScopeOf:   func(d DividendMaster) int64 { return d.CompanyID },
		References: []crud.Reference[Payload]{{
			Field:    "companyID",
			Resource: "company",
			Scope:    true,
			IDs:      func(p Payload) []int64 { return []int64{p.CompanyID} },
			Missing:  companies,
		}},
	}
}

func New(store crud.Store[DividendMaster], companies crud.LookupFunc, deps crud.HandlerDeps) *Module {
	return crud.NewModule(store, Definition(companies), crud.HandlerConfig{
		Slug:    Slug,
		Columns: Columns,
		ListAll: true,
		Import:  true,
	}, deps)
}
