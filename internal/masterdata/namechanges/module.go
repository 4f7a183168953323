package namechanges

import (
	"context"

	"github.com/shareregistry/backoffice/internal/platform/crud"
	"github.com/shareregistry/backoffice/internal/platform/db"
)

const Slug = "company-name-change"

type Module = crud.Module[CompanyNameChange, Payload]

func NewRepository(conn db.DBTX) *crud.PGRepository[CompanyNameChange] {
	return crud.NewPGRepository(conn, Schema)
}

// Definition takes the company lookup used for the parent check.
func Definition(companies crud.LookupFunc) crud.Definition[CompanyNameChange, Payload] {
	return crud.Definition[CompanyNameChange, Payload]{
		Resource: "company name change",
		Build:    build,
		SetScope: func(p *Payload, id int64) { p.CompanyID = id },
		ScopeOf:  func(c CompanyNameChange) int64 { return c.CompanyID },
		References: []crud.Reference[Payload]{{
			Field:    "companyID",
			Resource: "company",
			Scope:    true,
			IDs:      func(p Payload) []int64 { return []int64{p.CompanyID} },
			Missing:  companies,
		}},
	}
}

func New(store crud.Store[CompanyNameChange], companies crud.LookupFunc, deps crud.HandlerDeps) *Module {
	return crud.NewModule(store, Definition(companies), crud.HandlerConfig{
		Slug:    Slug,
		Columns: Columns,
	}, deps)
}

// Current returns the most recent rename of a company, or nil when it was
// never renamed.
func Current(ctx context.Context, store crud.Store[CompanyNameChange], companyID int64) (*CompanyNameChange, error) {
	changes, err := store.All(ctx, crud.Scoped(companyID))
	if err != nil {
		return nil, err
	}
	if len(changes) == 0 {
		return nil, nil
	}
	latest := changes[0]
	for _, c := range changes[1:] {
		if c.EffectiveDate.After(latest.EffectiveDate) ||
			(c.EffectiveDate.Equal(latest.EffectiveDate) && c.ID > latest.ID) {
			latest = c
		}
	}
	return &latest, nil
}
