package payment

import (
	"context"

	"github.com/shareregistry/backoffice/internal/platform/crud"
	"github.com/shareregistry/backoffice/internal/platform/db"
)

const Slug = "payment-tracker"

type Module = crud.Module[PaymentTracker, Payload]

func NewRepository(conn db.DBTX) *crud.PGRepository[PaymentTracker] {
	return crud.NewPGRepository(conn, Schema)
}

func withFees(_ context.Context, items []PaymentTracker) error {
	for i := range items {
		items[i].Fees = items[i].ComputeFees()
	}
	return nil
}

func Definition(projects crud.LookupFunc) crud.Definition[PaymentTracker, Payload] {
	return crud.Definition[PaymentTracker, Payload]{
		Resource: "payment tracker",
		Build:    build,
		SetScope: func(p *Payload, id int64) { p.ProjectID = id },
		ScopeOf:  func(t PaymentTracker) int64 { return t.ProjectID },
		References: []crud.Reference[Payload]{{
			Field:    "projectID",
			Resource: "project",
			Scope:    true,
			IDs:      func(p Payload) []int64 { return []int64{p.ProjectID} },
			Missing:  projects,
		}},
		ListHook:   withFees,
		DetailHook: crud.Single(withFees),
	}
}

func New(store crud.Store[PaymentTracker], projects crud.LookupFunc, deps crud.HandlerDeps) *Module {
	return crud.NewModule(store, Definition(projects), crud.HandlerConfig{
		Slug:    Slug,
		Columns: Columns,
	}, deps)
}
