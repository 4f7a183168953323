package paymentstage

import (
	"github.com/shareregistry/backoffice/internal/platform/crud"
	"github.com/shareregistry/backoffice/internal/platform/db"
)

const Slug = "payment-tracker-stage"

type Module = crud.Module[PaymentTrackerStage, Payload]

func NewRepository(conn db.DBTX) *crud.PGRepository[PaymentTrackerStage] {
	return crud.NewPGRepository(conn, Schema)
}

func Definition(trackers crud.LookupFunc) crud.Definition[PaymentTrackerStage, Payload] {
	return crud.Definition[PaymentTrackerStage, Payload]{
		Resource: "payment tracker stage",
		Build:    build,
		SetScope: func(p *Payload, id int64) { p.PaymentTrackerID = id },
		ScopeOf:  func(s PaymentTrackerStage) int64 { return s.PaymentTrackerID },
		References: []crud.Reference[Payload]{{
			Field:    "paymentTrackerID",
			Resource: "payment tracker",
			Scope:    true,
			IDs:      func(p Payload) []int64 { return []int64{p.PaymentTrackerID} },
			Missing:  trackers,
		}},
	}
}

func New(store crud.Store[PaymentTrackerStage], trackers crud.LookupFunc, deps crud.HandlerDeps) *Module {
	return crud.NewModule(store, Definition(trackers), crud.HandlerConfig{
		Slug:    Slug,
		Columns: Columns,
	}, deps)
}
