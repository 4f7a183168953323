package iepf

import (
	"context"

	"github.com/shareregistry/backoffice/internal/masterdata/legalheirs"
	"github.com/shareregistry/backoffice/internal/masterdata/shareholders"
	"github.com/shareregistry/backoffice/internal/platform/crud"
	"github.com/shareregistry/backoffice/internal/platform/db"
)

const Slug = "iepf-tracker"

type Module = crud.Module[IepfTracker, Payload]

func NewRepository(conn db.DBTX) *crud.PGRepository[IepfTracker] {
	return crud.NewPGRepository(conn, Schema)
}

// Sources are the stores a claim's id lists resolve against.
type Sources struct {
	Projects     crud.LookupFunc
	ShareHolders crud.Store[shareholders.ShareHolderDetail]
	LegalHeirs   crud.Store[legalheirs.LegalHeirDetail]
}

// Hydrate resolves the share holder and legal heir id lists of every claim
// with one batch fetch per list.
func Hydrate(src Sources) func(ctx context.Context, items []IepfTracker) error {
	return func(ctx context.Context, items []IepfTracker) error {
		var holderIDs, heirIDs [][]int64
		for _, it := range items {
			holderIDs = append(holderIDs, it.ShareHolderDetailIDs)
			heirIDs = append(heirIDs, it.LegalHeirDetailIDs)
		}
		holders, err := src.ShareHolders.FindByIDs(ctx, crud.UniqueIDs(holderIDs...))
		if err != nil {
			return err
		}
		heirs, err := src.LegalHeirs.FindByIDs(ctx, crud.UniqueIDs(heirIDs...))
		if err != nil {
			return err
		}
		for i := range items {
			items[i].ShareHolderDetails = crud.Resolve(holders, items[i].ShareHolderDetailIDs)
			items[i].LegalHeirDetails = crud.Resolve(heirs, items[i].LegalHeirDetailIDs)
		}
		return nil
	}
}

func Definition(src Sources) crud.Definition[IepfTracker, Payload] {
	hydrate := Hydrate(src)
	return crud.Definition[IepfTracker, Payload]{
		Resource: "iepf tracker",
		Build:    build,
		SetScope: func(p *Payload, id int64) { p.ProjectID = id },
		ScopeOf:  func(t IepfTracker) int64 { return t.ProjectID },
		References: []crud.Reference[Payload]{
			{
				Field:    "projectID",
				Resource: "project",
				Scope:    true,
				IDs:      func(p Payload) []int64 { return []int64{p.ProjectID} },
				Missing:  src.Projects,
			},
			{
				Field:    "shareHolderDetailIDs",
				Resource: "share holder detail",
				IDs:      func(p Payload) []int64 { return p.ShareHolderDetailIDs },
				Missing:  crud.MissingIn[shareholders.ShareHolderDetail](src.ShareHolders),
			},
			{
				Field:    "legalHeirDetailIDs",
				Resource: "legal heir detail",
				IDs:      func(p Payload) []int64 { return p.LegalHeirDetailIDs },
				Missing:  crud.MissingIn[legalheirs.LegalHeirDetail](src.LegalHeirs),
			},
		},
		ListHook:   hydrate,
		DetailHook: crud.Single(hydrate),
	}
}

func New(store crud.Store[IepfTracker], src Sources, deps crud.HandlerDeps) *Module {
	return crud.NewModule(store, Definition(src), crud.HandlerConfig{
		Slug:    Slug,
		Columns: Columns,
	}, deps)
}
