package companies

import (
	"context"

	"github.com/shareregistry/backoffice/internal/masterdata/namechanges"
	"github.com/shareregistry/backoffice/internal/platform/crud"
	"github.com/shareregistry/backoffice/internal/platform/db"
)

const Slug = "company-master"

type Module = crud.Module[CompanyMaster, Payload]

func NewRepository(conn db.DBTX) *crud.PGRepository[CompanyMaster] {
	return crud.NewPGRepository(conn, Schema)
}

// Definition attaches the current name change on detail reads.
func Definition(renames crud.Store[namechanges.CompanyNameChange]) crud.Definition[CompanyMaster, Payload] {
	return crud.Definition[CompanyMaster, Payload]{
		Resource:  "company",
		Normalize: normalize,
		Build:     build,
		DetailHook: func(ctx context.Context, c *CompanyMaster) error {
			return AttachCurrentName(ctx, renames, c)
		},
	}
}

func New(store crud.Store[CompanyMaster], renames crud.Store[namechanges.CompanyNameChange], deps crud.HandlerDeps) *Module {
	return crud.NewModule(store, Definition(renames), crud.HandlerConfig{
		Slug:    Slug,
		Columns: Columns,
		ListAll: true,
		Import:  true,
	}, deps)
}

// AttachCurrentName sets CurrentNameChangeMasters from the rename history.
func AttachCurrentName(ctx context.Context, renames crud.Store[namechanges.CompanyNameChange], c *CompanyMaster) error {
	current, err := namechanges.Current(ctx, renames, c.ID)
	if err != nil {
		return err
	}
	c.CurrentNameChangeMasters = current
	return nil
}
