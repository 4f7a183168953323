package projects

import (
	"github.com/shareregistry/backoffice/internal/platform/crud"
	"github.com/shareregistry/backoffice/internal/platform/db"
)

// Slug is the route prefix.
const Slug = "project"

// Module is the wired project stack.
type Module = crud.Module[Project, Payload]

// NewRepository returns the PostgreSQL store.
func NewRepository(conn db.DBTX) *crud.PGRepository[Project] {
	return crud.NewPGRepository(conn, Schema)
}

// Definition describes projects to the crud service.
func Definition() crud.Definition[Project, Payload] {
	return crud.Definition[Project, Payload]{
		Resource:  "project",
		Normalize: normalize,
		Build:     build,
	}
}

// New wires the module on store.
func New(store crud.Store[Project], deps crud.HandlerDeps) *Module {
	return crud.NewModule(store, Definition(), crud.HandlerConfig{
		Slug:    Slug,
		Columns: Columns,
		ListAll: true,
	}, deps)
}
