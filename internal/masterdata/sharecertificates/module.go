package sharecertificates

import (
	"github.com/shareregistry/backoffice/internal/platform/crud"
	"github.com/shareregistry/backoffice/internal/platform/db"
)

const Slug = "share-certificate-master"

type Module = crud.Module[ShareCertificateMaster, Payload]

func NewRepository(conn db.DBTX) *crud.PGRepository[ShareCertificateMaster] {
	return crud.NewPGRepository(conn, Schema)
}

// Refs are the parent lookups of a certificate.
type Refs struct {
	Projects  crud.LookupFunc
	Companies crud.LookupFunc
}

func Definition(refs Refs, hydrator *Hydrator) crud.Definition[ShareCertificateMaster, Payload] {
	return crud.Definition[ShareCertificateMaster, Payload]{
		Resource: "share certificate master",
		Build:    build,
		SetScope: func(p *Payload, id int64) { p.ProjectID = id },
		ScopeOf:  func(s ShareCertificateMaster) int64 { return s.ProjectID },
		References: []crud.Reference[Payload]{
			{
				Field:    "projectID",
				Resource: "project",
				Scope:    true,
				IDs:      func(p Payload) []int64 { return []int64{p.ProjectID} },
				Missing:  refs.Projects,
			},
			{
				Field:    "companyID",
				Resource: "company",
				IDs:      func(p Payload) []int64 { return []int64{p.CompanyID} },
				Missing:  refs.Companies,
			},
		},
		ListHook:   hydrator.Holdings,
		DetailHook: hydrator.Detail,
	}
}

func New(store crud.Store[ShareCertificateMaster], refs Refs, hydrator *Hydrator, deps crud.HandlerDeps) *Module {
	return crud.NewModule(store, Definition(refs, hydrator), crud.HandlerConfig{
		Slug:    Slug,
		Columns: Columns,
		ListAll: true,
		Import:  true,
	}, deps)
}
