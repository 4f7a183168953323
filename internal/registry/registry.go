// Package registry wires every entity module onto its stores.
package registry

import (
	"sort"
	"time"

	"github.com/shareregistry/backoffice/internal/documents"
	"github.com/shareregistry/backoffice/internal/masterdata/companies"
	"github.com/shareregistry/backoffice/internal/masterdata/corporateactions"
	"github.com/shareregistry/backoffice/internal/masterdata/dividends"
	"github.com/shareregistry/backoffice/internal/masterdata/folios"
	"github.com/shareregistry/backoffice/internal/masterdata/legalheirs"
	"github.com/shareregistry/backoffice/internal/masterdata/namechanges"
	"github.com/shareregistry/backoffice/internal/masterdata/prices"
	"github.com/shareregistry/backoffice/internal/masterdata/projects"
	"github.com/shareregistry/backoffice/internal/masterdata/sharecertificates"
	"github.com/shareregistry/backoffice/internal/masterdata/shareholders"
	"github.com/shareregistry/backoffice/internal/platform/crud"
	"github.com/shareregistry/backoffice/internal/platform/db"
	"github.com/shareregistry/backoffice/internal/tracker/communication"
	"github.com/shareregistry/backoffice/internal/tracker/iepf"
	"github.com/shareregistry/backoffice/internal/tracker/payment"
	"github.com/shareregistry/backoffice/internal/tracker/paymentstage"
)

// Stores holds one store per entity.
type Stores struct {
	Projects          crud.Store[projects.Project]
	Companies         crud.Store[companies.CompanyMaster]
	NameChanges       crud.Store[namechanges.CompanyNameChange]
	Prices            crud.Store[prices.CompanyPrice]
	CorporateActions  crud.Store[corporateactions.CorporateMaster]
	Dividends         crud.Store[dividends.DividendMaster]
	ShareCertificates crud.Store[sharecertificates.ShareCertificateMaster]
	Folios            crud.Store[folios.Folio]
	ShareHolders      crud.Store[shareholders.ShareHolderDetail]
	LegalHeirs        crud.Store[legalheirs.LegalHeirDetail]
	Communications    crud.Store[communication.CommunicationTracker]
	Iepf              crud.Store[iepf.IepfTracker]
	Payments          crud.Store[payment.PaymentTracker]
	PaymentStages     crud.Store[paymentstage.PaymentTrackerStage]
}

// PostgresStores builds every store on one connection.
func PostgresStores(conn db.DBTX) Stores {
	return Stores{
		Projects:          projects.NewRepository(conn),
		Companies:         companies.NewRepository(conn),
		NameChanges:       namechanges.NewRepository(conn),
		Prices:            prices.NewRepository(conn),
		CorporateActions:  corporateactions.NewRepository(conn),
		Dividends:         dividends.NewRepository(conn),
		ShareCertificates: sharecertificates.NewRepository(conn),
		Folios:            folios.NewRepository(conn),
		ShareHolders:      shareholders.NewRepository(conn),
		LegalHeirs:        legalheirs.NewRepository(conn),
		Communications:    communication.NewRepository(conn),
		Iepf:              iepf.NewRepository(conn),
		Payments:          payment.NewRepository(conn),
		PaymentStages:     paymentstage.NewRepository(conn),
	}
}

// Options tune module wiring.
type Options struct {
	// Now is the clock holdings are consolidated against.
	Now func() time.Time
	// HoldingConcurrency bounds concurrent certificate hydration.
	HoldingConcurrency int
}

// Registry is every wired module.
type Registry struct {
	Stores Stores

	Projects          *projects.Module
	Companies         *companies.Module
	NameChanges       *namechanges.Module
	Prices            *prices.Module
	CorporateActions  *corporateactions.Module
	Dividends         *dividends.Module
	ShareCertificates *sharecertificates.Module
	Folios            *folios.Module
	ShareHolders      *shareholders.Module
	LegalHeirs        *legalheirs.Module
	Communications    *communication.Module
	Iepf              *iepf.Module
	Payments          *payment.Module
	PaymentStages     *paymentstage.Module
}

// New wires the modules.
func New(st Stores, deps crud.HandlerDeps, opts Options) *Registry {
	projectIDs := crud.MissingIn[projects.Project](st.Projects)
	companyIDs := crud.MissingIn[companies.CompanyMaster](st.Companies)

	hydrator := sharecertificates.NewHydrator(sharecertificates.Sources{
		Folios:    st.Folios,
		Actions:   st.CorporateActions,
		Prices:    st.Prices,
		Companies: st.Companies,
		Renames:   st.NameChanges,
	}, opts.Now, opts.HoldingConcurrency)

	return &Registry{
		Stores:           st,
		Projects:         projects.New(st.Projects, deps),
		Companies:        companies.New(st.Companies, st.NameChanges, deps),
		NameChanges:      namechanges.New(st.NameChanges, companyIDs, deps),
		Prices:           prices.New(st.Prices, companyIDs, deps),
		CorporateActions: corporateactions.New(st.CorporateActions, companyIDs, deps),
		Dividends:        dividends.New(st.Dividends, companyIDs, deps),
		ShareCertificates: sharecertificates.New(st.ShareCertificates, sharecertificates.Refs{
			Projects:  projectIDs,
			Companies: companyIDs,
		}, hydrator, deps),
		Folios:         folios.New(st.Folios, crud.MissingIn[sharecertificates.ShareCertificateMaster](st.ShareCertificates), deps),
		ShareHolders:   shareholders.New(st.ShareHolders, projectIDs, deps),
		LegalHeirs:     legalheirs.New(st.LegalHeirs, projectIDs, deps),
		Communications: communication.New(st.Communications, projectIDs, st.Folios, deps),
		Iepf: iepf.New(st.Iepf, iepf.Sources{
			Projects:     projectIDs,
			ShareHolders: st.ShareHolders,
			LegalHeirs:   st.LegalHeirs,
		}, deps),
		Payments:      payment.New(st.Payments, projectIDs, deps),
		PaymentStages: paymentstage.New(st.PaymentStages, crud.MissingIn[payment.PaymentTracker](st.Payments), deps),
	}
}

// Routes returns every module handler.
func (r *Registry) Routes() []crud.Routes {
	return []crud.Routes{
		r.Projects.Handler,
		r.Companies.Handler,
		r.NameChanges.Handler,
		r.Prices.Handler,
		r.CorporateActions.Handler,
		r.Dividends.Handler,
		r.ShareCertificates.Handler,
		r.Folios.Handler,
		r.ShareHolders.Handler,
		r.LegalHeirs.Handler,
		r.Communications.Handler,
		r.Iepf.Handler,
		r.Payments.Handler,
		r.PaymentStages.Handler,
	}
}

// Transfers returns the import/export surface of every module keyed by slug.
func (r *Registry) Transfers() map[string]crud.Transfer {
	out := map[string]crud.Transfer{}
	for _, t := range []crud.Transfer{
		r.Projects.Handler,
		r.Companies.Handler,
		r.NameChanges.Handler,
		r.Prices.Handler,
		r.CorporateActions.Handler,
		r.Dividends.Handler,
		r.ShareCertificates.Handler,
		r.Folios.Handler,
		r.ShareHolders.Handler,
		r.LegalHeirs.Handler,
		r.Communications.Handler,
		r.Iepf.Handler,
		r.Payments.Handler,
		r.PaymentStages.Handler,
	} {
		out[t.Slug()] = t
	}
	return out
}

// DocumentSources exposes the hydrated services documents are built from.
func (r *Registry) DocumentSources() documents.Sources {
	return documents.Sources{
		Projects:   r.Projects.Service,
		LegalHeirs: r.LegalHeirs.Service,
		Iepf:       r.Iepf.Service,
		Payments:   r.Payments.Service,
		Stages:     r.PaymentStages.Service,
	}
}

// Slugs lists the module slugs in sorted order.
func (r *Registry) Slugs() []string {
	transfers := r.Transfers()
	out := make([]string, 0, len(transfers))
	for slug := range transfers {
		out = append(out, slug)
	}
	sort.Strings(out)
	return out
}
