// Package registrytest builds registry stores on crudtest.Memory.
package registrytest

import (
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
	"github.com/shareregistry/backoffice/internal/platform/crud/crudtest"
	"github.com/shareregistry/backoffice/internal/registry"
	"github.com/shareregistry/backoffice/internal/tracker/communication"
	"github.com/shareregistry/backoffice/internal/tracker/iepf"
	"github.com/shareregistry/backoffice/internal/tracker/payment"
	"github.com/shareregistry/backoffice/internal/tracker/paymentstage"
)

// Stores returns empty in-memory stores ordered like their tables.
func Stores() registry.Stores {
	return registry.Stores{
		Projects: crudtest.NewMemory(crudtest.Options[projects.Project]{
			SetID: func(p *projects.Project, id int64) { p.ID = id },
			Text:  func(p projects.Project) []string { return []string{p.Name, p.Description} },
		}),
		Companies: crudtest.NewMemory(crudtest.Options[companies.CompanyMaster]{
			SetID: func(c *companies.CompanyMaster, id int64) { c.ID = id },
			Text: func(c companies.CompanyMaster) []string {
				return []string{c.Name, c.ISIN, c.CIN, c.NseSymbol, c.BseCode}
			},
			Less: func(a, b companies.CompanyMaster) bool { return a.Name < b.Name },
		}),
		NameChanges: crudtest.NewMemory(crudtest.Options[namechanges.CompanyNameChange]{
			SetID:    func(c *namechanges.CompanyNameChange, id int64) { c.ID = id },
			ScopeOf:  func(c namechanges.CompanyNameChange) int64 { return c.CompanyID },
			SetScope: func(c *namechanges.CompanyNameChange, id int64) { c.CompanyID = id },
			Text: func(c namechanges.CompanyNameChange) []string {
				return []string{c.PreviousName, c.NewName, c.Remarks}
			},
			Less: func(a, b namechanges.CompanyNameChange) bool {
				if !a.EffectiveDate.Equal(b.EffectiveDate) {
					return a.EffectiveDate.After(b.EffectiveDate)
				}
				return a.ID > b.ID
			},
		}),
		Prices: crudtest.NewMemory(crudtest.Options[prices.CompanyPrice]{
			SetID:    func(p *prices.CompanyPrice, id int64) { p.ID = id },
			ScopeOf:  func(p prices.CompanyPrice) int64 { return p.CompanyID },
			SetScope: func(p *prices.CompanyPrice, id int64) { p.CompanyID = id },
			Text:     func(p prices.CompanyPrice) []string { return []string{p.PriceDate.Format("2006-01-02")} },
			Less: func(a, b prices.CompanyPrice) bool {
				if !a.PriceDate.Equal(b.PriceDate) {
					return a.PriceDate.After(b.PriceDate)
				}
				return a.ID > b.ID
			},
		}),
		CorporateActions: crudtest.NewMemory(crudtest.Options[corporateactions.CorporateMaster]{
			SetID:    func(c *corporateactions.CorporateMaster, id int64) { c.ID = id },
			ScopeOf:  func(c corporateactions.CorporateMaster) int64 { return c.CompanyID },
			SetScope: func(c *corporateactions.CorporateMaster, id int64) { c.CompanyID = id },
			Text: func(c corporateactions.CorporateMaster) []string {
				return []string{string(c.ActionType), c.Remarks}
			},
			Less: func(a, b corporateactions.CorporateMaster) bool {
				if !a.ActionDate.Equal(b.ActionDate) {
					return a.ActionDate.Before(b.ActionDate)
				}
				return a.ID < b.ID
			},
		}),
		Dividends: crudtest.NewMemory(crudtest.Options[dividends.DividendMaster]{
			SetID:    func(d *dividends.DividendMaster, id int64) { d.ID = id },
			ScopeOf:  func(d dividends.DividendMaster) int64 { return d.CompanyID },
			SetScope: func(d *dividends.DividendMaster, id int64) { d.CompanyID = id },
			Text:     func(d dividends.DividendMaster) []string { return []string{d.FinancialYear, d.Remarks} },
			Less: func(a, b dividends.DividendMaster) bool {
				if !a.RecordDate.Equal(b.RecordDate) {
					return a.RecordDate.Before(b.RecordDate)
				}
				return a.ID < b.ID
			},
		}),
		ShareCertificates: crudtest.NewMemory(crudtest.Options[sharecertificates.ShareCertificateMaster]{
			SetID:    func(s *sharecertificates.ShareCertificateMaster, id int64) { s.ID = id },
			ScopeOf:  func(s sharecertificates.ShareCertificateMaster) int64 { return s.ProjectID },
			SetScope: func(s *sharecertificates.ShareCertificateMaster, id int64) { s.ProjectID = id },
			Text: func(s sharecertificates.ShareCertificateMaster) []string {
				return []string{s.InstrumentType, s.Remarks}
			},
		}),
		Folios: crudtest.NewMemory(crudtest.Options[folios.Folio]{
			SetID:    func(f *folios.Folio, id int64) { f.ID = id },
			ScopeOf:  func(f folios.Folio) int64 { return f.ShareCertificateMasterID },
			SetScope: func(f *folios.Folio, id int64) { f.ShareCertificateMasterID = id },
			Text: func(f folios.Folio) []string {
				return []string{f.FolioNumber, f.HolderName, f.JointHolders, f.CertificateNumbers}
			},
			Less: func(a, b folios.Folio) bool { return a.ID < b.ID },
		}),
		ShareHolders: crudtest.NewMemory(crudtest.Options[shareholders.ShareHolderDetail]{
			SetID:    func(s *shareholders.ShareHolderDetail, id int64) { s.ID = id },
			ScopeOf:  func(s shareholders.ShareHolderDetail) int64 { return s.ProjectID },
			SetScope: func(s *shareholders.ShareHolderDetail, id int64) { s.ProjectID = id },
			Text: func(s shareholders.ShareHolderDetail) []string {
				return []string{s.Name, s.PAN, s.Email, s.FolioNumber}
			},
		}),
		LegalHeirs: crudtest.NewMemory(crudtest.Options[legalheirs.LegalHeirDetail]{
			SetID:    func(l *legalheirs.LegalHeirDetail, id int64) { l.ID = id },
			ScopeOf:  func(l legalheirs.LegalHeirDetail) int64 { return l.ProjectID },
			SetScope: func(l *legalheirs.LegalHeirDetail, id int64) { l.ProjectID = id },
			Text: func(l legalheirs.LegalHeirDetail) []string {
				return []string{l.ClaimantName, l.ClaimantPan, l.Relationship, l.GuardianName}
			},
		}),
		Communications: crudtest.NewMemory(crudtest.Options[communication.CommunicationTracker]{
			SetID:    func(c *communication.CommunicationTracker, id int64) { c.ID = id },
			ScopeOf:  func(c communication.CommunicationTracker) int64 { return c.ProjectID },
			SetScope: func(c *communication.CommunicationTracker, id int64) { c.ProjectID = id },
			Text:     func(c communication.CommunicationTracker) []string { return []string{c.Stage, c.Comments} },
		}),
		Iepf: crudtest.NewMemory(crudtest.Options[iepf.IepfTracker]{
			SetID:    func(t *iepf.IepfTracker, id int64) { t.ID = id },
			ScopeOf:  func(t iepf.IepfTracker) int64 { return t.ProjectID },
			SetScope: func(t *iepf.IepfTracker, id int64) { t.ProjectID = id },
			Text:     func(t iepf.IepfTracker) []string { return []string{t.SrnNumber, t.Status, t.Remarks} },
		}),
		Payments: crudtest.NewMemory(crudtest.Options[payment.PaymentTracker]{
			SetID:    func(p *payment.PaymentTracker, id int64) { p.ID = id },
			ScopeOf:  func(p payment.PaymentTracker) int64 { return p.ProjectID },
			SetScope: func(p *payment.PaymentTracker, id int64) { p.ProjectID = id },
			Text:     func(p payment.PaymentTracker) []string { return []string{p.Remarks} },
		}),
		PaymentStages: crudtest.NewMemory(crudtest.Options[paymentstage.PaymentTrackerStage]{
			SetID:    func(s *paymentstage.PaymentTrackerStage, id int64) { s.ID = id },
			ScopeOf:  func(s paymentstage.PaymentTrackerStage) int64 { return s.PaymentTrackerID },
			SetScope: func(s *paymentstage.PaymentTrackerStage, id int64) { s.PaymentTrackerID = id },
			Text: func(s paymentstage.PaymentTrackerStage) []string {
				return []string{s.StageName, s.Status, s.InvoiceNumber, s.Remarks}
			},
		}),
	}
}
