package sharecertificates

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/shareregistry/backoffice/internal/holding"
	"github.com/shareregistry/backoffice/internal/masterdata/companies"
	"github.com/shareregistry/backoffice/internal/masterdata/corporateactions"
	"github.com/shareregistry/backoffice/internal/masterdata/folios"
	"github.com/shareregistry/backoffice/internal/masterdata/namechanges"
	"github.com/shareregistry/backoffice/internal/masterdata/prices"
	"github.com/shareregistry/backoffice/internal/platform/crud"
)

// DefaultConcurrency bounds the per-company and per-certificate fetches.
const DefaultConcurrency = 8

// Sources are the stores a certificate is hydrated from.
type Sources struct {
	Folios    crud.Store[folios.Folio]
	Actions   crud.Store[corporateactions.CorporateMaster]
	Prices    crud.Store[prices.CompanyPrice]
	Companies crud.Store[companies.CompanyMaster]
	Renames   crud.Store[namechanges.CompanyNameChange]
}

// Hydrator fills the derived fields of certificates.
type Hydrator struct {
	src         Sources
	now         func() time.Time
	concurrency int
}

// NewHydrator builds a Hydrator. now defaults to time.Now.
func NewHydrator(src Sources, now func() time.Time, concurrency int) *Hydrator {
	if now == nil {
		now = time.Now
	}
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Hydrator{src: src, now: now, concurrency: concurrency}
}

type market struct {
	actions []holding.Action
	price   *holding.Price
}

// Holdings computes the consolidated totals of every certificate. Company
// data is fetched once per distinct company, then folios once per
// certificate; each goroutine writes only its own slot.
func (h *Hydrator) Holdings(ctx context.Context, items []ShareCertificateMaster) error {
	if len(items) == 0 {
		return nil
	}
	now := h.now()

	companyIDs := make([]int64, 0, len(items))
	for _, it := range items {
		companyIDs = append(companyIDs, it.CompanyID)
	}
	companyIDs = crud.UniqueIDs(companyIDs)
	markets := make([]market, len(companyIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(h.concurrency)
	for i, id := range companyIDs {
		g.Go(func() error {
			m, err := h.market(gctx, id)
			if err != nil {
				return fmt.Errorf("company %d: %w", id, err)
			}
			markets[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	byCompany := make(map[int64]market, len(companyIDs))
	for i, id := range companyIDs {
		byCompany[id] = markets[i]
	}

	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(h.concurrency)
	for i := range items {
		g.Go(func() error {
			holders, err := h.src.Folios.All(gctx, crud.Scoped(items[i].ID))
			if err != nil {
				return fmt.Errorf("certificate %d folios: %w", items[i].ID, err)
			}
			m := byCompany[items[i].CompanyID]
			shares := make([]int64, len(holders))
			for j, f := range holders {
				shares[j] = holding.Consolidate(f.Shares, f.HoldingDate, m.actions, now)
			}
			v := holding.Valuate(shares, m.price)
			items[i].TotalShares = v.TotalShares
			items[i].TotalValuationNse = v.TotalValuationNse
			items[i].TotalValuationBse = v.TotalValuationBse
			return nil
		})
	}
	return g.Wait()
}

func (h *Hydrator) market(ctx context.Context, companyID int64) (market, error) {
	rows, err := h.src.Actions.All(ctx, crud.Scoped(companyID))
	if err != nil {
		return market{}, err
	}
	price, err := prices.LatestCloses(ctx, h.src.Prices, companyID)
	if err != nil {
		return market{}, err
	}
	return market{actions: corporateactions.Actions(rows), price: price}, nil
}

// Detail hydrates a single certificate with its totals and its company,
// including the company's current name change.
func (h *Hydrator) Detail(ctx context.Context, item *ShareCertificateMaster) error {
	one := []ShareCertificateMaster{*item}
	if err := h.Holdings(ctx, one); err != nil {
		return err
	}
	*item = one[0]

	company, err := h.src.Companies.FindByID(ctx, item.CompanyID)
	if err != nil {
		return fmt.Errorf("certificate %d company: %w", item.ID, err)
	}
	if err := companies.AttachCurrentName(ctx, h.src.Renames, &company); err != nil {
		return err
	}
	item.CompanyMaster = &company
	return nil
}
