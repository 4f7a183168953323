package prices

import (
	"context"
	"sort"

	"github.com/shareregistry/backoffice/internal/holding"
	"github.com/shareregistry/backoffice/internal/platform/crud"
	"github.com/shareregistry/backoffice/internal/platform/db"
)

const Slug = "company-price"

type Module = crud.Module[CompanyPrice, Payload]

func NewRepository(conn db.DBTX) *crud.PGRepository[CompanyPrice] {
	return crud.NewPGRepository(conn, Schema)
}

func Definition(companies crud.LookupFunc) crud.Definition[CompanyPrice, Payload] {
	return crud.Definition[CompanyPrice, Payload]{
		Resource: "company price",
		Build:    build,
		SetScope: func(p *Payload, id int64) { p.CompanyID = id },
		ScopeOf:  func(c CompanyPrice) int64 { return c.CompanyID },
		References: []crud.Reference[Payload]{{
			Field:    "companyID",
			Resource: "company",
			Scope:    true,
			IDs:      func(p Payload) []int64 { return []int64{p.CompanyID} },
			Missing:  companies,
		}},
	}
}

func New(store crud.Store[CompanyPrice], companies crud.LookupFunc, deps crud.HandlerDeps) *Module {
	return crud.NewModule(store, Definition(companies), crud.HandlerConfig{
		Slug:    Slug,
		Columns: Columns,
		Import:  true,
	}, deps)
}

// LatestCloses returns the close of each exchange from the newest row that
// quotes it, dated by the newest row overall. It returns nil when the
// company has no prices.
func LatestCloses(ctx context.Context, store crud.Store[CompanyPrice], companyID int64) (*holding.Price, error) {
	rows, err := store.All(ctx, crud.Scoped(companyID))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].PriceDate.Equal(rows[j].PriceDate) {
			return rows[i].PriceDate.After(rows[j].PriceDate)
		}
		return rows[i].ID > rows[j].ID
	})
	price := rows[0].Holding()
	for _, p := range rows[1:] {
		if price.NSE != nil && price.BSE != nil {
			break
		}
		if price.NSE == nil && p.NseClose != nil {
			price.NSE = p.NseClose
		}
		if price.BSE == nil && p.BseClose != nil {
			price.BSE = p.BseClose
		}
	}
	return price, nil
}
