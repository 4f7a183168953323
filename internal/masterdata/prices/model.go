// Package prices stores daily closing prices of companies on NSE and BSE.
package prices

import (
	"time"

	"github.com/shareregistry/backoffice/internal/holding"
	"github.com/shareregistry/backoffice/internal/platform/crud"
)

// CompanyPrice is one closing-price snapshot. A nil close means the
// exchange had no quote that day.
type CompanyPrice struct {
	ID        int64     `json:"id" db:"id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	CompanyID int64     `json:"companyID" db:"company_id"`
	PriceDate time.Time `json:"priceDate" db:"price_date"`
	NseClose  *float64  `json:"nseClose" db:"nse_close"`
	BseClose  *float64  `json:"bseClose" db:"bse_close"`
}

func (p CompanyPrice) RecordID() int64 { return p.ID }

// Holding converts the row for valuation.
func (p CompanyPrice) Holding() *holding.Price {
	return &holding.Price{Date: p.PriceDate, NSE: p.NseClose, BSE: p.BseClose}
}

var Schema = crud.Schema[CompanyPrice]{
	Table:   "company_prices",
	Columns: []string{"company_id", "price_date", "nse_close", "bse_close"},
	Values: func(p CompanyPrice) []any {
		return []any{p.CompanyID, p.PriceDate, p.NseClose, p.BseClose}
	},
	ScopeColumn:   "company_id",
	SearchColumns: []string{"price_date"},
	OrderBy:       "price_date DESC, id DESC",
}
