// Package dividends is the dividend master of each company.
package dividends

import (
	"time"

	"github.com/shareregistry/backoffice/internal/platform/crud"
)

// DividendMaster is one declared dividend.
type DividendMaster struct {
	ID               int64     `json:"id" db:"id"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time `json:"updatedAt" db:"updated_at"`
	CompanyID        int64     `json:"companyID" db:"company_id"`
	RecordDate       time.Time `json:"recordDate" db:"record_date"`
	FinancialYear    string    `json:"financialYear" db:"financial_year"`
	DividendPerShare float64   `json:"dividendPerShare" db:"dividend_per_share"`
	Remarks          string    `json:"remarks" db:"remarks"`
}

func (d DividendMaster) RecordID() int64 { return d.ID }

var Schema = crud.Schema[DividendMaster]{
	Table:   "dividend_masters",
	Columns: []string{"company_id", "record_date", "financial_year", "dividend_per_share", "remarks"},
	Values: func(d DividendMaster) []any {
		return []any{d.CompanyID, d.RecordDate, d.FinancialYear, d.DividendPerShare, d.Remarks}
	},
	ScopeColumn:   "company_id",
	SearchColumns: []string{"financial_year", "remarks"},
	OrderBy:       "record_date ASC, id ASC",
}
