package dividends

import (
	"strings"
	"time"

	"github.com/shareregistry/backoffice/internal/platform/crud"
)

type Payload struct {
	CompanyID        int64     `json:"companyID" validate:"required,gt=0"`
	RecordDate       time.Time `json:"recordDate" validate:"required"`
	FinancialYear    string    `json:"financialYear" validate:"required,financial_year"`
	DividendPerShare float64   `json:"dividendPerShare" validate:"gt=0"`
	Remarks          string    `json:"remarks" validate:"max=1000"`
}

func normalize(p *Payload) {
	p.FinancialYear = strings.TrimSpace(p.FinancialYear)
}

func build(p Payload) DividendMaster {
	return DividendMaster{
		CompanyID:        p.CompanyID,
		RecordDate:       p.RecordDate,
		FinancialYear:    p.FinancialYear,
		DividendPerShare: p.DividendPerShare,
		Remarks:          p.Remarks,
	}
}

var Columns = []crud.Column{
	{Key: "companyID", Header: "Company ID", Kind: crud.KindInt},
	{Key: "recordDate", Header: "Record Date", Kind: crud.KindDate},
	{Key: "financialYear", Header: "Financial Year"},
	{Key: "dividendPerShare", Header: "Dividend Per Share", Kind: crud.KindFloat},
	{Key: "remarks", Header: "Remarks"},
}
