// Package companies is the company master: listed issuers whose shares the
// registry services.
package companies

import (
	"time"

	"github.com/shareregistry/backoffice/internal/masterdata/namechanges"
	"github.com/shareregistry/backoffice/internal/platform/crud"
)

// CompanyMaster is one listed company.
type CompanyMaster struct {
	ID        int64     `json:"id" db:"id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	Name      string    `json:"name" db:"name"`
	ISIN      string    `json:"isin" db:"isin"`
	CIN       string    `json:"cin" db:"cin"`
	NseSymbol string    `json:"nseSymbol" db:"nse_symbol"`
	BseCode   string    `json:"bseCode" db:"bse_code"`
	FaceValue float64   `json:"faceValue" db:"face_value"`

	// CurrentNameChangeMasters is the latest rename, filled on detail reads.
	CurrentNameChangeMasters *namechanges.CompanyNameChange `json:"currentNameChangeMasters" db:"-"`
}

func (c CompanyMaster) RecordID() int64 { return c.ID }

var Schema = crud.Schema[CompanyMaster]{
	Table:   "company_masters",
	Columns: []string{"name", "isin", "cin", "nse_symbol", "bse_code", "face_value"},
	Values: func(c CompanyMaster) []any {
		return []any{c.Name, c.ISIN, c.CIN, c.NseSymbol, c.BseCode, c.FaceValue}
	},
	SearchColumns: []string{"name", "isin", "cin", "nse_symbol", "bse_code"},
	OrderBy:       "name ASC, id ASC",
}
