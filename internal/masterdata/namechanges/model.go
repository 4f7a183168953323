// Package namechanges records the renaming history of listed companies.
package namechanges

import (
	"time"

	"github.com/shareregistry/backoffice/internal/platform/crud"
)

// CompanyNameChange is one rename of a company.
type CompanyNameChange struct {
	ID            int64     `json:"id" db:"id"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
	CompanyID     int64     `json:"companyID" db:"company_id"`
	PreviousName  string    `json:"previousName" db:"previous_name"`
	NewName       string    `json:"newName" db:"new_name"`
	EffectiveDate time.Time `json:"effectiveDate" db:"effective_date"`
	Remarks       string    `json:"remarks" db:"remarks"`
}

func (c CompanyNameChange) RecordID() int64 { return c.ID }

// Schema maps CompanyNameChange onto company_name_changes. Newest first.
var Schema = crud.Schema[CompanyNameChange]{
	Table:   "company_name_changes",
	Columns: []string{"company_id", "previous_name", "new_name", "effective_date", "remarks"},
	Values: func(c CompanyNameChange) []any {
		return []any{c.CompanyID, c.PreviousName, c.NewName, c.EffectiveDate, c.Remarks}
	},
	ScopeColumn:   "company_id",
	SearchColumns: []string{"previous_name", "new_name", "remarks"},
	OrderBy:       "effective_date DESC, id DESC",
}
