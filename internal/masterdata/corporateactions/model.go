// Package corporateactions is the corporate master: bonus, split, rights,
// consolidation and equity events of a company.
package corporateactions

import (
	"time"

	"github.com/shareregistry/backoffice/internal/holding"
	"github.com/shareregistry/backoffice/internal/platform/crud"
)

// CorporateMaster is one corporate action, ratio numerator:denominator.
type CorporateMaster struct {
	ID          int64              `json:"id" db:"id"`
	CreatedAt   time.Time          `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time          `json:"updatedAt" db:"updated_at"`
	CompanyID   int64              `json:"companyID" db:"company_id"`
	ActionType  holding.ActionType `json:"actionType" db:"action_type"`
	ActionDate  time.Time          `json:"actionDate" db:"action_date"`
	Numerator   int64              `json:"numerator" db:"numerator"`
	Denominator int64              `json:"denominator" db:"denominator"`
	Remarks     string             `json:"remarks" db:"remarks"`
}

func (c CorporateMaster) RecordID() int64 { return c.ID }

var Schema = crud.Schema[CorporateMaster]{
	Table:   "corporate_masters",
	Columns: []string{"company_id", "action_type", "action_date", "numerator", "denominator", "remarks"},
	Values: func(c CorporateMaster) []any {
		return []any{c.CompanyID, string(c.ActionType), c.ActionDate, c.Numerator, c.Denominator, c.Remarks}
	},
	ScopeColumn:   "company_id",
	SearchColumns: []string{"action_type", "remarks"},
	OrderBy:       "action_date ASC, id ASC",
}

// Actions converts rows for holding consolidation.
func Actions(rows []CorporateMaster) []holding.Action {
	out := make([]holding.Action, len(rows))
	for i, r := range rows {
		out[i] = holding.Action{
			ID:          r.ID,
			Type:        r.ActionType,
			Date:        r.ActionDate,
			Numerator:   r.Numerator,
			Denominator: r.Denominator,
		}
	}
	return out
}
