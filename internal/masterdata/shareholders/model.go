// Package shareholders is the share holder detail register of a project.
package shareholders

import (
	"time"

	"github.com/shareregistry/backoffice/internal/platform/crud"
)

type ShareHolderDetail struct {
	ID          int64     `json:"id" db:"id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
	ProjectID   int64     `json:"projectID" db:"project_id"`
	Name        string    `json:"name" db:"name"`
	PAN         string    `json:"pan" db:"pan"`
	Aadhaar     string    `json:"aadhaar" db:"aadhaar"`
	Address     string    `json:"address" db:"address"`
	Email       string    `json:"email" db:"email"`
	Phone       string    `json:"phone" db:"phone"`
	FolioNumber string    `json:"folioNumber" db:"folio_number"`
}

func (s ShareHolderDetail) RecordID() int64 { return s.ID }

var Schema = crud.Schema[ShareHolderDetail]{
	Table:   "share_holder_details",
	Columns: []string{"project_id", "name", "pan", "aadhaar", "address", "email", "phone", "folio_number"},
	Values: func(s ShareHolderDetail) []any {
		return []any{s.ProjectID, s.Name, s.PAN, s.Aadhaar, s.Address, s.Email, s.Phone, s.FolioNumber}
	},
	ScopeColumn:   "project_id",
	SearchColumns: []string{"name", "pan", "email", "folio_number"},
}
