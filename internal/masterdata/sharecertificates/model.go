// Package sharecertificates is the share certificate master of a project:
// the instrument a set of folios hold in one company.
package sharecertificates

import (
	"time"

	"github.com/shareregistry/backoffice/internal/masterdata/companies"
	"github.com/shareregistry/backoffice/internal/platform/crud"
)

// InstrumentTypes accepted for InstrumentType.
var InstrumentTypes = []string{"EQUITY", "PREFERENCE", "DEBENTURE", "BOND"}

// ShareCertificateMaster is stored with its project and company. The totals
// are derived on read from folios, corporate actions and the latest price.
type ShareCertificateMaster struct {
	ID             int64     `json:"id" db:"id"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
	ProjectID      int64     `json:"projectID" db:"project_id"`
	CompanyID      int64     `json:"companyID" db:"company_id"`
	InstrumentType string    `json:"instrumentType" db:"instrument_type"`
	FaceValue      float64   `json:"faceValue" db:"face_value"`
	Remarks        string    `json:"remarks" db:"remarks"`

	TotalShares       int64                    `json:"totalShares" db:"-"`
	TotalValuationNse float64                  `json:"totalValuationNse" db:"-"`
	TotalValuationBse float64                  `json:"totalValuationBse" db:"-"`
	CompanyMaster     *companies.CompanyMaster `json:"companyMaster,omitempty" db:"-"`
}

func (s ShareCertificateMaster) RecordID() int64 { return s.ID }

var Schema = crud.Schema[ShareCertificateMaster]{
	Table:   "share_certificate_masters",
	Columns: []string{"project_id", "company_id", "instrument_type", "face_value", "remarks"},
	Values: func(s ShareCertificateMaster) []any {
		return []any{s.ProjectID, s.CompanyID, s.InstrumentType, s.FaceValue, s.Remarks}
	},
	ScopeColumn:   "project_id",
	SearchColumns: []string{"instrument_type", "remarks"},
}
