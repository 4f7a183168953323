// Package folios holds the holder folios registered under a share certificate master.
package folios

import (
	"time"

	"github.com/shareregistry/backoffice/internal/platform/crud"
)

// Folio is one shareholder's holding. Corporate actions dated after
// HoldingDate apply to Shares; a nil HoldingDate means the count predates
// every action.
type Folio struct {
	ID                       int64      `json:"id" db:"id"`
	CreatedAt                time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt                time.Time  `json:"updatedAt" db:"updated_at"`
	ShareCertificateMasterID int64      `json:"shareCertificateMasterID" db:"share_certificate_master_id"`
	FolioNumber              string     `json:"folioNumber" db:"folio_number"`
	HolderName               string     `json:"holderName" db:"holder_name"`
	JointHolders             string     `json:"jointHolders" db:"joint_holders"`
	Shares                   int64      `json:"shares" db:"shares"`
	HoldingDate              *time.Time `json:"holdingDate" db:"holding_date"`
	CertificateNumbers       string     `json:"certificateNumbers" db:"certificate_numbers"`
	DistinctiveFrom          int64      `json:"distinctiveFrom" db:"distinctive_from"`
	DistinctiveTo            int64      `json:"distinctiveTo" db:"distinctive_to"`
}

func (f Folio) RecordID() int64 { return f.ID }

var Schema = crud.Schema[Folio]{
	Table: "folios",
	Columns: []string{
		"share_certificate_master_id", "folio_number", "holder_name", "joint_holders", "shares",
		"holding_date", "certificate_numbers", "distinctive_from", "distinctive_to",
	},
	Values: func(f Folio) []any {
		return []any{
			f.ShareCertificateMasterID, f.FolioNumber, f.HolderName, f.JointHolders, f.Shares,
			f.HoldingDate, f.CertificateNumbers, f.DistinctiveFrom, f.DistinctiveTo,
		}
	},
	ScopeColumn:   "share_certificate_master_id",
	SearchColumns: []string{"folio_number", "holder_name", "joint_holders", "certificate_numbers"},
	OrderBy:       "id ASC",
}
