// Package iepf tracks claims filed with the Investor Education and
// Protection Fund for a project.
package iepf

import (
	"time"

	"github.com/shareregistry/backoffice/internal/masterdata/legalheirs"
	"github.com/shareregistry/backoffice/internal/masterdata/shareholders"
	"github.com/shareregistry/backoffice/internal/platform/crud"
)

// Claim statuses.
const (
	StatusDraft    = "DRAFT"
	StatusFiled    = "FILED"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

type IepfTracker struct {
	ID                   int64      `json:"id" db:"id"`
	CreatedAt            time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt            time.Time  `json:"updatedAt" db:"updated_at"`
	ProjectID            int64      `json:"projectID" db:"project_id"`
	ShareHolderDetailIDs []int64    `json:"shareHolderDetailIDs" db:"share_holder_detail_ids"`
	LegalHeirDetailIDs   []int64    `json:"legalHeirDetailIDs" db:"legal_heir_detail_ids"`
	SrnNumber            string     `json:"srnNumber" db:"srn_number"`
	Status               string     `json:"status" db:"status"`
	FilingDate           *time.Time `json:"filingDate" db:"filing_date"`
	ApprovalDate         *time.Time `json:"approvalDate" db:"approval_date"`
	Remarks              string     `json:"remarks" db:"remarks"`

	ShareHolderDetails []shareholders.ShareHolderDetail `json:"shareHolderDetails" db:"-"`
	LegalHeirDetails   []legalheirs.LegalHeirDetail     `json:"legalHeirDetails" db:"-"`
}

func (t IepfTracker) RecordID() int64 { return t.ID }

var Schema = crud.Schema[IepfTracker]{
	Table: "iepf_trackers",
	Columns: []string{
		"project_id", "share_holder_detail_ids", "legal_heir_detail_ids", "srn_number", "status",
		"filing_date", "approval_date", "remarks",
	},
	Values: func(t IepfTracker) []any {
		return []any{
			t.ProjectID, t.ShareHolderDetailIDs, t.LegalHeirDetailIDs, t.SrnNumber, t.Status,
			t.FilingDate, t.ApprovalDate, t.Remarks,
		}
	},
	ScopeColumn:   "project_id",
	SearchColumns: []string{"srn_number", "status", "remarks"},
}
