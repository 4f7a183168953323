package iepf

import (
	"time"

	"github.com/shareregistry/backoffice/internal/platform/crud"
)

type Payload struct {
	ProjectID            int64      `json:"projectID" validate:"required,gt=0"`
	ShareHolderDetailIDs []int64    `json:"shareHolderDetailIDs" validate:"omitempty,dive,gt=0"`
	LegalHeirDetailIDs   []int64    `json:"legalHeirDetailIDs" validate:"omitempty,dive,gt=0"`
	SrnNumber            string     `json:"srnNumber" validate:"omitempty,alphanum,max=20"`
	Status               string     `json:"status" validate:"omitempty,oneof=DRAFT FILED APPROVED REJECTED"`
	FilingDate           *time.Time `json:"filingDate"`
	ApprovalDate         *time.Time `json:"approvalDate"`
	Remarks              string     `json:"remarks" validate:"max=2000"`
}

func build(p Payload) IepfTracker {
	status := p.Status
	if status == "" {
		status = StatusDraft
	}
	return IepfTracker{
		ProjectID:            p.ProjectID,
		ShareHolderDetailIDs: crud.UniqueIDs(p.ShareHolderDetailIDs),
		LegalHeirDetailIDs:   crud.UniqueIDs(p.LegalHeirDetailIDs),
		SrnNumber:            p.SrnNumber,
		Status:               status,
		FilingDate:           p.FilingDate,
		ApprovalDate:         p.ApprovalDate,
		Remarks:              p.Remarks,
	}
}

var Columns = []crud.Column{
	{Key: "projectID", Header: "Project ID", Kind: crud.KindInt},
	{Key: "shareHolderDetailIDs", Header: "Share Holder Detail IDs", Kind: crud.KindIDList},
	{Key: "legalHeirDetailIDs", Header: "Legal Heir Detail IDs", Kind: crud.KindIDList},
	{Key: "srnNumber", Header: "SRN Number"},
	{Key: "status", Header: "Status"},
	{Key: "filingDate", Header: "Filing Date", Kind: crud.KindDate},
	{Key: "approvalDate", Header: "Approval Date", Kind: crud.KindDate},
	{Key: "remarks", Header: "Remarks"},
}
