package legalheirs

import (
	"strings"
	"time"

	"github.com/shareregistry/backoffice/internal/platform/crud"
)

// Payload is the create/update body. A minor claimant needs a guardian.
type Payload struct {
	ProjectID            int64      `json:"projectID" validate:"required,gt=0"`
	ClaimantName         string     `json:"claimantName" validate:"required,max=255"`
	ClaimantPan          string     `json:"claimantPan" validate:"omitempty,pan"`
	ClaimantAadhaar      string     `json:"claimantAadhaar" validate:"omitempty,len=12,numeric"`
	Relationship         string     `json:"relationship" validate:"max=64"`
	DateOfBirth          *time.Time `json:"dateOfBirth"`
	IsMinor              bool       `json:"isMinor"`
	GuardianName         string     `json:"guardianName" validate:"required_if=IsMinor true,max=255"`
	GuardianPan          string     `json:"guardianPan" validate:"omitempty,pan"`
	GuardianRelationship string     `json:"guardianRelationship" validate:"max=64"`
	Address              string     `json:"address" validate:"max=1000"`
	Email                string     `json:"email" validate:"omitempty,email"`
	Phone                string     `json:"phone" validate:"max=20"`
}

func normalize(p *Payload) {
	p.ClaimantName = strings.TrimSpace(p.ClaimantName)
	p.GuardianName = strings.TrimSpace(p.GuardianName)
}

func build(p Payload) LegalHeirDetail {
	return LegalHeirDetail{
		ProjectID:            p.ProjectID,
		ClaimantName:         p.ClaimantName,
		ClaimantPan:          p.ClaimantPan,
		ClaimantAadhaar:      p.ClaimantAadhaar,
		Relationship:         p.Relationship,
		DateOfBirth:          p.DateOfBirth,
		IsMinor:              p.IsMinor,
		GuardianName:         p.GuardianName,
		GuardianPan:          p.GuardianPan,
		GuardianRelationship: p.GuardianRelationship,
		Address:              p.Address,
		Email:                p.Email,
		Phone:                p.Phone,
	}
}

var Columns = []crud.Column{
	{Key: "projectID", Header: "Project ID", Kind: crud.KindInt},
	{Key: "claimantName", Header: "Claimant Name"},
	{Key: "claimantPan", Header: "Claimant PAN"},
	{Key: "claimantAadhaar", Header: "Claimant Aadhaar"},
	{Key: "relationship", Header: "Relationship"},
	{Key: "dateOfBirth", Header: "Date Of Birth", Kind: crud.KindDate},
	{Key: "isMinor", Header: "Is Minor", Kind: crud.KindBool},
	{Key: "guardianName", Header: "Guardian Name"},
	{Key: "guardianPan", Header: "Guardian PAN"},
	{Key: "guardianRelationship", Header: "Guardian Relationship"},
	{Key: "address", Header: "Address"},
	{Key: "email", Header: "Email"},
	{Key: "phone", Header: "Phone"},
}
