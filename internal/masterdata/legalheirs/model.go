// Package legalheirs records claimants succeeding to a deceased holder's
// shares, with guardian details for minors.
package legalheirs

import (
	"time"

	"github.com/shareregistry/backoffice/internal/platform/crud"
)

type LegalHeirDetail struct {
	ID                   int64      `json:"id" db:"id"`
	CreatedAt            time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt            time.Time  `json:"updatedAt" db:"updated_at"`
	ProjectID            int64      `json:"projectID" db:"project_id"`
	ClaimantName         string     `json:"claimantName" db:"claimant_name"`
	ClaimantPan          string     `json:"claimantPan" db:"claimant_pan"`
	ClaimantAadhaar      string     `json:"claimantAadhaar" db:"claimant_aadhaar"`
	Relationship         string     `json:"relationship" db:"relationship"`
	DateOfBirth          *time.Time `json:"dateOfBirth" db:"date_of_birth"`
	IsMinor              bool       `json:"isMinor" db:"is_minor"`
	GuardianName         string     `json:"guardianName" db:"guardian_name"`
	GuardianPan          string     `json:"guardianPan" db:"guardian_pan"`
	GuardianRelationship string     `json:"guardianRelationship" db:"guardian_relationship"`
	Address              string     `json:"address" db:"address"`
	Email                string     `json:"email" db:"email"`
	Phone                string     `json:"phone" db:"phone"`
}

func (l LegalHeirDetail) RecordID() int64 { return l.ID }

var Schema = crud.Schema[LegalHeirDetail]{
	Table: "legal_heir_details",
	Columns: []string{
		"project_id", "claimant_name", "claimant_pan", "claimant_aadhaar", "relationship", "date_of_birth",
		"is_minor", "guardian_name", "guardian_pan", "guardian_relationship", "address", "email", "phone",
	},
	Values: func(l LegalHeirDetail) []any {
		return []any{
			l.ProjectID, l.ClaimantName, l.ClaimantPan, l.ClaimantAadhaar, l.Relationship, l.DateOfBirth,
			l.IsMinor, l.GuardianName, l.GuardianPan, l.GuardianRelationship, l.Address, l.Email, l.Phone,
		}
	},
	ScopeColumn:   "project_id",
	SearchColumns: []string{"claimant_name", "claimant_pan", "relationship", "guardian_name"},
}
