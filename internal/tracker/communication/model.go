// Package communication tracks letters and notices sent to holders of a project.
package communication

import (
	"time"

	"github.com/shareregistry/backoffice/internal/masterdata/folios"
	"github.com/shareregistry/backoffice/internal/platform/crud"
)

type CommunicationTracker struct {
	ID           int64      `json:"id" db:"id"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`
	ProjectID    int64      `json:"projectID" db:"project_id"`
	Stage        string     `json:"stage" db:"stage"`
	FolioIDs     []int64    `json:"folioIDs" db:"folio_ids"`
	Comments     string     `json:"comments" db:"comments"`
	DateSent     *time.Time `json:"dateSent" db:"date_sent"`
	DateReceived *time.Time `json:"dateReceived" db:"date_received"`

	Folios []folios.Folio `json:"folios" db:"-"`
}

func (c CommunicationTracker) RecordID() int64 { return c.ID }

var Schema = crud.Schema[CommunicationTracker]{
	Table:   "communication_trackers",
	Columns: []string{"project_id", "stage", "folio_ids", "comments", "date_sent", "date_received"},
	Values: func(c CommunicationTracker) []any {
		return []any{c.ProjectID, c.Stage, c.FolioIDs, c.Comments, c.DateSent, c.DateReceived}
	},
	ScopeColumn:   "project_id",
	SearchColumns: []string{"stage", "comments"},
}
