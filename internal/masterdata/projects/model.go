// Package projects holds the registry engagements every tracker is filed under.
package projects

import (
	"time"

	"github.com/shareregistry/backoffice/internal/platform/crud"
)

// Project is one registry engagement.
type Project struct {
	ID          int64     `json:"id" db:"id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
}

func (p Project) RecordID() int64 { return p.ID }

// Schema maps Project onto the projects table.
var Schema = crud.Schema[Project]{
	Table:   "projects",
	Columns: []string{"name", "description"},
	Values: func(p Project) []any {
		return []any{p.Name, p.Description}
	},
	SearchColumns: []string{"name", "description"},
	OrderBy:       "id DESC",
}
