package communication

import (
	"time"

	"github.com/shareregistry/backoffice/internal/platform/crud"
)

type Payload struct {
	ProjectID    int64      `json:"projectID" validate:"required,gt=0"`
	Stage        string     `json:"stage" validate:"required,max=128"`
	FolioIDs     []int64    `json:"folioIDs" validate:"omitempty,dive,gt=0"`
	Comments     string     `json:"comments" validate:"max=2000"`
	DateSent     *time.Time `json:"dateSent"`
	DateReceived *time.Time `json:"dateReceived"`
}

func build(p Payload) CommunicationTracker {
	return CommunicationTracker{
		ProjectID:    p.ProjectID,
		Stage:        p.Stage,
		FolioIDs:     crud.UniqueIDs(p.FolioIDs),
		Comments:     p.Comments,
		DateSent:     p.DateSent,
		DateReceived: p.DateReceived,
	}
}

var Columns = []crud.Column{
	{Key: "projectID", Header: "Project ID", Kind: crud.KindInt},
	{Key: "stage", Header: "Stage"},
	{Key: "folioIDs", Header: "Folio IDs", Kind: crud.KindIDList},
	{Key: "comments", Header: "Comments"},
	{Key: "dateSent", Header: "Date Sent", Kind: crud.KindDate},
	{Key: "dateReceived", Header: "Date Received", Kind: crud.KindDate},
}
