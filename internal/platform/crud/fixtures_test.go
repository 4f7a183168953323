package crud_test

import (
	"strings"
	"time"

	"github.com/shareregistry/backoffice/internal/platform/crud"
	"github.com/shareregistry/backoffice/internal/platform/crud/crudtest"
)

type project struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (p project) RecordID() int64 { return p.ID }

type note struct {
	ID        int64      `json:"id"`
	ProjectID int64      `json:"projectID"`
	Title     string     `json:"title"`
	Amount    float64    `json:"amount"`
	DueDate   *time.Time `json:"dueDate"`
	Urgent    bool       `json:"urgent"`
	FolioIDs  []int64    `json:"folioIDs"`
}

func (n note) RecordID() int64 { return n.ID }

type notePayload struct {
	ProjectID int64      `json:"projectID" validate:"required,gt=0"`
	Title     string     `json:"title" validate:"required,max=40"`
	Amount    float64    `json:"amount" validate:"gte=0"`
	DueDate   *time.Time `json:"dueDate"`
	Urgent    bool       `json:"urgent"`
	FolioIDs  []int64    `json:"folioIDs" validate:"omitempty,dive,gt=0"`
}

var noteColumns = []crud.Column{
	{Key: "projectID", Header: "Project ID", Kind: crud.KindInt},
	{Key: "title", Header: "Title"},
	{Key: "amount", Header: "Amount", Kind: crud.KindFloat},
	{Key: "dueDate", Header: "Due Date", Kind: crud.KindDate},
	{Key: "urgent", Header: "Urgent", Kind: crud.KindBool},
	{Key: "folioIDs", Header: "Folio IDs", Kind: crud.KindIDList},
}

type fixture struct {
	projects *crudtest.Memory[project]
	notes    *crudtest.Memory[note]
	service  *crud.Service[note, notePayload]
}

func newFixture() *fixture {
	projects := crudtest.NewMemory(crudtest.Options[project]{
		SetID: func(p *project, id int64) { p.ID = id },
	})
	notes := crudtest.NewMemory(crudtest.Options[note]{
		SetID:    func(n *note, id int64) { n.ID = id },
		ScopeOf:  func(n note) int64 { return n.ProjectID },
		SetScope: func(n *note, id int64) { n.ProjectID = id },
		Text:     func(n note) []string { return []string{n.Title} },
	})
	def := crud.Definition[note, notePayload]{
		Resource:  "note",
		Normalize: func(p *notePayload) { p.Title = strings.TrimSpace(p.Title) },
		Build: func(p notePayload) note {
			return note{
				ProjectID: p.ProjectID,
				Title:     p.Title,
				Amount:    p.Amount,
				DueDate:   p.DueDate,
				Urgent:    p.Urgent,
				FolioIDs:  p.FolioIDs,
			}
		},
		SetScope: func(p *notePayload, id int64) { p.ProjectID = id },
		ScopeOf:  func(n note) int64 { return n.ProjectID },
		References: []crud.Reference[notePayload]{{
			Field:    "projectID",
			Resource: "project",
			Scope:    true,
			IDs:      func(p notePayload) []int64 { return []int64{p.ProjectID} },
			Missing:  crud.MissingIn[project](projects),
		}},
	}
	return &fixture{projects: projects, notes: notes, service: crud.NewService[note, notePayload](notes, def)}
}
