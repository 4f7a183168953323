package projects

import (
	"strings"

	"github.com/shareregistry/backoffice/internal/platform/crud"
)

// Payload is the create/update body.
type Payload struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
}

func normalize(p *Payload) {
	p.Name = strings.TrimSpace(p.Name)
}

func build(p Payload) Project {
	return Project{Name: p.Name, Description: p.Description}
}

// Columns is the spreadsheet layout.
var Columns = []crud.Column{
	{Key: "name", Header: "Name"},
	{Key: "description", Header: "Description"},
}
