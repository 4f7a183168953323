package shareholders

import (
	"strings"

	"github.com/shareregistry/backoffice/internal/platform/crud"
)

type Payload struct {
	ProjectID   int64  `json:"projectID" validate:"required,gt=0"`
	Name        string `json:"name" validate:"required,max=255"`
	PAN         string `json:"pan" validate:"omitempty,pan"`
	Aadhaar     string `json:"aadhaar" validate:"omitempty,len=12,numeric"`
	Address     string `json:"address" validate:"max=1000"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone" validate:"max=20"`
	FolioNumber string `json:"folioNumber" validate:"max=64"`
}

func normalize(p *Payload) {
	p.Name = strings.TrimSpace(p.Name)
}

func build(p Payload) ShareHolderDetail {
	return ShareHolderDetail{
		ProjectID:   p.ProjectID,
		Name:        p.Name,
		PAN:         p.PAN,
		Aadhaar:     p.Aadhaar,
		Address:     p.Address,
		Email:       p.Email,
		Phone:       p.Phone,
		FolioNumber: p.FolioNumber,
	}
}

var Columns = []crud.Column{
	{Key: "projectID", Header: "Project ID", Kind: crud.KindInt},
	{Key: "name", Header: "Name"},
	{Key: "pan", Header: "PAN"},
	{Key: "aadhaar", Header: "Aadhaar"},
	{Key: "address", Header: "Address"},
	{Key: "email", Header: "Email"},
	{Key: "phone", Header: "Phone"},
	{Key: "folioNumber", Header: "Folio Number"},
}
