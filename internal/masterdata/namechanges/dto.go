package namechanges

import (
	"time"

	"github.com/shareregistry/backoffice/internal/platform/crud"
)

type Payload struct {
	CompanyID     int64     `json:"companyID" validate:"required,gt=0"`
	PreviousName  string    `json:"previousName" validate:"required,max=255"`
	NewName       string    `json:"newName" validate:"required,max=255"`
	EffectiveDate time.Time `json:"effectiveDate" validate:"required"`
	Remarks       string    `json:"remarks" validate:"max=1000"`
}

func build(p Payload) CompanyNameChange {
	return CompanyNameChange{
		CompanyID:     p.CompanyID,
		PreviousName:  p.PreviousName,
		NewName:       p.NewName,
		EffectiveDate: p.EffectiveDate,
		Remarks:       p.Remarks,
	}
}

var Columns = []crud.Column{
	{Key: "companyID", Header: "Company ID", Kind: crud.KindInt},
	{Key: "previousName", Header: "Previous Name"},
	{Key: "newName", Header: "New Name"},
	{Key: "effectiveDate", Header: "Effective Date", Kind: crud.KindDate},
	{Key: "remarks", Header: "Remarks"},
}
