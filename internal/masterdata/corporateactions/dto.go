package corporateactions

import (
	"strings"
	"time"

	"github.com/shareregistry/backoffice/internal/holding"
	"github.com/shareregistry/backoffice/internal/platform/crud"
)

type Payload struct {
	CompanyID   int64     `json:"companyID" validate:"required,gt=0"`
	ActionType  string    `json:"actionType" validate:"required,oneof=BONUS SPLIT RIGHTS CONSOLIDATION EQUITY"`
	ActionDate  time.Time `json:"actionDate" validate:"required"`
	Numerator   int64     `json:"numerator" validate:"gt=0"`
	Denominator int64     `json:"denominator" validate:"gt=0"`
	Remarks     string    `json:"remarks" validate:"max=1000"`
}

func normalize(p *Payload) {
	p.ActionType = strings.ToUpper(strings.TrimSpace(p.ActionType))
}

func build(p Payload) CorporateMaster {
	return CorporateMaster{
		CompanyID:   p.CompanyID,
		ActionType:  holding.ActionType(p.ActionType),
		ActionDate:  p.ActionDate,
		Numerator:   p.Numerator,
		Denominator: p.Denominator,
		Remarks:     p.Remarks,
	}
}

var Columns = []crud.Column{
	{Key: "companyID", Header: "Company ID", Kind: crud.KindInt},
	{Key: "actionType", Header: "Action Type"},
	{Key: "actionDate", Header: "Action Date", Kind: crud.KindDate},
	{Key: "numerator", Header: "Numerator", Kind: crud.KindInt},
	{Key: "denominator", Header: "Denominator", Kind: crud.KindInt},
	{Key: "remarks", Header: "Remarks"},
}
