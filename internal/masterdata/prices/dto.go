package prices

import (
	"time"

	"github.com/shareregistry/backoffice/internal/platform/crud"
)

type Payload struct {
	CompanyID int64     `json:"companyID" validate:"required,gt=0"`
	PriceDate time.Time `json:"priceDate" validate:"required"`
	NseClose  *float64  `json:"nseClose" validate:"omitempty,gte=0"`
	BseClose  *float64  `json:"bseClose" validate:"omitempty,gte=0"`
}

func build(p Payload) CompanyPrice {
	return CompanyPrice{
		CompanyID: p.CompanyID,
		PriceDate: p.PriceDate,
		NseClose:  p.NseClose,
		BseClose:  p.BseClose,
	}
}

var Columns = []crud.Column{
	{Key: "companyID", Header: "Company ID", Kind: crud.KindInt},
	{Key: "priceDate", Header: "Price Date", Kind: crud.KindDate},
	{Key: "nseClose", Header: "NSE Close", Kind: crud.KindFloat},
	{Key: "bseClose", Header: "BSE Close", Kind: crud.KindFloat},
}
