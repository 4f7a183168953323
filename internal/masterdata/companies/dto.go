package companies

import (
	"strings"

	"github.com/shareregistry/backoffice/internal/platform/crud"
)

// Payload is the create/update body of a company.
type Payload struct {
	Name      string  `json:"name" validate:"required,max=255"`
	ISIN      string  `json:"isin" validate:"omitempty,len=12,alphanum"`
	CIN       string  `json:"cin" validate:"omitempty,len=21,alphanum"`
	NseSymbol string  `json:"nseSymbol" validate:"max=32"`
	BseCode   string  `json:"bseCode" validate:"omitempty,numeric,max=10"`
	FaceValue float64 `json:"faceValue" validate:"gte=0"`
}

func normalize(p *Payload) {
	p.Name = strings.TrimSpace(p.Name)
	p.ISIN = strings.ToUpper(strings.TrimSpace(p.ISIN))
	p.CIN = strings.ToUpper(strings.TrimSpace(p.CIN))
	p.NseSymbol = strings.ToUpper(strings.TrimSpace(p.NseSymbol))
}

func build(p Payload) CompanyMaster {
	return CompanyMaster{
		Name:      p.Name,
		ISIN:      p.ISIN,
		CIN:       p.CIN,
		NseSymbol: p.NseSymbol,
		BseCode:   p.BseCode,
		FaceValue: p.FaceValue,
	}
}

var Columns = []crud.Column{
	{Key: "name", Header: "Company Name"},
	{Key: "isin", Header: "ISIN"},
	{Key: "cin", Header: "CIN"},
	{Key: "nseSymbol", Header: "NSE Symbol"},
	{Key: "bseCode", Header: "BSE Code"},
	{Key: "faceValue", Header: "Face Value", Kind: crud.KindFloat},
}
