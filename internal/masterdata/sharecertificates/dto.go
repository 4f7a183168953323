package sharecertificates

import (
	"github.com/shareregistry/backoffice/internal/platform/crud"
)

type Payload struct {
	ProjectID      int64   `json:"projectID" validate:"required,gt=0"`
	CompanyID      int64   `json:"companyID" validate:"required,gt=0"`
	InstrumentType string  `json:"instrumentType" validate:"required,oneof=EQUITY PREFERENCE DEBENTURE BOND"`
	FaceValue      float64 `json:"faceValue" validate:"gte=0"`
	Remarks        string  `json:"remarks" validate:"max=1000"`
}

func build(p Payload) ShareCertificateMaster {
	return ShareCertificateMaster{
		ProjectID:      p.ProjectID,
		CompanyID:      p.CompanyID,
		InstrumentType: p.InstrumentType,
		FaceValue:      p.FaceValue,
		Remarks:        p.Remarks,
	}
}

// Columns include the derived totals; import ignores them since the
// payload has no such fields.
var Columns = []crud.Column{
	{Key: "projectID", Header: "Project ID", Kind: crud.KindInt},
	{Key: "companyID", Header: "Company ID", Kind: crud.KindInt},
	{Key: "instrumentType", Header: "Instrument Type"},
	{Key: "faceValue", Header: "Face Value", Kind: crud.KindFloat},
	{Key: "remarks", Header: "Remarks"},
	{Key: "totalShares", Header: "Total Shares", Kind: crud.KindInt},
	{Key: "totalValuationNse", Header: "Total Valuation NSE", Kind: crud.KindFloat},
	{Key: "totalValuationBse", Header: "Total Valuation BSE", Kind: crud.KindFloat},
}
