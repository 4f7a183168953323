package payment

import "github.com/shareregistry/backoffice/internal/platform/crud"

// Payload is shared by create and update so both carry GST and TDS.
type Payload struct {
	ProjectID     int64   `json:"projectID" validate:"required,gt=0"`
	Valuation     float64 `json:"valuation" validate:"gt=0"`
	FeePercentage float64 `json:"feePercentage" validate:"gte=0,lte=100"`
	GstFlag       bool    `json:"gstFlag"`
	GstPercentage float64 `json:"gstPercentage" validate:"gte=0,lte=100"`
	TdsFlag       bool    `json:"tdsFlag"`
	TdsPercentage float64 `json:"tdsPercentage" validate:"gte=0,lte=100"`
	Remarks       string  `json:"remarks" validate:"max=2000"`
}

func build(p Payload) PaymentTracker {
	return PaymentTracker{
		ProjectID:     p.ProjectID,
		Valuation:     p.Valuation,
		FeePercentage: p.FeePercentage,
		GstFlag:       p.GstFlag,
		GstPercentage: p.GstPercentage,
		TdsFlag:       p.TdsFlag,
		TdsPercentage: p.TdsPercentage,
		Remarks:       p.Remarks,
	}
}

var Columns = []crud.Column{
	{Key: "projectID", Header: "Project ID", Kind: crud.KindInt},
	{Key: "valuation", Header: "Valuation", Kind: crud.KindFloat},
	{Key: "feePercentage", Header: "Fee %", Kind: crud.KindFloat},
	{Key: "gstFlag", Header: "GST Applicable", Kind: crud.KindBool},
	{Key: "gstPercentage", Header: "GST %", Kind: crud.KindFloat},
	{Key: "tdsFlag", Header: "TDS Applicable", Kind: crud.KindBool},
	{Key: "tdsPercentage", Header: "TDS %", Kind: crud.KindFloat},
	{Key: "remarks", Header: "Remarks"},
}
