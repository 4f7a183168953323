// Package payment tracks the fee agreed for a project and how tax applies to it.
package payment

import (
	"math"
	"time"

	"github.com/shareregistry/backoffice/internal/platform/crud"
)

type PaymentTracker struct {
	ID            int64     `json:"id" db:"id"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
	ProjectID     int64     `json:"projectID" db:"project_id"`
	Valuation     float64   `json:"valuation" db:"valuation"`
	FeePercentage float64   `json:"feePercentage" db:"fee_percentage"`
	GstFlag       bool      `json:"gstFlag" db:"gst_flag"`
	GstPercentage float64   `json:"gstPercentage" db:"gst_percentage"`
	TdsFlag       bool      `json:"tdsFlag" db:"tds_flag"`
	TdsPercentage float64   `json:"tdsPercentage" db:"tds_percentage"`
	Remarks       string    `json:"remarks" db:"remarks"`

	Fees Fees `json:"fees" db:"-"`
}

func (p PaymentTracker) RecordID() int64 { return p.ID }

// Fees is the fee breakdown derived from the tracker.
type Fees struct {
	FeeAmount  float64 `json:"feeAmount"`
	GstAmount  float64 `json:"gstAmount"`
	TdsAmount  float64 `json:"tdsAmount"`
	NetPayable float64 `json:"netPayable"`
}

// ComputeFees derives the fee on the valuation, GST added on the fee and
// TDS withheld from it, each rounded to paise.
func (p PaymentTracker) ComputeFees() Fees {
	fee := round2(p.Valuation * p.FeePercentage / 100)
	var f Fees
	f.FeeAmount = fee
	if p.GstFlag {
		f.GstAmount = round2(fee * p.GstPercentage / 100)
	}
	if p.TdsFlag {
		f.TdsAmount = round2(fee * p.TdsPercentage / 100)
	}
	f.NetPayable = round2(f.FeeAmount + f.GstAmount - f.TdsAmount)
	return f
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

var Schema = crud.Schema[PaymentTracker]{
	Table: "payment_trackers",
	Columns: []string{
		"project_id", "valuation", "fee_percentage", "gst_flag", "gst_percentage",
		"tds_flag", "tds_percentage", "remarks",
	},
	Values: func(p PaymentTracker) []any {
		return []any{
			p.ProjectID, p.Valuation, p.FeePercentage, p.GstFlag, p.GstPercentage,
			p.TdsFlag, p.TdsPercentage, p.Remarks,
		}
	},
	ScopeColumn:   "project_id",
	SearchColumns: []string{"remarks", "valuation"},
}
