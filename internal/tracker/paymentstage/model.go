// Package paymentstage holds the billing milestones of a payment tracker.
package paymentstage

import (
	"time"

	"github.com/shareregistry/backoffice/internal/platform/crud"
)

// Stage statuses. Any status may be written at any time; the order is a
// reporting convention only.
const (
	StatusToBePaid    = "TO_BE_PAID"
	StatusInvoiceSent = "INVOICE_SENT"
	StatusReceiptSent = "RECEIPT_SENT"
	StatusPaid        = "PAID"
)

type PaymentTrackerStage struct {
	ID               int64      `json:"id" db:"id"`
	CreatedAt        time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time  `json:"updatedAt" db:"updated_at"`
	PaymentTrackerID int64      `json:"paymentTrackerID" db:"payment_tracker_id"`
	StageName        string     `json:"stageName" db:"stage_name"`
	Percentage       float64    `json:"percentage" db:"percentage"`
	Amount           float64    `json:"amount" db:"amount"`
	Status           string     `json:"status" db:"status"`
	InvoiceNumber    string     `json:"invoiceNumber" db:"invoice_number"`
	InvoiceDate      *time.Time `json:"invoiceDate" db:"invoice_date"`
	ReceiptDate      *time.Time `json:"receiptDate" db:"receipt_date"`
	PaidDate         *time.Time `json:"paidDate" db:"paid_date"`
	Remarks          string     `json:"remarks" db:"remarks"`
}

func (s PaymentTrackerStage) RecordID() int64 { return s.ID }

var Schema = crud.Schema[PaymentTrackerStage]{
	Table: "payment_tracker_stages",
	Columns: []string{
		"payment_tracker_id", "stage_name", "percentage", "amount", "status", "invoice_number",
		"invoice_date", "receipt_date", "paid_date", "remarks",
	},
	Values: func(s PaymentTrackerStage) []any {
		return []any{
			s.PaymentTrackerID, s.StageName, s.Percentage, s.Amount, s.Status, s.InvoiceNumber,
			s.InvoiceDate, s.ReceiptDate, s.PaidDate, s.Remarks,
		}
	},
	ScopeColumn:   "payment_tracker_id",
	SearchColumns: []string{"stage_name", "status", "invoice_number", "remarks"},
}
