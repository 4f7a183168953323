package paymentstage

import (
	"time"

	"github.com/shareregistry/backoffice/internal/platform/crud"
)

type Payload struct {
	PaymentTrackerID int64      `json:"paymentTrackerID" validate:"required,gt=0"`
	StageName        string     `json:"stageName" validate:"required,max=128"`
	Percentage       float64    `json:"percentage" validate:"gte=0,lte=100"`
	Amount           float64    `json:"amount" validate:"gte=0"`
	Status           string     `json:"status" validate:"omitempty,oneof=TO_BE_PAID INVOICE_SENT RECEIPT_SENT PAID"`
	InvoiceNumber    string     `json:"invoiceNumber" validate:"max=64"`
	InvoiceDate      *time.Time `json:"invoiceDate"`
	ReceiptDate      *time.Time `json:"receiptDate"`
	PaidDate         *time.Time `json:"paidDate"`
	Remarks          string     `json:"remarks" validate:"max=2000"`
}

func build(p Payload) PaymentTrackerStage {
	status := p.Status
	if status == "" {
		status = StatusToBePaid
	}
	return PaymentTrackerStage{
		PaymentTrackerID: p.PaymentTrackerID,
		StageName:        p.StageName,
		Percentage:       p.Percentage,
		Amount:           p.Amount,
		Status:           status,
		InvoiceNumber:    p.InvoiceNumber,
		InvoiceDate:      p.InvoiceDate,
		ReceiptDate:      p.ReceiptDate,
		PaidDate:         p.PaidDate,
		Remarks:          p.Remarks,
	}
}

var Columns = []crud.Column{
	{Key: "paymentTrackerID", Header: "Payment Tracker ID", Kind: crud.KindInt},
	{Key: "stageName", Header: "Stage Name"},
	{Key: "percentage", Header: "Percentage", Kind: crud.KindFloat},
	{Key: "amount", Header: "Amount", Kind: crud.KindFloat},
	{Key: "status", Header: "Status"},
	{Key: "invoiceNumber", Header: "Invoice Number"},
	{Key: "invoiceDate", Header: "Invoice Date", Kind: crud.KindDate},
	{Key: "receiptDate", Header: "Receipt Date", Kind: crud.KindDate},
	{Key: "paidDate", Header: "Paid Date", Kind: crud.KindDate},
	{Key: "remarks", Header: "Remarks"},
}
