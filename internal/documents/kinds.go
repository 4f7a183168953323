// Package documents renders registry records into PDF letters and invoices.
package documents

import (
	"time"

	"github.com/shareregistry/backoffice/internal/masterdata/legalheirs"
	"github.com/shareregistry/backoffice/internal/masterdata/projects"
	"github.com/shareregistry/backoffice/internal/platform/httpx"
	"github.com/shareregistry/backoffice/internal/tracker/iepf"
	"github.com/shareregistry/backoffice/internal/tracker/payment"
	"github.com/shareregistry/backoffice/internal/tracker/paymentstage"
)

// Kind names a document type; it is also the route segment.
type Kind string

const (
	KindLegalHeirClaim Kind = "legal-heir-claim"
	KindIepfCover      Kind = "iepf-cover"
	KindStageInvoice   Kind = "stage-invoice"
)

type kindInfo struct {
	file  string
	title string
}

var kinds = map[Kind]kindInfo{
	KindLegalHeirClaim: {file: "legal_heir_claim.html", title: "Transmission Claim Letter"},
	KindIepfCover:      {file: "iepf_cover.html", title: "IEPF Claim Cover Letter"},
	KindStageInvoice:   {file: "stage_invoice.html", title: "Payment Stage Invoice"},
}

// ParseKind validates a route segment.
func ParseKind(raw string) (Kind, error) {
	kind := Kind(raw)
	if _, ok := kinds[kind]; !ok {
		return "", unknownKind(kind)
	}
	return kind, nil
}

func unknownKind(kind Kind) error {
	return httpx.NewValidationError("kind", "unknown document kind "+string(kind))
}

// View is the data every template is executed with. Only the fields of the
// rendered kind are set.
type View struct {
	Title       string
	GeneratedAt time.Time
	Project     projects.Project

	Heir    *legalheirs.LegalHeirDetail
	Iepf    *iepf.IepfTracker
	Stage   *paymentstage.PaymentTrackerStage
	Payment *payment.PaymentTracker
}
