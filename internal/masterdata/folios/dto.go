package folios

import (
	"strings"
	"time"

	"github.com/shareregistry/backoffice/internal/platform/crud"
)

type Payload struct {
	ShareCertificateMasterID int64      `json:"shareCertificateMasterID" validate:"required,gt=0"`
	FolioNumber              string     `json:"folioNumber" validate:"required,max=64"`
	HolderName               string     `json:"holderName" validate:"required,max=255"`
	JointHolders             string     `json:"jointHolders" validate:"max=1000"`
	Shares                   int64      `json:"shares" validate:"gte=0"`
	HoldingDate              *time.Time `json:"holdingDate"`
	CertificateNumbers       string     `json:"certificateNumbers" validate:"max=1000"`
	DistinctiveFrom          int64      `json:"distinctiveFrom" validate:"gte=0"`
	DistinctiveTo            int64      `json:"distinctiveTo" validate:"gte=0,gtefield=DistinctiveFrom"`
}

func normalize(p *Payload) {
	p.FolioNumber = strings.TrimSpace(p.FolioNumber)
	p.HolderName = strings.TrimSpace(p.HolderName)
}

func build(p Payload) Folio {
	return Folio{
		ShareCertificateMasterID: p.ShareCertificateMasterID,
		FolioNumber:              p.FolioNumber,
		HolderName:               p.HolderName,
		JointHolders:             p.JointHolders,
		Shares:                   p.Shares,
		HoldingDate:              p.HoldingDate,
		CertificateNumbers:       p.CertificateNumbers,
		DistinctiveFrom:          p.DistinctiveFrom,
		DistinctiveTo:            p.DistinctiveTo,
	}
}

var Columns = []crud.Column{
	{Key: "shareCertificateMasterID", Header: "Share Certificate Master ID", Kind: crud.KindInt},
	{Key: "folioNumber", Header: "Folio Number"},
	{Key: "holderName", Header: "Holder Name"},
	{Key: "jointHolders", Header: "Joint Holders"},
	{Key: "shares", Header: "Shares", Kind: crud.KindInt},
	{Key: "holdingDate", Header: "Holding Date", Kind: crud.KindDate},
	{Key: "certificateNumbers", Header: "Certificate Numbers"},
	{Key: "distinctiveFrom", Header: "Distinctive From", Kind: crud.KindInt},
	{Key: "distinctiveTo", Header: "Distinctive To", Kind: crud.KindInt},
}
