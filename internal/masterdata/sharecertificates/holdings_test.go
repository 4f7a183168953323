package sharecertificates_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/shareregistry/backoffice/internal/holding"
	"github.com/shareregistry/backoffice/internal/masterdata/corporateactions"
	"github.com/shareregistry/backoffice/internal/masterdata/folios"
	"github.com/shareregistry/backoffice/internal/masterdata/prices"
	"github.com/shareregistry/backoffice/internal/masterdata/sharecertificates"
	"github.com/shareregistry/backoffice/internal/platform/crud/crudtest"
	"github.com/shareregistry/backoffice/internal/registry"
	"github.com/shareregistry/backoffice/internal/registry/registrytest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func price(f float64) *float64 { return &f }

func sources(st registry.Stores) sharecertificates.Sources {
	return sharecertificates.Sources{
		Folios:    st.Folios,
		Actions:   st.CorporateActions,
		Prices:    st.Prices,
		Companies: st.Companies,
		Renames:   st.NameChanges,
	}
}

func TestHoldingsManyCertificates(t *testing.T) {
	ctx := context.Background()
	st := registrytest.Stores()
	now := day("2025-01-01")

	// two companies: A has a 1:1 bonus and a price, B has neither
	_, err := st.CorporateActions.Store(ctx, corporateactions.CorporateMaster{
		CompanyID: 1, ActionType: holding.Bonus, ActionDate: day("2020-01-01"), Numerator: 1, Denominator: 1,
	})
	require.NoError(t, err)
	_, err = st.Prices.Store(ctx, prices.CompanyPrice{CompanyID: 1, PriceDate: day("2024-12-31"), NseClose: price(2), BseClose: price(3)})
	require.NoError(t, err)

	var items []sharecertificates.ShareCertificateMaster
	for i := int64(1); i <= 40; i++ {
		company := int64(1)
		if i%2 == 0 {
			company = 2
		}
		items = append(items, sharecertificates.ShareCertificateMaster{ID: i, ProjectID: 1, CompanyID: company})
		for j := int64(0); j < i%4; j++ {
			_, err := st.Folios.Store(ctx, folios.Folio{
				ShareCertificateMasterID: i,
				FolioNumber:              fmt.Sprintf("F-%d-%d", i, j),
				HolderName:               "H",
				Shares:                   10,
			})
			require.NoError(t, err)
		}
	}

	h := sharecertificates.NewHydrator(sources(st), func() time.Time { return now }, 4)
	require.NoError(t, h.Holdings(ctx, items))

	for _, it := range items {
		folioCount := it.ID % 4
		if it.CompanyID == 1 {
			assert.Equal(t, folioCount*20, it.TotalShares, "certificate %d", it.ID)
			assert.Equal(t, float64(folioCount*40), it.TotalValuationNse)
			assert.Equal(t, float64(folioCount*60), it.TotalValuationBse)
		} else {
			assert.Equal(t, folioCount*10, it.TotalShares, "certificate %d", it.ID)
			assert.Zero(t, it.TotalValuationNse)
			assert.Zero(t, it.TotalValuationBse)
		}
	}
}

func TestHoldingsValueEachExchangeAtItsLastClose(t *testing.T) {
	ctx := context.Background()
	st := registrytest.Stores()

	_, err := st.Prices.Store(ctx, prices.CompanyPrice{CompanyID: 1, PriceDate: day("2024-12-30"), NseClose: price(4), BseClose: price(5)})
	require.NoError(t, err)
	_, err = st.Prices.Store(ctx, prices.CompanyPrice{CompanyID: 1, PriceDate: day("2024-12-31"), NseClose: price(6)})
	require.NoError(t, err)
	_, err = st.Folios.Store(ctx, folios.Folio{ShareCertificateMasterID: 1, FolioNumber: "F-1", HolderName: "H", Shares: 10})
	require.NoError(t, err)

	items := []sharecertificates.ShareCertificateMaster{{ID: 1, ProjectID: 1, CompanyID: 1}}
	h := sharecertificates.NewHydrator(sources(st), func() time.Time { return day("2025-01-01") }, 1)
	require.NoError(t, h.Holdings(ctx, items))

	assert.Equal(t, int64(10), items[0].TotalShares)
	assert.Equal(t, float64(60), items[0].TotalValuationNse)
	assert.Equal(t, float64(50), items[0].TotalValuationBse)
}

func TestHoldingsPropagatesStoreError(t *testing.T) {
	st := registrytest.Stores()
	boom := errors.New("folio store down")
	st.Folios.(*crudtest.Memory[folios.Folio]).Err = boom

	h := sharecertificates.NewHydrator(sources(st), nil, 2)
	items := []sharecertificates.ShareCertificateMaster{{ID: 1, CompanyID: 1}, {ID: 2, CompanyID: 1}, {ID: 3, CompanyID: 1}}
	err := h.Holdings(context.Background(), items)
	assert.ErrorIs(t, err, boom)
}

func TestHoldingsEmpty(t *testing.T) {
	h := sharecertificates.NewHydrator(sources(registrytest.Stores()), nil, 0)
	assert.NoError(t, h.Holdings(context.Background(), nil))
}
