package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeFees(t *testing.T) {
	cases := []struct {
		name string
		in   PaymentTracker
		want Fees
	}{
		{
			name: "gst only",
			in:   PaymentTracker{Valuation: 1_000_000, FeePercentage: 2.5, GstFlag: true, GstPercentage: 18},
			want: Fees{FeeAmount: 25000, GstAmount: 4500, NetPayable: 29500},
		},
		{
			name: "gst and tds",
			in:   PaymentTracker{Valuation: 1_000_000, FeePercentage: 2.5, GstFlag: true, GstPercentage: 18, TdsFlag: true, TdsPercentage: 10},
			want: Fees{FeeAmount: 25000, GstAmount: 4500, TdsAmount: 2500, NetPayable: 27000},
		},
		{
			name: "flags off ignore percentages",
			in:   PaymentTracker{Valuation: 999.99, FeePercentage: 3, GstPercentage: 18, TdsPercentage: 10},
			want: Fees{FeeAmount: 30, NetPayable: 30},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.ComputeFees())
		})
	}
}

func TestWithFeesHook(t *testing.T) {
	items := []PaymentTracker{{Valuation: 100, FeePercentage: 10}}
	require.NoError(t, withFees(context.Background(), items))
	assert.Equal(t, 10.0, items[0].Fees.FeeAmount)
}

func TestPayloadCarriesTaxFields(t *testing.T) {
	rec := build(Payload{ProjectID: 1, Valuation: 10, GstFlag: true, GstPercentage: 18, TdsFlag: true, TdsPercentage: 2})
	assert.True(t, rec.GstFlag)
	assert.True(t, rec.TdsFlag)
	assert.Equal(t, 18.0, rec.GstPercentage)
	assert.Equal(t, 2.0, rec.TdsPercentage)
}
