// Package holding computes consolidated folio holdings and their market value.
package holding

import (
	"math"
	"math/big"
	"sort"
	"time"
)

// ActionType is a corporate action kind.
type ActionType string

const (
	Bonus         ActionType = "BONUS"
	Split         ActionType = "SPLIT"
	Rights        ActionType = "RIGHTS"
	Consolidation ActionType = "CONSOLIDATION"
	Equity        ActionType = "EQUITY"
)

// ActionTypes lists every accepted action type.
var ActionTypes = []ActionType{Bonus, Split, Rights, Consolidation, Equity}

// Action is a corporate action expressed as a numerator:denominator ratio.
type Action struct {
	ID          int64
	Type        ActionType
	Date        time.Time
	Numerator   int64
	Denominator int64
}

// additive reports whether the action issues new shares on top of the
// existing holding rather than replacing it.
func (a Action) additive() bool {
	return a.Type == Bonus || a.Type == Rights
}

// Consolidate applies corporate actions to a holding in date order. Only
// actions dated after holdingDate and no later than now apply; a nil
// holdingDate applies every action up to now. Actions with a non-positive
// denominator or a negative numerator are skipped.
func Consolidate(shares int64, holdingDate *time.Time, actions []Action, now time.Time) int64 {
	ordered := make([]Action, len(actions))
	copy(ordered, actions)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].Date.Equal(ordered[j].Date) {
			return ordered[i].Date.Before(ordered[j].Date)
		}
		return ordered[i].ID < ordered[j].ID
	})

	h := shares
	for _, a := range ordered {
		if a.Denominator <= 0 || a.Numerator < 0 {
			continue
		}
		if a.Date.After(now) {
			break
		}
		if holdingDate != nil && !a.Date.After(*holdingDate) {
			continue
		}
		issued := ratio(h, a.Numerator, a.Denominator)
		if a.additive() {
			h = addSaturating(h, issued)
		} else {
			h = issued
		}
	}
	return h
}

// ratio returns floor(h*num/den), clamped to math.MaxInt64.
func ratio(h, num, den int64) int64 {
	if h == 0 || num == 0 {
		return 0
	}
	var q, m big.Int
	q.DivMod(new(big.Int).Mul(big.NewInt(h), big.NewInt(num)), big.NewInt(den), &m)
	if !q.IsInt64() {
		return math.MaxInt64
	}
	return q.Int64()
}

// addSaturating adds two non-negative counts, clamped to math.MaxInt64.
func addSaturating(a, b int64) int64 {
	if a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}

// Price is a closing price snapshot. A nil close means the exchange has no
// quote and values at zero.
type Price struct {
	Date time.Time
	NSE  *float64
	BSE  *float64
}

// Valuation is the roll-up of a set of holdings.
type Valuation struct {
	TotalShares       int64   `json:"totalShares"`
	TotalValuationNse float64 `json:"totalValuationNse"`
	TotalValuationBse float64 `json:"totalValuationBse"`
}

// Valuate sums holdings and values them at price. A nil price values every
// holding at zero.
func Valuate(holdings []int64, price *Price) Valuation {
	var nse, bse float64
	if price != nil {
		if price.NSE != nil {
			nse = *price.NSE
		}
		if price.BSE != nil {
			bse = *price.BSE
		}
	}
	var v Valuation
	for _, h := range holdings {
		v.TotalShares = addSaturating(v.TotalShares, h)
	}
	v.TotalValuationNse = float64(v.TotalShares) * nse
	v.TotalValuationBse = float64(v.TotalShares) * bse
	return v
}
