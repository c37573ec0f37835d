package domain

// Tier identifies a subscription level. The set is closed: mini, scale, max.
type Tier string

const (
	TierMini  Tier = "mini"
	TierScale Tier = "scale"
	TierMax   Tier = "max"
)

// Valid reports whether t is one of the three known tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierMini, TierScale, TierMax:
		return true
	}
	return false
}

// ImpressionsBalance returns the initial impressions balance granted for
// the tier. Unknown or empty tiers fall back to the mini allotment.
func (t Tier) ImpressionsBalance() int {
	switch t {
	case TierScale:
		return 25000
	case TierMax:
		return 100000
	default:
		return 10000
	}
}

// BillingCycle identifies how a subscription is billed.
type BillingCycle string

const (
	BillingMonthly BillingCycle = "monthly"
	BillingAnnual  BillingCycle = "annual"
)
