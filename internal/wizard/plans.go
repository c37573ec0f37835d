package wizard

import "github.com/hardcoretiff/adspot-wizard/internal/domain"

// stripePlans maps tier and billing cycle to the configured Stripe price
// id. The ids are carried as opaque strings; no payment is taken here.
var stripePlans = map[domain.Tier]map[domain.BillingCycle]string{
	domain.TierMini: {
		domain.BillingMonthly: "price_mini_monthly_id",
		domain.BillingAnnual:  "price_mini_annual_id",
	},
	domain.TierScale: {
		domain.BillingMonthly: "price_scale_monthly_id",
		domain.BillingAnnual:  "price_scale_annual_id",
	},
	domain.TierMax: {
		domain.BillingMonthly: "price_max_monthly_id",
		domain.BillingAnnual:  "price_max_annual_id",
	},
}

// StripePriceID resolves the plan table entry for the selection. Unknown
// combinations return an empty id.
func StripePriceID(tier domain.Tier, cycle domain.BillingCycle) string {
	return stripePlans[tier][cycle]
}
