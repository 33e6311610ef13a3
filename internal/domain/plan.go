package domain

import "time"

// PlanLimits maps a quota name (e.g. "max_users") to its ceiling. The
// backend transports limits as a JSON-string column; the plan service
// parses it into this shape at the boundary so nothing downstream ever
// sees the raw string.
type PlanLimits map[string]int64

// SubscriptionPlan is a plan definition.
type SubscriptionPlan struct {
	ID                     string     `json:"id"`
	TierName               string     `json:"tier_name"`
	PricingMonthly         float64    `json:"pricing_monthly"`
	PricingQuarterly       float64    `json:"pricing_quarterly"`
	PricingYearly          float64    `json:"pricing_yearly"`
	Limits                 PlanLimits `json:"limits"`
	Features               []string   `json:"features,omitempty"`
	TargetUsers            string     `json:"target_users,omitempty"`
	UpgradePath            string     `json:"upgrade_path,omitempty"`
	IsCustom               bool       `json:"is_custom,omitempty"`
	DefaultFlowPackage     string     `json:"default_flow_package,omitempty"`
	IsActive               bool       `json:"is_active"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
	StripePriceIDMonthly   string     `json:"stripe_price_id_monthly,omitempty"`
	StripePriceIDQuarterly string     `json:"stripe_price_id_quarterly,omitempty"`
	StripePriceIDYearly    string     `json:"stripe_price_id_yearly,omitempty"`
}
