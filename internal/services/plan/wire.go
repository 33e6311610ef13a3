package plan

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"sassmon/internal/domain"
)

// planDTO is the wire shape of a plan definition. Limits and Features
// arrive as JSON encoded inside string fields; decode parses them into
// typed values and rejects malformed payloads instead of passing the
// raw strings upward.
type planDTO struct {
	ID                     string    `json:"id"`
	TierName               string    `json:"tier_name"`
	PricingMonthly         float64   `json:"pricing_monthly"`
	PricingQuarterly       float64   `json:"pricing_quarterly"`
	PricingYearly          float64   `json:"pricing_yearly"`
	Limits                 string    `json:"limits"`
	Features               string    `json:"features"`
	TargetUsers            string    `json:"target_users"`
	UpgradePath            string    `json:"upgrade_path"`
	IsCustom               bool      `json:"is_custom"`
	DefaultFlowPackage     string    `json:"default_flow_package"`
	IsActive               bool      `json:"is_active"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
	StripePriceIDMonthly   string    `json:"stripe_price_id_monthly"`
	StripePriceIDQuarterly string    `json:"stripe_price_id_quarterly"`
	StripePriceIDYearly    string    `json:"stripe_price_id_yearly"`
}

func (d planDTO) decode() (domain.SubscriptionPlan, error) {
	limits, err := parseLimits(d.Limits)
	if err != nil {
		return domain.SubscriptionPlan{}, fmt.Errorf("plan %q: %w", d.TierName, err)
	}
	features, err := parseFeatures(d.Features)
	if err != nil {
		return domain.SubscriptionPlan{}, fmt.Errorf("plan %q: %w", d.TierName, err)
	}

	return domain.SubscriptionPlan{
		ID:                     d.ID,
		TierName:               d.TierName,
		PricingMonthly:         d.PricingMonthly,
		PricingQuarterly:       d.PricingQuarterly,
		PricingYearly:          d.PricingYearly,
		Limits:                 limits,
		Features:               features,
		TargetUsers:            d.TargetUsers,
		UpgradePath:            d.UpgradePath,
		IsCustom:               d.IsCustom,
		DefaultFlowPackage:     d.DefaultFlowPackage,
		IsActive:               d.IsActive,
		CreatedAt:              d.CreatedAt,
		UpdatedAt:              d.UpdatedAt,
		StripePriceIDMonthly:   d.StripePriceIDMonthly,
		StripePriceIDQuarterly: d.StripePriceIDQuarterly,
		StripePriceIDYearly:    d.StripePriceIDYearly,
	}, nil
}

// parseLimits decodes the limits column. Quota ceilings must be whole
// numbers; a fractional value means the column was written by hand and
// is treated as corrupt.
func parseLimits(raw string) (domain.PlanLimits, error) {
	if raw == "" || raw == "null" {
		return domain.PlanLimits{}, nil
	}

	var numbers map[string]float64
	if err := json.Unmarshal([]byte(raw), &numbers); err != nil {
		return nil, fmt.Errorf("malformed limits: %w", err)
	}

	limits := make(domain.PlanLimits, len(numbers))
	for name, value := range numbers {
		if value != math.Trunc(value) {
			return nil, fmt.Errorf("malformed limits: %q is not an integer", name)
		}
		limits[name] = int64(value)
	}
	return limits, nil
}

func parseFeatures(raw string) ([]string, error) {
	if raw == "" || raw == "null" {
		return nil, nil
	}

	var features []string
	if err := json.Unmarshal([]byte(raw), &features); err != nil {
		return nil, fmt.Errorf("malformed features: %w", err)
	}
	return features, nil
}

// CreateRequest carries a new plan definition. Limits and Features are
// typed here and encoded to the backend's string columns on the way
// out.
type CreateRequest struct {
	TierName           string
	PricingMonthly     float64
	PricingQuarterly   float64
	PricingYearly      float64
	Limits             domain.PlanLimits
	Features           []string
	TargetUsers        string
	UpgradePath        string
	IsCustom           bool
	DefaultFlowPackage string
	IsActive           bool
}

func (r CreateRequest) encode() (map[string]any, error) {
	limits, features, err := encodeColumns(r.Limits, r.Features)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"tier_name":            r.TierName,
		"pricing_monthly":      r.PricingMonthly,
		"pricing_quarterly":    r.PricingQuarterly,
		"pricing_yearly":       r.PricingYearly,
		"limits":               limits,
		"features":             features,
		"target_users":         r.TargetUsers,
		"upgrade_path":         r.UpgradePath,
		"is_custom":            r.IsCustom,
		"default_flow_package": r.DefaultFlowPackage,
		"is_active":            r.IsActive,
	}, nil
}

// UpdateRequest applies partial changes. Nil fields are omitted from
// the request body so the backend leaves them untouched.
type UpdateRequest struct {
	TierName         *string
	PricingMonthly   *float64
	PricingQuarterly *float64
	PricingYearly    *float64
	Limits           domain.PlanLimits
	Features         []string
	TargetUsers      *string
	UpgradePath      *string
	IsActive         *bool
}

func (r UpdateRequest) encode() (map[string]any, error) {
	body := map[string]any{}
	if r.TierName != nil {
		body["tier_name"] = *r.TierName
	}
	if r.PricingMonthly != nil {
		body["pricing_monthly"] = *r.PricingMonthly
	}
	if r.PricingQuarterly != nil {
		body["pricing_quarterly"] = *r.PricingQuarterly
	}
	if r.PricingYearly != nil {
		body["pricing_yearly"] = *r.PricingYearly
	}
	if r.TargetUsers != nil {
		body["target_users"] = *r.TargetUsers
	}
	if r.UpgradePath != nil {
		body["upgrade_path"] = *r.UpgradePath
	}
	if r.IsActive != nil {
		body["is_active"] = *r.IsActive
	}
	if r.Limits != nil {
		encoded, err := json.Marshal(r.Limits)
		if err != nil {
			return nil, err
		}
		body["limits"] = string(encoded)
	}
	if r.Features != nil {
		encoded, err := json.Marshal(r.Features)
		if err != nil {
			return nil, err
		}
		body["features"] = string(encoded)
	}
	return body, nil
}

func encodeColumns(limits domain.PlanLimits, features []string) (string, string, error) {
	if limits == nil {
		limits = domain.PlanLimits{}
	}
	if features == nil {
		features = []string{}
	}

	encodedLimits, err := json.Marshal(limits)
	if err != nil {
		return "", "", err
	}
	encodedFeatures, err := json.Marshal(features)
	if err != nil {
		return "", "", err
	}
	return string(encodedLimits), string(encodedFeatures), nil
}
