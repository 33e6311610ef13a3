package domain

import "time"

// Subscription lifecycle buckets derived from the end date.
const (
	SubscriptionActive       = "active"
	SubscriptionExpiringSoon = "expiring_soon"
	SubscriptionExpired      = "expired"
	SubscriptionNone         = "none"
)

// Organization is a tenant of the monitored platform.
type Organization struct {
	ID                      string     `json:"id"`
	Name                    string     `json:"name"`
	OwnerID                 string     `json:"owner_id"`
	Description             string     `json:"description,omitempty"`
	UserCount               int        `json:"user_count"`
	SubscriptionCount       int        `json:"subscription_count"`
	ActiveSubscriptionCount int        `json:"active_subscription_count"`
	WorkspaceCount          int        `json:"workspace_count"`
	StorageUsage            int64      `json:"storage_usage"`
	SubscriptionStatus      string     `json:"subscription_status"`
	SubscriptionEndDate     *time.Time `json:"subscription_end_date,omitempty"`
	DaysUntilExpiration     *int       `json:"days_until_expiration,omitempty"`
	CreatedAt               time.Time  `json:"created_at"`
	UpdatedAt               *time.Time `json:"updated_at,omitempty"`
}

// OrganizationSubscription is one subscription row under a tenant.
type OrganizationSubscription struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	Username       string     `json:"username"`
	UserEmail      string     `json:"user_email,omitempty"`
	PlanID         string     `json:"plan_id"`
	PlanName       string     `json:"plan_name"`
	PlanPricing    float64    `json:"plan_pricing"`
	Status         string     `json:"status"`
	BillingCycle   string     `json:"billing_cycle"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	DaysUntilExpiry *int      `json:"days_until_expiry,omitempty"`
	PaymentMethod  string     `json:"payment_method,omitempty"`
	LastBilledAt   *time.Time `json:"last_billed_at,omitempty"`
	TrialDaysUsed  int        `json:"trial_days_used,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// OrganizationMetrics is the per-tenant detail aggregate.
type OrganizationMetrics struct {
	Organization Organization `json:"organization"`
	UserStats    struct {
		TotalUsers  int `json:"total_users"`
		ActiveUsers int `json:"active_users"`
	} `json:"user_stats"`
	SubStats struct {
		TotalSubscriptions  int     `json:"total_subscriptions"`
		ActiveSubscriptions int     `json:"active_subscriptions"`
		MonthlyRevenue      float64 `json:"monthly_revenue"`
	} `json:"sub_stats"`
	WorkspaceCount int `json:"workspace_count"`
	ResourceUsage  struct {
		StorageUsageMB  float64 `json:"storage_usage_mb"`
		QueryCountToday int64   `json:"query_count_today"`
	} `json:"resource_usage"`
}

// Workspace is a workspace under an organization.
type Workspace struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	OrganizationID string    `json:"organization_id"`
	MemberCount    int       `json:"member_count"`
	CreatedAt      time.Time `json:"created_at"`
}

// Member is a user row in an organization's member list.
type Member struct {
	UserID   string    `json:"user_id"`
	Username string    `json:"username"`
	Email    string    `json:"email,omitempty"`
	Role     string    `json:"role,omitempty"`
	JoinedAt time.Time `json:"joined_at"`
}
