// Package domain holds the application data shapes shared between the
// service layer and the views.
package domain

import "time"

// User is a dashboard administrator account.
type User struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	FullName    string     `json:"full_name"`
	Role        string     `json:"role"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// Administrator roles.
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// PlatformUser is an end user of the monitored platform.
type PlatformUser struct {
	ID                string     `json:"id"`
	Username          string     `json:"username"`
	Nickname          string     `json:"nickname,omitempty"`
	Email             string     `json:"email,omitempty"`
	AvatarURL         string     `json:"avatar_url"`
	EmailVerified     bool       `json:"email_verified,omitempty"`
	OAuthProvider     string     `json:"oauth_provider"`
	ClerkUserID       string     `json:"clerk_user_id"`
	OrganizationCount int        `json:"organization_count"`
	WorkspaceCount    int        `json:"workspace_count"`
	SubscriptionCount int        `json:"subscription_count"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty"`
}

// UserOrganization is an organization membership of a platform user.
type UserOrganization struct {
	OrganizationID   string    `json:"organization_id"`
	OrganizationName string    `json:"organization_name"`
	Description      string    `json:"description,omitempty"`
	JoinedAt         time.Time `json:"joined_at"`
	CreatedAt        time.Time `json:"created_at"`
}

// UserWorkspace is a workspace membership of a platform user.
type UserWorkspace struct {
	WorkspaceID      string    `json:"workspace_id"`
	WorkspaceName    string    `json:"workspace_name"`
	OrganizationID   string    `json:"organization_id"`
	OrganizationName string    `json:"organization_name"`
	UserStatus       string    `json:"user_status"`
	CreatedAt        time.Time `json:"created_at"`
}

// UserSubscription is a subscription held by a platform user.
type UserSubscription struct {
	SubscriptionID   string     `json:"subscription_id"`
	PlanID           string     `json:"plan_id"`
	PlanName         string     `json:"plan_name"`
	OrganizationID   string     `json:"organization_id"`
	OrganizationName string     `json:"organization_name"`
	Status           string     `json:"status"`
	BillingCycle     string     `json:"billing_cycle"`
	StartDate        time.Time  `json:"start_date"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	TrialDaysUsed    int        `json:"trial_days_used,omitempty"`
}
