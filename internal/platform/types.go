package platform

import "time"

// Tenant roles
const (
	TenantRoleUser  = "user"
	TenantRoleAdmin = "admin"
)

// GlobalRoleSuperadmin is the platform-operator role, not scoped to any tenant
const GlobalRoleSuperadmin = "superadmin"

// User is the authenticated principal as delivered by the platform.
// TenantID is empty for platform-level operators.
type User struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	TenantID   string          `json:"tenant_id,omitempty"`
	TenantSlug string          `json:"tenant_slug,omitempty"`
	TenantRole string          `json:"tenant_role,omitempty"`
	GlobalRole string          `json:"global_role,omitempty"`
	Settings   *TenantSettings `json:"settings,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// IsTenantAdmin reports whether the user administers their tenant
func (u *User) IsTenantAdmin() bool {
	return u.TenantRole == TenantRoleAdmin
}

// IsSuperadmin reports whether the user is a platform operator
func (u *User) IsSuperadmin() bool {
	return u.GlobalRole == GlobalRoleSuperadmin
}

// LimitStatus is a single resource limit snapshot
type LimitStatus struct {
	Current  int64 `json:"current"`
	Limit    int64 `json:"limit"`
	Exceeded bool  `json:"exceeded"`
}

// Usage holds the tenant's current resource counters
type Usage struct {
	UserCount     int64 `json:"user_count"`
	DocumentCount int64 `json:"document_count"`
	StorageBytes  int64 `json:"storage_bytes"`
	QuestionCount int64 `json:"question_count"`
}

// Tenant is an organization record. Subscription fields are read-only for
// tenant admins; only the settings document is editable client-side.
type Tenant struct {
	ID                 string                 `json:"id"`
	Slug               string                 `json:"slug"`
	Name               string                 `json:"name"`
	SubscriptionTier   string                 `json:"subscription_tier"`
	SubscriptionStatus string                 `json:"subscription_status"`
	Usage              Usage                  `json:"usage"`
	Limits             map[string]LimitStatus `json:"limits"`
	CreatedAt          time.Time              `json:"created_at"`
}

// TenantSettings is the mutable branding document
type TenantSettings struct {
	CompanyName    string `json:"company_name"`
	AppTitle       string `json:"app_title"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	LogoURL        string `json:"logo_url,omitempty"`
	WelcomeMessage string `json:"welcome_message,omitempty"`
	CustomDomain   string `json:"custom_domain,omitempty"`
}

// Invitation is a pending invite to join a tenant
type Invitation struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Token     string    `json:"token,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

// TenantAnalytics is the per-tenant slice of the platform analytics view
type TenantAnalytics struct {
	TenantID       string  `json:"tenant_id"`
	TenantName     string  `json:"tenant_name"`
	Tier           string  `json:"tier"`
	ActiveUsers    int64   `json:"active_users"`
	DocumentCount  int64   `json:"document_count"`
	StorageBytes   int64   `json:"storage_bytes"`
	MonthlyRevenue float64 `json:"monthly_revenue"`
}

// GlobalAnalytics is the platform-wide rollup shown on the admin console
type GlobalAnalytics struct {
	TenantCount    int64            `json:"tenant_count"`
	UserCount      int64            `json:"user_count"`
	DocumentCount  int64            `json:"document_count"`
	StorageBytes   int64            `json:"storage_bytes"`
	MonthlyRevenue float64          `json:"monthly_revenue"`
	TierBreakdown  map[string]int64 `json:"tier_breakdown"`
}

// HealthStatus is the platform health endpoint response
type HealthStatus struct {
	Status   string            `json:"status"`
	Version  string            `json:"version"`
	Services map[string]string `json:"services"`
}
