package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dataroomhq/dataroom-cli/internal/platform"
)

func managerWithUser(user *platform.User) *Manager {
	m := &Manager{}
	m.user = user
	if user != nil {
		m.token = "t"
	}
	return m
}

func TestHasPermission(t *testing.T) {
	tenantUser := &platform.User{ID: "u1", TenantID: "t1", TenantRole: platform.TenantRoleUser}
	tenantAdmin := &platform.User{ID: "u2", TenantID: "t1", TenantRole: platform.TenantRoleAdmin}
	superadmin := &platform.User{ID: "u3", GlobalRole: platform.GlobalRoleSuperadmin}

	tests := []struct {
		name       string
		user       *platform.User
		capability string
		want       bool
	}{
		{"unauthenticated has nothing", nil, CapViewDocuments, false},

		{"user can view documents", tenantUser, CapViewDocuments, true},
		{"user can ask questions", tenantUser, CapAskQuestions, true},
		{"user can upload documents", tenantUser, CapUploadDocuments, true},
		{"user cannot manage users", tenantUser, CapManageUsers, false},
		{"user cannot manage settings", tenantUser, CapManageSettings, false},
		{"user cannot view analytics", tenantUser, CapViewAnalytics, false},
		{"user cannot delete documents", tenantUser, CapDeleteDocuments, false},
		{"user cannot manage tenants", tenantUser, CapManageTenants, false},

		{"admin can manage users", tenantAdmin, CapManageUsers, true},
		{"admin can manage settings", tenantAdmin, CapManageSettings, true},
		{"admin can view analytics", tenantAdmin, CapViewAnalytics, true},
		{"admin can delete documents", tenantAdmin, CapDeleteDocuments, true},
		{"admin cannot view global analytics", tenantAdmin, CapGlobalAnalytics, false},
		{"admin cannot manage tenants", tenantAdmin, CapManageTenants, false},

		{"superadmin can manage tenants", superadmin, CapManageTenants, true},
		{"superadmin can view global analytics", superadmin, CapGlobalAnalytics, true},
		{"superadmin can manage users", superadmin, CapManageUsers, true},
		{"superadmin short-circuits unknown capabilities", superadmin, "made_up_capability", true},

		{"unknown capability is denied", tenantAdmin, "made_up_capability", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := managerWithUser(tt.user)
			assert.Equal(t, tt.want, m.HasPermission(tt.capability))
		})
	}
}

func TestManageTenantsRequiresSuperadmin(t *testing.T) {
	// manage_tenants is true iff global_role is superadmin, for every
	// other role combination it is false.
	combos := []*platform.User{
		{ID: "a", TenantID: "t1", TenantRole: platform.TenantRoleUser},
		{ID: "b", TenantID: "t1", TenantRole: platform.TenantRoleAdmin},
		{ID: "c"},
	}
	for _, user := range combos {
		assert.False(t, managerWithUser(user).HasPermission(CapManageTenants), "user %s", user.ID)
	}

	assert.True(t, managerWithUser(&platform.User{ID: "s", GlobalRole: platform.GlobalRoleSuperadmin}).HasPermission(CapManageTenants))
}

func TestDerivedBooleans(t *testing.T) {
	superadmin := managerWithUser(&platform.User{ID: "s", GlobalRole: platform.GlobalRoleSuperadmin})
	assert.True(t, superadmin.IsAuthenticated())
	assert.True(t, superadmin.IsAdmin())
	assert.True(t, superadmin.IsSuperAdmin())
	assert.False(t, superadmin.IsTenantUser())

	admin := managerWithUser(&platform.User{ID: "a", TenantID: "t1", TenantRole: platform.TenantRoleAdmin})
	assert.True(t, admin.IsAdmin())
	assert.False(t, admin.IsSuperAdmin())
	assert.True(t, admin.IsTenantUser())

	none := managerWithUser(nil)
	assert.False(t, none.IsAuthenticated())
	assert.False(t, none.IsAdmin())
}
