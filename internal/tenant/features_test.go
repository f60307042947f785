package tenant

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dataroomhq/dataroom-cli/internal/platform"
)

func managerWithTier(tier string) *Manager {
	m := &Manager{}
	if tier != "" {
		m.tenant = &platform.Tenant{ID: "t1", SubscriptionTier: tier}
	}
	return m
}

func TestHasFeature(t *testing.T) {
	tests := []struct {
		name    string
		tier    string
		feature string
		want    bool
	}{
		{"free has basic analytics", TierFree, FeatureBasicAnalytics, true},
		{"free has document upload", TierFree, FeatureDocumentUpload, true},
		{"free lacks user management", TierFree, FeatureUserManagement, false},
		{"free lacks sso", TierFree, FeatureSSO, false},

		{"starter keeps free features", TierStarter, FeatureBasicAnalytics, true},
		{"starter has user management", TierStarter, FeatureUserManagement, true},
		{"starter has custom branding", TierStarter, FeatureCustomBranding, true},
		{"starter lacks api access", TierStarter, FeatureAPIAccess, false},
		{"starter lacks sso", TierStarter, FeatureSSO, false},

		{"professional keeps starter features", TierProfessional, FeatureCustomBranding, true},
		{"professional has advanced analytics", TierProfessional, FeatureAdvancedAnalytics, true},
		{"professional has api access", TierProfessional, FeatureAPIAccess, true},
		{"professional lacks sso", TierProfessional, FeatureSSO, false},
		{"professional lacks audit logs", TierProfessional, FeatureAuditLogs, false},

		{"enterprise keeps professional features", TierEnterprise, FeatureAPIAccess, true},
		{"enterprise has sso", TierEnterprise, FeatureSSO, true},
		{"enterprise has audit logs", TierEnterprise, FeatureAuditLogs, true},
		{"enterprise has custom domain", TierEnterprise, FeatureCustomDomain, true},

		{"unknown tier has nothing", "platinum", FeatureBasicAnalytics, false},
		{"unknown feature is denied", TierEnterprise, "teleportation", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := managerWithTier(tt.tier)
			assert.Equal(t, tt.want, m.HasFeature(tt.feature))
		})
	}
}

func TestSSOIsEnterpriseOnly(t *testing.T) {
	for _, tier := range []string{TierFree, TierStarter, TierProfessional, "platinum", ""} {
		assert.False(t, managerWithTier(tier).HasFeature(FeatureSSO), "tier %q", tier)
	}
	assert.True(t, managerWithTier(TierEnterprise).HasFeature(FeatureSSO))
}

func TestHasFeatureWithoutLoadedTenant(t *testing.T) {
	m := &Manager{}
	assert.False(t, m.HasFeature(FeatureBasicAnalytics))
	assert.Nil(t, m.Features())
}

func TestFeaturesListsFullTierSet(t *testing.T) {
	// Each tier's set fully repeats the tiers below it; nothing relies
	// on implicit inheritance.
	free := managerWithTier(TierFree).Features()
	enterprise := managerWithTier(TierEnterprise).Features()

	for _, f := range free {
		assert.Contains(t, enterprise, f)
	}
	assert.Len(t, enterprise, 9)
}
