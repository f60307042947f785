package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dataroomhq/dataroom-cli/internal/platform"
)

func TestApplyAndReset(t *testing.T) {
	m := NewManager()
	assert.Equal(t, DefaultAppTitle, m.AppTitle())

	m.Apply(&platform.TenantSettings{
		CompanyName:    "Acme Corp",
		AppTitle:       "Acme Data Room",
		PrimaryColor:   "#000000",
		SecondaryColor: "#111111",
		WelcomeMessage: "Welcome to Acme",
	})

	assert.Equal(t, "Acme Data Room", m.AppTitle())
	assert.Equal(t, "Welcome to Acme", m.WelcomeMessage())

	m.Reset()
	assert.Equal(t, DefaultAppTitle, m.AppTitle())
	assert.Empty(t, m.WelcomeMessage())
}

func TestApplyFallsBackToCompanyName(t *testing.T) {
	m := NewManager()
	m.Apply(&platform.TenantSettings{CompanyName: "Acme Corp"})
	assert.Equal(t, "Acme Corp", m.AppTitle())
}

func TestApplyNilIsNoop(t *testing.T) {
	m := NewManager()
	m.Apply(nil)
	assert.Equal(t, DefaultAppTitle, m.AppTitle())
}

func TestResetAfterLogoutClearsBrand(t *testing.T) {
	m := NewManager()
	m.Apply(&platform.TenantSettings{AppTitle: "Acme", PrimaryColor: "#123456"})

	branded := m.Styles()
	m.Reset()
	defaults := m.Styles()

	// The branded title style must not survive a reset.
	assert.NotEqual(t, branded.Title.GetForeground(), defaults.Title.GetForeground())
}
