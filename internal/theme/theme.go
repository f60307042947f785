// Package theme is the single place where tenant branding is applied to
// terminal output. Managers apply settings at login/profile/settings load
// and reset at logout; nothing else mutates the palette.
package theme

import (
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/dataroomhq/dataroom-cli/internal/platform"
)

// Application defaults used before a tenant brand is known and after logout
const (
	DefaultAppTitle       = "DataRoom"
	defaultPrimaryColor   = "#7C3AED"
	defaultSecondaryColor = "#6B7280"
)

// Styles is the render palette consumed by commands and views
type Styles struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Accent  lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// Manager holds the active brand. It is safe for concurrent use; the
// usage refresher and command handlers may read it from separate
// goroutines.
type Manager struct {
	mu       sync.RWMutex
	appTitle string
	welcome  string
	styles   Styles
}

// NewManager creates a manager with the application defaults applied
func NewManager() *Manager {
	m := &Manager{}
	m.Reset()
	return m
}

func buildStyles(primary, secondary string) Styles {
	p := lipgloss.Color(primary)
	s := lipgloss.Color(secondary)

	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(p),
		Header:  lipgloss.NewStyle().Bold(true).Underline(true).Foreground(p),
		Accent:  lipgloss.NewStyle().Foreground(p),
		Muted:   lipgloss.NewStyle().Foreground(s),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	}
}

// Apply maps a tenant branding document onto the palette. Empty fields
// keep the application defaults.
func (m *Manager) Apply(settings *platform.TenantSettings) {
	if settings == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	primary := settings.PrimaryColor
	if primary == "" {
		primary = defaultPrimaryColor
	}
	secondary := settings.SecondaryColor
	if secondary == "" {
		secondary = defaultSecondaryColor
	}
	m.styles = buildStyles(primary, secondary)

	if settings.AppTitle != "" {
		m.appTitle = settings.AppTitle
	} else if settings.CompanyName != "" {
		m.appTitle = settings.CompanyName
	}
	m.welcome = settings.WelcomeMessage
}

// Reset restores the application defaults
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.appTitle = DefaultAppTitle
	m.welcome = ""
	m.styles = buildStyles(defaultPrimaryColor, defaultSecondaryColor)
}

// Styles returns the active palette
func (m *Manager) Styles() Styles {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.styles
}

// AppTitle returns the active application title
func (m *Manager) AppTitle() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.appTitle
}

// WelcomeMessage returns the tenant welcome message, if any
func (m *Manager) WelcomeMessage() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.welcome
}
