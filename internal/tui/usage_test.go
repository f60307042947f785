package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataroomhq/dataroom-cli/internal/platform"
	"github.com/dataroomhq/dataroom-cli/internal/theme"
)

func TestUsageViewRendersLimits(t *testing.T) {
	m := NewUsageModel(t.Context(), nil, theme.NewManager(), time.Minute)
	m.limits = map[string]platform.LimitStatus{
		"users":     {Current: 8, Limit: 10},
		"documents": {Current: 2, Limit: 100},
		"storage":   {Current: 5, Limit: 0},
	}
	m.refreshed = time.Now()

	view := m.View()
	assert.Contains(t, view, "users")
	assert.Contains(t, view, "8 / 10")
	assert.Contains(t, view, "documents")
	assert.Contains(t, view, "(unlimited)")
	assert.Contains(t, view, theme.DefaultAppTitle)
}

func TestUsageViewWithoutData(t *testing.T) {
	m := NewUsageModel(t.Context(), nil, theme.NewManager(), time.Minute)
	assert.Contains(t, m.View(), "waiting for usage data")
}

func TestUsageUpdateQuitKeys(t *testing.T) {
	m := NewUsageModel(t.Context(), nil, theme.NewManager(), time.Minute)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd, "q should quit")
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd, "esc should quit")
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestUsageUpdateAdoptsRefreshResult(t *testing.T) {
	m := NewUsageModel(t.Context(), nil, theme.NewManager(), time.Minute)

	updated, _ := m.Update(usageRefreshedMsg{
		limits: map[string]platform.LimitStatus{"users": {Current: 1, Limit: 10}},
	})
	model := updated.(UsageModel)

	require.Len(t, model.limits, 1)
	assert.False(t, model.refreshed.IsZero())
	assert.True(t, strings.Contains(model.View(), "1 / 10"))
}

func TestUsageUpdateKeepsOldDataOnError(t *testing.T) {
	m := NewUsageModel(t.Context(), nil, theme.NewManager(), time.Minute)
	m.limits = map[string]platform.LimitStatus{"users": {Current: 1, Limit: 10}}

	updated, _ := m.Update(usageRefreshedMsg{err: assert.AnError})
	model := updated.(UsageModel)

	assert.Len(t, model.limits, 1, "a failed refresh must not drop the last snapshot")
	assert.Contains(t, model.View(), "refresh failed")
}
