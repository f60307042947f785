package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dataroomhq/dataroom-cli/internal/platform"
	"github.com/dataroomhq/dataroom-cli/internal/tenant"
	"github.com/dataroomhq/dataroom-cli/internal/theme"
)

type usageTickMsg time.Time

type usageRefreshedMsg struct {
	limits map[string]platform.LimitStatus
	err    error
}

// UsageModel is the live usage dashboard shown by `dataroom usage --watch`
type UsageModel struct {
	ctx      context.Context
	manager  *tenant.Manager
	theme    *theme.Manager
	interval time.Duration

	limits    map[string]platform.LimitStatus
	lastErr   error
	refreshed time.Time
	bar       progress.Model
}

// NewUsageModel builds the dashboard model. The refresh interval
// defaults to the tenant manager's polling interval.
func NewUsageModel(ctx context.Context, manager *tenant.Manager, th *theme.Manager, interval time.Duration) UsageModel {
	if interval <= 0 {
		interval = tenant.UsageRefreshInterval
	}
	return UsageModel{
		ctx:      ctx,
		manager:  manager,
		theme:    th,
		interval: interval,
		bar:      progress.New(progress.WithDefaultGradient()),
	}
}

func (m UsageModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		err := m.manager.RefreshUsage(m.ctx)
		return usageRefreshedMsg{limits: m.manager.Limits(), err: err}
	}
}

func (m UsageModel) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return usageTickMsg(t)
	})
}

// Init fetches immediately, then settles into the polling interval
func (m UsageModel) Init() tea.Cmd {
	return tea.Batch(m.refreshCmd(), m.tickCmd())
}

// Update handles refresh results, ticks, and quit keys
func (m UsageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m, m.refreshCmd()
		}
	case usageTickMsg:
		return m, tea.Batch(m.refreshCmd(), m.tickCmd())
	case usageRefreshedMsg:
		m.lastErr = msg.err
		if msg.err == nil {
			m.limits = msg.limits
			m.refreshed = time.Now()
		}
	case tea.WindowSizeMsg:
		m.bar.Width = msg.Width - 40
	}
	return m, nil
}

// View renders one progress bar per tracked resource
func (m UsageModel) View() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Title.Render(m.theme.AppTitle() + " · Usage"))
	b.WriteString("\n\n")

	if m.lastErr != nil {
		b.WriteString(styles.Error.Render("refresh failed: " + m.lastErr.Error()))
		b.WriteString("\n\n")
	}

	if len(m.limits) == 0 {
		b.WriteString(styles.Muted.Render("waiting for usage data..."))
		b.WriteString("\n")
	} else {
		resources := make([]string, 0, len(m.limits))
		for name := range m.limits {
			resources = append(resources, name)
		}
		sort.Strings(resources)

		for _, name := range resources {
			status := m.limits[name]

			label := fmt.Sprintf("%-12s %d / %d", name, status.Current, status.Limit)
			if status.Limit <= 0 {
				b.WriteString(styles.Muted.Render(label + "  (unlimited)"))
				b.WriteString("\n")
				continue
			}

			ratio := float64(status.Current) / float64(status.Limit)
			line := fmt.Sprintf("%s  %s", label, m.bar.ViewAs(ratio))
			switch {
			case status.Exceeded || ratio >= 1:
				b.WriteString(styles.Error.Render(line))
			case ratio >= tenant.DefaultLimitThreshold:
				b.WriteString(styles.Warning.Render(line))
			default:
				b.WriteString(line)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if !m.refreshed.IsZero() {
		b.WriteString(styles.Muted.Render("refreshed " + m.refreshed.Format(time.Kitchen) + " · "))
	}
	b.WriteString(styles.Muted.Render("r refresh · q quit"))
	b.WriteString("\n")
	return b.String()
}

// RunUsageDashboard runs the live dashboard until the user quits
func RunUsageDashboard(ctx context.Context, manager *tenant.Manager, th *theme.Manager, interval time.Duration) error {
	model := NewUsageModel(ctx, manager, th, interval)
	_, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	return err
}
