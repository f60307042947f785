package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/dataroomhq/dataroom-cli/internal/platform"
	"github.com/dataroomhq/dataroom-cli/internal/theme"
)

func newTable(styles theme.Styles, columns []table.Column, rows []table.Row) string {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)

	ts := table.DefaultStyles()
	ts.Header = styles.Header.BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	ts.Selected = lipgloss.NewStyle()
	t.SetStyles(ts)

	return t.View()
}

// RenderUserTable renders tenant members with their roles
func RenderUserTable(styles theme.Styles, users []platform.User) string {
	columns := []table.Column{
		{Title: "ID", Width: 12},
		{Title: "Name", Width: 24},
		{Title: "Email", Width: 32},
		{Title: "Role", Width: 10},
	}

	rows := make([]table.Row, 0, len(users))
	for _, u := range users {
		role := u.TenantRole
		if u.GlobalRole != "" {
			role = u.GlobalRole
		}
		rows = append(rows, table.Row{u.ID, u.Name, u.Email, role})
	}

	return newTable(styles, columns, rows)
}

// RenderTenantTable renders the platform-admin tenant listing
func RenderTenantTable(styles theme.Styles, tenants []platform.Tenant) string {
	columns := []table.Column{
		{Title: "Slug", Width: 16},
		{Title: "Name", Width: 24},
		{Title: "Tier", Width: 14},
		{Title: "Status", Width: 10},
		{Title: "Users", Width: 7},
		{Title: "Docs", Width: 7},
	}

	rows := make([]table.Row, 0, len(tenants))
	for _, t := range tenants {
		rows = append(rows, table.Row{
			t.Slug,
			t.Name,
			t.SubscriptionTier,
			t.SubscriptionStatus,
			fmt.Sprintf("%d", t.Usage.UserCount),
			fmt.Sprintf("%d", t.Usage.DocumentCount),
		})
	}

	return newTable(styles, columns, rows)
}

// RenderAnalyticsTable renders the per-tenant analytics view
func RenderAnalyticsTable(styles theme.Styles, analytics []platform.TenantAnalytics) string {
	columns := []table.Column{
		{Title: "Tenant", Width: 24},
		{Title: "Tier", Width: 14},
		{Title: "Active Users", Width: 13},
		{Title: "Documents", Width: 10},
		{Title: "MRR", Width: 10},
	}

	rows := make([]table.Row, 0, len(analytics))
	for _, a := range analytics {
		rows = append(rows, table.Row{
			a.TenantName,
			a.Tier,
			fmt.Sprintf("%d", a.ActiveUsers),
			fmt.Sprintf("%d", a.DocumentCount),
			fmt.Sprintf("$%.2f", a.MonthlyRevenue),
		})
	}

	return newTable(styles, columns, rows)
}
