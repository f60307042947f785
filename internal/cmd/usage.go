package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/dataroomhq/dataroom-cli/internal/errors"
	"github.com/dataroomhq/dataroom-cli/internal/session"
	"github.com/dataroomhq/dataroom-cli/internal/tenant"
	"github.com/dataroomhq/dataroom-cli/internal/tui"
)

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show resource usage against plan limits",
	Long: `Show the organization's resource usage against its subscription
limits. Requires an admin role.

With --watch the usage view stays open and refreshes periodically.

Examples:
  dataroom usage
  dataroom usage --watch
  dataroom usage --watch --interval 30s`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireTenant(cmd.Context()); err != nil {
			return err
		}
		if !app.Session.HasPermission(session.CapViewAnalytics) {
			return errors.NewPermissionError(session.CapViewAnalytics)
		}

		watch, _ := cmd.Flags().GetBool("watch")
		interval, _ := cmd.Flags().GetDuration("interval")
		if interval <= 0 {
			interval = tenant.UsageRefreshInterval
		}

		if watch {
			return tui.RunUsageDashboard(cmd.Context(), app.Tenant, app.Theme, interval)
		}

		if err := app.Tenant.RefreshUsage(cmd.Context()); err != nil {
			return err
		}
		limits := app.Tenant.Limits()

		if outputFormat != "text" {
			f, err := app.formatter()
			if err != nil {
				return err
			}
			return f.Format(map[string]interface{}{
				"usage":  app.Tenant.Usage(),
				"limits": limits,
			})
		}

		styles := app.Theme.Styles()
		fmt.Println(styles.Header.Render("Resource usage"))

		resources := make([]string, 0, len(limits))
		for name := range limits {
			resources = append(resources, name)
		}
		sort.Strings(resources)

		for _, name := range resources {
			status := limits[name]
			line := fmt.Sprintf("%-12s %d", name, status.Current)
			if status.Limit > 0 {
				line = fmt.Sprintf("%-12s %d / %d", name, status.Current, status.Limit)
			}
			switch {
			case status.Exceeded:
				fmt.Println(styles.Error.Render(line + "  over limit"))
			case app.Tenant.IsApproachingLimit(name, tenant.DefaultLimitThreshold):
				fmt.Println(styles.Warning.Render(line + "  approaching limit"))
			default:
				fmt.Println(line)
			}
		}
		return nil
	},
}

func init() {
	usageCmd.Flags().Bool("watch", false, "Keep the usage view open and refresh periodically")
	usageCmd.Flags().Duration("interval", 0, fmt.Sprintf("Refresh interval for --watch (default %s)", tenant.UsageRefreshInterval))
	rootCmd.AddCommand(usageCmd)
}
