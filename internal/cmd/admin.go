package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dataroomhq/dataroom-cli/internal/errors"
	"github.com/dataroomhq/dataroom-cli/internal/platform"
	"github.com/dataroomhq/dataroom-cli/internal/session"
	"github.com/dataroomhq/dataroom-cli/internal/tui"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Platform operator console",
	Long:  `Inspect all organizations and platform-wide analytics. Requires a platform operator account.`,
}

// requireOperator checks the superadmin capability before any admin
// subcommand touches the network
func requireOperator(app *App) error {
	if !app.Session.HasPermission(session.CapManageTenants) {
		return errors.NewPermissionError(session.CapManageTenants)
	}
	return nil
}

var adminTenantsCmd = &cobra.Command{
	Use:   "tenants",
	Short: "List all organizations",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireSession(cmd.Context()); err != nil {
			return err
		}
		if err := requireOperator(app); err != nil {
			return err
		}

		tenants, err := app.Client.ListTenants(cmd.Context())
		if err != nil {
			return err
		}

		if outputFormat != "text" {
			f, err := app.formatter()
			if err != nil {
				return err
			}
			return f.Format(map[string]interface{}{"tenants": tenants})
		}

		fmt.Println(tui.RenderTenantTable(app.Theme.Styles(), tenants))
		fmt.Printf("%d organization(s)\n", len(tenants))
		return nil
	},
}

var adminAnalyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show per-organization analytics",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireSession(cmd.Context()); err != nil {
			return err
		}
		if err := requireOperator(app); err != nil {
			return err
		}

		analytics, err := app.Client.TenantAnalytics(cmd.Context())
		if err != nil {
			return err
		}

		if outputFormat != "text" {
			f, err := app.formatter()
			if err != nil {
				return err
			}
			return f.Format(map[string]interface{}{"analytics": analytics})
		}

		fmt.Println(tui.RenderAnalyticsTable(app.Theme.Styles(), analytics))
		return nil
	},
}

var adminHealthCmd = &cobra.Command{
	Use:   "health",
	Short: "Show platform health",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireSession(cmd.Context()); err != nil {
			return err
		}
		if err := requireOperator(app); err != nil {
			return err
		}

		health, err := app.Client.Health(cmd.Context())
		if err != nil {
			return err
		}

		if outputFormat != "text" {
			f, err := app.formatter()
			if err != nil {
				return err
			}
			return f.Format(health)
		}

		styles := app.Theme.Styles()
		render := styles.Success.Render
		if health.Status != "ok" {
			render = styles.Error.Render
		}
		fmt.Printf("Status:  %s\n", render(health.Status))
		fmt.Printf("Version: %s\n", health.Version)
		for name, state := range health.Services {
			fmt.Printf("  %-12s %s\n", name, state)
		}
		return nil
	},
}

var adminOverviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Show the full platform dashboard",
	Long: `Fetch the global rollup, per-organization analytics and platform
health in one view. The three requests run concurrently.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireSession(cmd.Context()); err != nil {
			return err
		}
		if err := requireOperator(app); err != nil {
			return err
		}

		var (
			global    *platform.GlobalAnalytics
			analytics []platform.TenantAnalytics
			health    *platform.HealthStatus
		)

		g, gctx := errgroup.WithContext(cmd.Context())
		g.Go(func() error {
			var err error
			global, err = app.Client.GlobalAnalytics(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			analytics, err = app.Client.TenantAnalytics(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			health, err = app.Client.Health(gctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return err
		}

		if outputFormat != "text" {
			f, err := app.formatter()
			if err != nil {
				return err
			}
			return f.Format(map[string]interface{}{
				"global":    global,
				"analytics": analytics,
				"health":    health,
			})
		}

		styles := app.Theme.Styles()
		fmt.Println(styles.Title.Render("Platform overview"))
		fmt.Printf("Organizations: %d\n", global.TenantCount)
		fmt.Printf("Users:         %d\n", global.UserCount)
		fmt.Printf("Documents:     %d\n", global.DocumentCount)
		fmt.Printf("Revenue:       $%.2f/mo\n", global.MonthlyRevenue)
		for tier, count := range global.TierBreakdown {
			fmt.Printf("  %-14s %d\n", tier, count)
		}

		fmt.Println(styles.Header.Render("Organizations"))
		fmt.Println(tui.RenderAnalyticsTable(styles, analytics))

		render := styles.Success.Render
		if health.Status != "ok" {
			render = styles.Error.Render
		}
		fmt.Printf("Health: %s (%s)\n", render(health.Status), health.Version)
		return nil
	},
}

func init() {
	adminCmd.AddCommand(adminTenantsCmd)
	adminCmd.AddCommand(adminAnalyticsCmd)
	adminCmd.AddCommand(adminHealthCmd)
	adminCmd.AddCommand(adminOverviewCmd)
	rootCmd.AddCommand(adminCmd)
}
