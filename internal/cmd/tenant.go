package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dataroomhq/dataroom-cli/internal/tenant"
)

var tenantCmd = &cobra.Command{
	Use:   "org",
	Short: "Show the current organization",
	Long: `Show the organization behind the current session: profile,
subscription tier and the features that tier unlocks.

Examples:
  dataroom org
  dataroom org -o json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireTenant(cmd.Context()); err != nil {
			return err
		}

		t := app.Tenant.Tenant()
		features := app.Tenant.Features()

		if outputFormat != "text" {
			f, err := app.formatter()
			if err != nil {
				return err
			}
			return f.Format(map[string]interface{}{
				"tenant":   t,
				"features": features,
			})
		}

		styles := app.Theme.Styles()
		fmt.Println(styles.Title.Render(app.Theme.AppTitle()))
		fmt.Printf("Organization: %s (%s)\n", t.Name, t.Slug)
		fmt.Printf("Plan:         %s (%s)\n", t.SubscriptionTier, t.SubscriptionStatus)
		fmt.Printf("Members:      %d\n", t.Usage.UserCount)
		fmt.Printf("Documents:    %d\n", t.Usage.DocumentCount)

		fmt.Println(styles.Header.Render("Features"))
		for _, feature := range features {
			fmt.Printf("  %s\n", feature)
		}
		if app.Tenant.HasFeature(tenant.FeatureCustomBranding) {
			fmt.Println(styles.Accent.Render("Custom branding is active"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tenantCmd)
}
