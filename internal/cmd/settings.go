package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dataroomhq/dataroom-cli/internal/errors"
	"github.com/dataroomhq/dataroom-cli/internal/platform"
	"github.com/dataroomhq/dataroom-cli/internal/session"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage organization branding and settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the organization's settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireTenant(cmd.Context()); err != nil {
			return err
		}
		if err := app.Tenant.LoadSettings(cmd.Context()); err != nil {
			return err
		}

		settings := app.Tenant.Settings()
		if settings == nil {
			fmt.Println("No settings configured.")
			return nil
		}

		if outputFormat != "text" {
			f, err := app.formatter()
			if err != nil {
				return err
			}
			return f.Format(settings)
		}

		styles := app.Theme.Styles()
		fmt.Println(styles.Header.Render("Organization settings"))
		fmt.Printf("Company:         %s\n", settings.CompanyName)
		fmt.Printf("App title:       %s\n", settings.AppTitle)
		fmt.Printf("Primary color:   %s\n", styles.Accent.Render(settings.PrimaryColor))
		fmt.Printf("Secondary color: %s\n", settings.SecondaryColor)
		if settings.LogoURL != "" {
			fmt.Printf("Logo:            %s\n", settings.LogoURL)
		}
		if settings.WelcomeMessage != "" {
			fmt.Printf("Welcome message: %s\n", settings.WelcomeMessage)
		}
		if settings.CustomDomain != "" {
			fmt.Printf("Custom domain:   %s\n", settings.CustomDomain)
		}
		return nil
	},
}

var settingsUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update organization branding",
	Long: `Update branding settings. Only the flags you pass are changed; the
rest keep their current server-side values. Requires an admin role.

Examples:
  dataroom settings update --app-title "Acme Deal Room" --primary-color "#0F766E"
  dataroom settings update --welcome "Welcome to the Acme data room"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireTenant(cmd.Context()); err != nil {
			return err
		}
		if !app.Session.HasPermission(session.CapManageSettings) {
			return errors.NewPermissionError(session.CapManageSettings)
		}
		if err := app.Tenant.LoadSettings(cmd.Context()); err != nil {
			return err
		}

		current := app.Tenant.Settings()
		updated := platform.TenantSettings{}
		if current != nil {
			updated = *current
		}

		apply := func(flag string, dst *string) {
			if cmd.Flags().Changed(flag) {
				v, _ := cmd.Flags().GetString(flag)
				*dst = v
			}
		}
		apply("company", &updated.CompanyName)
		apply("app-title", &updated.AppTitle)
		apply("primary-color", &updated.PrimaryColor)
		apply("secondary-color", &updated.SecondaryColor)
		apply("logo-url", &updated.LogoURL)
		apply("welcome", &updated.WelcomeMessage)
		apply("domain", &updated.CustomDomain)

		if current != nil && updated == *current {
			return fmt.Errorf("nothing to update: pass at least one settings flag")
		}

		if err := app.Tenant.UpdateSettings(cmd.Context(), updated); err != nil {
			return err
		}

		fmt.Println(app.Theme.Styles().Success.Render("Settings updated"))
		return nil
	},
}

func init() {
	settingsUpdateCmd.Flags().String("company", "", "Company name")
	settingsUpdateCmd.Flags().String("app-title", "", "Application title shown to members")
	settingsUpdateCmd.Flags().String("primary-color", "", "Primary brand color (hex)")
	settingsUpdateCmd.Flags().String("secondary-color", "", "Secondary brand color (hex)")
	settingsUpdateCmd.Flags().String("logo-url", "", "Logo URL")
	settingsUpdateCmd.Flags().String("welcome", "", "Welcome message")
	settingsUpdateCmd.Flags().String("domain", "", "Custom domain")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsUpdateCmd)
	rootCmd.AddCommand(settingsCmd)
}
