package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dataroomhq/dataroom-cli/internal/platform"
	"github.com/dataroomhq/dataroom-cli/internal/tui"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage organization members",
	Long:  `List, invite and update the members of your organization. Requires an admin role.`,
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List organization members",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireSession(cmd.Context()); err != nil {
			return err
		}

		users, err := app.Session.GetTenantUsers(cmd.Context())
		if err != nil {
			return err
		}

		if outputFormat != "text" {
			f, err := app.formatter()
			if err != nil {
				return err
			}
			return f.Format(map[string]interface{}{"users": users})
		}

		fmt.Println(tui.RenderUserTable(app.Theme.Styles(), users))
		fmt.Printf("%d member(s)\n", len(users))
		return nil
	},
}

var usersInviteCmd = &cobra.Command{
	Use:   "invite <email>",
	Short: "Invite someone into the organization",
	Long: `Create an invitation for an email address. The returned token is
redeemed with 'dataroom auth accept-invite'.

Examples:
  dataroom users invite ada@acme.com
  dataroom users invite bob@acme.com --role admin`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireSession(cmd.Context()); err != nil {
			return err
		}

		role, _ := cmd.Flags().GetString("role")

		inv, err := app.Session.CreateInvitation(cmd.Context(), args[0], role)
		if err != nil {
			return err
		}

		if outputFormat != "text" {
			f, err := app.formatter()
			if err != nil {
				return err
			}
			return f.Format(inv)
		}

		fmt.Printf("Invitation created for %s (%s)\n", inv.Email, inv.Role)
		if inv.Token != "" {
			fmt.Printf("Token:   %s\n", inv.Token)
		}
		fmt.Printf("Expires: %s\n", inv.ExpiresAt.Format("2006-01-02 15:04 MST"))
		return nil
	},
}

var usersUpdateCmd = &cobra.Command{
	Use:   "update <user-id>",
	Short: "Update a member's name or role",
	Long: `Update fields of an organization member. Only the flags you pass
are changed.

Examples:
  dataroom users update 7d1f... --role admin
  dataroom users update 7d1f... --name "Ada Lovelace"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireSession(cmd.Context()); err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if cmd.Flags().Changed("name") {
			name, _ := cmd.Flags().GetString("name")
			updates["name"] = name
		}
		if cmd.Flags().Changed("role") {
			role, _ := cmd.Flags().GetString("role")
			updates["tenant_role"] = role
		}
		if len(updates) == 0 {
			return fmt.Errorf("nothing to update: pass --name or --role")
		}

		user, err := app.Session.UpdateUser(cmd.Context(), args[0], updates)
		if err != nil {
			return err
		}

		fmt.Printf("Updated %s (%s)\n", user.Email, user.TenantRole)
		return nil
	},
}

func init() {
	usersInviteCmd.Flags().String("role", platform.TenantRoleUser, "Role for the invited member (user, admin)")

	usersUpdateCmd.Flags().String("name", "", "New display name")
	usersUpdateCmd.Flags().String("role", "", "New role (user, admin)")

	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersInviteCmd)
	usersCmd.AddCommand(usersUpdateCmd)
	rootCmd.AddCommand(usersCmd)
}
