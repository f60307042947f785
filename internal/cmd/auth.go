package cmd

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"

	"github.com/dataroomhq/dataroom-cli/internal/errors"
	"github.com/dataroomhq/dataroom-cli/internal/platform"
	"github.com/dataroomhq/dataroom-cli/internal/tui"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage authentication",
	Long:  `Log in and out of the platform and inspect the current session.`,
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the platform",
	Long: `Log in with email and password. Organization members pass their
organization slug; platform operators leave it empty.

Missing fields are prompted for interactively.

Examples:
  dataroom auth login --email you@acme.com --tenant acme
  dataroom auth login --email ops@platform.io`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		in := tui.LoginInput{}
		in.Email, _ = cmd.Flags().GetString("email")
		in.Password, _ = cmd.Flags().GetString("password")
		in.TenantSlug, _ = cmd.Flags().GetString("tenant")
		if in.TenantSlug == "" {
			in.TenantSlug = app.Config.DefaultTenant
		}

		noInput, _ := cmd.Flags().GetBool("no-input")
		if !noInput {
			if err := tui.RunLoginForm(&in); err != nil {
				return err
			}
		} else if in.Password == "" {
			in.Password, err = tui.ReadPassword("Password: ")
			if err != nil {
				return err
			}
		}
		if in.Email == "" {
			return fmt.Errorf("--email is required")
		}

		if err := app.Session.Login(cmd.Context(), in.Email, in.Password, in.TenantSlug); err != nil {
			return err
		}

		user := app.Session.CurrentUser()
		styles := app.Theme.Styles()
		fmt.Println(styles.Success.Render("Logged in"))
		fmt.Printf("Name:  %s\n", user.Name)
		fmt.Printf("Email: %s\n", user.Email)
		if user.TenantSlug != "" {
			fmt.Printf("Organization: %s (%s)\n", user.TenantSlug, user.TenantRole)
		}
		if welcome := app.Theme.WelcomeMessage(); welcome != "" {
			fmt.Println(styles.Accent.Render(welcome))
		}
		return nil
	},
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and discard the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		app.Session.Logout()
		fmt.Println("Logged out.")
		return nil
	},
}

var authWhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	Long: `Show the identity, roles and token expiry of the stored session.

Examples:
  dataroom auth whoami
  dataroom auth whoami -o json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireSession(cmd.Context()); err != nil {
			return err
		}

		user := app.Session.CurrentUser()
		expiry := tokenExpiry(app.Session.Token())

		if outputFormat != "text" {
			f, err := app.formatter()
			if err != nil {
				return err
			}
			out := map[string]interface{}{"user": user}
			if !expiry.IsZero() {
				out["token_expires_at"] = expiry
			}
			return f.Format(out)
		}

		styles := app.Theme.Styles()
		fmt.Println(styles.Header.Render("Session"))
		fmt.Printf("Name:  %s\n", user.Name)
		fmt.Printf("Email: %s\n", user.Email)
		if user.TenantSlug != "" {
			fmt.Printf("Organization: %s\n", user.TenantSlug)
			fmt.Printf("Role:         %s\n", user.TenantRole)
		}
		if user.IsSuperadmin() {
			fmt.Println(styles.Accent.Render("Platform operator"))
		}
		if !expiry.IsZero() {
			fmt.Printf("Token expires: %s\n", expiry.Local().Format(time.RFC1123))
		}
		return nil
	},
}

// tokenExpiry extracts the exp claim without verifying the signature.
// Verification is the server's job; this is display only.
func tokenExpiry(token string) time.Time {
	if token == "" {
		return time.Time{}
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

var authRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account in your organization",
	Long: `Create a new member account in your organization. Requires an
admin role.

Examples:
  dataroom auth register --email ada@acme.com --name "Ada Lovelace"
  dataroom auth register --email bob@acme.com --role admin`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireSession(cmd.Context()); err != nil {
			return err
		}

		email, _ := cmd.Flags().GetString("email")
		name, _ := cmd.Flags().GetString("name")
		password, _ := cmd.Flags().GetString("password")
		role, _ := cmd.Flags().GetString("role")

		if email == "" {
			return fmt.Errorf("--email is required")
		}
		if name == "" {
			name = email
		}
		if password == "" {
			password, err = tui.ReadPassword("Password for the new account: ")
			if err != nil {
				return err
			}
		}

		user, err := app.Session.Register(cmd.Context(), platform.RegisterRequest{
			Email:    email,
			Name:     name,
			Password: password,
			Role:     role,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Account created: %s (%s)\n", user.Email, user.TenantRole)
		return nil
	},
}

var authAcceptInviteCmd = &cobra.Command{
	Use:   "accept-invite <token>",
	Short: "Accept an invitation and join an organization",
	Long: `Redeem an invitation token. On success you are logged in as the
new organization member.

Examples:
  dataroom auth accept-invite 9f4c... --name "Ada Lovelace"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("name")
		password, _ := cmd.Flags().GetString("password")
		if name == "" {
			return fmt.Errorf("--name is required")
		}
		if password == "" {
			password, err = tui.ReadPassword("Choose a password: ")
			if err != nil {
				return err
			}
		}
		if password == "" {
			return errors.New(errors.ErrCodeAuthInviteInvalid, "a password is required to join")
		}

		if err := app.Session.AcceptInvitation(cmd.Context(), args[0], name, password); err != nil {
			return err
		}

		user := app.Session.CurrentUser()
		fmt.Println(app.Theme.Styles().Success.Render("Invitation accepted"))
		fmt.Printf("Welcome to %s, %s.\n", user.TenantSlug, user.Name)
		return nil
	},
}

func init() {
	authLoginCmd.Flags().String("email", "", "Account email")
	authLoginCmd.Flags().String("password", "", "Account password (prompted if omitted)")
	authLoginCmd.Flags().String("tenant", "", "Organization slug (empty for platform login)")
	authLoginCmd.Flags().Bool("no-input", false, "Disable the interactive form (password is read from stdin)")

	authRegisterCmd.Flags().String("email", "", "Account email")
	authRegisterCmd.Flags().String("name", "", "Display name")
	authRegisterCmd.Flags().String("password", "", "Account password (prompted if omitted)")
	authRegisterCmd.Flags().String("role", platform.TenantRoleUser, "Role for the new account (user, admin)")

	authAcceptInviteCmd.Flags().String("name", "", "Display name")
	authAcceptInviteCmd.Flags().String("password", "", "Account password (prompted if omitted)")

	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authWhoamiCmd)
	authCmd.AddCommand(authRegisterCmd)
	authCmd.AddCommand(authAcceptInviteCmd)
	rootCmd.AddCommand(authCmd)
}
