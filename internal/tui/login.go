package tui

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// LoginInput collects the fields for an organization-scoped login.
// TenantSlug stays empty for platform-admin login.
type LoginInput struct {
	Email      string
	Password   string
	TenantSlug string
}

// RunLoginForm fills the missing login fields interactively. Fields
// already set (from flags or config) are kept and not asked again.
func RunLoginForm(in *LoginInput) error {
	var fields []huh.Field

	if in.Email == "" {
		fields = append(fields, huh.NewInput().
			Title("Email").
			Placeholder("you@company.com").
			Value(&in.Email))
	}
	if in.Password == "" {
		fields = append(fields, huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&in.Password))
	}
	if in.TenantSlug == "" {
		fields = append(fields, huh.NewInput().
			Title("Organization").
			Placeholder("leave empty for platform login").
			Value(&in.TenantSlug))
	}

	if len(fields) == 0 {
		return nil
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	if err := form.Run(); err != nil {
		return fmt.Errorf("login prompt failed: %w", err)
	}

	if in.Email == "" {
		return fmt.Errorf("email is required")
	}
	if in.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// ReadPassword reads a password from stdin. On a terminal it disables
// echo; otherwise it reads a line, which lets scripts pipe the value in.
func ReadPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())

	if term.IsTerminal(fd) {
		fmt.Fprint(os.Stderr, prompt)
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(raw), nil
	}

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
