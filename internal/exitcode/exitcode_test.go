package exitcode

import (
	"fmt"
	"testing"

	"github.com/dataroomhq/dataroom-cli/internal/errors"
)

func TestDetermineExitCodeCodedErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, Success},
		{"not logged in", errors.NewNotLoggedInError(), AuthError},
		{"session expired", errors.NewSessionExpiredError(), AuthError},
		{"permission", errors.NewPermissionError("manage_users"), PermissionError},
		{"tenant access", errors.New(errors.ErrCodeTenantAccessDenied, "denied"), TenantError},
		{"no affiliation", errors.New(errors.ErrCodeTenantNoAffiliation, "none"), TenantError},
		{"network", errors.NewNetworkError(fmt.Errorf("dial tcp: refused")), NetworkError},
		{"bad response", errors.New(errors.ErrCodeNetBadResponse, "boom"), NetworkError},
		{"io", errors.New(errors.ErrCodeCredentialsWrite, "disk full"), GeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetermineExitCode(tt.err); got != tt.want {
				t.Errorf("DetermineExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestDetermineExitCodeWrappedCodedError(t *testing.T) {
	wrapped := fmt.Errorf("loading profile: %w", errors.NewSessionExpiredError())
	if got := DetermineExitCode(wrapped); got != AuthError {
		t.Errorf("wrapped coded error = %d, want %d", got, AuthError)
	}
}

func TestDetermineExitCodeHeuristics(t *testing.T) {
	tests := []struct {
		msg  string
		want int
	}{
		{"server returned 401 Unauthorized", AuthError},
		{"permission denied for resource", PermissionError},
		{"connection refused", NetworkError},
		{"request timeout exceeded", NetworkError},
		{"unknown command \"frob\"", UsageError},
		{"something else entirely", GeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			if got := DetermineExitCode(fmt.Errorf("%s", tt.msg)); got != tt.want {
				t.Errorf("DetermineExitCode(%q) = %d, want %d", tt.msg, got, tt.want)
			}
		})
	}
}

func TestGetExitCodeDescription(t *testing.T) {
	if GetExitCodeDescription(Success) != "Success" {
		t.Error("unexpected description for Success")
	}
	if GetExitCodeDescription(99) != "Unknown error" {
		t.Error("unexpected description for unknown code")
	}
}
