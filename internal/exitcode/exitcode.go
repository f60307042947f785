package exitcode

import (
	goerrors "errors"
	"os"
	"strings"

	"github.com/dataroomhq/dataroom-cli/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// AuthError indicates a missing, invalid or expired session
	AuthError = 3

	// PermissionError indicates the session lacks the required capability
	PermissionError = 4

	// TenantError indicates the organization context could not be established
	TenantError = 5

	// NetworkError indicates a network connectivity issue
	NetworkError = 6

	// Interrupted indicates the run was cancelled by the user
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	if err == nil {
		Exit(Success)
		return
	}
	Exit(DetermineExitCode(err))
}

// DetermineExitCode analyzes an error and returns the appropriate exit code.
// Coded errors map directly; anything else falls back to message heuristics.
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	var coded *errors.Error
	if goerrors.As(err, &coded) {
		switch coded.Code {
		case errors.ErrCodeAuthBadCredentials,
			errors.ErrCodeAuthNotLoggedIn,
			errors.ErrCodeAuthSessionExpired,
			errors.ErrCodeAuthInviteInvalid:
			return AuthError
		case errors.ErrCodeAuthPermission:
			return PermissionError
		case errors.ErrCodeTenantNotFound,
			errors.ErrCodeTenantAccessDenied,
			errors.ErrCodeTenantNoAffiliation,
			errors.ErrCodeTenantSettings:
			return TenantError
		case errors.ErrCodeNetUnreachable,
			errors.ErrCodeNetBadResponse:
			return NetworkError
		default:
			return GeneralError
		}
	}

	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "unauthorized") || strings.Contains(errMsg, "authentication") {
		return AuthError
	}
	if strings.Contains(errMsg, "permission denied") || strings.Contains(errMsg, "forbidden") {
		return PermissionError
	}
	if strings.Contains(errMsg, "connection") || strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "unreachable") {
		return NetworkError
	}
	if strings.Contains(errMsg, "unknown command") || strings.Contains(errMsg, "unknown flag") ||
		strings.Contains(errMsg, "required flag") {
		return UsageError
	}

	return GeneralError
}

// GetExitCodeDescription returns a human-readable description of an exit code
func GetExitCodeDescription(code int) string {
	switch code {
	case Success:
		return "Success"
	case GeneralError:
		return "General error"
	case UsageError:
		return "Usage error (invalid flags or arguments)"
	case AuthError:
		return "Authentication error"
	case PermissionError:
		return "Permission denied"
	case TenantError:
		return "Organization context error"
	case NetworkError:
		return "Network error"
	case Interrupted:
		return "Cancelled"
	default:
		return "Unknown error"
	}
}
