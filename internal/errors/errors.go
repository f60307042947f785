package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Auth errors (AUTH-001 to AUTH-099)
	ErrCodeAuthBadCredentials ErrorCode = "AUTH-001"
	ErrCodeAuthNotLoggedIn    ErrorCode = "AUTH-002"
	ErrCodeAuthSessionExpired ErrorCode = "AUTH-003"
	ErrCodeAuthPermission     ErrorCode = "AUTH-004"
	ErrCodeAuthInviteInvalid  ErrorCode = "AUTH-005"

	// Tenant errors (TENANT-001 to TENANT-099)
	ErrCodeTenantNotFound      ErrorCode = "TENANT-001"
	ErrCodeTenantAccessDenied  ErrorCode = "TENANT-002"
	ErrCodeTenantNoAffiliation ErrorCode = "TENANT-003"
	ErrCodeTenantSettings      ErrorCode = "TENANT-004"

	// Network errors (NET-001 to NET-099)
	ErrCodeNetUnreachable ErrorCode = "NET-001"
	ErrCodeNetBadResponse ErrorCode = "NET-002"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeCredentialsRead  ErrorCode = "IO-001"
	ErrCodeCredentialsWrite ErrorCode = "IO-002"
	ErrCodeConfigInvalid    ErrorCode = "IO-003"
)

// Error is an error with a stable code, optional suggestions, and a cause
type Error struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	Cause       error
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  - %s", suggestion))
		}
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new coded error
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new coded error wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *Error) WithSuggestion(suggestion string) *Error {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// Common constructors

// NewNotLoggedInError is returned when an operation requires a session
func NewNotLoggedInError() *Error {
	return New(ErrCodeAuthNotLoggedIn, "not logged in").
		WithSuggestion("Run 'dataroom auth login' to authenticate")
}

// NewPermissionError is returned before any network call when the current
// identity lacks the required role
func NewPermissionError(capability string) *Error {
	return New(ErrCodeAuthPermission, fmt.Sprintf("permission denied: %s requires an admin role", capability)).
		WithSuggestion("Ask a tenant admin to perform this action or to change your role")
}

// NewSessionExpiredError is returned after a forced logout
func NewSessionExpiredError() *Error {
	return New(ErrCodeAuthSessionExpired, "session expired or revoked").
		WithSuggestion("Run 'dataroom auth login' to re-authenticate")
}

// NewNetworkError normalizes a transport failure; callers never need to
// distinguish transport failures from request failures
func NewNetworkError(cause error) *Error {
	return Wrap(ErrCodeNetUnreachable, "could not reach the platform", cause).
		WithSuggestion("Check your network connection and DATAROOM_API_URL")
}
