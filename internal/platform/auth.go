package platform

import (
	"context"
	"fmt"
	"net/http"
)

// LoginRequest represents a login request. TenantSlug scopes the login to an
// organization; it is omitted for platform-admin login.
type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	TenantSlug string `json:"tenant_slug,omitempty"`
}

// LoginResponse represents a login response
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Login authenticates with the platform and returns a token and identity
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/auth/login", req)
	if err != nil {
		return nil, err
	}

	var loginResp LoginResponse
	if err := parseResponse(resp, &loginResp); err != nil {
		return nil, err
	}

	return &loginResp, nil
}

// Profile retrieves the currently authenticated user
func (c *Client) Profile(ctx context.Context) (*User, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/auth/profile", nil)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		User User `json:"user"`
	}
	if err := parseResponse(resp, &envelope); err != nil {
		return nil, err
	}

	return &envelope.User, nil
}

// RegisterRequest is an admin-initiated account creation
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// Register creates a new user account within the caller's tenant
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/auth/register", req)
	if err != nil {
		return nil, err
	}

	var user User
	if err := parseResponse(resp, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// CreateInvitation invites an email address into the caller's tenant
func (c *Client) CreateInvitation(ctx context.Context, email, role string) (*Invitation, error) {
	req := map[string]string{
		"email": email,
		"role":  role,
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/auth/invite", req)
	if err != nil {
		return nil, err
	}

	var inv Invitation
	if err := parseResponse(resp, &inv); err != nil {
		return nil, err
	}

	return &inv, nil
}

// AcceptInvitationRequest redeems an invitation token
type AcceptInvitationRequest struct {
	Token    string `json:"token"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// AcceptInvitation redeems an invitation token and establishes a session.
// Post-conditions match Login.
func (c *Client) AcceptInvitation(ctx context.Context, req AcceptInvitationRequest) (*LoginResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/auth/accept-invite", req)
	if err != nil {
		return nil, err
	}

	var loginResp LoginResponse
	if err := parseResponse(resp, &loginResp); err != nil {
		return nil, err
	}

	return &loginResp, nil
}

// ListUsers retrieves the caller's tenant members
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/auth/users", nil)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Users []User `json:"users"`
	}
	if err := parseResponse(resp, &envelope); err != nil {
		return nil, err
	}

	return envelope.Users, nil
}

// UpdateUser applies a partial update to a tenant member
func (c *Client) UpdateUser(ctx context.Context, id string, updates map[string]interface{}) (*User, error) {
	path := fmt.Sprintf("/auth/users/%s", id)
	resp, err := c.doRequest(ctx, http.MethodPut, path, updates)
	if err != nil {
		return nil, err
	}

	var user User
	if err := parseResponse(resp, &user); err != nil {
		return nil, err
	}

	return &user, nil
}
