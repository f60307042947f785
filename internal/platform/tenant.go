package platform

import (
	"context"
	"net/http"
)

// CurrentTenant retrieves the organization the current identity belongs to
func (c *Client) CurrentTenant(ctx context.Context) (*Tenant, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/tenant/current", nil)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Tenant Tenant `json:"tenant"`
	}
	if err := parseResponse(resp, &envelope); err != nil {
		return nil, err
	}

	return &envelope.Tenant, nil
}

// Settings retrieves the tenant branding document
func (c *Client) Settings(ctx context.Context) (*TenantSettings, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/settings", nil)
	if err != nil {
		return nil, err
	}

	var settings TenantSettings
	if err := parseResponse(resp, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// UpdateSettings persists the full branding document and returns the
// server's canonical copy
func (c *Client) UpdateSettings(ctx context.Context, settings TenantSettings) (*TenantSettings, error) {
	resp, err := c.doRequest(ctx, http.MethodPut, "/settings", settings)
	if err != nil {
		return nil, err
	}

	var saved TenantSettings
	if err := parseResponse(resp, &saved); err != nil {
		return nil, err
	}

	return &saved, nil
}

// UsageResponse is the usage endpoint payload
type UsageResponse struct {
	Usage  Usage                  `json:"usage"`
	Limits map[string]LimitStatus `json:"limits"`
}

// TenantUsage retrieves current usage counters and limits (tenant admins)
func (c *Client) TenantUsage(ctx context.Context) (*UsageResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/tenant/usage", nil)
	if err != nil {
		return nil, err
	}

	var usage UsageResponse
	if err := parseResponse(resp, &usage); err != nil {
		return nil, err
	}

	return &usage, nil
}
