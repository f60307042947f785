package platform

import (
	"context"
	"net/http"
)

// Platform-admin read endpoints. All require a superadmin identity; the
// server enforces this, the client only forwards headers.

// ListTenants retrieves every organization on the platform
func (c *Client) ListTenants(ctx context.Context) ([]Tenant, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/tenants", nil)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Tenants []Tenant `json:"tenants"`
	}
	if err := parseResponse(resp, &envelope); err != nil {
		return nil, err
	}

	return envelope.Tenants, nil
}

// TenantAnalytics retrieves the per-tenant analytics view
func (c *Client) TenantAnalytics(ctx context.Context) ([]TenantAnalytics, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/tenants/analytics", nil)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Analytics []TenantAnalytics `json:"analytics"`
	}
	if err := parseResponse(resp, &envelope); err != nil {
		return nil, err
	}

	return envelope.Analytics, nil
}

// GlobalAnalytics retrieves the platform-wide rollup
func (c *Client) GlobalAnalytics(ctx context.Context) (*GlobalAnalytics, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/analytics/global", nil)
	if err != nil {
		return nil, err
	}

	var analytics GlobalAnalytics
	if err := parseResponse(resp, &analytics); err != nil {
		return nil, err
	}

	return &analytics, nil
}

// Health retrieves the platform health snapshot
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return nil, err
	}

	var health HealthStatus
	if err := parseResponse(resp, &health); err != nil {
		return nil, err
	}

	return &health, nil
}
