package gnosispay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

func (c *Client) CreateMoneriumIntegration(ctx context.Context, token string, req MoneriumIntegrationRequest) (*MoneriumIntegrationResponse, error) {
	var resp MoneriumIntegrationResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/integrations/monerium", token, nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) getIban(ctx context.Context, token, path string, query url.Values) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.do(ctx, http.MethodGet, "/api/v1/ibans/"+path, token, query, nil, &resp)
	return resp, err
}

func (c *Client) GetIbanAvailability(ctx context.Context, token string) (json.RawMessage, error) {
	return c.getIban(ctx, token, "available", nil)
}

func (c *Client) GetIbanDetails(ctx context.Context, token string) (json.RawMessage, error) {
	return c.getIban(ctx, token, "details", nil)
}

func (c *Client) GetIbanOrders(ctx context.Context, token string) ([]IbanOrder, error) {
	var orders []IbanOrder
	if err := c.do(ctx, http.MethodGet, "/api/v1/ibans/orders", token, nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) GetIbanSigningMessage(ctx context.Context, token string) (json.RawMessage, error) {
	return c.getIban(ctx, token, "signing-message", nil)
}

func (c *Client) GetIbanOAuthRedirectURL(ctx context.Context, token, callbackURL string) (json.RawMessage, error) {
	q := url.Values{}
	setIfNotEmpty(q, "callbackUrl", callbackURL)
	return c.getIban(ctx, token, "oauth/redirect_url", q)
}

func (c *Client) CreateMoneriumProfile(ctx context.Context, token, callbackURL string) (json.RawMessage, error) {
	var resp json.RawMessage
	body := map[string]string{"callbackUrl": callbackURL}
	err := c.do(ctx, http.MethodPost, "/api/v1/ibans/monerium-profile", token, nil, body, &resp)
	return resp, err
}

func (c *Client) ResetIban(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/ibans/reset", token, nil, nil, nil)
}
