package gnosispay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// CreateSafe creates the account Safe. Upstream only accepts chainId "100" (Gnosis Chain).
func (c *Client) CreateSafe(ctx context.Context, token, chainID string) (*CreateSafeResponse, error) {
	var resp CreateSafeResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/account", token, nil, map[string]string{"chainId": chainID}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetSignaturePayload(ctx context.Context, token string) (*SignaturePayloadResponse, error) {
	var resp SignaturePayloadResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/account/signature-payload", token, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DeploySafeModules(ctx context.Context, token, signature string) (*DeploySafeModulesResponse, error) {
	var resp DeploySafeModulesResponse
	body := map[string]string{"signature": signature}
	if err := c.do(ctx, http.MethodPatch, "/api/v1/account/deploy-safe-modules", token, nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetDelayTransactions(ctx context.Context, token string) ([]DelayTransaction, error) {
	var resp []DelayTransaction
	if err := c.do(ctx, http.MethodGet, "/api/v1/delay-relay", token, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) DeploySafe(ctx context.Context, token string) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.do(ctx, http.MethodPost, "/api/v1/safe/deploy", token, nil, struct{}{}, &resp)
	return resp, err
}

func (c *Client) GetSafeDeploymentStatus(ctx context.Context, token string) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.do(ctx, http.MethodGet, "/api/v1/safe/deploy", token, nil, nil, &resp)
	return resp, err
}

func (c *Client) ResetSafe(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/safe/reset", token, nil, nil, nil)
}

func (c *Client) SetSafeCurrency(ctx context.Context, token, currency string) error {
	return c.do(ctx, http.MethodPost, "/api/v1/safe/set-currency", token, nil, map[string]string{"currency": currency}, nil)
}

func (c *Client) GetSupportedCurrencies(ctx context.Context, token string) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.do(ctx, http.MethodGet, "/api/v1/safe/supported-currencies", token, nil, nil, &resp)
	return resp, err
}

func (c *Client) CreateSafeTransaction(ctx context.Context, token string, req SafeTransactionRequest) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.do(ctx, http.MethodPost, "/api/v1/safe/transactions", token, nil, req, &resp)
	return resp, err
}

func (c *Client) GetSafeOwners(ctx context.Context, token string) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.do(ctx, http.MethodGet, "/api/v1/owners", token, nil, nil, &resp)
	return resp, err
}

func (c *Client) AddSafeOwner(ctx context.Context, token string, req AddOwnerRequest) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.do(ctx, http.MethodPost, "/api/v1/owners", token, nil, req, &resp)
	return resp, err
}

// RemoveSafeOwner sends its payload as a DELETE body.
func (c *Client) RemoveSafeOwner(ctx context.Context, token string, req RemoveOwnerRequest) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.do(ctx, http.MethodDelete, "/api/v1/owners", token, nil, req, &resp)
	return resp, err
}

func (c *Client) GetAddOwnerTransactionData(ctx context.Context, token, newOwner string) (json.RawMessage, error) {
	q := url.Values{}
	setIfNotEmpty(q, "newOwner", newOwner)

	var resp json.RawMessage
	err := c.do(ctx, http.MethodGet, "/api/v1/owners/add/transaction-data", token, q, nil, &resp)
	return resp, err
}

func (c *Client) GetRemoveOwnerTransactionData(ctx context.Context, token, ownerToRemove string) (json.RawMessage, error) {
	q := url.Values{}
	setIfNotEmpty(q, "ownerToRemove", ownerToRemove)

	var resp json.RawMessage
	err := c.do(ctx, http.MethodGet, "/api/v1/owners/remove/transaction-data", token, q, nil, &resp)
	return resp, err
}
