package gnosispay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

func (c *Client) GetAccountBalance(ctx context.Context, token string) (*AccountBalanceResponse, error) {
	var resp AccountBalanceResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/account-balances", token, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetSafeConfig(ctx context.Context, token string) (*SafeConfig, error) {
	var resp SafeConfig
	if err := c.do(ctx, http.MethodGet, "/api/v1/safe/config", token, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetDailyLimit(ctx context.Context, token string) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.do(ctx, http.MethodGet, "/api/v1/accounts/daily-limit", token, nil, nil, &resp)
	return resp, err
}

func (c *Client) SetDailyLimit(ctx context.Context, token string, req SetDailyLimitRequest) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.do(ctx, http.MethodPut, "/api/v1/accounts/daily-limit", token, nil, req, &resp)
	return resp, err
}

func (c *Client) GetDailyLimitTransactionData(ctx context.Context, token, newLimit string) (json.RawMessage, error) {
	q := url.Values{}
	setIfNotEmpty(q, "newLimit", newLimit)

	var resp json.RawMessage
	err := c.do(ctx, http.MethodGet, "/api/v1/accounts/daily-limit/transaction-data", token, q, nil, &resp)
	return resp, err
}

func (c *Client) Withdraw(ctx context.Context, token string, req WithdrawRequest) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.do(ctx, http.MethodPost, "/api/v1/accounts/withdraw", token, nil, req, &resp)
	return resp, err
}

func (c *Client) GetWithdrawTransactionData(ctx context.Context, token string, params WithdrawQuery) (json.RawMessage, error) {
	q := url.Values{}
	setIfNotEmpty(q, "tokenAddress", params.TokenAddress)
	setIfNotEmpty(q, "to", params.To)
	setIfNotEmpty(q, "amount", params.Amount)

	var resp json.RawMessage
	err := c.do(ctx, http.MethodGet, "/api/v1/accounts/withdraw/transaction-data", token, q, nil, &resp)
	return resp, err
}

func (c *Client) GetEOAAccounts(ctx context.Context, token string) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.do(ctx, http.MethodGet, "/api/v1/eoa-accounts", token, nil, nil, &resp)
	return resp, err
}

func (c *Client) AddEOAAccount(ctx context.Context, token string, req AddEOAAccountRequest) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.do(ctx, http.MethodPost, "/api/v1/eoa-accounts", token, nil, req, &resp)
	return resp, err
}

func (c *Client) RemoveEOAAccount(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/eoa-accounts/"+escape(id), token, nil, nil, nil)
}
