package gnosispay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

func (c *Client) GetTransactions(ctx context.Context, token string, params TransactionsQuery) (json.RawMessage, error) {
	q := url.Values{}
	setIfNotEmpty(q, "cardId", params.CardID)
	setIfNotEmpty(q, "startDate", params.StartDate)
	setIfNotEmpty(q, "endDate", params.EndDate)
	setIfNotEmpty(q, "type", params.Type)
	setIntIfPositive(q, "page", params.Page)
	setIntIfPositive(q, "limit", params.Limit)

	var resp json.RawMessage
	err := c.do(ctx, http.MethodGet, "/api/v1/transactions", token, q, nil, &resp)
	return resp, err
}

func (c *Client) GetTransaction(ctx context.Context, token, transactionID string) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.do(ctx, http.MethodGet, "/api/v1/transactions/"+escape(transactionID), token, nil, nil, &resp)
	return resp, err
}

func (c *Client) GetDisputeReasons(ctx context.Context, token string) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.do(ctx, http.MethodGet, "/api/v1/transactions/dispute", token, nil, nil, &resp)
	return resp, err
}

func (c *Client) DisputeTransaction(ctx context.Context, token, threadID string, req DisputeRequest) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.do(ctx, http.MethodPost, "/api/v1/transactions/"+escape(threadID)+"/dispute", token, nil, req, &resp)
	return resp, err
}

func (c *Client) GetRewards(ctx context.Context, token string) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.do(ctx, http.MethodGet, "/api/v1/rewards", token, nil, nil, &resp)
	return resp, err
}

// AcceptRewardsTerms records acceptance through the generic user terms endpoint.
func (c *Client) AcceptRewardsTerms(ctx context.Context, token, version string) error {
	return c.AcceptUserTerms(ctx, token, TermsRequest{Type: "rewards", Version: version})
}

func (c *Client) GetCashback(ctx context.Context, token string) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.do(ctx, http.MethodGet, "/api/v1/cashback", token, nil, nil, &resp)
	return resp, err
}
