package gnosispay

import (
	"context"
	"encoding/json"
	"net/http"
)

func (c *Client) GetWebhooks(ctx context.Context, token string) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.do(ctx, http.MethodGet, "/api/v1/webhooks", token, nil, nil, &resp)
	return resp, err
}

func (c *Client) CreateWebhook(ctx context.Context, token string, req WebhookRequest) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.do(ctx, http.MethodPost, "/api/v1/webhooks", token, nil, req, &resp)
	return resp, err
}

func (c *Client) GetWebhook(ctx context.Context, token, webhookID string) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.do(ctx, http.MethodGet, "/api/v1/webhooks/"+escape(webhookID), token, nil, nil, &resp)
	return resp, err
}

func (c *Client) UpdateWebhook(ctx context.Context, token, webhookID string, req WebhookRequest) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.do(ctx, http.MethodPatch, "/api/v1/webhooks/"+escape(webhookID), token, nil, req, &resp)
	return resp, err
}

func (c *Client) DeleteWebhook(ctx context.Context, token, webhookID string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/webhooks/"+escape(webhookID), token, nil, nil, nil)
}

func (c *Client) GetWebhookMessage(ctx context.Context, token, partnerID string) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.do(ctx, http.MethodGet, "/api/v1/webhooks/message/"+escape(partnerID), token, nil, nil, &resp)
	return resp, err
}

func (c *Client) SubscribeWebhook(ctx context.Context, token, partnerID string, req WebhookSubscription) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.do(ctx, http.MethodPost, "/api/v1/webhooks/subscribe/"+escape(partnerID), token, nil, req, &resp)
	return resp, err
}
