package gnosispay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

var emptyBody = struct{}{}

func (c *Client) GetCards(ctx context.Context, token string) ([]Card, error) {
	var cards []Card
	if err := c.do(ctx, http.MethodGet, "/api/v1/cards", token, nil, nil, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

func (c *Client) GetCard(ctx context.Context, token, cardID string) (*Card, error) {
	var card Card
	if err := c.do(ctx, http.MethodGet, "/api/v1/cards/"+escape(cardID), token, nil, nil, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

func (c *Client) CreateVirtualCard(ctx context.Context, token string) (*Card, error) {
	var card Card
	if err := c.do(ctx, http.MethodPost, "/api/v1/cards/virtual", token, nil, emptyBody, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

func (c *Client) cardAction(ctx context.Context, token, cardID, action string) error {
	return c.do(ctx, http.MethodPost, "/api/v1/cards/"+escape(cardID)+"/"+action, token, nil, emptyBody, nil)
}

func (c *Client) ActivateCard(ctx context.Context, token, cardID string) error {
	return c.cardAction(ctx, token, cardID, "activate")
}

func (c *Client) FreezeCard(ctx context.Context, token, cardID string) error {
	return c.cardAction(ctx, token, cardID, "freeze")
}

func (c *Client) UnfreezeCard(ctx context.Context, token, cardID string) error {
	return c.cardAction(ctx, token, cardID, "unfreeze")
}

func (c *Client) ReportCardLost(ctx context.Context, token, cardID string) error {
	return c.cardAction(ctx, token, cardID, "lost")
}

func (c *Client) ReportCardStolen(ctx context.Context, token, cardID string) error {
	return c.cardAction(ctx, token, cardID, "stolen")
}

func (c *Client) VoidCard(ctx context.Context, token, cardID string) error {
	return c.cardAction(ctx, token, cardID, "void")
}

func (c *Client) GetCardStatus(ctx context.Context, token, cardID string) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.do(ctx, http.MethodGet, "/api/v1/cards/"+escape(cardID)+"/status", token, nil, nil, &resp)
	return resp, err
}

// GetCardTransactions lists card events. Unset filters are left out of the query.
func (c *Client) GetCardTransactions(ctx context.Context, token string, params CardTransactionsQuery) (json.RawMessage, error) {
	q := url.Values{}
	for _, t := range params.CardTokens {
		if t != "" {
			q.Add("cardTokens", t)
		}
	}
	setIntIfPositive(q, "limit", params.Limit)
	setIntIfPositive(q, "offset", params.Offset)
	setIfNotEmpty(q, "before", params.Before)
	setIfNotEmpty(q, "after", params.After)
	setIfNotEmpty(q, "billingCurrency", params.BillingCurrency)
	setIfNotEmpty(q, "transactionCurrency", params.TransactionCurrency)
	setIfNotEmpty(q, "mcc", params.MCC)
	setIfNotEmpty(q, "transactionType", params.TransactionType)

	var resp json.RawMessage
	err := c.do(ctx, http.MethodGet, "/api/v1/cards/transactions", token, q, nil, &resp)
	return resp, err
}

func (c *Client) CreatePhysicalCardOrder(ctx context.Context, token string, req PhysicalCardOrderRequest) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.do(ctx, http.MethodPost, "/api/v1/order/create", token, nil, req, &resp)
	return resp, err
}

func (c *Client) GetCardOrder(ctx context.Context, token, orderID string) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.do(ctx, http.MethodGet, "/api/v1/order/"+escape(orderID), token, nil, nil, &resp)
	return resp, err
}

func (c *Client) CancelCardOrder(ctx context.Context, token, orderID string) error {
	return c.do(ctx, http.MethodPost, "/api/v1/order/"+escape(orderID)+"/cancel", token, nil, emptyBody, nil)
}

func (c *Client) ConfirmCardOrderPayment(ctx context.Context, token, orderID string) error {
	return c.do(ctx, http.MethodPut, "/api/v1/order/"+escape(orderID)+"/confirm-payment", token, nil, emptyBody, nil)
}

func (c *Client) GetCardOrders(ctx context.Context, token string) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.do(ctx, http.MethodGet, "/api/v1/order/", token, nil, nil, &resp)
	return resp, err
}

func (c *Client) AttachCouponToOrder(ctx context.Context, token, orderID, couponCode string) (json.RawMessage, error) {
	var resp json.RawMessage
	body := map[string]string{"couponCode": couponCode}
	err := c.do(ctx, http.MethodPost, "/api/v1/order/"+escape(orderID)+"/attach-coupon", token, nil, body, &resp)
	return resp, err
}

func (c *Client) AttachTransactionToOrder(ctx context.Context, token, orderID, transactionHash string) (json.RawMessage, error) {
	var resp json.RawMessage
	body := map[string]string{"transactionHash": transactionHash}
	err := c.do(ctx, http.MethodPut, "/api/v1/order/"+escape(orderID)+"/attach-transaction", token, nil, body, &resp)
	return resp, err
}

func (c *Client) CreatePhysicalCard(ctx context.Context, token, orderID string) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.do(ctx, http.MethodPost, "/api/v1/order/"+escape(orderID)+"/create-card", token, nil, emptyBody, &resp)
	return resp, err
}
