package gnosispay

import (
	"context"
	"encoding/json"
	"net/http"
)

func (c *Client) GetUser(ctx context.Context, token string) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/api/v1/user", token, nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateUser(ctx context.Context, token string, req UpdateUserRequest) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPatch, "/api/v1/user", token, nil, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) SendPhoneVerification(ctx context.Context, token, phone string) error {
	return c.do(ctx, http.MethodPost, "/api/v1/user/phone/send-otp", token, nil, map[string]string{"phone": phone}, nil)
}

func (c *Client) VerifyPhoneOTP(ctx context.Context, token, otp string) error {
	return c.do(ctx, http.MethodPost, "/api/v1/user/phone/verify-otp", token, nil, map[string]string{"otp": otp}, nil)
}

func (c *Client) GetUserTermsStatus(ctx context.Context, token string) (json.RawMessage, error) {
	var resp json.RawMessage
	err := c.do(ctx, http.MethodGet, "/api/v1/user/terms", token, nil, nil, &resp)
	return resp, err
}

func (c *Client) AcceptUserTerms(ctx context.Context, token string, req TermsRequest) error {
	return c.do(ctx, http.MethodPost, "/api/v1/user/terms", token, nil, req, nil)
}
