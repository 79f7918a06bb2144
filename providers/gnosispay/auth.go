package gnosispay

import (
	"context"
	"net/http"
)

// GenerateNonce returns the plain-text SIWE nonce. No token is required.
func (c *Client) GenerateNonce(ctx context.Context) (string, error) {
	var nonce string
	err := c.do(ctx, http.MethodGet, "/api/v1/auth/nonce", "", nil, nil, &nonce)
	return nonce, err
}

func (c *Client) VerifyChallenge(ctx context.Context, req ChallengeRequest) (*ChallengeResponse, error) {
	var resp ChallengeResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/challenge", "", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Signup(ctx context.Context, token string, req SignupRequest) (*SignupResponse, error) {
	var resp SignupResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/signup", token, nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) RequestSignupOTP(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/api/v1/auth/signup/otp", "", nil, map[string]string{"email": email}, nil)
}
