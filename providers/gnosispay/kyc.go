package gnosispay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

func (c *Client) GetKYCQuestions(ctx context.Context, token string) ([]KycQuestion, error) {
	var questions []KycQuestion
	if err := c.do(ctx, http.MethodGet, "/api/v1/kyc/questions", token, nil, nil, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (c *Client) SubmitKYCAnswers(ctx context.Context, token string, answers []KycAnswer) error {
	body := struct {
		Answers []KycAnswer `json:"answers"`
	}{Answers: answers}
	return c.do(ctx, http.MethodPost, "/api/v1/kyc/answers", token, nil, body, nil)
}

func (c *Client) GetKYCAccessToken(ctx context.Context, token, lang string) (*AccessTokenResponse, error) {
	q := url.Values{}
	setIfNotEmpty(q, "lang", lang)

	var resp AccessTokenResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/kyc/integration/sdk", token, q, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetKYCIntegration(ctx context.Context, token, lang string) (json.RawMessage, error) {
	q := url.Values{}
	setIfNotEmpty(q, "lang", lang)

	var resp json.RawMessage
	err := c.do(ctx, http.MethodGet, "/api/v1/kyc/integration", token, q, nil, &resp)
	return resp, err
}

func (c *Client) ImportPartnerApplicant(ctx context.Context, token, applicantID string) (json.RawMessage, error) {
	var resp json.RawMessage
	body := map[string]string{"applicantId": applicantID}
	err := c.do(ctx, http.MethodPost, "/api/v1/kyc/import-partner-applicant", token, nil, body, &resp)
	return resp, err
}

func (c *Client) GetSourceOfFunds(ctx context.Context, token, locale string) (json.RawMessage, error) {
	q := url.Values{}
	setIfNotEmpty(q, "locale", locale)

	var resp json.RawMessage
	err := c.do(ctx, http.MethodGet, "/api/v1/source-of-funds", token, q, nil, &resp)
	return resp, err
}

// SubmitSourceOfFunds forwards the answers document as given.
func (c *Client) SubmitSourceOfFunds(ctx context.Context, token string, answers json.RawMessage) error {
	return c.do(ctx, http.MethodPost, "/api/v1/source-of-funds", token, nil, answers, nil)
}

func (c *Client) RequestVerificationOTP(ctx context.Context, token, phoneNumber string) error {
	body := map[string]string{"phoneNumber": phoneNumber}
	return c.do(ctx, http.MethodPost, "/api/v1/verification", token, nil, body, nil)
}

func (c *Client) CheckVerificationOTP(ctx context.Context, token, code string) error {
	return c.do(ctx, http.MethodPost, "/api/v1/verification/check", token, nil, map[string]string{"code": code}, nil)
}
