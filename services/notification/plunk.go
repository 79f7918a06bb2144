package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultPlunkBaseURL = "https://api.useplunk.com/v1"

// Plunk sends transactional email through the Plunk HTTP API.
type Plunk struct {
	HttpClient *http.Client
	BaseURL    string
	APIKey     string
}

type plunkEmailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	From    string `json:"from,omitempty"`
}

type plunkEmailResponse struct {
	Success bool `json:"success"`
	Emails  []struct {
		Contact struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"contact"`
		Email string `json:"email"`
	} `json:"emails"`
}

func NewPlunk(baseURL, apiKey string) *Plunk {
	if baseURL == "" {
		baseURL = defaultPlunkBaseURL
	}
	return &Plunk{
		HttpClient: &http.Client{Timeout: 30 * time.Second},
		BaseURL:    strings.TrimRight(baseURL, "/"),
		APIKey:     apiKey,
	}
}

func (s *Plunk) makeRequest(ctx context.Context, method, endpoint string, body any) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.BaseURL+endpoint, reqBody)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+s.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return nil, errors.New(string(respBody))
	}

	return respBody, nil
}

func (s *Plunk) Send(ctx context.Context, msg EmailMessage) (string, error) {
	respBody, err := s.makeRequest(ctx, http.MethodPost, "/send", plunkEmailRequest{
		To:      msg.To,
		Subject: msg.Subject,
		Body:    msg.HTML,
		From:    msg.From,
	})
	if err != nil {
		return "", err
	}

	var resp plunkEmailResponse
	if err := json.Unmarshal(respBody, &resp); err != nil || len(resp.Emails) == 0 {
		return "", nil
	}
	return resp.Emails[0].Email, nil
}
