package gnosispay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Portalfi/Portalfi-Backend/providers"
	"github.com/Portalfi/Portalfi-Backend/services/monitoring/logging"
	"github.com/sirupsen/logrus"
)

const DefaultBaseURL = "https://api.gnosispay.com"

const requestTimeout = 30 * time.Second

// Client talks to the GnosisPay REST API. It holds no per-user state: every
// authenticated call takes the caller's bearer token and sends it on that
// request only.
type Client struct {
	providers.BaseProvider
}

func NewClient(baseURL string, logger *logging.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseProvider: providers.BaseProvider{
			Name:    providers.GnosisPay,
			BaseURL: baseURL,
			Client: &http.Client{
				Timeout: requestTimeout,
			},
			Logger: logger,
		},
	}
}

type errorBody struct {
	Error interface{} `json:"error"`
}

// do performs one upstream round trip and decodes the response into out.
//
// out may be nil (body discarded), *json.RawMessage (body kept verbatim),
// *string (plain text or a JSON string) or any JSON-decodable value.
func (c *Client) do(ctx context.Context, method, path, token string, query url.Values, body, out interface{}) error {
	var headers map[string]string
	if token != "" {
		headers = map[string]string{"Authorization": "Bearer " + token}
	}

	resp, err := c.MakeRequest(ctx, method, path, query, body, headers)
	if err != nil {
		c.logFailure(method, path, 0, err.Error())
		return &providers.ProviderError{Provider: c.Name, Message: err.Error(), Status: http.StatusInternalServerError}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logFailure(method, path, resp.StatusCode, err.Error())
		return &providers.ProviderError{Provider: c.Name, Message: err.Error(), Status: http.StatusInternalServerError}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := fmt.Sprintf("Request failed with status code %d", resp.StatusCode)
		var eb errorBody
		if json.Unmarshal(data, &eb) == nil {
			if s, ok := eb.Error.(string); ok && s != "" {
				message = s
			}
		}
		c.logFailure(method, path, resp.StatusCode, message)
		return &providers.ProviderError{Provider: c.Name, Message: message, Status: resp.StatusCode}
	}

	return c.decode(data, out)
}

func (c *Client) decode(data []byte, out interface{}) error {
	switch v := out.(type) {
	case nil:
		return nil
	case *json.RawMessage:
		if len(data) == 0 {
			*v = nil
			return nil
		}
		*v = append((*v)[:0], data...)
		return nil
	case *string:
		trimmed := strings.TrimSpace(string(data))
		if strings.HasPrefix(trimmed, `"`) {
			if err := json.Unmarshal([]byte(trimmed), v); err == nil {
				return nil
			}
		}
		*v = string(data)
		return nil
	}

	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &providers.ProviderError{
			Provider: c.Name,
			Message:  "Invalid response from upstream: " + err.Error(),
			Status:   http.StatusBadGateway,
		}
	}
	return nil
}

func (c *Client) logFailure(method, path string, status int, message string) {
	if c.Logger == nil {
		return
	}
	c.Logger.WithFields(logrus.Fields{
		"provider": c.Name,
		"method":   method,
		"path":     path,
		"status":   status,
		"error":    message,
	}).Warn("Upstream request failed")
}

// AsProviderError unwraps a normalized upstream failure.
func AsProviderError(err error) (*providers.ProviderError, bool) {
	var pErr *providers.ProviderError
	if errors.As(err, &pErr) {
		return pErr, true
	}
	return nil, false
}

func setIfNotEmpty(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func setIntIfPositive(q url.Values, key string, value int) {
	if value > 0 {
		q.Set(key, strconv.Itoa(value))
	}
}

func escape(segment string) string {
	return url.PathEscape(segment)
}
