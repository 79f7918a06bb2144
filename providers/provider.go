package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Portalfi/Portalfi-Backend/services/monitoring/logging"
	"github.com/Portalfi/Portalfi-Backend/services/monitoring/metrics"
	"github.com/sirupsen/logrus"
)

const GnosisPay = "GNOSISPAY"

// BaseProvider contains common fields and methods
type BaseProvider struct {
	Name    string
	BaseURL string
	APIKey  string
	Client  *http.Client
	Logger  *logging.Logger
}

// ProviderError is the single normalized failure shape for upstream calls.
// Status is the upstream HTTP status, or 500 when no response arrived.
type ProviderError struct {
	Provider string
	Message  string
	Status   int
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %s (status %d)", strings.ToLower(e.Provider), e.Message, e.Status)
}

func (p *BaseProvider) URL(path string, query url.Values) string {
	u := strings.TrimRight(p.BaseURL, "/") + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// MakeRequest sends one JSON request. Extra headers are applied last and can
// override the defaults, including Authorization.
func (p *BaseProvider) MakeRequest(ctx context.Context, method, path string, query url.Values, body interface{}, extraHeaders map[string]string) (*http.Response, error) {
	fullURL := p.URL(path, query)

	var reader *bytes.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(jsonBody)
	}

	var req *http.Request
	var err error
	if reader != nil {
		req, err = http.NewRequestWithContext(ctx, method, fullURL, reader)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, fullURL, nil)
	}
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if p.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.APIKey)
	}
	for k, v := range extraHeaders {
		req.Header.Set(k, v)
	}

	if p.Logger != nil {
		p.Logger.WithFields(logrus.Fields{
			"provider": p.Name,
			"method":   method,
			"path":     path,
		}).Debug("External Request")
	}

	start := time.Now()
	resp, err := p.Client.Do(req)
	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	metrics.ObserveUpstream(p.Name, method, status, time.Since(start))

	return resp, err
}
