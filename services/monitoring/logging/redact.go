package logging

import (
	"net/http"
	"strings"
)

const Redacted = "***REDACTED***"

var sensitiveFields = map[string]struct{}{
	"password":   {},
	"token":      {},
	"apikey":     {},
	"secret":     {},
	"privatekey": {},
	"signature":  {},
}

var sensitiveHeaders = []string{"Authorization", "Cookie", "X-Api-Key"}

// RedactFields returns a shallow copy of body with sensitive keys masked.
// Keys are compared case-insensitively.
func RedactFields(body map[string]interface{}) map[string]interface{} {
	if body == nil {
		return map[string]interface{}{}
	}
	out := make(map[string]interface{}, len(body))
	for k, v := range body {
		if _, ok := sensitiveFields[strings.ToLower(k)]; ok && v != nil && v != "" {
			out[k] = Redacted
			continue
		}
		out[k] = v
	}
	return out
}

func RedactHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k := range h {
		out[k] = h.Get(k)
	}
	for _, name := range sensitiveHeaders {
		if h.Get(name) != "" {
			out[http.CanonicalHeaderKey(name)] = Redacted
		}
	}
	return out
}
