package logging

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRedactFields(t *testing.T) {
	in := map[string]interface{}{
		"email":      "a@b.co",
		"password":   "hunter2",
		"Signature":  "0xdead",
		"privateKey": "0xbeef",
		"token":      "",
	}

	out := RedactFields(in)
	require.Equal(t, "a@b.co", out["email"])
	require.Equal(t, Redacted, out["password"])
	require.Equal(t, Redacted, out["Signature"])
	require.Equal(t, Redacted, out["privateKey"])
	require.Equal(t, "", out["token"])
	require.Equal(t, "hunter2", in["password"], "input must not be mutated")
}

func TestRedactHeaders(t *testing.T) {
	h := http.Header{}
	h.Set("Authorization", "Bearer abc")
	h.Set("X-Api-Key", "k")
	h.Set("Accept", "application/json")

	out := RedactHeaders(h)
	require.Equal(t, Redacted, out["Authorization"])
	require.Equal(t, Redacted, out["X-Api-Key"])
	require.Equal(t, "application/json", out["Accept"])
}
