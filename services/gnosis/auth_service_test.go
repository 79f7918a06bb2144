package gnosis

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Portalfi/Portalfi-Backend/providers/gnosispay"
	"github.com/Portalfi/Portalfi-Backend/services/monitoring/logging"
	"github.com/stretchr/testify/require"
)

func TestAuthenticateWithSIWE(t *testing.T) {
	var challenge gnosispay.ChallengeRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/auth/nonce":
			_, _ = w.Write([]byte("abc123"))
		case "/api/v1/auth/challenge":
			require.Empty(t, r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&challenge))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"token":"gp-token"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	svc := NewAuthService(gnosispay.NewClient(srv.URL, logging.NewTestLogger()), logging.NewTestLogger())
	svc.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	token, err := svc.AuthenticateWithSIWE(context.Background(), testKey, "", "portalfi.com")
	require.NoError(t, err)
	require.Equal(t, "gp-token", token)

	require.True(t, strings.Contains(challenge.Message, "Nonce: abc123"))
	require.True(t, strings.HasPrefix(challenge.Message, "portalfi.com wants you to sign in"))
	signer, err := RecoverSigner(challenge.Message, challenge.Signature)
	require.NoError(t, err)
	require.Equal(t, testAddress, signer.Hex())
}

func TestAuthenticateWithSIWEAddressMismatch(t *testing.T) {
	svc := NewAuthService(gnosispay.NewClient("http://127.0.0.1:1", logging.NewTestLogger()), logging.NewTestLogger())

	_, err := svc.AuthenticateWithSIWE(context.Background(), testKey, "0x0000000000000000000000000000000000000001", "portalfi.com")
	require.ErrorIs(t, err, ErrAddressMismatch)
}

func TestSignupUserForwardsFields(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer t0k", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"u1","token":"new","hasSignedUp":true}`))
	}))
	defer srv.Close()

	svc := NewAuthService(gnosispay.NewClient(srv.URL, logging.NewTestLogger()), logging.NewTestLogger())
	resp, err := svc.SignupUser(context.Background(), "t0k", gnosispay.SignupRequest{
		AuthEmail:         "a@b.co",
		OTP:               "123456",
		MarketingCampaign: "spring",
	})
	require.NoError(t, err)
	require.True(t, resp.HasSignedUp)
	require.Equal(t, "a@b.co", got["authEmail"])
	require.Equal(t, "spring", got["marketingCampaign"])
	require.NotContains(t, got, "partnerId")
}
