package gnosispay

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Portalfi/Portalfi-Backend/providers"
	"github.com/Portalfi/Portalfi-Backend/services/monitoring/logging"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	method string
	path   string
	query  string
	auth   string
	hasKey bool
	body   []byte
}

func newTestClient(t *testing.T, status int, contentType, response string) (*Client, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.EscapedPath()
		rec.query = r.URL.RawQuery
		_, rec.hasKey = r.Header["Authorization"]
		rec.auth = r.Header.Get("Authorization")
		rec.body, _ = io.ReadAll(r.Body)

		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)

	return NewClient(srv.URL, logging.NewTestLogger()), rec
}

func TestGenerateNonceIsPlainTextAndUnauthenticated(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, "text/plain", "abc123nonce")

	nonce, err := client.GenerateNonce(context.Background())
	require.NoError(t, err)
	require.Equal(t, "abc123nonce", nonce)
	require.Equal(t, http.MethodGet, rec.method)
	require.Equal(t, "/api/v1/auth/nonce", rec.path)
	require.False(t, rec.hasKey)
}

func TestVerifyChallengeForwardsPayload(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, "application/json", `{"token":"jwt-token"}`)

	ttl := 3600
	resp, err := client.VerifyChallenge(context.Background(), ChallengeRequest{
		Message:      "siwe message",
		Signature:    "0xsig",
		TTLInSeconds: &ttl,
	})
	require.NoError(t, err)
	require.Equal(t, "jwt-token", resp.Token)
	require.Equal(t, http.MethodPost, rec.method)
	require.JSONEq(t, `{"message":"siwe message","signature":"0xsig","ttlInSeconds":3600}`, string(rec.body))
}

func TestAuthenticatedCallSendsBearerVerbatim(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, "application/json", `{"id":"u1","kycStatus":"approved","signInWallets":[],"safeWallets":[],"cards":[],"isSourceOfFundsAnswered":true,"isPhoneValidated":false,"status":"ACTIVE"}`)

	user, err := client.GetUser(context.Background(), "tok.en-value")
	require.NoError(t, err)
	require.Equal(t, "Bearer tok.en-value", rec.auth)
	require.Equal(t, KYCApproved, user.KYCStatus)
	require.True(t, user.IsSourceOfFundsAnswered)
}

func TestUnsetQueryParamsAreOmitted(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, "application/json", `[]`)

	_, err := client.GetTransactions(context.Background(), "t", TransactionsQuery{})
	require.NoError(t, err)
	require.Equal(t, "/api/v1/transactions", rec.path)
	require.Empty(t, rec.query)

	_, err = client.GetKYCIntegration(context.Background(), "t", "")
	require.NoError(t, err)
	require.Empty(t, rec.query)

	_, err = client.GetTransactions(context.Background(), "t", TransactionsQuery{CardID: "c1", Page: 2})
	require.NoError(t, err)
	require.Equal(t, "cardId=c1&page=2", rec.query)
}

func TestCardTokensAreRepeatedKeys(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, "application/json", `{"results":[]}`)

	raw, err := client.GetCardTransactions(context.Background(), "t", CardTransactionsQuery{
		CardTokens: []string{"a", "b"},
		Limit:      10,
	})
	require.NoError(t, err)
	require.JSONEq(t, `{"results":[]}`, string(raw))
	require.Equal(t, "cardTokens=a&cardTokens=b&limit=10", rec.query)
}

func TestUpstreamErrorFieldBecomesMessage(t *testing.T) {
	client, _ := newTestClient(t, http.StatusUnauthorized, "application/json", `{"error":"invalid token"}`)

	_, err := client.GetUser(context.Background(), "bad")
	pErr, ok := AsProviderError(err)
	require.True(t, ok)
	require.Equal(t, "invalid token", pErr.Message)
	require.Equal(t, http.StatusUnauthorized, pErr.Status)
}

func TestUpstreamErrorWithoutMessage(t *testing.T) {
	client, _ := newTestClient(t, http.StatusNotFound, "text/html", "<h1>not found</h1>")

	_, err := client.GetCardStatus(context.Background(), "t", "abc123")
	pErr, ok := AsProviderError(err)
	require.True(t, ok)
	require.Equal(t, "Request failed with status code 404", pErr.Message)
	require.Equal(t, http.StatusNotFound, pErr.Status)
}

func TestTransportFailureIs500(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := srv.URL
	srv.Close()

	client := NewClient(baseURL, logging.NewTestLogger())
	_, err := client.GetCards(context.Background(), "t")

	var pErr *providers.ProviderError
	require.ErrorAs(t, err, &pErr)
	require.Equal(t, http.StatusInternalServerError, pErr.Status)
	require.NotEmpty(t, pErr.Message)
}

func TestRemoveSafeOwnerSendsDeleteBody(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, "application/json", `{"ok":true}`)

	_, err := client.RemoveSafeOwner(context.Background(), "t", RemoveOwnerRequest{OwnerToRemove: "0xabc", Signature: "0xsig"})
	require.NoError(t, err)
	require.Equal(t, http.MethodDelete, rec.method)
	require.JSONEq(t, `{"ownerToRemove":"0xabc","signature":"0xsig"}`, string(rec.body))
}

func TestCreateSafeSendsChainIDAsString(t *testing.T) {
	client, rec := newTestClient(t, http.StatusCreated, "application/json", `{"id":"s1","address":"0x1","chainId":"100","deployed":false}`)

	resp, err := client.CreateSafe(context.Background(), "t", "100")
	require.NoError(t, err)
	require.Equal(t, "0x1", resp.Address)
	require.JSONEq(t, `{"chainId":"100"}`, string(rec.body))
}

func TestRawResponsesPassThrough(t *testing.T) {
	payload := `{"limit":"1000","extra":{"nested":[1,2,3]}}`
	client, _ := newTestClient(t, http.StatusOK, "application/json", payload)

	raw, err := client.GetDailyLimit(context.Background(), "t")
	require.NoError(t, err)
	require.Equal(t, json.RawMessage(payload), raw)
}

func TestEmptyBodyOnVoidCall(t *testing.T) {
	client, rec := newTestClient(t, http.StatusNoContent, "", "")

	require.NoError(t, client.FreezeCard(context.Background(), "t", "card/1"))
	require.Equal(t, "/api/v1/cards/card%2F1/freeze", rec.path)
}
