package gnosis

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/Portalfi/Portalfi-Backend/providers"
	"github.com/Portalfi/Portalfi-Backend/providers/gnosispay"
	"github.com/Portalfi/Portalfi-Backend/services/monitoring/logging"
	"github.com/stretchr/testify/require"
)

type fakeKYCClient struct {
	user       *gnosispay.User
	userErr    error
	accessErr  error
	accessCall int
}

func (f *fakeKYCClient) GetUser(ctx context.Context, token string) (*gnosispay.User, error) {
	return f.user, f.userErr
}

func (f *fakeKYCClient) GetKYCQuestions(ctx context.Context, token string) ([]gnosispay.KycQuestion, error) {
	return nil, nil
}

func (f *fakeKYCClient) SubmitKYCAnswers(ctx context.Context, token string, answers []gnosispay.KycAnswer) error {
	return nil
}

func (f *fakeKYCClient) GetKYCAccessToken(ctx context.Context, token, lang string) (*gnosispay.AccessTokenResponse, error) {
	f.accessCall++
	if f.accessErr != nil {
		return nil, f.accessErr
	}
	return &gnosispay.AccessTokenResponse{Token: "sumsub"}, nil
}

func (f *fakeKYCClient) SendPhoneVerification(ctx context.Context, token, phone string) error {
	return nil
}

func (f *fakeKYCClient) VerifyPhoneOTP(ctx context.Context, token, otp string) error {
	return nil
}

func pendingUser() *gnosispay.User {
	return &gnosispay.User{ID: "u1", KYCStatus: gnosispay.KYCPending, IsPhoneValidated: true}
}

func TestFlowStatusWithAccessToken(t *testing.T) {
	svc := NewKYCService(&fakeKYCClient{user: pendingUser()}, logging.NewTestLogger())

	status, err := svc.GetFlowStatus(context.Background(), "t")
	require.NoError(t, err)
	require.Equal(t, gnosispay.KYCPending, status.KYCStatus)
	require.True(t, status.IsPhoneValidated)
	require.False(t, status.IsSourceOfFundsAnswered)
	require.True(t, status.HasAccessToken)
	require.Equal(t, AccessTokenOK, status.AccessTokenCheck)
}

func TestFlowStatusAccessTokenFailuresAreSwallowed(t *testing.T) {
	cases := []struct {
		name  string
		err   error
		check string
	}{
		{"forbidden", &providers.ProviderError{Message: "forbidden", Status: http.StatusForbidden}, AccessTokenNotEntitled},
		{"upstream down", &providers.ProviderError{Message: "bad gateway", Status: http.StatusBadGateway}, AccessTokenUnavailable},
		{"transport", &providers.ProviderError{Message: "dial tcp: refused", Status: http.StatusInternalServerError}, AccessTokenUnavailable},
		{"unknown", errors.New("boom"), AccessTokenUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewKYCService(&fakeKYCClient{user: pendingUser(), accessErr: tc.err}, logging.NewTestLogger())

			status, err := svc.GetFlowStatus(context.Background(), "t")
			require.NoError(t, err)
			require.False(t, status.HasAccessToken)
			require.Equal(t, tc.check, status.AccessTokenCheck)
		})
	}
}

func TestFlowStatusPropagatesUserError(t *testing.T) {
	fake := &fakeKYCClient{userErr: &providers.ProviderError{Message: "invalid token", Status: http.StatusUnauthorized}}
	svc := NewKYCService(fake, logging.NewTestLogger())

	_, err := svc.GetFlowStatus(context.Background(), "t")
	pErr, ok := gnosispay.AsProviderError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, pErr.Status)
	require.Zero(t, fake.accessCall)
}

func TestGetStatusReadsUser(t *testing.T) {
	svc := NewKYCService(&fakeKYCClient{user: &gnosispay.User{KYCStatus: gnosispay.KYCApproved}}, logging.NewTestLogger())

	status, err := svc.GetStatus(context.Background(), "t")
	require.NoError(t, err)
	require.Equal(t, gnosispay.KYCApproved, status)
}
