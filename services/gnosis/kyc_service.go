package gnosis

import (
	"context"
	"net/http"

	"github.com/Portalfi/Portalfi-Backend/providers/gnosispay"
	"github.com/Portalfi/Portalfi-Backend/services/monitoring/logging"
	"github.com/sirupsen/logrus"
)

// Outcomes of the access token probe in the KYC flow status.
const (
	AccessTokenOK          = "ok"
	AccessTokenNotEntitled = "not_entitled"
	AccessTokenUnavailable = "unavailable"
)

type kycClient interface {
	GetUser(ctx context.Context, token string) (*gnosispay.User, error)
	GetKYCQuestions(ctx context.Context, token string) ([]gnosispay.KycQuestion, error)
	SubmitKYCAnswers(ctx context.Context, token string, answers []gnosispay.KycAnswer) error
	GetKYCAccessToken(ctx context.Context, token, lang string) (*gnosispay.AccessTokenResponse, error)
	SendPhoneVerification(ctx context.Context, token, phone string) error
	VerifyPhoneOTP(ctx context.Context, token, otp string) error
}

type KYCService struct {
	client kycClient
	logger *logging.Logger
}

func NewKYCService(client kycClient, logger *logging.Logger) *KYCService {
	return &KYCService{client: client, logger: logger}
}

type FlowStatus struct {
	KYCStatus               gnosispay.KYCStatus `json:"kycStatus"`
	IsSourceOfFundsAnswered bool                `json:"isSourceOfFundsAnswered"`
	IsPhoneValidated        bool                `json:"isPhoneValidated"`
	HasAccessToken          bool                `json:"hasAccessToken"`
	AccessTokenCheck        string              `json:"accessTokenCheck"`
}

func (s *KYCService) GetQuestions(ctx context.Context, token string) ([]gnosispay.KycQuestion, error) {
	return s.client.GetKYCQuestions(ctx, token)
}

func (s *KYCService) SubmitAnswers(ctx context.Context, token string, answers []gnosispay.KycAnswer) error {
	return s.client.SubmitKYCAnswers(ctx, token, answers)
}

func (s *KYCService) GetAccessToken(ctx context.Context, token string) (string, error) {
	resp, err := s.client.GetKYCAccessToken(ctx, token, "")
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (s *KYCService) GetStatus(ctx context.Context, token string) (gnosispay.KYCStatus, error) {
	user, err := s.client.GetUser(ctx, token)
	if err != nil {
		return "", err
	}
	return user.KYCStatus, nil
}

func (s *KYCService) SendPhoneVerification(ctx context.Context, token, phone string) error {
	return s.client.SendPhoneVerification(ctx, token, phone)
}

func (s *KYCService) VerifyPhoneOTP(ctx context.Context, token, otp string) error {
	return s.client.VerifyPhoneOTP(ctx, token, otp)
}

// GetFlowStatus summarizes onboarding progress. A failed user lookup is
// returned as an error; a failed access token lookup only clears
// HasAccessToken and is classified in AccessTokenCheck.
func (s *KYCService) GetFlowStatus(ctx context.Context, token string) (*FlowStatus, error) {
	user, err := s.client.GetUser(ctx, token)
	if err != nil {
		return nil, err
	}

	status := &FlowStatus{
		KYCStatus:               user.KYCStatus,
		IsSourceOfFundsAnswered: user.IsSourceOfFundsAnswered,
		IsPhoneValidated:        user.IsPhoneValidated,
		AccessTokenCheck:        AccessTokenOK,
	}

	if _, err := s.client.GetKYCAccessToken(ctx, token, ""); err != nil {
		status.AccessTokenCheck = classifyAccessTokenError(err)
		if status.AccessTokenCheck == AccessTokenUnavailable {
			s.logger.WithFields(logrus.Fields{
				"error": err.Error(),
			}).Warn("KYC access token lookup unavailable")
		}
		return status, nil
	}

	status.HasAccessToken = true
	return status, nil
}

func classifyAccessTokenError(err error) string {
	pErr, ok := gnosispay.AsProviderError(err)
	if ok && pErr.Status >= http.StatusBadRequest && pErr.Status < http.StatusInternalServerError {
		return AccessTokenNotEntitled
	}
	return AccessTokenUnavailable
}
