package notification

import (
	"context"
	"strconv"

	"github.com/Portalfi/Portalfi-Backend/services/i18n"
	"github.com/Portalfi/Portalfi-Backend/services/monitoring/logging"
	"github.com/Portalfi/Portalfi-Backend/services/monitoring/metrics"
	"github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// OTP purposes with dedicated SMS wording. Anything else uses the generic text.
const (
	OTPGeneric       = "generic"
	OTPLogin         = "login"
	OTPRegistration  = "registration"
	OTPPasswordReset = "password_reset"
)

type messageCreator interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

type SMSConfig struct {
	AccountSID    string
	AuthToken     string
	FromNumber    string
	AppName       string
	ExpiryMinutes int
}

type SMSService struct {
	api        messageCreator
	config     SMSConfig
	translator *i18n.Translator
	logger     *logging.Logger
}

// NewSMSService builds the Twilio client once. Missing credentials leave the
// service usable but every send fails with ErrSMSNotConfigured.
func NewSMSService(config SMSConfig, translator *i18n.Translator, logger *logging.Logger) *SMSService {
	s := &SMSService{config: config, translator: translator, logger: logger}
	if config.AccountSID != "" && config.AuthToken != "" {
		client := twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: config.AccountSID,
			Password: config.AuthToken,
		})
		s.api = client.Api
	}
	return s
}

func (s *SMSService) SendTestSMS(ctx context.Context, to, message string) (string, error) {
	return s.send(ctx, to, message)
}

func (s *SMSService) SendOTPSMS(ctx context.Context, to, code, purpose, language string) (string, error) {
	switch purpose {
	case OTPLogin, OTPRegistration, OTPPasswordReset:
	default:
		purpose = OTPGeneric
	}

	minutes := s.config.ExpiryMinutes
	if minutes <= 0 {
		minutes = 10
	}

	body := s.translator.T(language, i18n.NamespaceSMS, "otp."+purpose, map[string]string{
		"appName": s.config.AppName,
		"code":    code,
		"minutes": strconv.Itoa(minutes),
	})
	return s.send(ctx, to, body)
}

func (s *SMSService) send(ctx context.Context, to, body string) (string, error) {
	if s.api == nil {
		return "", ErrSMSNotConfigured
	}
	if s.config.FromNumber == "" {
		return "", ErrSMSFromNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.config.FromNumber)
	params.SetBody(body)

	resp, err := s.api.CreateMessage(params)
	metrics.ObserveNotification("sms", err)
	if err != nil {
		s.logger.WithFields(logrus.Fields{"error": err.Error()}).Error("Twilio message failed")
		return "", err
	}

	sid := ""
	if resp.Sid != nil {
		sid = *resp.Sid
	}
	s.logger.WithField("sid", sid).Info("SMS sent")
	return sid, nil
}
