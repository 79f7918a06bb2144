package notification

import (
	"context"
	"fmt"

	"github.com/Portalfi/Portalfi-Backend/utils"
)

// NewMailer picks the transport named by EMAIL_TRANSPORT.
func NewMailer(config *utils.Config) (Mailer, error) {
	switch config.EmailTransport {
	case "", "smtp":
		if config.SMTPHost == "" || config.SMTPUser == "" || config.SMTPPass == "" {
			return nil, fmt.Errorf("%w: SMTP_HOST, SMTP_USER and SMTP_PASS are required", ErrEmailNotConfigured)
		}
		secure := config.SMTPSecure == "true" || config.SMTPSecure == "1"
		return NewSMTPMailer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPass, secure, config.SMTPFrom), nil
	case "ses":
		if config.AWSRegion == "" {
			return nil, fmt.Errorf("%w: AWS_REGION is required", ErrEmailNotConfigured)
		}
		return NewSESMailer(config.AWSRegion, config.AWSAccessKeyID, config.AWSSecretAccessKey)
	case "plunk":
		if config.PlunkApiKey == "" {
			return nil, fmt.Errorf("%w: PLUNK_API_KEY is required", ErrEmailNotConfigured)
		}
		return NewPlunk(config.PlunkBaseUrl, config.PlunkApiKey), nil
	default:
		return nil, fmt.Errorf("%w: unknown transport %q", ErrEmailNotConfigured, config.EmailTransport)
	}
}

// DisabledMailer stands in when no transport is configured so the rest of
// the server can still start.
type DisabledMailer struct {
	Reason error
}

func (d DisabledMailer) Send(ctx context.Context, msg EmailMessage) (string, error) {
	if d.Reason != nil {
		return "", d.Reason
	}
	return "", ErrEmailNotConfigured
}
