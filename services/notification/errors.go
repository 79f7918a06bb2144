package notification

import "fmt"

var (
	ErrUnknownTemplate      = fmt.Errorf("unknown email template")
	ErrMissingTemplateParam = fmt.Errorf("missing template param")
	ErrSMSNotConfigured     = fmt.Errorf("twilio credentials not configured")
	ErrSMSFromNotConfigured = fmt.Errorf("TWILIO_PHONE_NUMBER not configured")
	ErrEmailNotConfigured   = fmt.Errorf("email transport not configured")
)
