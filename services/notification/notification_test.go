package notification

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Portalfi/Portalfi-Backend/services/i18n"
	"github.com/Portalfi/Portalfi-Backend/services/monitoring/logging"
	"github.com/Portalfi/Portalfi-Backend/utils"
	"github.com/stretchr/testify/require"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

type fakeMailer struct {
	sent []EmailMessage
	err  error
}

func (f *fakeMailer) Send(ctx context.Context, msg EmailMessage) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, msg)
	return "msg-1", nil
}

type fakeTwilio struct {
	params *openapi.CreateMessageParams
}

func (f *fakeTwilio) CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error) {
	f.params = params
	sid := "SM123"
	return &openapi.ApiV2010Message{Sid: &sid}, nil
}

func newEmailService(mailer Mailer) *EmailService {
	s := NewEmailService(mailer, i18n.NewTranslator(), "Portalfi <no-reply@portalfi.com>", "https://portalfi.com", logging.NewTestLogger())
	s.now = func() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) }
	return s
}

func TestSendWelcomeEmail(t *testing.T) {
	mailer := &fakeMailer{}
	svc := newEmailService(mailer)

	require.NoError(t, svc.SendWelcomeEmail(context.Background(), "ana@example.com", "Ana", "es-ES"))
	require.Len(t, mailer.sent, 1)

	msg := mailer.sent[0]
	require.Equal(t, "ana@example.com", msg.To)
	require.Equal(t, "Portalfi <no-reply@portalfi.com>", msg.From)
	require.Equal(t, "Bienvenido a Portalfi", msg.Subject)
	require.Contains(t, msg.HTML, "Hola Ana")
	require.Contains(t, msg.HTML, `href="https://portalfi.com"`)
	require.Contains(t, msg.HTML, "2025")
}

func TestRenderEscapesParams(t *testing.T) {
	svc := newEmailService(&fakeMailer{})

	_, html, err := svc.Render(TemplateWelcome, "en", map[string]string{"name": "<script>x</script>"})
	require.NoError(t, err)
	require.NotContains(t, html, "<script>x</script>")
}

func TestRenderRequiresParams(t *testing.T) {
	svc := newEmailService(&fakeMailer{})

	_, _, err := svc.Render(TemplatePaymentSent, "en", map[string]string{"name": "Ana", "amount": "1"})
	require.ErrorIs(t, err, ErrMissingTemplateParam)

	_, _, err = svc.Render("nope", "en", nil)
	require.ErrorIs(t, err, ErrUnknownTemplate)
}

func TestPreviewEveryTemplate(t *testing.T) {
	svc := newEmailService(&fakeMailer{})

	for _, name := range SupportedTemplates() {
		for _, lang := range []string{"en", "es", "pt-PT"} {
			html, err := svc.PreviewExample("Daniel", lang, name)
			require.NoError(t, err, "%s/%s", name, lang)
			require.NotContains(t, html, "{{", "%s/%s has unresolved placeholders", name, lang)
			require.NotContains(t, html, name+".", "%s/%s has a missing key", name, lang)
		}
	}
}

func TestPreviewUnknownTemplateFallsBackToWelcome(t *testing.T) {
	svc := newEmailService(&fakeMailer{})

	html, err := svc.PreviewExample("", "", "doesNotExist")
	require.NoError(t, err)
	require.Contains(t, html, "Welcome aboard")
	require.Contains(t, html, "Hi Daniel")
}

func TestLoginVerificationShowsCode(t *testing.T) {
	svc := newEmailService(&fakeMailer{})

	_, html, err := svc.Render(TemplateLoginVerification, "pt-PT", map[string]string{"name": "Rui", "code": "9911", "minutes": "7"})
	require.NoError(t, err)
	require.Contains(t, html, "9911")
	require.Contains(t, html, "7 minutos")
}

func TestSendPropagatesTransportError(t *testing.T) {
	svc := newEmailService(&fakeMailer{err: errors.New("smtp down")})

	_, err := svc.Send(context.Background(), "a@b.co", TemplateVerifyIdentity, "en", map[string]string{"name": "A"})
	require.EqualError(t, err, "smtp down")
}

func TestSendOTPSMSUsesPurposeTemplate(t *testing.T) {
	fake := &fakeTwilio{}
	svc := NewSMSService(SMSConfig{FromNumber: "+15550000000", AppName: "Portalfi", ExpiryMinutes: 10}, i18n.NewTranslator(), logging.NewTestLogger())
	svc.api = fake

	sid, err := svc.SendOTPSMS(context.Background(), "+34600000000", "123456", OTPLogin, "es")
	require.NoError(t, err)
	require.Equal(t, "SM123", sid)
	require.Equal(t, "+34600000000", *fake.params.To)
	require.Equal(t, "+15550000000", *fake.params.From)
	require.True(t, strings.HasPrefix(*fake.params.Body, "Portalfi: usa 123456"))
}

func TestSendOTPSMSUnknownPurposeIsGeneric(t *testing.T) {
	fake := &fakeTwilio{}
	svc := NewSMSService(SMSConfig{FromNumber: "+15550000000", AppName: "Portalfi"}, i18n.NewTranslator(), logging.NewTestLogger())
	svc.api = fake

	_, err := svc.SendOTPSMS(context.Background(), "+15551112222", "42", "whatever", "")
	require.NoError(t, err)
	require.Equal(t, "Portalfi: your verification code is 42. It expires in 10 minutes.", *fake.params.Body)
}

func TestSMSNotConfigured(t *testing.T) {
	svc := NewSMSService(SMSConfig{}, i18n.NewTranslator(), logging.NewTestLogger())
	_, err := svc.SendTestSMS(context.Background(), "+15551112222", "hi")
	require.ErrorIs(t, err, ErrSMSNotConfigured)

	svc.api = &fakeTwilio{}
	_, err = svc.SendTestSMS(context.Background(), "+15551112222", "hi")
	require.ErrorIs(t, err, ErrSMSFromNotConfigured)
}

func TestPlunkSend(t *testing.T) {
	var got plunkEmailRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/send", r.URL.Path)
		require.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"success":true,"emails":[{"contact":{"id":"c1","email":"a@b.co"},"email":"e1"}]}`))
	}))
	defer srv.Close()

	id, err := NewPlunk(srv.URL, "sk_test").Send(context.Background(), EmailMessage{To: "a@b.co", Subject: "Hi", HTML: "<p>x</p>"})
	require.NoError(t, err)
	require.Equal(t, "e1", id)
	require.Equal(t, "<p>x</p>", got.Body)
}

func TestNewMailerValidatesTransport(t *testing.T) {
	_, err := NewMailer(&utils.Config{EmailTransport: "smtp"})
	require.ErrorIs(t, err, ErrEmailNotConfigured)

	m, err := NewMailer(&utils.Config{EmailTransport: "plunk", PlunkApiKey: "k"})
	require.NoError(t, err)
	require.IsType(t, &Plunk{}, m)

	m, err = NewMailer(&utils.Config{EmailTransport: "smtp", SMTPHost: "smtp.example.com", SMTPPort: 587, SMTPUser: "u", SMTPPass: "p", SMTPFrom: "no-reply@portalfi.com"})
	require.NoError(t, err)
	require.Equal(t, "portalfi.com", m.(*SMTPMailer).domain)
}
