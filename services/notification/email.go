package notification

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"strconv"
	"time"

	"github.com/Portalfi/Portalfi-Backend/services/i18n"
	"github.com/Portalfi/Portalfi-Backend/services/monitoring/logging"
	"github.com/Portalfi/Portalfi-Backend/services/monitoring/metrics"
	"github.com/sirupsen/logrus"
)

//go:embed templates/layout.html
var layoutFS embed.FS

var layout = template.Must(template.ParseFS(layoutFS, "templates/layout.html"))

const previewName = "Daniel"

// EmailMessage is a fully rendered email ready for a transport.
type EmailMessage struct {
	To      string
	From    string
	Subject string
	HTML    string
}

// Mailer delivers a rendered message and returns the transport's message id.
type Mailer interface {
	Send(ctx context.Context, msg EmailMessage) (string, error)
}

type emailContent struct {
	Language     string
	Subject      string
	Preview      string
	Heading      string
	Intro        string
	Details      string
	Bullets      []string
	CodeLabel    string
	Code         string
	Expires      string
	Hint         string
	ButtonLabel  string
	ButtonHref   string
	Subtitle     string
	FooterRights string
}

type EmailService struct {
	mailer     Mailer
	translator *i18n.Translator
	from       string
	appURL     string
	logger     *logging.Logger
	now        func() time.Time
}

func NewEmailService(mailer Mailer, translator *i18n.Translator, from, appURL string, logger *logging.Logger) *EmailService {
	return &EmailService{
		mailer:     mailer,
		translator: translator,
		from:       from,
		appURL:     appURL,
		logger:     logger,
		now:        time.Now,
	}
}

// Render builds the subject and HTML body of a template in the given language.
// params must contain every placeholder the template requires; "name" is
// always available to the intro line.
func (s *EmailService) Render(name, language string, params map[string]string) (subject string, html string, err error) {
	def, ok := emailTemplates[name]
	if !ok {
		return "", "", fmt.Errorf("%w: %s", ErrUnknownTemplate, name)
	}
	for _, key := range def.required {
		if params[key] == "" {
			return "", "", fmt.Errorf("%w: %s", ErrMissingTemplateParam, key)
		}
	}

	vars := map[string]string{"name": ""}
	for k, v := range params {
		vars[k] = v
	}
	params = vars

	lang := i18n.NormalizeLanguage(language)
	t := func(key string) string {
		return s.translator.T(lang, i18n.NamespaceEmail, name+"."+key, params)
	}

	footer := s.translator.T(lang, i18n.NamespaceEmail, "footer.rights", map[string]string{
		"year": strconv.Itoa(s.now().Year()),
	})

	content := emailContent{
		Language:     lang,
		Subject:      t("subject"),
		Preview:      t("preview"),
		Heading:      t("heading"),
		Intro:        t("body.intro"),
		Details:      t("body.details"),
		ButtonLabel:  t("cta.label"),
		ButtonHref:   s.appURL,
		FooterRights: footer,
	}
	for _, b := range def.bullets {
		content.Bullets = append(content.Bullets, t("body.bullets."+b))
	}
	if def.code {
		content.CodeLabel = t("body.codeLabel")
		content.Code = params["code"]
		if params["minutes"] != "" {
			content.Expires = t("meta.expires")
		}
	}
	if def.hint {
		content.Hint = t("meta.hint")
	}
	if def.subtitle {
		content.Subtitle = t("cta.subtitle")
	}

	var buf bytes.Buffer
	if err := layout.Execute(&buf, content); err != nil {
		return "", "", err
	}
	return content.Subject, buf.String(), nil
}

// Send renders and delivers one template email.
func (s *EmailService) Send(ctx context.Context, to, name, language string, params map[string]string) (string, error) {
	subject, html, err := s.Render(name, language, params)
	if err != nil {
		return "", err
	}

	id, err := s.mailer.Send(ctx, EmailMessage{To: to, From: s.from, Subject: subject, HTML: html})
	metrics.ObserveNotification("email", err)
	if err != nil {
		s.logger.WithFields(logrus.Fields{"template": name, "error": err.Error()}).Error("Email delivery failed")
		return "", err
	}

	s.logger.WithFields(logrus.Fields{
		"template":   name,
		"to":         to,
		"message_id": id,
	}).Info("Email sent")
	return id, nil
}

func (s *EmailService) SendWelcomeEmail(ctx context.Context, to, name, language string) error {
	_, err := s.Send(ctx, to, TemplateWelcome, language, map[string]string{"name": name})
	return err
}

// PreviewExample renders a template with sample data. Unknown templates fall
// back to the welcome email.
func (s *EmailService) PreviewExample(name, language, tmpl string) (string, error) {
	if !IsSupportedTemplate(tmpl) {
		tmpl = TemplateWelcome
	}
	if name == "" {
		name = previewName
	}

	params := map[string]string{"name": name}
	for k, v := range emailTemplates[tmpl].sample {
		params[k] = v
	}

	_, html, err := s.Render(tmpl, language, params)
	return html, err
}
