package activitylogs

import (
	"fmt"
	"net/http"
	"regexp"
)

// Activity is one entry of the user-facing timeline.
type Activity struct {
	Type        string
	Title       string
	Description string
	Icon        string
}

type activityRoute struct {
	pattern *regexp.Regexp
	method  string
	kind    string
}

var activityRoutes = []activityRoute{
	{regexp.MustCompile(`(?i)/auth/login$`), "", "login"},
	{regexp.MustCompile(`(?i)/auth/logout$`), "", "logout"},
	{regexp.MustCompile(`(?i)/auth/signup$`), "", "signup"},
	{regexp.MustCompile(`(?i)/cards/virtual$`), http.MethodPost, "card_created"},
	{regexp.MustCompile(`(?i)/cards/[^/]+/activate$`), http.MethodPost, "card_activated"},
	{regexp.MustCompile(`(?i)/cards/[^/]+/freeze$`), http.MethodPost, "card_frozen"},
	{regexp.MustCompile(`(?i)/cards/[^/]+/unfreeze$`), http.MethodPost, "card_unfrozen"},
	{regexp.MustCompile(`(?i)/cards/[^/]+/report-lost$`), http.MethodPost, "card_reported_lost"},
	{regexp.MustCompile(`(?i)/kyc/answers$`), http.MethodPost, "kyc_submitted"},
	{regexp.MustCompile(`(?i)/card-orders/physical$`), http.MethodPost, "physical_card_ordered"},
	{regexp.MustCompile(`(?i)/webhooks$`), http.MethodPost, "webhook_created"},
	{regexp.MustCompile(`(?i)/user$`), http.MethodPatch, "profile_updated"},
}

var activityDetails = map[string]Activity{
	"login":                 {Title: "Logged in", Description: "You logged into your account", Icon: "login"},
	"logout":                {Title: "Logged out", Description: "You logged out of your account", Icon: "logout"},
	"signup":                {Title: "Account created", Description: "Welcome! Your account has been created", Icon: "user-plus"},
	"card_created":          {Title: "Virtual card created", Description: "A new virtual card has been created", Icon: "credit-card"},
	"card_activated":        {Title: "Card activated", Description: "Your card has been activated", Icon: "check-circle"},
	"card_frozen":           {Title: "Card frozen", Description: "Your card has been temporarily frozen", Icon: "lock"},
	"card_unfrozen":         {Title: "Card unfrozen", Description: "Your card has been unfrozen", Icon: "unlock"},
	"card_reported_lost":    {Title: "Card reported lost", Description: "Your card has been reported as lost and blocked", Icon: "alert-triangle"},
	"kyc_submitted":         {Title: "KYC submitted", Description: "Your KYC information has been submitted for review", Icon: "file-text"},
	"physical_card_ordered": {Title: "Physical card ordered", Description: "Your physical card order has been placed", Icon: "package"},
	"webhook_created":       {Title: "Webhook created", Icon: "webhook"},
	"profile_updated":       {Title: "Profile updated", Description: "Your profile information has been updated", Icon: "user"},
}

// ResolveActivity maps a request to a timeline entry. ok is false for
// requests that do not belong on the timeline. webhookURL is only used for
// webhook_created and falls back to "endpoint".
func ResolveActivity(method, path, webhookURL string) (Activity, bool) {
	for _, r := range activityRoutes {
		if r.method != "" && r.method != method {
			continue
		}
		if !r.pattern.MatchString(path) {
			continue
		}

		a := activityDetails[r.kind]
		a.Type = r.kind
		if r.kind == "webhook_created" {
			if webhookURL == "" {
				webhookURL = "endpoint"
			}
			a.Description = fmt.Sprintf("Webhook created for %s", webhookURL)
		}
		return a, true
	}
	return Activity{}, false
}
