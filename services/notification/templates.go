package notification

import "sort"

// Email template names accepted by the send and preview endpoints.
const (
	TemplateWelcome               = "welcome"
	TemplateLoginVerification     = "loginVerification"
	TemplatePasswordChanged       = "passwordChanged"
	TemplateNewDeviceDetected     = "newDeviceDetected"
	TemplateCardCreated           = "cardCreated"
	TemplateCardActivated         = "cardActivated"
	TemplateCardFrozenByUser      = "cardFrozenByUser"
	TemplateCardFrozenBySystem    = "cardFrozenBySystem"
	TemplatePaymentReceived       = "paymentReceived"
	TemplatePaymentSent           = "paymentSent"
	TemplateDepositSuccessful     = "depositSuccessful"
	TemplateVerifyIdentity        = "verifyIdentity"
	TemplatePreventiveAccountLock = "preventiveAccountLock"
	TemplateReferralJoined        = "referralJoined"
	TemplateReferralReward        = "referralReward"
	TemplateActivityDetected      = "activityDetected"
)

// templateSpec describes which optional blocks of the layout a template uses
// and which params its translations interpolate. sample fills every param
// for previews.
type templateSpec struct {
	code     bool
	bullets  []string
	hint     bool
	subtitle bool
	required []string
	sample   map[string]string
}

var emailTemplates = map[string]templateSpec{
	TemplateWelcome: {
		subtitle: true,
	},
	TemplateLoginVerification: {
		code:     true,
		required: []string{"code"},
		sample:   map[string]string{"code": "4356", "minutes": "5"},
	},
	TemplatePasswordChanged: {
		bullets:  []string{"dateTime", "location", "notYou"},
		hint:     true,
		required: []string{"dateTime", "location"},
		sample:   map[string]string{"dateTime": "8/20/25 14:35 UTC", "location": "Valencia, Venezuela"},
	},
	TemplateNewDeviceDetected: {
		bullets:  []string{"device", "location", "dateTime"},
		hint:     true,
		required: []string{"device", "location", "dateTime"},
		sample:   map[string]string{"device": "iPhone 15, Safari", "location": "Lisbon, Portugal", "dateTime": "8/20/25 14:35 UTC"},
	},
	TemplateCardCreated: {
		required: []string{"lastFour"},
		sample:   map[string]string{"lastFour": "4821"},
	},
	TemplateCardActivated: {
		required: []string{"lastFour"},
		sample:   map[string]string{"lastFour": "4821"},
	},
	TemplateCardFrozenByUser: {
		hint:     true,
		required: []string{"lastFour"},
		sample:   map[string]string{"lastFour": "4821"},
	},
	TemplateCardFrozenBySystem: {
		hint:     true,
		required: []string{"lastFour"},
		sample:   map[string]string{"lastFour": "4821"},
	},
	TemplatePaymentReceived: {
		required: []string{"amount", "currency", "sender"},
		sample:   map[string]string{"amount": "120.00", "currency": "EUR", "sender": "Maria Lopez"},
	},
	TemplatePaymentSent: {
		required: []string{"amount", "currency", "recipient"},
		sample:   map[string]string{"amount": "45.90", "currency": "EUR", "recipient": "Coffee Lab"},
	},
	TemplateDepositSuccessful: {
		required: []string{"amount", "currency"},
		sample:   map[string]string{"amount": "500.00", "currency": "EURe"},
	},
	TemplateVerifyIdentity: {},
	TemplatePreventiveAccountLock: {
		hint: true,
	},
	TemplateReferralJoined: {
		required: []string{"referralName"},
		sample:   map[string]string{"referralName": "Ana"},
	},
	TemplateReferralReward: {
		required: []string{"amount", "currency"},
		sample:   map[string]string{"amount": "10.00", "currency": "EUR"},
	},
	TemplateActivityDetected: {
		bullets:  []string{"activity", "dateTime"},
		hint:     true,
		required: []string{"activity", "dateTime"},
		sample:   map[string]string{"activity": "Withdrawal of 200 EURe", "dateTime": "8/20/25 14:35 UTC"},
	},
}

func IsSupportedTemplate(name string) bool {
	_, ok := emailTemplates[name]
	return ok
}

func SupportedTemplates() []string {
	names := make([]string, 0, len(emailTemplates))
	for name := range emailTemplates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
