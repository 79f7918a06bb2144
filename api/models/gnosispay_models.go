package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/Portalfi/Portalfi-Backend/providers/gnosispay"
)

type VerifyChallengeParams struct {
	Message      string `json:"message" binding:"required"`
	Signature    string `json:"signature" binding:"required"`
	TTLInSeconds *int   `json:"ttlInSeconds" binding:"omitempty,min=60,max=86400"`
}

type SignupParams struct {
	AuthEmail          string `json:"authEmail" binding:"required,email"`
	OTP                string `json:"otp" binding:"omitempty,len=6"`
	ReferralCouponCode string `json:"referralCouponCode"`
	MarketingCampaign  string `json:"marketingCampaign"`
	PartnerID          string `json:"partnerId"`
}

func (p SignupParams) ToRequest() gnosispay.SignupRequest {
	return gnosispay.SignupRequest{
		AuthEmail:          p.AuthEmail,
		OTP:                p.OTP,
		ReferralCouponCode: p.ReferralCouponCode,
		MarketingCampaign:  p.MarketingCampaign,
		PartnerID:          p.PartnerID,
	}
}

type SignupOTPParams struct {
	Email string `json:"email" binding:"required,email"`
}

type UpdateGnosisUserParams struct {
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	Phone      *string `json:"phone"`
	Address1   *string `json:"address1"`
	Address2   *string `json:"address2"`
	City       *string `json:"city"`
	PostalCode *string `json:"postalCode"`
	State      *string `json:"state"`
	Country    *string `json:"country"`
}

func (p UpdateGnosisUserParams) ToRequest() gnosispay.UpdateUserRequest {
	return gnosispay.UpdateUserRequest(p)
}

type PhoneParams struct {
	Phone string `json:"phone" binding:"required"`
}

type PhoneOTPParams struct {
	OTP string `json:"otp" binding:"required"`
}

type TermsParams struct {
	Type    string `json:"type" binding:"required"`
	Version string `json:"version" binding:"required"`
}

// ChainID accepts both 100 and "100" on the wire.
type ChainID string

func (c *ChainID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = ChainID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("chainId must be a string or a number")
	}
	if _, err := strconv.ParseInt(n.String(), 10, 64); err != nil {
		return fmt.Errorf("chainId must be an integer")
	}
	*c = ChainID(n.String())
	return nil
}

type CreateSafeParams struct {
	ChainID ChainID `json:"chainId" binding:"required,oneof=100"`
}

type DeploySafeModulesParams struct {
	Signature string `json:"signature" binding:"required"`
}

type DailyLimitParams struct {
	NewLimit  string `json:"newLimit" binding:"required,amount"`
	Signature string `json:"signature" binding:"required"`
}

type DailyLimitQuery struct {
	NewLimit string `form:"newLimit" binding:"omitempty,amount"`
}

type WithdrawParams struct {
	TokenAddress string `json:"tokenAddress" binding:"required,eth_addr"`
	To           string `json:"to" binding:"required,eth_addr"`
	Amount       string `json:"amount" binding:"required,amount"`
	Signature    string `json:"signature" binding:"required"`
}

func (p WithdrawParams) ToRequest() gnosispay.WithdrawRequest {
	return gnosispay.WithdrawRequest(p)
}

type WithdrawQuery struct {
	TokenAddress string `form:"tokenAddress"`
	To           string `form:"to"`
	Amount       string `form:"amount" binding:"omitempty,amount"`
}

type EOAAccountParams struct {
	Address   string `json:"address" binding:"required,eth_addr"`
	Message   string `json:"message"`
	Signature string `json:"signature"`
}

type SetCurrencyParams struct {
	Currency string `json:"currency" binding:"required"`
}

type SafeTransactionParams struct {
	To    string `json:"to" binding:"required,eth_addr"`
	Value string `json:"value" binding:"required,amount"`
	Data  string `json:"data"`
}

type AddOwnerParams struct {
	NewOwner  string `json:"newOwner" binding:"required,eth_addr"`
	Signature string `json:"signature" binding:"required"`
}

type RemoveOwnerParams struct {
	OwnerToRemove string `json:"ownerToRemove" binding:"required,eth_addr"`
	Signature     string `json:"signature" binding:"required"`
}

type AddOwnerQuery struct {
	NewOwner string `form:"newOwner"`
}

type RemoveOwnerQuery struct {
	OwnerToRemove string `form:"ownerToRemove"`
}

type CardTransactionsQuery struct {
	CardTokens          []string `form:"cardTokens"`
	Limit               int      `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset              int      `form:"offset" binding:"omitempty,min=0"`
	Before              string   `form:"before"`
	After               string   `form:"after"`
	BillingCurrency     string   `form:"billingCurrency"`
	TransactionCurrency string   `form:"transactionCurrency"`
	MCC                 string   `form:"mcc"`
	TransactionType     string   `form:"transactionType"`
}

// ToQuery accepts cardTokens both repeated and comma separated.
func (q CardTransactionsQuery) ToQuery() gnosispay.CardTransactionsQuery {
	var tokens []string
	for _, raw := range q.CardTokens {
		for _, token := range strings.Split(raw, ",") {
			if token = strings.TrimSpace(token); token != "" {
				tokens = append(tokens, token)
			}
		}
	}
	q.CardTokens = tokens
	return gnosispay.CardTransactionsQuery(q)
}

type PhysicalCardOrderParams struct {
	PersonalizationSource string `json:"personalizationSource" binding:"required,oneof=KYC ENS"`
	EmbossedName          string `json:"embossedName"`
	Address1              string `json:"address1" binding:"required"`
	Address2              string `json:"address2"`
	City                  string `json:"city" binding:"required"`
	Country               string `json:"country" binding:"required"`
	PostalCode            string `json:"postalCode" binding:"required"`
	State                 string `json:"state"`
	CouponCode            string `json:"couponCode"`
}

func (p PhysicalCardOrderParams) ToRequest() gnosispay.PhysicalCardOrderRequest {
	return gnosispay.PhysicalCardOrderRequest(p)
}

type ConfirmCardOrderParams struct {
	Confirmation string `json:"confirmation" binding:"required"`
}

type CouponParams struct {
	CouponCode string `json:"couponCode" binding:"required"`
}

type AttachTransactionParams struct {
	TransactionHash string `json:"transactionHash" binding:"required"`
}

type KycAnswerParams struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

type KycAnswersParams struct {
	Answers []KycAnswerParams `json:"answers" binding:"required,dive"`
}

func (p KycAnswersParams) ToAnswers() []gnosispay.KycAnswer {
	answers := make([]gnosispay.KycAnswer, 0, len(p.Answers))
	for _, a := range p.Answers {
		answers = append(answers, gnosispay.KycAnswer{Question: a.Question, Answer: a.Answer})
	}
	return answers
}

type LanguageQuery struct {
	Lang string `form:"lang"`
}

type ImportApplicantParams struct {
	ApplicantID string `json:"applicantId" binding:"required"`
}

type LocaleQuery struct {
	Locale string `form:"locale"`
}

type VerificationParams struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

type VerificationCheckParams struct {
	Code string `json:"code" binding:"required"`
}

type CallbackQuery struct {
	CallbackURL string `form:"callbackUrl"`
}

type MoneriumProfileParams struct {
	CallbackURL string `json:"callbackUrl"`
}

type MoneriumIntegrationParams struct {
	Signature string          `json:"signature" binding:"required"`
	Accounts  json.RawMessage `json:"accounts"`
}

type TransactionsQuery struct {
	CardID    string `form:"cardId"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	Type      string `form:"type"`
	Page      int    `form:"page" binding:"omitempty,min=1"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

func (q TransactionsQuery) ToQuery() gnosispay.TransactionsQuery {
	return gnosispay.TransactionsQuery(q)
}

type DisputeParams struct {
	Reason      string `json:"reason" binding:"required"`
	Description string `json:"description"`
}

type CreateWebhookParams struct {
	URL         string   `json:"url" binding:"required,url"`
	Events      []string `json:"events" binding:"required,dive,required"`
	Description string   `json:"description"`
}

type UpdateWebhookParams struct {
	URL         string   `json:"url" binding:"omitempty,url"`
	Events      []string `json:"events" binding:"omitempty,dive,required"`
	Description string   `json:"description"`
	IsActive    *bool    `json:"isActive"`
}

type WebhookSubscriptionParams struct {
	URL       string   `json:"url" binding:"required,url"`
	Signature string   `json:"signature" binding:"required"`
	Events    []string `json:"events" binding:"required"`
}

type AcceptRewardsTermsParams struct {
	Version  string `json:"version" binding:"required"`
	Accepted *bool  `json:"accepted" binding:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type AccessTokenResponse struct {
	Token string `json:"token"`
}

type KYCStatusResponse struct {
	KYCStatus gnosispay.KYCStatus `json:"kycStatus"`
}
