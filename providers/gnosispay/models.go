package gnosispay

import "encoding/json"

type KYCStatus string

const (
	KYCNotStarted            KYCStatus = "notStarted"
	KYCDocumentsRequested    KYCStatus = "documentsRequested"
	KYCPending               KYCStatus = "pending"
	KYCProcessing            KYCStatus = "processing"
	KYCApproved              KYCStatus = "approved"
	KYCResubmissionRequested KYCStatus = "resubmissionRequested"
	KYCRejected              KYCStatus = "rejected"
	KYCRequiresAction        KYCStatus = "requiresAction"
)

type CardOrderStatus string

const (
	OrderPendingTransaction   CardOrderStatus = "PENDINGTRANSACTION"
	OrderTransactionComplete  CardOrderStatus = "TRANSACTIONCOMPLETE"
	OrderConfirmationRequired CardOrderStatus = "CONFIRMATIONREQUIRED"
	OrderReady                CardOrderStatus = "READY"
	OrderCardCreated          CardOrderStatus = "CARDCREATED"
	OrderFailedTransaction    CardOrderStatus = "FAILEDTRANSACTION"
	OrderCancelled            CardOrderStatus = "CANCELLED"
)

type TransactionStatus string

const (
	TxUnsubmitted  TransactionStatus = "Unsubmitted"
	TxUnconfirmed  TransactionStatus = "Unconfirmed"
	TxExecReverted TransactionStatus = "ExecReverted"
	TxExecSuccess  TransactionStatus = "ExecSuccess"
)

type PaymentStatus string

const (
	PaymentApproved                   PaymentStatus = "Approved"
	PaymentIncorrectPin               PaymentStatus = "IncorrectPin"
	PaymentInsufficientFunds          PaymentStatus = "InsufficientFunds"
	PaymentExceedsApprovalAmountLimit PaymentStatus = "ExceedsApprovalAmountLimit"
	PaymentInvalidAmount              PaymentStatus = "InvalidAmount"
	PaymentPinEntryTriesExceeded      PaymentStatus = "PinEntryTriesExceeded"
	PaymentIncorrectSecurityCode      PaymentStatus = "IncorrectSecurityCode"
	PaymentReversal                   PaymentStatus = "Reversal"
	PaymentPartialReversal            PaymentStatus = "PartialReversal"
	PaymentOther                      PaymentStatus = "Other"
)

// AccountIntegrityStatus is reported by upstream in the Safe config.
type AccountIntegrityStatus int

const (
	AccountOK AccountIntegrityStatus = iota
	AccountSafeNotDeployed
	AccountSafeMisconfigured
	AccountRolesNotDeployed
	AccountRolesMisconfigured
	AccountDelayNotDeployed
	AccountDelayMisconfigured
	AccountDelayQueueNotEmpty
	AccountUnexpectedError
)

type DelayTransactionStatus string

const (
	DelayQueuing   DelayTransactionStatus = "QUEUING"
	DelayWaiting   DelayTransactionStatus = "WAITING"
	DelayExecuting DelayTransactionStatus = "EXECUTING"
	DelayExecuted  DelayTransactionStatus = "EXECUTED"
	DelayFailed    DelayTransactionStatus = "FAILED"
)

type OperationType string

const (
	OperationCall         OperationType = "CALL"
	OperationDelegateCall OperationType = "DELEGATECALL"
)

type UserStatus string

const (
	UserActive      UserStatus = "ACTIVE"
	UserDeactivated UserStatus = "DEACTIVATED"
)

// EventKind discriminates the Event union.
type EventKind string

const (
	EventPayment  EventKind = "Payment"
	EventRefund   EventKind = "Refund"
	EventReversal EventKind = "Reversal"
)

type EOAAccount struct {
	ID        string `json:"id"`
	Address   string `json:"address"`
	UserID    string `json:"userId"`
	CreatedAt string `json:"createdAt"`
}

type SafeAccount struct {
	Address     string `json:"address"`
	ChainID     string `json:"chainId,omitempty"`
	TokenSymbol string `json:"tokenSymbol,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

type Card struct {
	ID             string  `json:"id"`
	CardToken      string  `json:"cardToken,omitempty"`
	LastFourDigits string  `json:"lastFourDigits"`
	ActivatedAt    *string `json:"activatedAt,omitempty"`
	Virtual        bool    `json:"virtual"`
}

type CardOrder struct {
	ID                    string          `json:"id"`
	TransactionHash       string          `json:"transactionHash,omitempty"`
	CreatedAt             string          `json:"createdAt"`
	Status                CardOrderStatus `json:"status"`
	PersonalizationSource string          `json:"personalizationSource"`
	EmbossedName          string          `json:"embossedName,omitempty"`
	Address1              string          `json:"address1,omitempty"`
	Address2              string          `json:"address2,omitempty"`
	City                  string          `json:"city,omitempty"`
	Country               string          `json:"country,omitempty"`
	PostalCode            string          `json:"postalCode,omitempty"`
	State                 string          `json:"state,omitempty"`
	CouponCode            string          `json:"couponCode,omitempty"`
	TotalAmountEUR        *float64        `json:"totalAmountEUR,omitempty"`
	TotalDiscountEUR      float64         `json:"totalDiscountEUR"`
	Virtual               *bool           `json:"virtual,omitempty"`
}

type AccountAllowance struct {
	Balance    string `json:"balance"`
	Refill     string `json:"refill"`
	Period     string `json:"period"`
	NextRefill string `json:"nextRefill,omitempty"`
}

type SafeConfig struct {
	HasNoApprovals   bool                    `json:"hasNoApprovals"`
	IsDeployed       bool                    `json:"isDeployed"`
	Address          string                  `json:"address,omitempty"`
	TokenSymbol      string                  `json:"tokenSymbol,omitempty"`
	FiatSymbol       string                  `json:"fiatSymbol,omitempty"`
	AccountStatus    *AccountIntegrityStatus `json:"accountStatus,omitempty"`
	AccountAllowance *AccountAllowance       `json:"accountAllowance,omitempty"`
}

type DelayTransaction struct {
	ID              string                 `json:"id"`
	SafeAddress     string                 `json:"safeAddress"`
	TransactionData string                 `json:"transactionData"`
	EnqueueTaskID   string                 `json:"enqueueTaskId"`
	DispatchTaskID  string                 `json:"dispatchTaskId,omitempty"`
	ReadyAt         string                 `json:"readyAt,omitempty"`
	OperationType   OperationType          `json:"operationType"`
	UserID          string                 `json:"userId"`
	Status          DelayTransactionStatus `json:"status"`
	CreatedAt       string                 `json:"createdAt"`
}

type BankingDetails struct {
	ID                 string `json:"id"`
	Address            string `json:"address"`
	MoneriumIban       string `json:"moneriumIban"`
	MoneriumBic        string `json:"moneriumBic"`
	MoneriumIbanStatus string `json:"moneriumIbanStatus"`
	UserID             string `json:"userId"`
	CreatedAt          string `json:"createdAt"`
	UpdatedAt          string `json:"updatedAt"`
}

type AvailableFeatures struct {
	MoneriumIban bool `json:"moneriumIban"`
}

type User struct {
	ID                      string             `json:"id"`
	Email                   string             `json:"email,omitempty"`
	Phone                   string             `json:"phone,omitempty"`
	FirstName               string             `json:"firstName,omitempty"`
	LastName                string             `json:"lastName,omitempty"`
	Address1                string             `json:"address1,omitempty"`
	Address2                string             `json:"address2,omitempty"`
	City                    string             `json:"city,omitempty"`
	PostalCode              string             `json:"postalCode,omitempty"`
	State                   string             `json:"state,omitempty"`
	Country                 string             `json:"country,omitempty"`
	NationalityCountry      string             `json:"nationalityCountry,omitempty"`
	SignInWallets           []EOAAccount       `json:"signInWallets"`
	SafeWallets             []SafeAccount      `json:"safeWallets"`
	KYCStatus               KYCStatus          `json:"kycStatus"`
	AvailableFeatures       *AvailableFeatures `json:"availableFeatures,omitempty"`
	Cards                   []Card             `json:"cards"`
	BankingDetails          *BankingDetails    `json:"bankingDetails,omitempty"`
	IsSourceOfFundsAnswered bool               `json:"isSourceOfFundsAnswered"`
	IsPhoneValidated        bool               `json:"isPhoneValidated"`
	PartnerID               string             `json:"partnerId,omitempty"`
	Status                  UserStatus         `json:"status"`
}

type Currency struct {
	Symbol   string `json:"symbol"`
	Code     string `json:"code"`
	Decimals int    `json:"decimals"`
	Name     string `json:"name"`
}

type Country struct {
	Name    string `json:"name"`
	Numeric string `json:"numeric"`
	Alpha2  string `json:"alpha2"`
	Alpha3  string `json:"alpha3"`
}

// OnchainTransaction is one Safe transaction backing a card event.
type OnchainTransaction struct {
	Status TransactionStatus `json:"status"`
	To     string            `json:"to"`
	Value  string            `json:"value"`
	Data   string            `json:"data"`
	Hash   string            `json:"hash,omitempty"`
}

type Merchant struct {
	Name    string  `json:"name"`
	City    string  `json:"city"`
	Country Country `json:"country"`
}

// Event is a card payment, refund or reversal. Kind selects which of the
// trailing fields are populated.
type Event struct {
	Kind                EventKind            `json:"kind"`
	ThreadID            string               `json:"threadId"`
	CreatedAt           string               `json:"createdAt"`
	ClearedAt           string               `json:"clearedAt,omitempty"`
	Country             Country              `json:"country"`
	IsPending           bool                 `json:"isPending"`
	ImpactsCashback     *bool                `json:"impactsCashback,omitempty"`
	MCC                 string               `json:"mcc"`
	Merchant            Merchant             `json:"merchant"`
	BillingAmount       string               `json:"billingAmount"`
	BillingCurrency     Currency             `json:"billingCurrency"`
	TransactionAmount   string               `json:"transactionAmount"`
	TransactionCurrency Currency             `json:"transactionCurrency"`
	TransactionType     string               `json:"transactionType"`
	CardToken           string               `json:"cardToken"`
	Transactions        []OnchainTransaction `json:"transactions"`

	Status           PaymentStatus `json:"status,omitempty"`
	RefundAmount     string        `json:"refundAmount,omitempty"`
	RefundCurrency   *Currency     `json:"refundCurrency,omitempty"`
	ReversalAmount   string        `json:"reversalAmount,omitempty"`
	ReversalCurrency *Currency     `json:"reversalCurrency,omitempty"`
}

type KycQuestion struct {
	Question string   `json:"question"`
	Answers  []string `json:"answers"`
}

type KycAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type IbanIdentifier struct {
	Standard string `json:"standard"`
	Iban     string `json:"iban,omitempty"`
	Address  string `json:"address,omitempty"`
	Chain    string `json:"chain,omitempty"`
}

type IbanCounterpart struct {
	Details struct {
		Name string `json:"name,omitempty"`
	} `json:"details"`
	Identifier IbanIdentifier `json:"identifier"`
}

type IbanOrder struct {
	ID          string          `json:"id"`
	Kind        string          `json:"kind"`
	Currency    string          `json:"currency"`
	Amount      string          `json:"amount"`
	Address     string          `json:"address"`
	Counterpart IbanCounterpart `json:"counterpart"`
	Memo        string          `json:"memo,omitempty"`
	State       string          `json:"state"`
	Meta        struct {
		PlacedAt string `json:"placedAt"`
	} `json:"meta"`
}

// Requests

type ChallengeRequest struct {
	Message      string `json:"message"`
	Signature    string `json:"signature"`
	TTLInSeconds *int   `json:"ttlInSeconds,omitempty"`
}

type SignupRequest struct {
	AuthEmail          string `json:"authEmail"`
	OTP                string `json:"otp,omitempty"`
	ReferralCouponCode string `json:"referralCouponCode,omitempty"`
	MarketingCampaign  string `json:"marketingCampaign,omitempty"`
	PartnerID          string `json:"partnerId,omitempty"`
}

type UpdateUserRequest struct {
	FirstName  *string `json:"firstName,omitempty"`
	LastName   *string `json:"lastName,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Address1   *string `json:"address1,omitempty"`
	Address2   *string `json:"address2,omitempty"`
	City       *string `json:"city,omitempty"`
	PostalCode *string `json:"postalCode,omitempty"`
	State      *string `json:"state,omitempty"`
	Country    *string `json:"country,omitempty"`
}

type TermsRequest struct {
	Type    string `json:"type"`
	Version string `json:"version"`
}

type SetDailyLimitRequest struct {
	NewLimit  string `json:"newLimit"`
	Signature string `json:"signature"`
}

type WithdrawRequest struct {
	TokenAddress string `json:"tokenAddress"`
	To           string `json:"to"`
	Amount       string `json:"amount"`
	Signature    string `json:"signature"`
}

type WithdrawQuery struct {
	TokenAddress string
	To           string
	Amount       string
}

type AddEOAAccountRequest struct {
	Address   string `json:"address"`
	Message   string `json:"message,omitempty"`
	Signature string `json:"signature,omitempty"`
}

type SafeTransactionRequest struct {
	To    string `json:"to"`
	Value string `json:"value"`
	Data  string `json:"data,omitempty"`
}

type AddOwnerRequest struct {
	NewOwner  string `json:"newOwner"`
	Signature string `json:"signature"`
}

type RemoveOwnerRequest struct {
	OwnerToRemove string `json:"ownerToRemove"`
	Signature     string `json:"signature"`
}

// CardTransactionsQuery holds the optional filters of the card transactions listing.
type CardTransactionsQuery struct {
	CardTokens          []string
	Limit               int
	Offset              int
	Before              string
	After               string
	BillingCurrency     string
	TransactionCurrency string
	MCC                 string
	TransactionType     string
}

type PhysicalCardOrderRequest struct {
	PersonalizationSource string `json:"personalizationSource"`
	EmbossedName          string `json:"embossedName,omitempty"`
	Address1              string `json:"address1"`
	Address2              string `json:"address2,omitempty"`
	City                  string `json:"city"`
	Country               string `json:"country"`
	PostalCode            string `json:"postalCode"`
	State                 string `json:"state,omitempty"`
	CouponCode            string `json:"couponCode,omitempty"`
}

type TransactionsQuery struct {
	CardID    string
	StartDate string
	EndDate   string
	Type      string
	Page      int
	Limit     int
}

type DisputeRequest struct {
	Reason      string `json:"reason"`
	Description string `json:"description,omitempty"`
}

type WebhookRequest struct {
	URL         string   `json:"url,omitempty"`
	Events      []string `json:"events,omitempty"`
	Description string   `json:"description,omitempty"`
	IsActive    *bool    `json:"isActive,omitempty"`
}

type WebhookSubscription struct {
	URL       string   `json:"url"`
	Signature string   `json:"signature"`
	Events    []string `json:"events"`
}

type MoneriumIntegrationRequest struct {
	Signature string          `json:"signature"`
	Accounts  json.RawMessage `json:"accounts,omitempty"`
}

// Responses

type ChallengeResponse struct {
	Token string `json:"token"`
}

type SignupResponse struct {
	ID          string `json:"id"`
	Token       string `json:"token"`
	HasSignedUp bool   `json:"hasSignedUp"`
}

type AccountBalanceResponse struct {
	Total     string `json:"total"`
	Spendable string `json:"spendable"`
	Pending   string `json:"pending"`
}

type CreateSafeResponse struct {
	ID              string `json:"id"`
	Address         string `json:"address"`
	UserID          string `json:"userId"`
	ChainID         string `json:"chainId"`
	Salt            string `json:"salt"`
	CreatedAt       string `json:"createdAt"`
	Deployed        bool   `json:"deployed"`
	TransactionHash string `json:"transactionHash,omitempty"`
}

type SignaturePayloadResponse struct {
	Domain      map[string]interface{} `json:"domain"`
	PrimaryType string                 `json:"primaryType"`
	Types       map[string]interface{} `json:"types"`
	Message     map[string]interface{} `json:"message"`
}

type DeploySafeModulesResponse struct {
	TransactionHash string `json:"transactionHash"`
	Deployed        bool   `json:"deployed"`
}

type AccessTokenResponse struct {
	Token string `json:"token"`
}

type MoneriumIntegrationResponse struct {
	Data struct {
		Success           bool            `json:"success"`
		Status            int             `json:"status"`
		Description       string          `json:"description"`
		ResponseData      json.RawMessage `json:"responseData,omitempty"`
		MoneriumProfileID string          `json:"moneriumProfileId,omitempty"`
		Iban              string          `json:"iban,omitempty"`
		Bic               string          `json:"bic,omitempty"`
		ResponseHeaders   json.RawMessage `json:"responseHeaders,omitempty"`
	} `json:"data"`
}
