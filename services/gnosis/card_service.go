package gnosis

import (
	"context"
	"encoding/json"

	"github.com/Portalfi/Portalfi-Backend/providers/gnosispay"
)

type cardClient interface {
	GetCards(ctx context.Context, token string) ([]gnosispay.Card, error)
	GetCard(ctx context.Context, token, cardID string) (*gnosispay.Card, error)
	CreateVirtualCard(ctx context.Context, token string) (*gnosispay.Card, error)
	ActivateCard(ctx context.Context, token, cardID string) error
	FreezeCard(ctx context.Context, token, cardID string) error
	UnfreezeCard(ctx context.Context, token, cardID string) error
	ReportCardLost(ctx context.Context, token, cardID string) error
	ReportCardStolen(ctx context.Context, token, cardID string) error
	VoidCard(ctx context.Context, token, cardID string) error
	GetCardStatus(ctx context.Context, token, cardID string) (json.RawMessage, error)
	GetCardTransactions(ctx context.Context, token string, params gnosispay.CardTransactionsQuery) (json.RawMessage, error)
}

// CardService forwards card operations to upstream without local state.
type CardService struct {
	client cardClient
}

func NewCardService(client cardClient) *CardService {
	return &CardService{client: client}
}

func (s *CardService) GetCards(ctx context.Context, token string) ([]gnosispay.Card, error) {
	return s.client.GetCards(ctx, token)
}

func (s *CardService) GetCard(ctx context.Context, token, cardID string) (*gnosispay.Card, error) {
	return s.client.GetCard(ctx, token, cardID)
}

func (s *CardService) CreateVirtualCard(ctx context.Context, token string) (*gnosispay.Card, error) {
	return s.client.CreateVirtualCard(ctx, token)
}

func (s *CardService) ActivateCard(ctx context.Context, token, cardID string) error {
	return s.client.ActivateCard(ctx, token, cardID)
}

func (s *CardService) FreezeCard(ctx context.Context, token, cardID string) error {
	return s.client.FreezeCard(ctx, token, cardID)
}

func (s *CardService) UnfreezeCard(ctx context.Context, token, cardID string) error {
	return s.client.UnfreezeCard(ctx, token, cardID)
}

func (s *CardService) ReportCardLost(ctx context.Context, token, cardID string) error {
	return s.client.ReportCardLost(ctx, token, cardID)
}

func (s *CardService) ReportCardStolen(ctx context.Context, token, cardID string) error {
	return s.client.ReportCardStolen(ctx, token, cardID)
}

func (s *CardService) VoidCard(ctx context.Context, token, cardID string) error {
	return s.client.VoidCard(ctx, token, cardID)
}

func (s *CardService) GetCardStatus(ctx context.Context, token, cardID string) (json.RawMessage, error) {
	return s.client.GetCardStatus(ctx, token, cardID)
}

// GetCardTransactions scopes the listing to one card. The other filters are kept.
func (s *CardService) GetCardTransactions(ctx context.Context, token, cardID string, params gnosispay.CardTransactionsQuery) (json.RawMessage, error) {
	params.CardTokens = []string{cardID}
	return s.client.GetCardTransactions(ctx, token, params)
}

func (s *CardService) GetAllCardTransactions(ctx context.Context, token string, params gnosispay.CardTransactionsQuery) (json.RawMessage, error) {
	return s.client.GetCardTransactions(ctx, token, params)
}
