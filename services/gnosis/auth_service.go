package gnosis

import (
	"context"
	"strings"
	"time"

	"github.com/Portalfi/Portalfi-Backend/providers/gnosispay"
	"github.com/Portalfi/Portalfi-Backend/services/monitoring/logging"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/sirupsen/logrus"
)

type authClient interface {
	GenerateNonce(ctx context.Context) (string, error)
	VerifyChallenge(ctx context.Context, req gnosispay.ChallengeRequest) (*gnosispay.ChallengeResponse, error)
	Signup(ctx context.Context, token string, req gnosispay.SignupRequest) (*gnosispay.SignupResponse, error)
}

type AuthService struct {
	client authClient
	logger *logging.Logger
	now    func() time.Time
}

func NewAuthService(client authClient, logger *logging.Logger) *AuthService {
	return &AuthService{
		client: client,
		logger: logger,
		now:    time.Now,
	}
}

// AuthenticateWithSIWE runs the full nonce, sign and challenge exchange with a
// locally held key and returns the upstream bearer token. It is meant for
// automation and tooling; browser clients sign with their own wallet.
//
// address is optional. When set it must match the key.
func (s *AuthService) AuthenticateWithSIWE(ctx context.Context, privateKeyHex, address, domain string) (string, error) {
	key, err := ParsePrivateKey(privateKeyHex)
	if err != nil {
		return "", err
	}
	signer := crypto.PubkeyToAddress(key.PublicKey)
	if address != "" && !strings.EqualFold(common.HexToAddress(address).Hex(), signer.Hex()) {
		return "", ErrAddressMismatch
	}

	nonce, err := s.client.GenerateNonce(ctx)
	if err != nil {
		return "", err
	}

	message := NewSIWEMessage(domain, signer, strings.TrimSpace(nonce), s.now()).String()
	signature, err := SignPersonalMessage(key, message)
	if err != nil {
		return "", err
	}

	resp, err := s.client.VerifyChallenge(ctx, gnosispay.ChallengeRequest{
		Message:   message,
		Signature: signature,
	})
	if err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", ErrEmptyToken
	}

	s.logger.WithFields(logrus.Fields{
		"address": signer.Hex(),
		"domain":  domain,
	}).Info("SIWE authentication completed")

	return resp.Token, nil
}

func (s *AuthService) SignupUser(ctx context.Context, token string, req gnosispay.SignupRequest) (*gnosispay.SignupResponse, error) {
	return s.client.Signup(ctx, token, req)
}
