package gnosis

import (
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

// well-known hardhat account #0
const testKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
const testAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"

func TestSIWEMessageLayout(t *testing.T) {
	key, err := ParsePrivateKey(testKey)
	require.NoError(t, err)

	issued := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	msg := NewSIWEMessage("app.portalfi.com", crypto.PubkeyToAddress(key.PublicKey), "n0nce", issued).String()

	lines := strings.Split(msg, "\n")
	require.Equal(t, "app.portalfi.com wants you to sign in with your Ethereum account:", lines[0])
	require.Equal(t, testAddress, lines[1])
	require.Equal(t, "", lines[2])
	require.Equal(t, "Sign in with Ethereum to GnosisPay", lines[3])
	require.Equal(t, "", lines[4])
	require.Equal(t, "URI: https://app.portalfi.com", lines[5])
	require.Equal(t, "Version: 1", lines[6])
	require.Equal(t, "Chain ID: 100", lines[7])
	require.Equal(t, "Nonce: n0nce", lines[8])
	require.Equal(t, "Issued At: 2024-05-01T12:00:00.000Z", lines[9])
}

func TestSignAndRecover(t *testing.T) {
	key, err := ParsePrivateKey(strings.TrimPrefix(testKey, "0x"))
	require.NoError(t, err)

	sig, err := SignPersonalMessage(key, "hello")
	require.NoError(t, err)
	require.Len(t, sig, 2+65*2)
	require.True(t, strings.HasSuffix(sig, "1b") || strings.HasSuffix(sig, "1c"))

	signer, err := RecoverSigner("hello", sig)
	require.NoError(t, err)
	require.Equal(t, testAddress, signer.Hex())
}

func TestParsePrivateKeyRejectsGarbage(t *testing.T) {
	_, err := ParsePrivateKey("not-a-key")
	require.ErrorIs(t, err, ErrInvalidPrivateKey)
}
