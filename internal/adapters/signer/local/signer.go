package local

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/universal-accounts-cli/internal/domain"
	"github.com/bnema/universal-accounts-cli/internal/ports"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

const signatureLength = 65

var ErrOwnerMismatch = errors.New("signer key does not control owner address")

// Signer signs raw messages the way wallets do for personal_sign with a raw
// payload: keccak256("\x19Ethereum Signed Message:\n" + len + raw).
type Signer struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

var _ ports.Signer = (*Signer)(nil)

func NewSigner(key *ecdsa.PrivateKey) *Signer {
	return &Signer{key: key, address: crypto.PubkeyToAddress(key.PublicKey)}
}

// NewSignerFromHex parses a hex private key, with or without 0x prefix.
func NewSignerFromHex(hexKey string) (*Signer, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(hexKey), "0x")
	key, err := crypto.HexToECDSA(trimmed)
	if err != nil {
		return nil, domain.NewError(domain.KindConfiguration, "", "parse owner private key", err)
	}
	return NewSigner(key), nil
}

func (s *Signer) Address() common.Address {
	return s.address
}

func (s *Signer) Owner() domain.OwnerIdentity {
	return domain.OwnerFromEVM(s.address)
}

func (s *Signer) SignMessage(ctx context.Context, owner domain.OwnerIdentity, raw []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	address, ok := owner.EVMAddress()
	if !ok || address != s.address {
		return nil, fmt.Errorf("%w: %s", ErrOwnerMismatch, owner)
	}

	signature, err := crypto.Sign(accounts.TextHash(raw), s.key)
	if err != nil {
		return nil, fmt.Errorf("sign message: %w", err)
	}
	signature[crypto.RecoveryIDOffset] += 27

	return signature, nil
}

// RecoverAddress returns the address whose key produced signature over raw.
func RecoverAddress(raw []byte, signature []byte) (common.Address, error) {
	if len(signature) != signatureLength {
		return common.Address{}, fmt.Errorf("signature must be %d bytes, got %d", signatureLength, len(signature))
	}

	sig := make([]byte, signatureLength)
	copy(sig, signature)
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(accounts.TextHash(raw), sig)
	if err != nil {
		return common.Address{}, fmt.Errorf("recover public key: %w", err)
	}

	return crypto.PubkeyToAddress(*pub), nil
}
