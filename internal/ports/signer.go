package ports

import (
	"context"

	"github.com/bnema/universal-accounts-cli/internal/domain"
)

// Signer signs raw message bytes with the key controlling owner.
type Signer interface {
	SignMessage(ctx context.Context, owner domain.OwnerIdentity, raw []byte) ([]byte, error)
}

type SignerFunc func(ctx context.Context, owner domain.OwnerIdentity, raw []byte) ([]byte, error)

func (f SignerFunc) SignMessage(ctx context.Context, owner domain.OwnerIdentity, raw []byte) ([]byte, error) {
	return f(ctx, owner, raw)
}
