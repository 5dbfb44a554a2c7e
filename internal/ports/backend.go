package ports

import (
	"context"
	"time"

	"github.com/bnema/universal-accounts-cli/internal/domain"
	"github.com/ethereum/go-ethereum/common"
)

type AccountDeriver interface {
	DeriveSmartAccounts(ctx context.Context, credentials domain.Credentials, owner domain.OwnerIdentity) (domain.SmartAccounts, error)
}

// AssetReport is the raw aggregation answer. UnreachableChains lists chains
// the backend could not query for this report.
type AssetReport struct {
	Records           []domain.AssetRecord
	UnreachableChains []domain.ChainID
}

type AssetQuerier interface {
	PrimaryAssets(ctx context.Context, credentials domain.Credentials, owner domain.OwnerIdentity, accounts domain.SmartAccounts) (AssetReport, error)
}

type BuiltTransaction struct {
	BuildID   string
	RootHash  common.Hash
	Funding   []domain.FundingLeg
	ExpiresAt time.Time
}

type TransactionRelay interface {
	CreateUniversalTransaction(ctx context.Context, credentials domain.Credentials, owner domain.OwnerIdentity, intent domain.TransactionIntent) (BuiltTransaction, error)
	SendTransaction(ctx context.Context, credentials domain.Credentials, rootHash common.Hash, signature []byte) (string, error)
}

// Backend is the remote universal-account service.
type Backend interface {
	AccountDeriver
	AssetQuerier
	TransactionRelay
}
