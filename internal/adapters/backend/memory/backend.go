// Package memory is an in-process universal-account backend. It derives
// addresses deterministically, plans funding greedily from recorded balances
// and verifies submitted signatures against the owner, which makes it usable
// offline and in tests.
package memory

import (
	"context"
	"encoding/binary"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/bnema/universal-accounts-cli/internal/adapters/signer/local"
	"github.com/bnema/universal-accounts-cli/internal/domain"
	"github.com/bnema/universal-accounts-cli/internal/ports"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gagliardetto/solana-go"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultPlanTTL = 2 * time.Minute

type plan struct {
	owner     domain.OwnerIdentity
	projectID string
	expiresAt time.Time
	funding   []domain.FundingLeg
}

type Backend struct {
	clock   ports.Clock
	planTTL time.Duration

	mu          sync.Mutex
	balances    map[string][]domain.AssetRecord
	seed        []domain.AssetRecord
	unreachable map[domain.ChainID]struct{}
	plans       map[common.Hash]plan
	builds      uint64
	sent        map[string]common.Hash
}

var _ ports.Backend = (*Backend)(nil)

func New(clock ports.Clock) *Backend {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Backend{
		clock:       clock,
		planTTL:     defaultPlanTTL,
		balances:    map[string][]domain.AssetRecord{},
		unreachable: map[domain.ChainID]struct{}{},
		plans:       map[common.Hash]plan{},
		sent:        map[string]common.Hash{},
	}
}

func (b *Backend) SetPlanTTL(ttl time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.planTTL = ttl
}

// Seed sets balances every owner starts with on first use.
func (b *Backend) Seed(records []domain.AssetRecord) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.seed = append([]domain.AssetRecord(nil), records...)
}

func (b *Backend) balancesLocked(owner domain.OwnerIdentity) []domain.AssetRecord {
	key := owner.String()
	records, ok := b.balances[key]
	if !ok {
		records = append([]domain.AssetRecord(nil), b.seed...)
		b.balances[key] = records
	}
	return records
}

// Credit adds a balance for owner. Amounts and USD values are decimal strings.
func (b *Backend) Credit(owner domain.OwnerIdentity, chain domain.ChainID, token domain.TokenType, amount, amountInUSD string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	record := domain.AssetRecord{
		Chain:       chain,
		Token:       token,
		Amount:      decimal.RequireFromString(amount),
		AmountInUSD: decimal.RequireFromString(amountInUSD),
	}
	records := b.balancesLocked(owner)
	for i, existing := range records {
		if existing.Chain == chain && existing.Token == token {
			records[i].Amount = existing.Amount.Add(record.Amount)
			records[i].AmountInUSD = existing.AmountInUSD.Add(record.AmountInUSD)
			return
		}
	}
	b.balances[owner.String()] = append(records, record)
}

// SetUnreachable marks chain as failing in asset queries.
func (b *Backend) SetUnreachable(chain domain.ChainID, unreachable bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if unreachable {
		b.unreachable[chain] = struct{}{}
		return
	}
	delete(b.unreachable, chain)
}

// Sent returns the root hash accepted under transactionID.
func (b *Backend) Sent(transactionID string) (common.Hash, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	hash, ok := b.sent[transactionID]
	return hash, ok
}

func (b *Backend) DeriveSmartAccounts(ctx context.Context, credentials domain.Credentials, owner domain.OwnerIdentity) (domain.SmartAccounts, error) {
	if err := ctx.Err(); err != nil {
		return domain.SmartAccounts{}, err
	}
	if err := credentials.Validate(); err != nil {
		return domain.SmartAccounts{}, err
	}

	evm := crypto.Keccak256([]byte("evm"), []byte(credentials.ProjectID), []byte(credentials.AppUUID), []byte(owner.String()))
	sol := crypto.Keccak256([]byte("solana"), []byte(credentials.ProjectID), []byte(credentials.AppUUID), []byte(owner.String()))

	return domain.SmartAccounts{
		EVM:    common.BytesToAddress(evm[12:]),
		Solana: solana.PublicKeyFromBytes(sol),
	}, nil
}

func (b *Backend) PrimaryAssets(ctx context.Context, credentials domain.Credentials, owner domain.OwnerIdentity, _ domain.SmartAccounts) (ports.AssetReport, error) {
	if err := ctx.Err(); err != nil {
		return ports.AssetReport{}, err
	}
	if err := credentials.Validate(); err != nil {
		return ports.AssetReport{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	report := ports.AssetReport{Records: append([]domain.AssetRecord(nil), b.balancesLocked(owner)...)}
	for chain := range b.unreachable {
		report.UnreachableChains = append(report.UnreachableChains, chain)
	}
	sort.Slice(report.UnreachableChains, func(i, j int) bool { return report.UnreachableChains[i] < report.UnreachableChains[j] })

	return report, nil
}

func (b *Backend) CreateUniversalTransaction(ctx context.Context, credentials domain.Credentials, owner domain.OwnerIdentity, intent domain.TransactionIntent) (ports.BuiltTransaction, error) {
	if err := ctx.Err(); err != nil {
		return ports.BuiltTransaction{}, err
	}
	if err := credentials.Validate(); err != nil {
		return ports.BuiltTransaction{}, err
	}
	if err := intent.Validate(); err != nil {
		return ports.BuiltTransaction{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	funding, err := b.planFundingLocked(owner, intent)
	if err != nil {
		return ports.BuiltTransaction{}, err
	}

	b.builds++
	root := rootHash(intent, funding, b.builds)
	expiresAt := b.clock.Now().Add(b.planTTL)
	b.plans[root] = plan{owner: owner, projectID: credentials.ProjectID, expiresAt: expiresAt, funding: funding}

	return ports.BuiltTransaction{
		BuildID:   fmt.Sprintf("build-%d", b.builds),
		RootHash:  root,
		Funding:   funding,
		ExpiresAt: expiresAt,
	}, nil
}

// planFundingLocked takes the required amount from the destination chain
// first, then from the other chains in chain id order.
func (b *Backend) planFundingLocked(owner domain.OwnerIdentity, intent domain.TransactionIntent) ([]domain.FundingLeg, error) {
	var sources []domain.AssetRecord
	for _, record := range b.balancesLocked(owner) {
		if record.Token == intent.Funds.Token && record.Amount.IsPositive() {
			sources = append(sources, record)
		}
	}
	sort.Slice(sources, func(i, j int) bool {
		iDest, jDest := sources[i].Chain == intent.Chain, sources[j].Chain == intent.Chain
		if iDest != jDest {
			return iDest
		}
		return sources[i].Chain < sources[j].Chain
	})

	remaining := intent.Funds.Amount
	var funding []domain.FundingLeg
	for _, source := range sources {
		if !remaining.IsPositive() {
			break
		}
		take := decimal.Min(remaining, source.Amount)
		funding = append(funding, domain.FundingLeg{FromChain: source.Chain, Token: source.Token, Amount: take})
		remaining = remaining.Sub(take)
	}

	if remaining.IsPositive() {
		return nil, domain.Errorf(domain.KindInsufficientFunds,
			"no funding route for %s %s on %s, short by %s", intent.Funds.Amount.String(), intent.Funds.Token, intent.Chain, remaining.String())
	}

	return funding, nil
}

func (b *Backend) SendTransaction(ctx context.Context, credentials domain.Credentials, root common.Hash, signature []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := credentials.Validate(); err != nil {
		return "", err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	p, ok := b.plans[root]
	if !ok || p.projectID != credentials.ProjectID {
		return "", domain.Errorf(domain.KindRejection, "unknown root hash %s", root.Hex())
	}
	if b.clock.Now().After(p.expiresAt) {
		delete(b.plans, root)
		return "", domain.NewError(domain.KindTransient, domain.CodeExpiredPlan, "funding plan expired, rebuild the transaction", nil)
	}

	signer, err := local.RecoverAddress(root.Bytes(), signature)
	if err != nil {
		return "", domain.NewError(domain.KindRejection, domain.CodeSignatureMismatch, "signature is malformed", err)
	}
	expected, ok := p.owner.EVMAddress()
	if !ok || signer != expected {
		return "", domain.NewError(domain.KindRejection, domain.CodeSignatureMismatch, "signature does not match the root hash and owner", nil)
	}

	delete(b.plans, root)
	if err := b.coveredLocked(p.owner, p.funding); err != nil {
		return "", err
	}
	b.debitLocked(p.owner, p.funding)

	transactionID := uuid.NewString()
	b.sent[transactionID] = root
	return transactionID, nil
}

// coveredLocked reports whether every funding leg still fits the current
// balances. Plans built against the same balance can outrun it.
func (b *Backend) coveredLocked(owner domain.OwnerIdentity, funding []domain.FundingLeg) error {
	records := b.balancesLocked(owner)
	for _, leg := range funding {
		available := decimal.Zero
		for _, record := range records {
			if record.Chain == leg.FromChain && record.Token == leg.Token {
				available = available.Add(record.Amount)
			}
		}
		if available.LessThan(leg.Amount) {
			return domain.NewError(domain.KindTransient, domain.CodeExpiredPlan,
				fmt.Sprintf("funding plan no longer covered on %s (%s %s available), rebuild the transaction", leg.FromChain, available.String(), leg.Token), nil)
		}
	}
	return nil
}

func (b *Backend) debitLocked(owner domain.OwnerIdentity, funding []domain.FundingLeg) {
	records := b.balancesLocked(owner)
	for _, leg := range funding {
		for i := range records {
			if records[i].Chain != leg.FromChain || records[i].Token != leg.Token {
				continue
			}
			price := decimal.Zero
			if records[i].Amount.IsPositive() {
				price = records[i].AmountInUSD.Div(records[i].Amount)
			}
			records[i].Amount = records[i].Amount.Sub(leg.Amount)
			records[i].AmountInUSD = records[i].Amount.Mul(price)
		}
	}
}

func rootHash(intent domain.TransactionIntent, funding []domain.FundingLeg, build uint64) common.Hash {
	fingerprint := intent.Fingerprint()
	buf := append([]byte(nil), fingerprint.Bytes()...)
	for _, leg := range funding {
		buf = binary.BigEndian.AppendUint64(buf, uint64(leg.FromChain))
		buf = append(buf, []byte(leg.Token)...)
		buf = append(buf, []byte(leg.Amount.String())...)
	}
	buf = binary.BigEndian.AppendUint64(buf, build)
	return crypto.Keccak256Hash(buf)
}
