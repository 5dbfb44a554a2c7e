package memory

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/universal-accounts-cli/internal/adapters/signer/local"
	"github.com/bnema/universal-accounts-cli/internal/domain"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

func testCredentials() domain.Credentials {
	return domain.Credentials{ProjectID: "project-1", ClientKey: "client-1", AppUUID: "6f1a8a8e-3c0e-4b53-9a0e-1d2f3b4c5d6e"}
}

func usdcIntent(t *testing.T, amount string) domain.TransactionIntent {
	t.Helper()
	funds, err := domain.ParseRequiredFunds("usdc", amount)
	require.NoError(t, err)
	return domain.NewTransactionIntent(domain.ChainArbitrum, funds, domain.CallStep{
		To:   "0xaf88d065e77c8cC2239327C5EDb3A432268e5831",
		Data: hexutil.MustDecode("0xa9059cbb"),
	})
}

func TestDeriveSmartAccountsIsDeterministic(t *testing.T) {
	t.Parallel()

	backend := New(nil)
	signer, err := local.NewSignerFromHex(testKey)
	require.NoError(t, err)

	first, err := backend.DeriveSmartAccounts(context.Background(), testCredentials(), signer.Owner())
	require.NoError(t, err)
	second, err := New(nil).DeriveSmartAccounts(context.Background(), testCredentials(), signer.Owner())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, first.Complete())
	assert.NotEqual(t, signer.Address(), first.EVM)

	other := testCredentials()
	other.ProjectID = "project-2"
	third, err := backend.DeriveSmartAccounts(context.Background(), other, signer.Owner())
	require.NoError(t, err)
	assert.NotEqual(t, first.EVM, third.EVM)
}

func TestCreateUniversalTransactionPlansAcrossChains(t *testing.T) {
	t.Parallel()

	backend := New(nil)
	signer, err := local.NewSignerFromHex(testKey)
	require.NoError(t, err)
	owner := signer.Owner()
	backend.Credit(owner, domain.ChainBase, domain.TokenUSDC, "3", "3")
	backend.Credit(owner, domain.ChainArbitrum, domain.TokenUSDC, "1", "1")

	built, err := backend.CreateUniversalTransaction(context.Background(), testCredentials(), owner, usdcIntent(t, "2.5"))
	require.NoError(t, err)
	require.Len(t, built.Funding, 2)
	assert.Equal(t, domain.ChainArbitrum, built.Funding[0].FromChain)
	assert.True(t, decimal.RequireFromString("1").Equal(built.Funding[0].Amount))
	assert.Equal(t, domain.ChainBase, built.Funding[1].FromChain)
	assert.True(t, decimal.RequireFromString("1.5").Equal(built.Funding[1].Amount))

	_, err = backend.CreateUniversalTransaction(context.Background(), testCredentials(), owner, usdcIntent(t, "10"))
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
}

func TestSendTransactionVerifiesSignatureAndDebits(t *testing.T) {
	t.Parallel()

	backend := New(nil)
	signer, err := local.NewSignerFromHex(testKey)
	require.NoError(t, err)
	owner := signer.Owner()
	backend.Credit(owner, domain.ChainArbitrum, domain.TokenUSDC, "5", "5")

	built, err := backend.CreateUniversalTransaction(context.Background(), testCredentials(), owner, usdcIntent(t, "1"))
	require.NoError(t, err)
	other, err := backend.CreateUniversalTransaction(context.Background(), testCredentials(), owner, usdcIntent(t, "1"))
	require.NoError(t, err)
	require.NotEqual(t, built.RootHash, other.RootHash)

	wrongSignature, err := signer.SignMessage(context.Background(), owner, other.RootHash.Bytes())
	require.NoError(t, err)
	_, err = backend.SendTransaction(context.Background(), testCredentials(), built.RootHash, wrongSignature)
	assert.ErrorIs(t, err, domain.ErrRejection)

	signature, err := signer.SignMessage(context.Background(), owner, built.RootHash.Bytes())
	require.NoError(t, err)
	transactionID, err := backend.SendTransaction(context.Background(), testCredentials(), built.RootHash, signature)
	require.NoError(t, err)
	assert.NotEmpty(t, transactionID)

	sent, ok := backend.Sent(transactionID)
	require.True(t, ok)
	assert.Equal(t, built.RootHash, sent)

	_, err = backend.SendTransaction(context.Background(), testCredentials(), built.RootHash, signature)
	assert.ErrorIs(t, err, domain.ErrRejection)

	report, err := backend.PrimaryAssets(context.Background(), testCredentials(), owner, domain.SmartAccounts{})
	require.NoError(t, err)
	require.Len(t, report.Records, 1)
	assert.True(t, decimal.RequireFromString("4").Equal(report.Records[0].Amount))
}

func TestSendTransactionExpiredPlanIsTransient(t *testing.T) {
	t.Parallel()

	clock := &fixedClock{now: time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)}
	backend := New(clock)
	signer, err := local.NewSignerFromHex(testKey)
	require.NoError(t, err)
	backend.Credit(signer.Owner(), domain.ChainArbitrum, domain.TokenUSDC, "5", "5")

	built, err := backend.CreateUniversalTransaction(context.Background(), testCredentials(), signer.Owner(), usdcIntent(t, "1"))
	require.NoError(t, err)
	signature, err := signer.SignMessage(context.Background(), signer.Owner(), built.RootHash.Bytes())
	require.NoError(t, err)

	clock.now = clock.now.Add(defaultPlanTTL + time.Second)
	_, err = backend.SendTransaction(context.Background(), testCredentials(), built.RootHash, signature)
	require.Error(t, err)
	assert.True(t, domain.Retryable(err))
}

func TestSendTransactionRefusesPlanNoLongerCovered(t *testing.T) {
	t.Parallel()

	backend := New(nil)
	signer, err := local.NewSignerFromHex(testKey)
	require.NoError(t, err)
	owner := signer.Owner()
	backend.Credit(owner, domain.ChainArbitrum, domain.TokenUSDC, "10", "10")

	first, err := backend.CreateUniversalTransaction(context.Background(), testCredentials(), owner, usdcIntent(t, "10"))
	require.NoError(t, err)
	second, err := backend.CreateUniversalTransaction(context.Background(), testCredentials(), owner, usdcIntent(t, "10"))
	require.NoError(t, err)

	firstSignature, err := signer.SignMessage(context.Background(), owner, first.RootHash.Bytes())
	require.NoError(t, err)
	_, err = backend.SendTransaction(context.Background(), testCredentials(), first.RootHash, firstSignature)
	require.NoError(t, err)

	secondSignature, err := signer.SignMessage(context.Background(), owner, second.RootHash.Bytes())
	require.NoError(t, err)
	_, err = backend.SendTransaction(context.Background(), testCredentials(), second.RootHash, secondSignature)
	require.Error(t, err)
	assert.True(t, domain.Retryable(err))
	var typed *domain.Error
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, domain.CodeExpiredPlan, typed.Code)

	report, err := backend.PrimaryAssets(context.Background(), testCredentials(), owner, domain.SmartAccounts{})
	require.NoError(t, err)
	require.Len(t, report.Records, 1)
	assert.True(t, report.Records[0].Amount.IsZero())

	_, err = backend.CreateUniversalTransaction(context.Background(), testCredentials(), owner, usdcIntent(t, "1"))
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
}

func TestPrimaryAssetsReportsUnreachableChains(t *testing.T) {
	t.Parallel()

	backend := New(nil)
	signer, err := local.NewSignerFromHex(testKey)
	require.NoError(t, err)
	backend.SetUnreachable(domain.ChainPolygon, true)

	report, err := backend.PrimaryAssets(context.Background(), testCredentials(), signer.Owner(), domain.SmartAccounts{})
	require.NoError(t, err)
	assert.Equal(t, []domain.ChainID{domain.ChainPolygon}, report.UnreachableChains)
	assert.Empty(t, report.Records)
}
