package calldata

import (
	"testing"

	"github.com/bnema/universal-accounts-cli/internal/domain"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRecipient = "0xB2c3D4e5F60718293A4b5C6d7E8f901122334455"

func TestEncodeTransferMatchesERC20Layout(t *testing.T) {
	data, err := EncodeTransfer(common.HexToAddress(testRecipient), uint256.NewInt(1_000_000))
	require.NoError(t, err)

	want := "0xa9059cbb" +
		"000000000000000000000000b2c3d4e5f60718293a4b5c6d7e8f901122334455" +
		"00000000000000000000000000000000000000000000000000000000000f4240"
	assert.Equal(t, want, hexutil.Encode(data))
}

func TestToBaseUnits(t *testing.T) {
	value, err := ToBaseUnits(decimal.RequireFromString("12.34"), 6)
	require.NoError(t, err)
	assert.Equal(t, "12340000", value.Dec())

	_, err = ToBaseUnits(decimal.RequireFromString("0.0000001"), 6)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTransferIntentTargetsTokenContract(t *testing.T) {
	intent, err := TransferIntent(domain.ChainArbitrum, domain.TokenUSDC, testRecipient, decimal.RequireFromString("1"))
	require.NoError(t, err)
	require.NoError(t, intent.Validate())

	require.Len(t, intent.Steps, 1)
	assert.Equal(t, "0xaf88d065e77c8cC2239327C5EDb3A432268e5831", intent.Steps[0].To)
	assert.Equal(t, domain.TokenUSDC, intent.Funds.Token)
	assert.True(t, decimal.RequireFromString("1").Equal(intent.Funds.Amount))

	_, err = TransferIntent(domain.ChainSolana, domain.TokenUSDC, testRecipient, decimal.RequireFromString("1"))
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = TransferIntent(domain.ChainArbitrum, domain.TokenUSDC, "0xB2", decimal.RequireFromString("1"))
	assert.ErrorIs(t, err, domain.ErrValidation)
}
