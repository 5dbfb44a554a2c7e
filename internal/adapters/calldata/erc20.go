// Package calldata encodes contract calls for universal transaction steps.
package calldata

import (
	"fmt"
	"strings"

	"github.com/bnema/universal-accounts-cli/internal/domain"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

const erc20TransferABI = `[{"type":"function","name":"transfer","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]}]`

var erc20 = mustParseABI(erc20TransferABI)

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("parse erc20 abi: %v", err))
	}
	return parsed
}

// Token is an ERC-20 deployment of a token type on one chain.
type Token struct {
	Chain    domain.ChainID
	Type     domain.TokenType
	Address  common.Address
	Decimals int32
}

var tokens = []Token{
	{Chain: domain.ChainArbitrum, Type: domain.TokenUSDC, Address: common.HexToAddress("0xaf88d065e77c8cC2239327C5EDb3A432268e5831"), Decimals: 6},
	{Chain: domain.ChainArbitrum, Type: domain.TokenUSDT, Address: common.HexToAddress("0xFd086bC7CD5C481DCC9C85ebE478A1C0b69FCbb9"), Decimals: 6},
	{Chain: domain.ChainEthereum, Type: domain.TokenUSDC, Address: common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"), Decimals: 6},
	{Chain: domain.ChainEthereum, Type: domain.TokenUSDT, Address: common.HexToAddress("0xdAC17F958D2ee523a2206206994597C13D831ec7"), Decimals: 6},
	{Chain: domain.ChainBase, Type: domain.TokenUSDC, Address: common.HexToAddress("0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913"), Decimals: 6},
	{Chain: domain.ChainOptimism, Type: domain.TokenUSDC, Address: common.HexToAddress("0x0b2C639c533813f4Aa9D7837CAf62653d097Ff85"), Decimals: 6},
	{Chain: domain.ChainPolygon, Type: domain.TokenUSDC, Address: common.HexToAddress("0x3c499c542cEF5E3811e1192ce70d8cC03d5c3359"), Decimals: 6},
	{Chain: domain.ChainBNB, Type: domain.TokenUSDC, Address: common.HexToAddress("0x8AC76a51cc950d9822D68b83fE1Ad97B32Cd580d"), Decimals: 18},
	{Chain: domain.ChainBNB, Type: domain.TokenUSDT, Address: common.HexToAddress("0x55d398326f99059fF775485246999027B3197955"), Decimals: 18},
}

func LookupToken(chain domain.ChainID, token domain.TokenType) (Token, error) {
	for _, candidate := range tokens {
		if candidate.Chain == chain && candidate.Type == token {
			return candidate, nil
		}
	}
	return Token{}, domain.Errorf(domain.KindValidation, "no %s token contract known on %s", token, chain)
}

// ToBaseUnits scales a human-readable amount by decimals. Amounts with more
// fractional digits than the token supports are rejected.
func ToBaseUnits(amount decimal.Decimal, decimals int32) (*uint256.Int, error) {
	if amount.IsNegative() {
		return nil, domain.Errorf(domain.KindValidation, "amount %s is negative", amount.String())
	}
	scaled := amount.Shift(decimals)
	if !scaled.IsInteger() {
		return nil, domain.Errorf(domain.KindValidation, "amount %s has more than %d decimals", amount.String(), decimals)
	}
	value, overflow := uint256.FromBig(scaled.BigInt())
	if overflow {
		return nil, domain.Errorf(domain.KindValidation, "amount %s overflows uint256", amount.String())
	}
	return value, nil
}

// EncodeTransfer returns calldata for transfer(to, amount).
func EncodeTransfer(to common.Address, amount *uint256.Int) ([]byte, error) {
	data, err := erc20.Pack("transfer", to, amount.ToBig())
	if err != nil {
		return nil, fmt.Errorf("encode erc20 transfer: %w", err)
	}
	return data, nil
}

// TransferIntent builds the intent that sends amount of token on chain to
// recipient, requiring the same amount to be available there.
func TransferIntent(chain domain.ChainID, token domain.TokenType, recipient string, amount decimal.Decimal) (domain.TransactionIntent, error) {
	if !common.IsHexAddress(recipient) {
		return domain.TransactionIntent{}, domain.Errorf(domain.KindValidation, "recipient %q is not an evm address", recipient)
	}
	funds := domain.RequiredFunds{Token: token, Amount: amount}
	if err := funds.Validate(); err != nil {
		return domain.TransactionIntent{}, err
	}

	contract, err := LookupToken(chain, token)
	if err != nil {
		return domain.TransactionIntent{}, err
	}
	baseUnits, err := ToBaseUnits(amount, contract.Decimals)
	if err != nil {
		return domain.TransactionIntent{}, err
	}
	data, err := EncodeTransfer(common.HexToAddress(recipient), baseUnits)
	if err != nil {
		return domain.TransactionIntent{}, err
	}

	return domain.NewTransactionIntent(chain, funds, domain.CallStep{To: contract.Address.Hex(), Data: data}), nil
}

