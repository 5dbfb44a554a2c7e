package domain

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gagliardetto/solana-go"
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// RequiredFunds is the amount of a token the universal account must make
// available on the destination chain, from whichever chains hold it.
type RequiredFunds struct {
	Token  TokenType
	Amount decimal.Decimal
}

func ParseRequiredFunds(token string, amount string) (RequiredFunds, error) {
	tokenType, err := ParseTokenType(token)
	if err != nil {
		return RequiredFunds{}, err
	}
	value, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return RequiredFunds{}, NewError(KindValidation, "", fmt.Sprintf("amount %q is not a decimal number", amount), err)
	}
	funds := RequiredFunds{Token: tokenType, Amount: value}
	if err := funds.Validate(); err != nil {
		return RequiredFunds{}, err
	}
	return funds, nil
}

func (f RequiredFunds) Validate() error {
	if !f.Token.Valid() {
		return Errorf(KindValidation, "unsupported token type %q", f.Token)
	}
	if !f.Amount.IsPositive() {
		return Errorf(KindValidation, "required %s amount must be positive, got %s", f.Token, f.Amount.String())
	}
	return nil
}

// CallStep is one raw contract call; Data is already ABI-encoded by the caller.
type CallStep struct {
	To    string
	Data  hexutil.Bytes
	Value *uint256.Int
}

type TransactionIntent struct {
	Chain ChainID
	Steps []CallStep
	Funds RequiredFunds
}

// NewTransactionIntent copies steps so later changes by the caller do not leak
// into the intent.
func NewTransactionIntent(chain ChainID, funds RequiredFunds, steps ...CallStep) TransactionIntent {
	copied := make([]CallStep, len(steps))
	for i, step := range steps {
		copied[i] = CallStep{To: step.To, Data: append(hexutil.Bytes(nil), step.Data...)}
		if step.Value != nil {
			copied[i].Value = new(uint256.Int).Set(step.Value)
		}
	}
	return TransactionIntent{Chain: chain, Steps: copied, Funds: funds}
}

func (i TransactionIntent) Validate() error {
	chain, ok := i.Chain.Chain()
	if !ok {
		return NewError(KindValidation, CodeUnsupportedChain, fmt.Sprintf("unsupported destination chain %d", uint64(i.Chain)), nil)
	}
	if len(i.Steps) == 0 {
		return Errorf(KindValidation, "transaction intent has no call steps")
	}
	for n, step := range i.Steps {
		if err := validateStepTarget(chain.Family, step.To); err != nil {
			return NewError(KindValidation, "", fmt.Sprintf("call step %d", n), err)
		}
	}
	return i.Funds.Validate()
}

func validateStepTarget(family ChainFamily, to string) error {
	to = strings.TrimSpace(to)
	if to == "" {
		return Errorf(KindValidation, "destination address is empty")
	}
	switch family {
	case ChainFamilyEVM:
		if !common.IsHexAddress(to) {
			return Errorf(KindValidation, "destination %q is not an evm address", to)
		}
	case ChainFamilySolana:
		if _, err := solana.PublicKeyFromBase58(to); err != nil {
			return NewError(KindValidation, "", fmt.Sprintf("destination %q is not a solana address", to), err)
		}
	}
	return nil
}

// Fingerprint is a keccak digest over the canonical encoding of the intent.
// Intents that differ in chain, any step target, calldata, value or funds
// produce different fingerprints.
func (i TransactionIntent) Fingerprint() common.Hash {
	var buf []byte
	buf = binary.BigEndian.AppendUint64(buf, uint64(i.Chain))
	buf = appendField(buf, []byte(i.Funds.Token))
	buf = appendField(buf, []byte(i.Funds.Amount.String()))
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(i.Steps)))
	for _, step := range i.Steps {
		buf = appendField(buf, []byte(canonicalTarget(step.To)))
		buf = appendField(buf, step.Data)
		value := step.Value
		if value == nil {
			value = new(uint256.Int)
		}
		word := value.Bytes32()
		buf = append(buf, word[:]...)
	}
	return crypto.Keccak256Hash(buf)
}

func canonicalTarget(to string) string {
	to = strings.TrimSpace(to)
	if common.IsHexAddress(to) {
		return common.HexToAddress(to).Hex()
	}
	return to
}

func appendField(buf []byte, field []byte) []byte {
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(field)))
	return append(buf, field...)
}
