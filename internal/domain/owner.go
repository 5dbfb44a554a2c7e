package domain

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gagliardetto/solana-go"
	"github.com/google/uuid"
)

// OwnerIdentity is the externally-owned address controlling a universal account.
type OwnerIdentity struct {
	family  ChainFamily
	address string
}

// ParseOwnerIdentity accepts a 0x-prefixed EVM address or a base58 Solana public key.
func ParseOwnerIdentity(raw string) (OwnerIdentity, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return OwnerIdentity{}, Errorf(KindConfiguration, "owner address is required")
	}

	if strings.HasPrefix(value, "0x") || strings.HasPrefix(value, "0X") {
		if !common.IsHexAddress(value) {
			return OwnerIdentity{}, Errorf(KindConfiguration, "owner address %q is not a valid evm address", raw)
		}
		return OwnerIdentity{family: ChainFamilyEVM, address: common.HexToAddress(value).Hex()}, nil
	}

	key, err := solana.PublicKeyFromBase58(value)
	if err != nil {
		return OwnerIdentity{}, NewError(KindConfiguration, "", fmt.Sprintf("owner address %q is not a valid evm or solana address", raw), err)
	}
	return OwnerIdentity{family: ChainFamilySolana, address: key.String()}, nil
}

func OwnerFromEVM(address common.Address) OwnerIdentity {
	return OwnerIdentity{family: ChainFamilyEVM, address: address.Hex()}
}

func (o OwnerIdentity) Family() ChainFamily { return o.family }

func (o OwnerIdentity) String() string { return o.address }

func (o OwnerIdentity) IsZero() bool { return o.address == "" }

// EVMAddress returns the owner as an EVM address; ok is false for Solana owners.
func (o OwnerIdentity) EVMAddress() (common.Address, bool) {
	if o.family != ChainFamilyEVM {
		return common.Address{}, false
	}
	return common.HexToAddress(o.address), true
}

// Credentials identify the calling application to the backend.
type Credentials struct {
	ProjectID string
	ClientKey string
	AppUUID   string
}

func (c Credentials) Validate() error {
	if strings.TrimSpace(c.ProjectID) == "" {
		return Errorf(KindConfiguration, "project id is required")
	}
	if strings.TrimSpace(c.ClientKey) == "" {
		return Errorf(KindConfiguration, "project client key is required")
	}
	if strings.TrimSpace(c.AppUUID) == "" {
		return Errorf(KindConfiguration, "project app uuid is required")
	}
	if _, err := uuid.Parse(c.AppUUID); err != nil {
		return NewError(KindConfiguration, "", fmt.Sprintf("project app uuid %q is malformed", c.AppUUID), err)
	}
	return nil
}

// SmartAccounts holds the derived universal account address per chain family.
type SmartAccounts struct {
	EVM    common.Address
	Solana solana.PublicKey
}

func (a SmartAccounts) Complete() bool {
	return a.EVM != (common.Address{}) && !a.Solana.IsZero()
}
