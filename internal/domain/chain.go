package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

type ChainFamily string

const (
	ChainFamilyEVM    ChainFamily = "evm"
	ChainFamilySolana ChainFamily = "solana"
)

type ChainID uint64

const (
	ChainEthereum  ChainID = 1
	ChainOptimism  ChainID = 10
	ChainBNB       ChainID = 56
	ChainPolygon   ChainID = 137
	ChainSolana    ChainID = 101
	ChainBase      ChainID = 8453
	ChainArbitrum  ChainID = 42161
	ChainAvalanche ChainID = 43114
	ChainLinea     ChainID = 59144
)

type Chain struct {
	ID     ChainID
	Name   string
	Family ChainFamily
}

var supportedChains = map[ChainID]Chain{
	ChainEthereum:  {ID: ChainEthereum, Name: "ethereum", Family: ChainFamilyEVM},
	ChainOptimism:  {ID: ChainOptimism, Name: "optimism", Family: ChainFamilyEVM},
	ChainBNB:       {ID: ChainBNB, Name: "bsc", Family: ChainFamilyEVM},
	ChainPolygon:   {ID: ChainPolygon, Name: "polygon", Family: ChainFamilyEVM},
	ChainSolana:    {ID: ChainSolana, Name: "solana", Family: ChainFamilySolana},
	ChainBase:      {ID: ChainBase, Name: "base", Family: ChainFamilyEVM},
	ChainArbitrum:  {ID: ChainArbitrum, Name: "arbitrum", Family: ChainFamilyEVM},
	ChainAvalanche: {ID: ChainAvalanche, Name: "avalanche", Family: ChainFamilyEVM},
	ChainLinea:     {ID: ChainLinea, Name: "linea", Family: ChainFamilyEVM},
}

func (id ChainID) Supported() bool {
	_, ok := supportedChains[id]
	return ok
}

func (id ChainID) Chain() (Chain, bool) {
	chain, ok := supportedChains[id]
	return chain, ok
}

func (id ChainID) String() string {
	if chain, ok := supportedChains[id]; ok {
		return chain.Name
	}
	return strconv.FormatUint(uint64(id), 10)
}

// SupportedChains returns the chain table ordered by chain id.
func SupportedChains() []Chain {
	chains := make([]Chain, 0, len(supportedChains))
	for _, chain := range supportedChains {
		chains = append(chains, chain)
	}
	sort.Slice(chains, func(i, j int) bool { return chains[i].ID < chains[j].ID })
	return chains
}

// ParseChain accepts a chain name ("arbitrum") or a numeric chain id ("42161").
func ParseChain(raw string) (ChainID, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return 0, NewError(KindValidation, CodeUnsupportedChain, "chain is required", nil)
	}

	if n, err := strconv.ParseUint(value, 10, 64); err == nil {
		id := ChainID(n)
		if !id.Supported() {
			return 0, NewError(KindValidation, CodeUnsupportedChain, fmt.Sprintf("unsupported chain %d", n), nil)
		}
		return id, nil
	}

	for id, chain := range supportedChains {
		if chain.Name == value {
			return id, nil
		}
	}

	return 0, NewError(KindValidation, CodeUnsupportedChain, fmt.Sprintf("unsupported chain %q", raw), nil)
}

type TokenType string

const (
	TokenETH  TokenType = "eth"
	TokenUSDC TokenType = "usdc"
	TokenUSDT TokenType = "usdt"
	TokenSOL  TokenType = "sol"
	TokenBNB  TokenType = "bnb"
	TokenBTC  TokenType = "btc"
)

func (t TokenType) Valid() bool {
	switch t {
	case TokenETH, TokenUSDC, TokenUSDT, TokenSOL, TokenBNB, TokenBTC:
		return true
	default:
		return false
	}
}

func ParseTokenType(raw string) (TokenType, error) {
	token := TokenType(strings.ToLower(strings.TrimSpace(raw)))
	if !token.Valid() {
		return "", Errorf(KindValidation, "unsupported token type %q", raw)
	}
	return token, nil
}
