package remote

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/universal-accounts-cli/internal/domain"
	"github.com/bnema/universal-accounts-cli/internal/ports"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
)

type smartAccountsRequest struct {
	OwnerAddress string `json:"owner_address"`
}

type smartAccountsResponse struct {
	SmartAccountAddress       string `json:"smart_account_address"`
	SolanaSmartAccountAddress string `json:"solana_smart_account_address"`
}

type assetsRequest struct {
	OwnerAddress              string `json:"owner_address"`
	SmartAccountAddress       string `json:"smart_account_address"`
	SolanaSmartAccountAddress string `json:"solana_smart_account_address"`
}

type assetSchema struct {
	ChainID     uint64          `json:"chain_id"`
	TokenType   string          `json:"token_type"`
	Amount      decimal.Decimal `json:"amount"`
	AmountInUSD decimal.Decimal `json:"amount_in_usd"`
}

type assetsResponse struct {
	Assets            []assetSchema `json:"assets"`
	UnreachableChains []uint64      `json:"unreachable_chains"`
}

type expectTokenSchema struct {
	Type   string `json:"type"`
	Amount string `json:"amount"`
}

type callSchema struct {
	To    string        `json:"to"`
	Data  hexutil.Bytes `json:"data"`
	Value string        `json:"value,omitempty"`
}

type transactionRequest struct {
	OwnerAddress string              `json:"owner_address"`
	ChainID      uint64              `json:"chain_id"`
	ExpectTokens []expectTokenSchema `json:"expect_tokens"`
	Transactions []callSchema        `json:"transactions"`
}

type fundingSchema struct {
	ChainID   uint64          `json:"chain_id"`
	TokenType string          `json:"token_type"`
	Amount    decimal.Decimal `json:"amount"`
}

type transactionResponse struct {
	RootHash  string          `json:"root_hash"`
	BuildID   string          `json:"build_id"`
	ExpiresAt time.Time       `json:"expires_at"`
	Funding   []fundingSchema `json:"funding"`
}

type sendRequest struct {
	RootHash  string        `json:"root_hash"`
	Signature hexutil.Bytes `json:"signature"`
}

type sendResponse struct {
	TransactionID string `json:"transaction_id"`
}

func (c *Client) DeriveSmartAccounts(ctx context.Context, credentials domain.Credentials, owner domain.OwnerIdentity) (domain.SmartAccounts, error) {
	var resp smartAccountsResponse
	if err := c.post(ctx, credentials, smartAccountsPath, smartAccountsRequest{OwnerAddress: owner.String()}, &resp); err != nil {
		return domain.SmartAccounts{}, err
	}

	var accounts domain.SmartAccounts
	if !common.IsHexAddress(resp.SmartAccountAddress) {
		return domain.SmartAccounts{}, domain.Errorf(domain.KindTransient, "backend returned invalid evm smart account %q", resp.SmartAccountAddress)
	}
	accounts.EVM = common.HexToAddress(resp.SmartAccountAddress)

	solanaAccount, err := solana.PublicKeyFromBase58(resp.SolanaSmartAccountAddress)
	if err != nil {
		return domain.SmartAccounts{}, domain.NewError(domain.KindTransient, "", fmt.Sprintf("backend returned invalid solana smart account %q", resp.SolanaSmartAccountAddress), err)
	}
	accounts.Solana = solanaAccount

	return accounts, nil
}

func (c *Client) PrimaryAssets(ctx context.Context, credentials domain.Credentials, owner domain.OwnerIdentity, accounts domain.SmartAccounts) (ports.AssetReport, error) {
	request := assetsRequest{
		OwnerAddress:              owner.String(),
		SmartAccountAddress:       accounts.EVM.Hex(),
		SolanaSmartAccountAddress: accounts.Solana.String(),
	}

	var resp assetsResponse
	if err := c.post(ctx, credentials, assetsPath, request, &resp); err != nil {
		return ports.AssetReport{}, err
	}

	report := ports.AssetReport{Records: make([]domain.AssetRecord, 0, len(resp.Assets))}
	for _, asset := range resp.Assets {
		report.Records = append(report.Records, domain.AssetRecord{
			Chain:       domain.ChainID(asset.ChainID),
			Token:       domain.TokenType(strings.ToLower(asset.TokenType)),
			Amount:      asset.Amount,
			AmountInUSD: asset.AmountInUSD,
		})
	}
	for _, chain := range resp.UnreachableChains {
		report.UnreachableChains = append(report.UnreachableChains, domain.ChainID(chain))
	}

	return report, nil
}

func (c *Client) CreateUniversalTransaction(ctx context.Context, credentials domain.Credentials, owner domain.OwnerIdentity, intent domain.TransactionIntent) (ports.BuiltTransaction, error) {
	request := transactionRequest{
		OwnerAddress: owner.String(),
		ChainID:      uint64(intent.Chain),
		ExpectTokens: []expectTokenSchema{{
			Type:   string(intent.Funds.Token),
			Amount: intent.Funds.Amount.String(),
		}},
		Transactions: make([]callSchema, 0, len(intent.Steps)),
	}
	for _, step := range intent.Steps {
		call := callSchema{To: step.To, Data: step.Data}
		if step.Value != nil && !step.Value.IsZero() {
			call.Value = step.Value.Hex()
		}
		request.Transactions = append(request.Transactions, call)
	}

	var resp transactionResponse
	if err := c.post(ctx, credentials, transactionsPath, request, &resp); err != nil {
		return ports.BuiltTransaction{}, err
	}

	rootBytes, err := hexutil.Decode(resp.RootHash)
	if err != nil || len(rootBytes) != common.HashLength {
		return ports.BuiltTransaction{}, domain.Errorf(domain.KindTransient, "backend returned malformed root hash %q", resp.RootHash)
	}

	built := ports.BuiltTransaction{
		BuildID:   resp.BuildID,
		RootHash:  common.BytesToHash(rootBytes),
		ExpiresAt: resp.ExpiresAt,
	}
	for _, leg := range resp.Funding {
		built.Funding = append(built.Funding, domain.FundingLeg{
			FromChain: domain.ChainID(leg.ChainID),
			Token:     domain.TokenType(strings.ToLower(leg.TokenType)),
			Amount:    leg.Amount,
		})
	}

	return built, nil
}

func (c *Client) SendTransaction(ctx context.Context, credentials domain.Credentials, rootHash common.Hash, signature []byte) (string, error) {
	request := sendRequest{RootHash: rootHash.Hex(), Signature: signature}

	var resp sendResponse
	if err := c.post(ctx, credentials, sendTransactionPath, request, &resp); err != nil {
		return "", err
	}
	if resp.TransactionID == "" {
		return "", domain.Errorf(domain.KindTransient, "backend accepted the transaction without a transaction id")
	}

	return resp.TransactionID, nil
}
