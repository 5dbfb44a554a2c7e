package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

type AssetRecord struct {
	Chain       ChainID
	Token       TokenType
	Amount      decimal.Decimal
	AmountInUSD decimal.Decimal
}

// AggregatedAssets is one atomic snapshot of the universal balance.
type AggregatedAssets struct {
	TotalInUSD decimal.Decimal
	Records    []AssetRecord
	FetchedAt  time.Time
}

type TokenBalance struct {
	Token       TokenType
	Amount      decimal.Decimal
	AmountInUSD decimal.Decimal
}

// NewAggregatedAssets sums the per-record USD values into the snapshot total.
func NewAggregatedAssets(records []AssetRecord, fetchedAt time.Time) AggregatedAssets {
	copied := make([]AssetRecord, len(records))
	copy(copied, records)

	total := decimal.Zero
	for _, record := range copied {
		total = total.Add(record.AmountInUSD)
	}

	return AggregatedAssets{TotalInUSD: total, Records: copied, FetchedAt: fetchedAt}
}

// TotalUSDString formats the total the way the balance is shown to users.
func (a AggregatedAssets) TotalUSDString() string {
	return "$" + a.TotalInUSD.StringFixed(2)
}

// Breakdown groups records by token type, ordered by USD value descending.
func (a AggregatedAssets) Breakdown() []TokenBalance {
	byToken := map[TokenType]*TokenBalance{}
	for _, record := range a.Records {
		balance, ok := byToken[record.Token]
		if !ok {
			balance = &TokenBalance{Token: record.Token}
			byToken[record.Token] = balance
		}
		balance.Amount = balance.Amount.Add(record.Amount)
		balance.AmountInUSD = balance.AmountInUSD.Add(record.AmountInUSD)
	}

	result := make([]TokenBalance, 0, len(byToken))
	for _, balance := range byToken {
		result = append(result, *balance)
	}
	sort.Slice(result, func(i, j int) bool {
		if c := result[i].AmountInUSD.Cmp(result[j].AmountInUSD); c != 0 {
			return c > 0
		}
		return result[i].Token < result[j].Token
	})

	return result
}
