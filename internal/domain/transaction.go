package domain

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// FundingLeg is one source of liquidity in the backend's funding plan.
type FundingLeg struct {
	FromChain ChainID
	Token     TokenType
	Amount    decimal.Decimal
}

// UnsignedUniversalTransaction is the output of one build call. RootHash
// commits to the whole cross-chain plan and is signed exactly as returned.
type UnsignedUniversalTransaction struct {
	BuildID   string
	RootHash  common.Hash
	Chain     ChainID
	Funding   []FundingLeg
	ExpiresAt time.Time

	session *AccountSession
}

func NewUnsignedUniversalTransaction(session *AccountSession, chain ChainID, buildID string, rootHash common.Hash, funding []FundingLeg, expiresAt time.Time) UnsignedUniversalTransaction {
	return UnsignedUniversalTransaction{
		BuildID:   buildID,
		RootHash:  rootHash,
		Chain:     chain,
		Funding:   append([]FundingLeg(nil), funding...),
		ExpiresAt: expiresAt,
		session:   session,
	}
}

// Session returns the session that built the transaction.
func (t UnsignedUniversalTransaction) Session() *AccountSession {
	return t.session
}

type SubmissionResult struct {
	TransactionID string
}

const DefaultActivityViewer = "https://universalx.app"

// TrackingURL renders the activity-viewer link for the submitted transaction.
func (r SubmissionResult) TrackingURL(viewerBase string) (string, error) {
	if strings.TrimSpace(r.TransactionID) == "" {
		return "", Errorf(KindValidation, "submission result has no transaction id")
	}
	if viewerBase == "" {
		viewerBase = DefaultActivityViewer
	}

	base, err := url.Parse(viewerBase)
	if err != nil {
		return "", NewError(KindConfiguration, "", "parse activity viewer url", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return "", Errorf(KindConfiguration, "activity viewer url must use http or https")
	}
	if base.Host == "" {
		return "", Errorf(KindConfiguration, "activity viewer url host is required")
	}

	base.Path = strings.TrimSuffix(base.Path, "/") + "/activity/details"
	base.RawQuery = "id=" + url.QueryEscape(r.TransactionID)
	return base.String(), nil
}

func (r SubmissionResult) String() string {
	return fmt.Sprintf("transaction %s", r.TransactionID)
}
