package application

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/universal-accounts-cli/internal/domain"
	"github.com/bnema/universal-accounts-cli/internal/ports"
	"go.uber.org/zap"
)

// AssetService aggregates the universal balance. A report with any
// unreachable chain fails the whole call rather than understate the total.
type AssetService struct {
	querier ports.AssetQuerier
	clock   ports.Clock
	logger  *zap.Logger
}

func NewAssetService(querier ports.AssetQuerier, clock ports.Clock, logger *zap.Logger) *AssetService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &AssetService{querier: querier, clock: clock, logger: logger.Named("assets")}
}

func (s *AssetService) FetchAssets(ctx context.Context, session *domain.AccountSession) (domain.AggregatedAssets, error) {
	if err := session.Err(); err != nil {
		return domain.AggregatedAssets{}, fmt.Errorf("fetch assets: %w", err)
	}

	report, err := s.querier.PrimaryAssets(ctx, session.Credentials(), session.Owner(), session.SmartAccounts())
	if err != nil {
		s.logger.Warn("primary assets query failed", zap.Stringer("owner", session.Owner()), zap.Error(err))
		return domain.AggregatedAssets{}, fmt.Errorf("fetch assets: %w", asTransient(err, "query primary assets"))
	}
	if err := session.Err(); err != nil {
		return domain.AggregatedAssets{}, fmt.Errorf("fetch assets: %w", err)
	}

	if len(report.UnreachableChains) > 0 {
		return domain.AggregatedAssets{}, fmt.Errorf("fetch assets: %w", domain.Errorf(domain.KindTransient,
			"balances incomplete, unreachable chains: %s", chainList(report.UnreachableChains)))
	}
	for _, record := range report.Records {
		if record.AmountInUSD.IsNegative() || record.Amount.IsNegative() {
			return domain.AggregatedAssets{}, fmt.Errorf("fetch assets: %w", domain.Errorf(domain.KindTransient,
				"backend reported a negative %s balance on %s", record.Token, record.Chain))
		}
	}

	assets := domain.NewAggregatedAssets(report.Records, s.clock.Now())
	s.logger.Debug("primary assets fetched",
		zap.Stringer("owner", session.Owner()),
		zap.Int("records", len(assets.Records)),
		zap.String("total_usd", assets.TotalInUSD.StringFixed(2)),
	)

	return assets, nil
}

func chainList(chains []domain.ChainID) string {
	names := make([]string, 0, len(chains))
	for _, chain := range chains {
		names = append(names, chain.String())
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
