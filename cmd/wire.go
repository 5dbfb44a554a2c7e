package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/bnema/universal-accounts-cli/internal/adapters/backend/memory"
	"github.com/bnema/universal-accounts-cli/internal/adapters/backend/remote"
	accountrender "github.com/bnema/universal-accounts-cli/internal/adapters/render/account"
	tomlrepo "github.com/bnema/universal-accounts-cli/internal/adapters/repo/toml"
	filestore "github.com/bnema/universal-accounts-cli/internal/adapters/secrets/file"
	"github.com/bnema/universal-accounts-cli/internal/application"
	"github.com/bnema/universal-accounts-cli/internal/config"
	"github.com/bnema/universal-accounts-cli/internal/domain"
	"github.com/bnema/universal-accounts-cli/internal/logging"
	"github.com/bnema/universal-accounts-cli/internal/ports"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type app struct {
	config       config.Config
	logger       *zap.Logger
	profiles     *application.ProfileService
	sessions     *application.SessionManager
	assets       *application.AssetService
	transactions *application.TransactionService
	render       func(accountrender.Summary, accountrender.RenderOptions) (string, error)
	profileName  func() domain.ProfileName
	now          func() time.Time
}

func wireApp() (*app, error) {
	v := viper.New()
	cfg, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	repo, err := tomlrepo.NewRepository(v)
	if err != nil {
		return nil, fmt.Errorf("wire profile repository: %w", err)
	}
	secretStore := filestore.NewStore(cfg.SecretsDir)

	clock := ports.SystemClock{}
	backend := newBackend(cfg, clock, logger)

	return &app{
		config:       cfg,
		logger:       logger,
		profiles:     application.NewProfileService(repo, secretStore),
		sessions:     application.NewSessionManager(backend, clock, logger),
		assets:       application.NewAssetService(backend, clock, logger),
		transactions: application.NewTransactionService(backend, logger),
		render:       accountrender.Render,
		profileName:  func() domain.ProfileName { return domain.DefaultProfileName },
		now:          clock.Now,
	}, nil
}

func newBackend(cfg config.Config, clock ports.Clock, logger *zap.Logger) ports.Backend {
	if cfg.Backend == config.BackendMemory {
		logger.Info("using in-memory sandbox backend")
		backend := memory.New(clock)
		backend.Seed(sandboxBalances())
		return backend
	}

	return &remote.Client{
		BaseURL:        cfg.BackendURL,
		HTTPClient:     &http.Client{},
		RequestTimeout: cfg.RequestTimeout,
		Logger:         logger,
	}
}

// sandboxBalances is what every owner holds on the in-memory backend.
func sandboxBalances() []domain.AssetRecord {
	return []domain.AssetRecord{
		{Chain: domain.ChainArbitrum, Token: domain.TokenUSDC, Amount: decimal.NewFromInt(5), AmountInUSD: decimal.NewFromInt(5)},
		{Chain: domain.ChainBase, Token: domain.TokenUSDC, Amount: decimal.NewFromInt(20), AmountInUSD: decimal.NewFromInt(20)},
		{Chain: domain.ChainEthereum, Token: domain.TokenETH, Amount: decimal.RequireFromString("0.01"), AmountInUSD: decimal.RequireFromString("24.21")},
	}
}
