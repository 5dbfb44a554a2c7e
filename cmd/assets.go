package cmd

import (
	"context"
	"time"

	accountrender "github.com/bnema/universal-accounts-cli/internal/adapters/render/account"
	"github.com/bnema/universal-accounts-cli/internal/domain"
	"github.com/spf13/cobra"
)

type assetRecordView struct {
	Chain       string `json:"chain"`
	ChainID     uint64 `json:"chain_id"`
	Token       string `json:"token"`
	Amount      string `json:"amount"`
	AmountInUSD string `json:"amount_in_usd"`
}

type assetsView struct {
	Owner      string            `json:"owner"`
	TotalInUSD string            `json:"total_in_usd"`
	Assets     []assetRecordView `json:"assets"`
	FetchedAt  time.Time         `json:"fetched_at"`
}

func newAssetsCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "assets",
		Aliases: []string{"balance"},
		Short:   "Show the universal balance across chains",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			owner, err := resolveOwner(cmd.Context(), app)
			if err != nil {
				return err
			}

			var (
				session *domain.AccountSession
				assets  domain.AggregatedAssets
			)
			err = wait(cmd.Context(), cmd.ErrOrStderr(), asJSON, "Fetching balances...", func(ctx context.Context) error {
				opened, err := connect(ctx, app, owner)
				if err != nil {
					return err
				}
				fetched, err := app.assets.FetchAssets(ctx, opened)
				if err != nil {
					return err
				}
				session, assets = opened, fetched
				return nil
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, newAssetsView(session.Owner(), assets))
			}

			return writeSummary(cmd, app, accountrender.Summary{
				Owner:  session.Owner(),
				Assets: &assets,
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newAssetsView(owner domain.OwnerIdentity, assets domain.AggregatedAssets) assetsView {
	view := assetsView{
		Owner:      owner.String(),
		TotalInUSD: assets.TotalInUSD.StringFixed(2),
		Assets:     make([]assetRecordView, 0, len(assets.Records)),
		FetchedAt:  assets.FetchedAt,
	}
	for _, record := range assets.Records {
		view.Assets = append(view.Assets, assetRecordView{
			Chain:       record.Chain.String(),
			ChainID:     uint64(record.Chain),
			Token:       string(record.Token),
			Amount:      record.Amount.String(),
			AmountInUSD: record.AmountInUSD.StringFixed(2),
		})
	}
	return view
}
