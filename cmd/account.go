package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	accountrender "github.com/bnema/universal-accounts-cli/internal/adapters/render/account"
	"github.com/bnema/universal-accounts-cli/internal/domain"
	"github.com/spf13/cobra"
)

type accountView struct {
	Owner         string `json:"owner"`
	OwnerFamily   string `json:"owner_family"`
	EVMAccount    string `json:"evm_smart_account"`
	SolanaAccount string `json:"solana_smart_account"`
}

func newAccountCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "account",
		Short: "Show the universal account addresses of the profile owner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			owner, err := resolveOwner(cmd.Context(), app)
			if err != nil {
				return err
			}

			var session *domain.AccountSession
			err = wait(cmd.Context(), cmd.ErrOrStderr(), asJSON, "Opening universal account...", func(ctx context.Context) error {
				opened, err := connect(ctx, app, owner)
				if err != nil {
					return err
				}
				session = opened
				return nil
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, accountView{
					Owner:         session.Owner().String(),
					OwnerFamily:   string(session.Owner().Family()),
					EVMAccount:    session.SmartAccounts().EVM.Hex(),
					SolanaAccount: session.SmartAccounts().Solana.String(),
				})
			}

			return writeSummary(cmd, app, accountrender.Summary{
				Owner:    session.Owner(),
				Accounts: session.SmartAccounts(),
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func writeJSON(cmd *cobra.Command, value any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func writeSummary(cmd *cobra.Command, app *app, summary accountrender.Summary) error {
	rendered, err := app.render(summary, accountrender.RenderOptions{
		Now:        app.now(),
		StaleAfter: time.Minute,
	})
	if err != nil {
		return fmt.Errorf("render account: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
