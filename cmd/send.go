package cmd

import (
	"context"

	"github.com/bnema/universal-accounts-cli/internal/adapters/calldata"
	accountrender "github.com/bnema/universal-accounts-cli/internal/adapters/render/account"
	"github.com/bnema/universal-accounts-cli/internal/domain"
	"github.com/spf13/cobra"
)

type fundingLegView struct {
	FromChain string `json:"from_chain"`
	Token     string `json:"token"`
	Amount    string `json:"amount"`
}

type submissionView struct {
	TransactionID string           `json:"transaction_id"`
	TrackingURL   string           `json:"tracking_url"`
	RootHash      string           `json:"root_hash"`
	Chain         string           `json:"chain"`
	Funding       []fundingLegView `json:"funding"`
}

func newSendCmd(app *app) *cobra.Command {
	var (
		to        string
		amount    string
		chainName string
		tokenName string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a token on one chain, funded from the whole universal balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			chain, err := domain.ParseChain(chainName)
			if err != nil {
				return err
			}
			funds, err := domain.ParseRequiredFunds(tokenName, amount)
			if err != nil {
				return err
			}
			intent, err := calldata.TransferIntent(chain, funds.Token, to, funds.Amount)
			if err != nil {
				return err
			}

			owner, err := resolveOwner(cmd.Context(), app)
			if err != nil {
				return err
			}
			if owner.signer == nil {
				return domain.Errorf(domain.KindConfiguration, "profile %q has no owner key, set one with `ua profile set --owner-key`", owner.profile.Profile.Name)
			}

			var (
				tx     domain.UnsignedUniversalTransaction
				result domain.SubmissionResult
			)
			err = wait(cmd.Context(), cmd.ErrOrStderr(), asJSON, "Sending universal transaction...", func(ctx context.Context) error {
				session, err := connect(ctx, app, owner)
				if err != nil {
					return err
				}
				built, err := app.transactions.Build(ctx, session, intent)
				if err != nil {
					return err
				}
				signature, err := app.transactions.Sign(ctx, owner.signer, built)
				if err != nil {
					return err
				}
				submitted, err := app.transactions.Submit(ctx, built, signature)
				if err != nil {
					return err
				}
				tx, result = built, submitted
				return nil
			})
			if err != nil {
				return err
			}

			trackingURL, err := result.TrackingURL(activityViewer(app, owner))
			if err != nil {
				return err
			}

			if asJSON {
				view := submissionView{
					TransactionID: result.TransactionID,
					TrackingURL:   trackingURL,
					RootHash:      tx.RootHash.Hex(),
					Chain:         tx.Chain.String(),
					Funding:       make([]fundingLegView, 0, len(tx.Funding)),
				}
				for _, leg := range tx.Funding {
					view.Funding = append(view.Funding, fundingLegView{
						FromChain: leg.FromChain.String(),
						Token:     string(leg.Token),
						Amount:    leg.Amount.String(),
					})
				}
				return writeJSON(cmd, view)
			}

			return writeSummary(cmd, app, accountrender.Summary{
				Owner: tx.Session().Owner(),
				Submission: &accountrender.Submission{
					TransactionID: result.TransactionID,
					TrackingURL:   trackingURL,
					Chain:         tx.Chain,
					Funding:       tx.Funding,
				},
			})
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Recipient address")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount in token units, e.g. 1.5")
	cmd.Flags().StringVar(&chainName, "chain", "arbitrum", "Destination chain name or id")
	cmd.Flags().StringVar(&tokenName, "token", string(domain.TokenUSDC), "Token to send")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
