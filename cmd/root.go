package cmd

import (
	"github.com/bnema/universal-accounts-cli/internal/domain"
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var profile string

	rootCmd := &cobra.Command{
		Use:           "ua",
		Short:         "Universal Accounts CLI (ua): one balance and one signature across chains",
		Long:          "ua opens a universal account for an owner address, shows the aggregated balance across EVM chains and Solana, and sends cross-chain transactions that are funded automatically and signed once.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&profile, "profile", string(domain.DefaultProfileName), "Profile holding project credentials and owner key")

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		rootCmd.AddCommand(newVersionCmd())
		return rootCmd
	}
	app.profileName = func() domain.ProfileName { return domain.ProfileName(profile) }

	rootCmd.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		app.sessions.Close()
		_ = app.logger.Sync()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newProfileCmd(app),
		newAccountCmd(app),
		newAssetsCmd(app),
		newSendCmd(app),
	)

	return rootCmd
}
