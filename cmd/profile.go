package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bnema/universal-accounts-cli/internal/adapters/signer/local"
	"github.com/bnema/universal-accounts-cli/internal/application"
	"github.com/bnema/universal-accounts-cli/internal/domain"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage project credentials and owner keys",
	}

	cmd.AddCommand(
		newProfileSetCmd(app),
		newProfileListCmd(app),
	)

	return cmd
}

func newProfileSetCmd(app *app) *cobra.Command {
	var input application.SaveProfileCommand

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Create or update a profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input.Name = app.profileName()
			if err := validateProfileInput(&input); err != nil {
				return err
			}

			if err := app.profiles.SaveProfile(cmd.Context(), input); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "profile %s saved\n", input.Name)
			return err
		},
	}

	cmd.Flags().StringVar(&input.ProjectID, "project-id", "", "Project ID")
	cmd.Flags().StringVar(&input.AppUUID, "app-uuid", "", "App UUID")
	cmd.Flags().StringVar(&input.ClientKey, "client-key", "", "Client key (stored in the secrets directory)")
	cmd.Flags().StringVar(&input.OwnerKey, "owner-key", "", "Owner private key in hex (stored in the secrets directory)")
	cmd.Flags().StringVar(&input.OwnerAddress, "owner-address", "", "Owner address when no owner key is stored")
	cmd.Flags().StringVar(&input.ActivityViewer, "activity-viewer", "", "Base URL of the activity viewer")

	return cmd
}

func validateProfileInput(input *application.SaveProfileCommand) error {
	if input.OwnerAddress != "" {
		owner, err := domain.ParseOwnerIdentity(input.OwnerAddress)
		if err != nil {
			return err
		}
		input.OwnerAddress = owner.String()
	}

	if input.OwnerKey != "" {
		signer, err := local.NewSignerFromHex(input.OwnerKey)
		if err != nil {
			return err
		}
		if input.OwnerAddress == "" {
			input.OwnerAddress = signer.Address().Hex()
		} else if input.OwnerAddress != signer.Address().Hex() {
			return domain.Errorf(domain.KindConfiguration, "owner key controls %s, not %s", signer.Address().Hex(), input.OwnerAddress)
		}
	}

	if input.AppUUID != "" {
		if _, err := uuid.Parse(input.AppUUID); err != nil {
			return domain.NewError(domain.KindConfiguration, "", fmt.Sprintf("app uuid %q is not a uuid", input.AppUUID), err)
		}
	}

	return nil
}

type profileView struct {
	Name           string `json:"name"`
	ProjectID      string `json:"project_id"`
	AppUUID        string `json:"app_uuid"`
	OwnerAddress   string `json:"owner_address,omitempty"`
	HasClientKey   bool   `json:"has_client_key"`
	HasOwnerKey    bool   `json:"has_owner_key"`
	ActivityViewer string `json:"activity_viewer,omitempty"`
}

func newProfileListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List configured profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profiles, err := app.profiles.ListProfiles(cmd.Context())
			if err != nil {
				return err
			}

			views := make([]profileView, 0, len(profiles))
			for _, profile := range profiles {
				views = append(views, profileView{
					Name:           string(profile.Name),
					ProjectID:      profile.ProjectID,
					AppUUID:        profile.AppUUID,
					OwnerAddress:   profile.OwnerAddress,
					HasClientKey:   profile.ClientKeyRef != "",
					HasOwnerKey:    profile.OwnerKeyRef != "",
					ActivityViewer: profile.ActivityViewer,
				})
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(views)
			}

			for _, view := range views {
				owner := view.OwnerAddress
				if owner == "" {
					owner = "-"
				}
				keys := []string{}
				if view.HasClientKey {
					keys = append(keys, "client_key")
				}
				if view.HasOwnerKey {
					keys = append(keys, "owner_key")
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", view.Name, view.ProjectID, owner, strings.Join(keys, ","))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
