package cmd

import (
	"context"
	"strings"

	"github.com/bnema/universal-accounts-cli/internal/adapters/signer/local"
	"github.com/bnema/universal-accounts-cli/internal/application"
	"github.com/bnema/universal-accounts-cli/internal/domain"
	"github.com/ethereum/go-ethereum/common"
)

type ownerContext struct {
	profile application.ProfileCredentials
	owner   string
	signer  *local.Signer
}

// resolveOwner loads the selected profile and works out the owner address,
// preferring the address of the stored owner key.
func resolveOwner(ctx context.Context, app *app) (ownerContext, error) {
	loaded, err := app.profiles.LoadCredentials(ctx, app.profileName())
	if err != nil {
		return ownerContext{}, err
	}

	result := ownerContext{profile: loaded, owner: strings.TrimSpace(loaded.Profile.OwnerAddress)}
	if loaded.OwnerKey != "" {
		signer, err := local.NewSignerFromHex(loaded.OwnerKey)
		if err != nil {
			return ownerContext{}, err
		}
		if result.owner != "" && common.IsHexAddress(result.owner) && common.HexToAddress(result.owner) != signer.Address() {
			return ownerContext{}, domain.Errorf(domain.KindConfiguration,
				"profile %q owner address %s does not match its owner key (%s)", loaded.Profile.Name, result.owner, signer.Address().Hex())
		}
		result.signer = signer
		result.owner = signer.Address().Hex()
	}

	if result.owner == "" {
		return ownerContext{}, domain.Errorf(domain.KindConfiguration,
			"profile %q has no owner, set --owner-address or --owner-key with `ua profile set`", loaded.Profile.Name)
	}

	return result, nil
}

// connect opens the account session for the resolved owner the way a wallet
// connection would.
func connect(ctx context.Context, app *app, owner ownerContext) (*domain.AccountSession, error) {
	return app.sessions.HandleConnection(ctx, application.ConnectionState{Address: owner.owner, Connected: true}, owner.profile.Credentials)
}

func activityViewer(app *app, owner ownerContext) string {
	if viewer := strings.TrimSpace(owner.profile.Profile.ActivityViewer); viewer != "" {
		return viewer
	}
	return app.config.ActivityViewer
}
