package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/universal-accounts-cli/internal/domain"
	"github.com/bnema/universal-accounts-cli/internal/ports"
)

type ProfileService struct {
	repo  ports.ProfileRepository
	store ports.SecretStore
}

func NewProfileService(repo ports.ProfileRepository, store ports.SecretStore) *ProfileService {
	return &ProfileService{repo: repo, store: store}
}

// SaveProfileCommand carries the project triple and optional owner key for
// one profile. Empty secret values keep the stored ones.
type SaveProfileCommand struct {
	Name           domain.ProfileName
	ProjectID      string
	AppUUID        string
	ClientKey      string
	OwnerKey       string
	OwnerAddress   string
	ActivityViewer string
}

type ProfileCredentials struct {
	Profile     domain.Profile
	Credentials domain.Credentials
	OwnerKey    string
}

func clientKeyRef(name domain.ProfileName) string {
	return fmt.Sprintf("profiles/%s/client_key", name)
}

func ownerKeyRef(name domain.ProfileName) string {
	return fmt.Sprintf("profiles/%s/owner_key", name)
}

func (s *ProfileService) SaveProfile(ctx context.Context, cmd SaveProfileCommand) error {
	if strings.TrimSpace(string(cmd.Name)) == "" {
		cmd.Name = domain.DefaultProfileName
	}

	profile, err := s.repo.GetByName(ctx, cmd.Name)
	if err != nil {
		if !errors.Is(err, domain.ErrProfileNotFound) {
			return fmt.Errorf("get profile by name: %w", err)
		}
		profile = domain.Profile{Name: cmd.Name}
	}

	if cmd.ProjectID != "" {
		profile.ProjectID = cmd.ProjectID
	}
	if cmd.AppUUID != "" {
		profile.AppUUID = cmd.AppUUID
	}
	if cmd.OwnerAddress != "" {
		profile.OwnerAddress = cmd.OwnerAddress
	}
	if cmd.ActivityViewer != "" {
		profile.ActivityViewer = cmd.ActivityViewer
	}

	var written []previousSecret
	rollback := func(cause error) error {
		var rollbackErr error
		for i := len(written) - 1; i >= 0; i-- {
			if err := s.restoreSecret(ctx, written[i]); err != nil {
				rollbackErr = errors.Join(rollbackErr, err)
			}
		}
		if rollbackErr != nil {
			return fmt.Errorf("save profile and rollback stored secrets: %w", errors.Join(cause, rollbackErr))
		}
		return cause
	}

	if cmd.ClientKey != "" {
		key := clientKeyRef(cmd.Name)
		previous, err := s.replaceSecret(ctx, key, cmd.ClientKey)
		if err != nil {
			return fmt.Errorf("store client key: %w", err)
		}
		written = append(written, previous)
		profile.ClientKeyRef = key
	}
	if cmd.OwnerKey != "" {
		key := ownerKeyRef(cmd.Name)
		previous, err := s.replaceSecret(ctx, key, cmd.OwnerKey)
		if err != nil {
			return rollback(fmt.Errorf("store owner key: %w", err))
		}
		written = append(written, previous)
		profile.OwnerKeyRef = key
	}

	if err := s.repo.Save(ctx, profile); err != nil {
		return rollback(fmt.Errorf("save profile: %w", err))
	}

	return nil
}

// previousSecret is what a key held before SaveProfile replaced it.
type previousSecret struct {
	key     string
	value   string
	existed bool
}

func (s *ProfileService) replaceSecret(ctx context.Context, key string, value string) (previousSecret, error) {
	previous := previousSecret{key: key}
	current, err := s.store.Get(ctx, key)
	switch {
	case err == nil:
		previous.value = current
		previous.existed = true
	case !errors.Is(err, domain.ErrSecretNotFound):
		return previousSecret{}, fmt.Errorf("read previous secret: %w", err)
	}

	if err := s.store.Put(ctx, key, value); err != nil {
		return previousSecret{}, err
	}
	return previous, nil
}

func (s *ProfileService) restoreSecret(ctx context.Context, previous previousSecret) error {
	if previous.existed {
		return s.store.Put(ctx, previous.key, previous.value)
	}
	return s.store.Delete(ctx, previous.key)
}

func (s *ProfileService) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	profiles, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return profiles, nil
}

// LoadCredentials resolves a profile and its secrets into credentials.
func (s *ProfileService) LoadCredentials(ctx context.Context, name domain.ProfileName) (ProfileCredentials, error) {
	profile, err := s.repo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return ProfileCredentials{}, domain.NewError(domain.KindConfiguration, "", fmt.Sprintf("profile %q is not configured", name), err)
		}
		return ProfileCredentials{}, fmt.Errorf("get profile by name: %w", err)
	}

	result := ProfileCredentials{
		Profile: profile,
		Credentials: domain.Credentials{
			ProjectID: profile.ProjectID,
			AppUUID:   profile.AppUUID,
		},
	}

	if profile.ClientKeyRef != "" {
		clientKey, err := s.store.Get(ctx, profile.ClientKeyRef)
		if err != nil {
			return ProfileCredentials{}, domain.NewError(domain.KindConfiguration, "", "load client key", err)
		}
		result.Credentials.ClientKey = clientKey
	}
	if profile.OwnerKeyRef != "" {
		ownerKey, err := s.store.Get(ctx, profile.OwnerKeyRef)
		if err != nil {
			return ProfileCredentials{}, domain.NewError(domain.KindConfiguration, "", "load owner key", err)
		}
		result.OwnerKey = ownerKey
	}

	if err := result.Credentials.Validate(); err != nil {
		return ProfileCredentials{}, fmt.Errorf("profile %q: %w", name, err)
	}

	return result, nil
}
